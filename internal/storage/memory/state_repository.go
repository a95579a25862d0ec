package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// stateRepositoryInMemory — простая in-memory реализация StateRepository.
type stateRepositoryInMemory struct {
	mu    sync.RWMutex
	state domain.State
}

// NewStateRepository возвращает in-memory хранилище для локальной разработки и тестов.
func NewStateRepository() domain.StateRepository {
	return &stateRepositoryInMemory{}
}

// Load возвращает копию последнего сохранённого состояния.
func (r *stateRepositoryInMemory) Load() (domain.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.State{
		Cart:      domain.CloneCart(r.state.Cart),
		Wishlist:  domain.CloneProducts(r.state.Wishlist),
		Addresses: domain.CloneAddresses(r.state.Addresses),
		Orders:    domain.CloneOrders(r.state.Orders),
	}, nil
}

// SaveCart сохраняет копию корзины.
func (r *stateRepositoryInMemory) SaveCart(items []domain.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	r.state.Cart = domain.CloneCart(items)
	return nil
}

// SaveWishlist сохраняет копию wishlist.
func (r *stateRepositoryInMemory) SaveWishlist(products []domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Wishlist = domain.CloneProducts(products)
	return nil
}

// SaveAddresses сохраняет копию адресной книги.
func (r *stateRepositoryInMemory) SaveAddresses(addrs []domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Addresses = domain.CloneAddresses(addrs)
	return nil
}

// SaveOrders сохраняет копию списка заказов.
func (r *stateRepositoryInMemory) SaveOrders(orders []domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Orders = domain.CloneOrders(orders)
	return nil
}

var _ domain.StateRepository = (*stateRepositoryInMemory)(nil)
