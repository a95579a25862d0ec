package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Repository хранит каждую коллекцию отдельным JSON-файлом в каталоге
// состояния: cart.json, wishlist.json, addresses.json, orders.json.
// Отсутствующий файл означает пустую коллекцию.
type Repository struct {
	dir string
}

// NewRepository создаёт файловое хранилище в указанном каталоге.
func NewRepository(dir string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &Repository{dir: dir}, nil
}

// Load читает все четыре коллекции из каталога состояния.
func (r *Repository) Load() (domain.State, error) {
	var state domain.State

	if err := r.readCollection(domain.CollectionCart, &state.Cart); err != nil {
		return domain.State{}, err
	}
	if err := r.readCollection(domain.CollectionWishlist, &state.Wishlist); err != nil {
		return domain.State{}, err
	}
	if err := r.readCollection(domain.CollectionAddresses, &state.Addresses); err != nil {
		return domain.State{}, err
	}
	if err := r.readCollection(domain.CollectionOrders, &state.Orders); err != nil {
		return domain.State{}, err
	}

	return state, nil
}

// SaveCart сохраняет корзину.
func (r *Repository) SaveCart(items []domain.CartItem) error {
	return r.writeCollection(domain.CollectionCart, items)
}

// SaveWishlist сохраняет wishlist.
func (r *Repository) SaveWishlist(products []domain.Product) error {
	return r.writeCollection(domain.CollectionWishlist, products)
}

// SaveAddresses сохраняет адресную книгу.
func (r *Repository) SaveAddresses(addrs []domain.Address) error {
	return r.writeCollection(domain.CollectionAddresses, addrs)
}

// SaveOrders сохраняет список заказов.
func (r *Repository) SaveOrders(orders []domain.Order) error {
	return r.writeCollection(domain.CollectionOrders, orders)
}

func (r *Repository) path(collection string) string {
	return filepath.Join(r.dir, collection+".json")
}

func (r *Repository) readCollection(collection string, dst any) error {
	data, err := os.ReadFile(r.path(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// writeCollection пишет во временный файл и переименовывает, чтобы
// незавершённая запись не испортила предыдущее состояние.
func (r *Repository) writeCollection(collection string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}

	tmp := r.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := os.Rename(tmp, r.path(collection)); err != nil {
		return fmt.Errorf("rename %s: %w", collection, err)
	}
	return nil
}

var _ domain.StateRepository = (*Repository)(nil)
