package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// Операции для метрик и логов.
const (
	opAddToCart          = "add_to_cart"
	opRemoveFromCart     = "remove_from_cart"
	opUpdateQuantity     = "update_quantity"
	opAddToWishlist      = "add_to_wishlist"
	opRemoveFromWishlist = "remove_from_wishlist"
	opAddAddress         = "add_address"
	opRemoveAddress      = "remove_address"
	opPlaceOrder         = "place_order"
	opUpdateOrderStatus  = "update_order_status"
	opClearCart          = "clear_cart"
)

// Shop владеет четырьмя коллекциями витрины — корзиной, wishlist,
// адресной книгой и заказами — и всеми операциями над ними. Создаётся один
// раз при старте процесса и передаётся по ссылке; глобального состояния нет.
//
// Каждая мутация выполняется целиком: изменение в памяти, затем запись
// затронутых коллекций в хранилище, затем уведомление. Хранилище
// best-effort — ошибка записи логируется, состояние в памяти остаётся
// авторитетным до конца сессии.
type Shop struct {
	mu        sync.Mutex
	cart      []domain.CartItem
	wishlist  []domain.Product
	addresses []domain.Address
	orders    []domain.Order

	repo      domain.StateRepository
	notifier  domain.Notifier
	publisher domain.EventPublisher
	logger    *log.Entry
	metrics   *metrics.StoreMetrics
}

// NewShop создаёт рабочий экземпляр Store без публикации событий.
func NewShop(repo domain.StateRepository, notifier domain.Notifier, logger *log.Entry) *Shop {
	if logger == nil {
		logger = log.New().WithField("component", "shop")
	}
	return &Shop{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics.NewStoreMetrics(),
	}
}

// NewShopWithPublisher создаёт Store, публикующий события заказов.
func NewShopWithPublisher(repo domain.StateRepository, notifier domain.Notifier, publisher domain.EventPublisher, logger *log.Entry) *Shop {
	shop := NewShop(repo, notifier, logger)
	shop.publisher = publisher
	return shop
}

// Hydrate загружает состояние из хранилища. Вызывается один раз при старте;
// ошибка загрузки фатальна, потому что дальше Store перезапишет хранилище.
func (s *Shop) Hydrate() error {
	state, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("load shop state: %w", err)
	}

	s.mu.Lock()
	s.cart = domain.CloneCart(state.Cart)
	s.wishlist = domain.CloneProducts(state.Wishlist)
	s.addresses = domain.CloneAddresses(state.Addresses)
	s.orders = domain.CloneOrders(state.Orders)
	s.mu.Unlock()

	s.metrics.SetCartItems(len(state.Cart))
	s.logger.WithFields(log.Fields{
		"cart_items": len(state.Cart),
		"wishlist":   len(state.Wishlist),
		"addresses":  len(state.Addresses),
		"orders":     len(state.Orders),
	}).Info("shop state hydrated")
	return nil
}

// AddToCart добавляет товар в корзину: новая позиция с количеством 1 или
// инкремент уже имеющейся. Товар с нулевым остатком отклоняется.
func (s *Shop) AddToCart(product domain.Product) error {
	if !product.InStock() {
		s.metrics.RecordRejected("out_of_stock")
		s.notify("Out of Stock", "This product is currently unavailable.", domain.SeverityDestructive)
		return domain.ErrOutOfStock
	}

	s.mu.Lock()
	found := false
	for i := range s.cart {
		if s.cart[i].ID == product.ID {
			s.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.cart = append(s.cart, domain.CartItem{Product: product.Clone(), Quantity: 1})
	}
	snapshot := domain.CloneCart(s.cart)
	s.mu.Unlock()

	s.metrics.RecordOperation(opAddToCart)
	s.metrics.SetCartItems(len(snapshot))
	s.persist(domain.CollectionCart, func() error { return s.repo.SaveCart(snapshot) })
	s.notify("Added to Cart", fmt.Sprintf("%s has been added to your cart.", product.Title), domain.SeverityDefault)
	return nil
}

// RemoveFromCart удаляет позицию по id товара. Отсутствие позиции — не ошибка.
func (s *Shop) RemoveFromCart(productID int64) error {
	s.mu.Lock()
	filtered := s.cart[:0]
	for _, item := range s.cart {
		if item.ID != productID {
			filtered = append(filtered, item)
		}
	}
	s.cart = filtered
	snapshot := domain.CloneCart(s.cart)
	s.mu.Unlock()

	s.metrics.RecordOperation(opRemoveFromCart)
	s.metrics.SetCartItems(len(snapshot))
	s.persist(domain.CollectionCart, func() error { return s.repo.SaveCart(snapshot) })
	s.notify("Removed from Cart", "Item has been removed from your cart.", domain.SeverityDefault)
	return nil
}

// UpdateQuantity устанавливает точное количество позиции. Количество меньше 1
// игнорируется целиком — это защита от некорректного ввода, а не неявное
// удаление. Неизвестный id — no-op.
func (s *Shop) UpdateQuantity(productID int64, quantity int) error {
	if quantity < 1 {
		return nil
	}

	s.mu.Lock()
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity = quantity
			break
		}
	}
	snapshot := domain.CloneCart(s.cart)
	s.mu.Unlock()

	s.metrics.RecordOperation(opUpdateQuantity)
	s.persist(domain.CollectionCart, func() error { return s.repo.SaveCart(snapshot) })
	return nil
}

// AddToWishlist добавляет товар в wishlist; повторное добавление идемпотентно.
// Товар с нулевым остатком отклоняется.
func (s *Shop) AddToWishlist(product domain.Product) error {
	if !product.InStock() {
		s.metrics.RecordRejected("out_of_stock")
		s.notify("Out of Stock", "Cannot add out of stock items to wishlist.", domain.SeverityDestructive)
		return domain.ErrOutOfStock
	}

	s.mu.Lock()
	exists := false
	for _, p := range s.wishlist {
		if p.ID == product.ID {
			exists = true
			break
		}
	}
	if !exists {
		s.wishlist = append(s.wishlist, product.Clone())
	}
	snapshot := domain.CloneProducts(s.wishlist)
	s.mu.Unlock()

	s.metrics.RecordOperation(opAddToWishlist)
	s.persist(domain.CollectionWishlist, func() error { return s.repo.SaveWishlist(snapshot) })
	s.notify("Added to Wishlist", fmt.Sprintf("%s has been added to your wishlist.", product.Title), domain.SeverityDefault)
	return nil
}

// RemoveFromWishlist удаляет товар из wishlist. Отсутствие — не ошибка.
func (s *Shop) RemoveFromWishlist(productID int64) error {
	s.mu.Lock()
	filtered := s.wishlist[:0]
	for _, p := range s.wishlist {
		if p.ID != productID {
			filtered = append(filtered, p)
		}
	}
	s.wishlist = filtered
	snapshot := domain.CloneProducts(s.wishlist)
	s.mu.Unlock()

	s.metrics.RecordOperation(opRemoveFromWishlist)
	s.persist(domain.CollectionWishlist, func() error { return s.repo.SaveWishlist(snapshot) })
	s.notify("Removed from Wishlist", "Item has been removed from your wishlist.", domain.SeverityDefault)
	return nil
}

// AddAddress сохраняет новый адрес доставки. Id задаёт Store, переданное
// вызывающей стороной значение игнорируется. Обязательные поля проверяются
// здесь, а не в UI.
func (s *Shop) AddAddress(address domain.Address) (domain.Address, error) {
	if errs := address.Validate(); len(errs) > 0 {
		s.metrics.RecordRejected("invalid_address")
		s.logger.WithField("issues", fmt.Sprint(errs)).Warn("address rejected")
		s.notify("Invalid Address", "Name, street and city are required.", domain.SeverityDestructive)
		return domain.Address{}, domain.ErrAddressInvalid
	}

	address.ID = uuid.NewString()

	s.mu.Lock()
	s.addresses = append(s.addresses, address)
	snapshot := domain.CloneAddresses(s.addresses)
	s.mu.Unlock()

	s.metrics.RecordOperation(opAddAddress)
	s.persist(domain.CollectionAddresses, func() error { return s.repo.SaveAddresses(snapshot) })
	s.notify("Address Added", "Your address has been saved successfully.", domain.SeverityDefault)
	return address, nil
}

// RemoveAddress удаляет адрес по id. Исторические заказы не затрагиваются:
// каждый заказ хранит собственную копию адреса.
func (s *Shop) RemoveAddress(addressID string) error {
	s.mu.Lock()
	filtered := s.addresses[:0]
	for _, addr := range s.addresses {
		if addr.ID != addressID {
			filtered = append(filtered, addr)
		}
	}
	s.addresses = filtered
	snapshot := domain.CloneAddresses(s.addresses)
	s.mu.Unlock()

	s.metrics.RecordOperation(opRemoveAddress)
	s.persist(domain.CollectionAddresses, func() error { return s.repo.SaveAddresses(snapshot) })
	s.notify("Address Removed", "Address has been deleted.", domain.SeverityDefault)
	return nil
}

// PlaceOrder — единственная многошаговая транзакция Store. Либо выполняется
// целиком: снимок корзины и адреса, новый заказ в начале списка, пустая
// корзина; либо (при пустой корзине или неизвестном адресе) не меняет ничего.
func (s *Shop) PlaceOrder(addressID string) (domain.Order, error) {
	s.mu.Lock()

	var address *domain.Address
	for i := range s.addresses {
		if s.addresses[i].ID == addressID {
			address = &s.addresses[i]
			break
		}
	}
	if address == nil || len(s.cart) == 0 {
		s.mu.Unlock()
		s.metrics.RecordRejected("checkout_precondition")
		s.notify("Error", "Please select an address and add items to cart.", domain.SeverityDestructive)
		return domain.Order{}, domain.ErrCheckoutPrecondition
	}

	order := domain.Order{
		ID:       "ORD-" + uuid.NewString(),
		Items:    domain.CloneCart(s.cart),
		Total:    domain.CartTotal(s.cart),
		Address:  *address,
		Status:   domain.OrderStatusPending,
		PlacedAt: time.Now().UTC(),
	}

	s.orders = append([]domain.Order{order.Clone()}, s.orders...)
	s.cart = nil
	ordersSnapshot := domain.CloneOrders(s.orders)
	s.mu.Unlock()

	total, _ := order.Total.Float64()
	s.metrics.RecordOperation(opPlaceOrder)
	s.metrics.RecordOrderPlaced(total)
	s.metrics.SetCartItems(0)

	s.persist(domain.CollectionOrders, func() error { return s.repo.SaveOrders(ordersSnapshot) })
	s.persist(domain.CollectionCart, func() error { return s.repo.SaveCart(nil) })

	s.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"total":    order.Total.String(),
		"items":    len(order.Items),
	}).Info("order placed")
	s.notify("Order Placed!", fmt.Sprintf("Your order #%s has been placed successfully.", order.ID), domain.SeverityDefault)
	s.publishOrderEvent(domain.EventOrderPlaced, order)
	return order.Clone(), nil
}

// UpdateOrderStatus переводит заказ в новый статус. Разрешено только движение
// вперёд: pending → shipped → delivered; остальные переходы отклоняются.
// Неизвестный id заказа — no-op без уведомления.
func (s *Shop) UpdateOrderStatus(orderID string, status domain.OrderStatus) error {
	if !status.Valid() {
		s.metrics.RecordRejected("invalid_transition")
		s.notify("Order Update Failed", fmt.Sprintf("Unknown order status %q.", string(status)), domain.SeverityDestructive)
		return domain.ErrInvalidStatusTransition
	}

	s.mu.Lock()
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return domain.ErrOrderNotFound
	}

	current := s.orders[idx].Status
	if !current.CanTransitionTo(status) {
		s.mu.Unlock()
		s.metrics.RecordRejected("invalid_transition")
		s.notify("Order Update Failed", fmt.Sprintf("Cannot change status from %s to %s.", current, status), domain.SeverityDestructive)
		return domain.ErrInvalidStatusTransition
	}

	s.orders[idx].Status = status
	updated := s.orders[idx].Clone()
	snapshot := domain.CloneOrders(s.orders)
	s.mu.Unlock()

	s.metrics.RecordOperation(opUpdateOrderStatus)
	s.persist(domain.CollectionOrders, func() error { return s.repo.SaveOrders(snapshot) })
	s.notify("Order Updated", fmt.Sprintf("Order status updated to %s.", status), domain.SeverityDefault)
	s.publishOrderEvent(domain.EventOrderStatusChanged, updated)
	return nil
}

// ClearCart безусловно опустошает корзину. Без уведомления.
func (s *Shop) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()

	s.metrics.RecordOperation(opClearCart)
	s.metrics.SetCartItems(0)
	s.persist(domain.CollectionCart, func() error { return s.repo.SaveCart(nil) })
}

// Cart возвращает копию корзины.
func (s *Shop) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneCart(s.cart)
}

// Wishlist возвращает копию wishlist.
func (s *Shop) Wishlist() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneProducts(s.wishlist)
}

// Addresses возвращает копию адресной книги.
func (s *Shop) Addresses() []domain.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneAddresses(s.addresses)
}

// Orders возвращает копию списка заказов, самые свежие первыми.
func (s *Shop) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneOrders(s.orders)
}

// persist записывает коллекцию в хранилище. Ошибка не останавливает
// операцию: состояние в памяти остаётся авторитетным до конца сессии.
func (s *Shop) persist(collection string, save func() error) {
	if err := save(); err != nil {
		s.metrics.RecordPersistFailure(collection)
		s.logger.WithError(err).WithField("collection", collection).
			Warn("persist failed, in-memory state remains authoritative")
	}
}

func (s *Shop) notify(title, description string, severity domain.Severity) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(domain.Notification{
		Title:       title,
		Description: description,
		Severity:    severity,
	})
}

// publishOrderEvent отправляет событие заказа, если publisher подключён.
// Публикация best-effort, как и персистентность.
func (s *Shop) publishOrderEvent(eventType string, order domain.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(eventType, order); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"event":    eventType,
			"order_id": order.ID,
		}).Warn("failed to publish order event")
		return
	}
	s.metrics.RecordEventPublished()
}
