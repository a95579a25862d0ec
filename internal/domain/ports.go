package domain

// Имена коллекций в долговременном хранилище. Каждая коллекция
// сериализуется и сохраняется независимо от остальных.
const (
	CollectionCart      = "cart"
	CollectionWishlist  = "wishlist"
	CollectionAddresses = "addresses"
	CollectionOrders    = "orders"
)

// State — полный снимок четырёх коллекций витрины.
type State struct {
	Cart      []CartItem `json:"cart"`
	Wishlist  []Product  `json:"wishlist"`
	Addresses []Address  `json:"addresses"`
	Orders    []Order    `json:"orders"`
}

// StateRepository описывает требования к долговременному хранилищу состояния.
// Load вызывается один раз при старте; Save-методы — после каждой успешной
// мутации соответствующей коллекции. Хранилище best-effort: ошибка записи
// не откатывает состояние в памяти.
type StateRepository interface {
	// Load возвращает последнее сохранённое состояние; отсутствующие
	// коллекции приходят пустыми.
	Load() (State, error)
	SaveCart(items []CartItem) error
	SaveWishlist(products []Product) error
	SaveAddresses(addrs []Address) error
	SaveOrders(orders []Order) error
}

// Severity задаёт тон пользовательского уведомления.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notification — сообщение для внешнего приёмника уведомлений.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier — внешний приёмник пользовательских уведомлений.
// Fire-and-forget: Store не зависит от результата показа.
type Notifier interface {
	Notify(n Notification)
}

// Типы доменных событий заказов.
const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

// EventPublisher публикует доменные события заказов; должен быть идемпотентным.
type EventPublisher interface {
	PublishOrderEvent(eventType string, order Order) error
}
