package kafka

import (
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// EventType определяет тип события
type EventType string

const (
	// Order события
	EventTypeOrderPlaced        EventType = EventType(domain.EventOrderPlaced)
	EventTypeOrderStatusChanged EventType = EventType(domain.EventOrderStatusChanged)
)

// Topics для Kafka
const (
	TopicOrderEvents = "storefront.order.events"
)

// OrderEvent представляет событие заказа
type OrderEvent struct {
	EventType EventType `json:"event_type"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Total     string    `json:"total"`
	ItemCount int       `json:"item_count"`
	AddressID string    `json:"address_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderEvent создает новое событие заказа
func NewOrderEvent(eventType EventType, order domain.Order) *OrderEvent {
	return &OrderEvent{
		EventType: eventType,
		OrderID:   order.ID,
		Status:    string(order.Status),
		Total:     order.Total.String(),
		ItemCount: len(order.Items),
		AddressID: order.Address.ID,
		Timestamp: time.Now(),
	}
}
