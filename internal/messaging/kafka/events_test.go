package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestNewOrderEvent(t *testing.T) {
	order := domain.Order{
		ID: "ORD-1",
		Items: []domain.CartItem{
			{Product: domain.Product{ID: 1, Price: decimal.NewFromFloat(10.00)}, Quantity: 2},
			{Product: domain.Product{ID: 2, Price: decimal.NewFromFloat(5.50)}, Quantity: 1},
		},
		Total:    decimal.NewFromFloat(25.50),
		Address:  domain.Address{ID: "a1"},
		Status:   domain.OrderStatusPending,
		PlacedAt: time.Now().UTC(),
	}

	event := NewOrderEvent(EventTypeOrderPlaced, order)

	if event.EventType != EventTypeOrderPlaced {
		t.Fatalf("expected event type %s, got %s", EventTypeOrderPlaced, event.EventType)
	}
	if event.OrderID != "ORD-1" {
		t.Fatalf("expected order id ORD-1, got %s", event.OrderID)
	}
	if event.Total != "25.5" {
		t.Fatalf("expected total 25.5, got %s", event.Total)
	}
	if event.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", event.ItemCount)
	}
	if event.AddressID != "a1" {
		t.Fatalf("expected address id a1, got %s", event.AddressID)
	}
	if event.Timestamp.IsZero() {
		t.Fatal("expected non-zero timestamp")
	}
}

func TestOrderEvent_JSON(t *testing.T) {
	event := NewOrderEvent(EventTypeOrderStatusChanged, domain.Order{
		ID:     "ORD-2",
		Status: domain.OrderStatusShipped,
		Total:  decimal.NewFromInt(10),
	})

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}

	var decoded OrderEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if decoded.EventType != EventTypeOrderStatusChanged || decoded.Status != "shipped" {
		t.Fatalf("event did not survive round trip: %+v", decoded)
	}
}
