package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// helper для создания базового заказа с одной позицией.
func makeOrder() domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID: "ORD-1",
		Items: []domain.CartItem{
			{
				Product: domain.Product{
					ID:    1,
					Title: "Widget",
					Price: decimal.NewFromFloat(10.00),
				},
				Quantity: 2,
			},
		},
		Total:    decimal.NewFromFloat(20.00),
		Address:  domain.Address{ID: "a1", Name: "Ann", Street: "Main St 1", City: "Springfield"},
		Status:   domain.OrderStatusPending,
		PlacedAt: now,
	}
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
	}{
		{
			name: "no items",
			mut: func(o *domain.Order) {
				o.Items = nil
			},
		},
		{
			name: "negative total",
			mut: func(o *domain.Order) {
				o.Total = decimal.NewFromInt(-1)
			},
		},
		{
			name: "total mismatch",
			mut: func(o *domain.Order) {
				o.Total = decimal.NewFromInt(999)
			},
		},
		{
			name: "unknown status",
			mut: func(o *domain.Order) {
				o.Status = domain.OrderStatus("lost")
			},
		},
		{
			name: "no address snapshot",
			mut: func(o *domain.Order) {
				o.Address = domain.Address{}
			},
		},
		{
			name: "quantity invalid",
			mut: func(o *domain.Order) {
				o.Items[0].Quantity = 0
			},
		},
		{
			name: "price invalid",
			mut: func(o *domain.Order) {
				o.Items[0].Price = decimal.NewFromInt(-5)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder()
			tc.mut(&order)

			if len(order.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}{
		{domain.OrderStatusPending, domain.OrderStatusShipped, true},
		{domain.OrderStatusShipped, domain.OrderStatusDelivered, true},
		{domain.OrderStatusPending, domain.OrderStatusDelivered, false},
		{domain.OrderStatusShipped, domain.OrderStatusPending, false},
		{domain.OrderStatusDelivered, domain.OrderStatusPending, false},
		{domain.OrderStatusDelivered, domain.OrderStatusShipped, false},
		{domain.OrderStatusPending, domain.OrderStatusPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestOrderClone_Independent(t *testing.T) {
	order := makeOrder()
	cp := order.Clone()

	cp.Items[0].Quantity = 99
	cp.Items[0].Title = "changed"

	if order.Items[0].Quantity != 2 || order.Items[0].Title != "Widget" {
		t.Fatalf("clone mutation leaked into the original order: %+v", order.Items[0])
	}
}
