package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus описывает жизненный цикл размещённого заказа.
type OrderStatus string

const (
	// OrderStatusPending — заказ размещён и ожидает отправки.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered — заказ доставлен; терминальный статус.
	OrderStatusDelivered OrderStatus = "delivered"
)

// Valid проверяет, что значение статуса входит в перечисление.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// CanTransitionTo разрешает только движение вперёд:
// pending → shipped → delivered. Из delivered выхода нет.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusShipped
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	}
	return false
}

// Order — размещённый заказ. Items и Address — снимки на момент размещения,
// последующие мутации корзины и адресной книги их не затрагивают.
type Order struct {
	ID       string          `json:"id"`
	Items    []CartItem      `json:"items"`
	Total    decimal.Decimal `json:"total"`
	Address  Address         `json:"address"`
	Status   OrderStatus     `json:"status"`
	PlacedAt time.Time       `json:"placed_at"`
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if len(o.Items) == 0 {
		errs = append(errs, ErrOrderItemsRequired)
	}
	if o.Total.IsNegative() {
		errs = append(errs, ErrOrderTotalNegative)
	}
	if !o.Status.Valid() {
		errs = append(errs, ErrOrderStatusUnknown)
	}
	if o.Address.ID == "" {
		errs = append(errs, ErrOrderAddressRequired)
	}

	// Сверяем итог заказа с суммой позиций: цена × количество.
	calc := decimal.Zero
	for _, item := range o.Items {
		if item.Quantity < 1 {
			errs = append(errs, ErrItemQuantityInvalid)
		}
		if item.Price.IsNegative() {
			errs = append(errs, ErrItemPriceInvalid)
		}
		calc = calc.Add(item.Subtotal())
	}
	if !calc.Equal(o.Total) {
		errs = append(errs, ErrOrderTotalMismatch)
	}

	return errs
}

// Clone возвращает глубокую копию заказа.
func (o Order) Clone() Order {
	cp := o
	cp.Items = CloneCart(o.Items)
	return cp
}

// CloneOrders возвращает глубокую копию списка заказов.
func CloneOrders(orders []Order) []Order {
	if orders == nil {
		return nil
	}
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.Clone())
	}
	return result
}
