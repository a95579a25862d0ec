package domain

import "errors"

var (
	// ErrOutOfStock — попытка добавить товар с нулевым остатком.
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrCheckoutPrecondition — оформление без адреса или с пустой корзиной.
	ErrCheckoutPrecondition = errors.New("address and non-empty cart are required to place an order")
	// ErrInvalidStatusTransition — запрошенный переход статуса запрещён.
	ErrInvalidStatusTransition = errors.New("order status transition is not allowed")
	// ErrOrderNotFound возвращается, если заказ не найден.
	ErrOrderNotFound = errors.New("order not found")
	// ErrAddressInvalid — адрес не прошёл проверку обязательных полей.
	ErrAddressInvalid = errors.New("address is invalid")
	// Ошибка отсутствующего имени получателя в адресе.
	ErrAddressNameRequired = errors.New("address name is required")
	// Ошибка отсутствующей улицы в адресе.
	ErrAddressStreetRequired = errors.New("address street is required")
	// Ошибка отсутствующего города в адресе.
	ErrAddressCityRequired = errors.New("address city is required")
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrOrderItemsRequired = errors.New("order must contain at least one item")
	// Ошибка отрицательного итога заказа.
	ErrOrderTotalNegative = errors.New("order total must be non-negative")
	// Ошибка несоответствия итога заказа и сумм позиций.
	ErrOrderTotalMismatch = errors.New("order total does not match items sum")
	// Ошибка неизвестного значения статуса.
	ErrOrderStatusUnknown = errors.New("order status is unknown")
	// Ошибка отсутствующего снимка адреса в заказе.
	ErrOrderAddressRequired = errors.New("order address is required")
	// Ошибка при некорректном количестве товара (< 1).
	ErrItemQuantityInvalid = errors.New("item quantity must be at least one")
	// Ошибка, если цена позиции отрицательная.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
)

// IsNotFound проверяет, является ли ошибка отсутствием заказа.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound)
}
