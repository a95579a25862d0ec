package domain

import "github.com/shopspring/decimal"

// CartItem — позиция корзины: товар плюс количество.
// Уникальна по Product.ID в пределах корзины; Quantity никогда не меньше 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal возвращает стоимость позиции: цена × количество.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Clone возвращает независимую копию позиции.
func (i CartItem) Clone() CartItem {
	return CartItem{Product: i.Product.Clone(), Quantity: i.Quantity}
}

// CloneCart возвращает глубокую копию корзины.
func CloneCart(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	result := make([]CartItem, 0, len(items))
	for _, item := range items {
		result = append(result, item.Clone())
	}
	return result
}

// CartTotal суммирует стоимость всех позиций корзины.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
