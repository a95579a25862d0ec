package domain

import "github.com/shopspring/decimal"

// Rating — агрегированная оценка товара из каталога.
type Rating struct {
	// Rate — средняя оценка в диапазоне 0–5.
	Rate float64 `json:"rate"`
	// Count — количество оценок.
	Count int `json:"count"`
}

// Product описывает товар каталога. Запись read-only: каталог живёт во
// внешнем сервисе, Store получает уже разрешённые значения от вызывающей стороны.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
	// Stock == nil означает "неизвестно/не ограничено"; 0 — товара нет в наличии.
	Stock *int `json:"stock,omitempty"`
}

// InStock сообщает, можно ли добавлять товар в корзину или wishlist.
func (p Product) InStock() bool {
	return p.Stock == nil || *p.Stock != 0
}

// Clone возвращает независимую копию товара.
func (p Product) Clone() Product {
	cp := p
	if p.Stock != nil {
		stock := *p.Stock
		cp.Stock = &stock
	}
	return cp
}

// CloneProducts возвращает глубокую копию списка товаров (wishlist).
func CloneProducts(products []Product) []Product {
	if products == nil {
		return nil
	}
	result := make([]Product, 0, len(products))
	for _, p := range products {
		result = append(result, p.Clone())
	}
	return result
}
