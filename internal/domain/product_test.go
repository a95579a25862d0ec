package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestProductInStock(t *testing.T) {
	cases := []struct {
		name    string
		stock   *int
		inStock bool
	}{
		{name: "unknown stock", stock: nil, inStock: true},
		{name: "zero stock", stock: intPtr(0), inStock: false},
		{name: "positive stock", stock: intPtr(7), inStock: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.Product{ID: 1, Stock: tc.stock}
			if got := p.InStock(); got != tc.inStock {
				t.Fatalf("expected InStock=%v, got %v", tc.inStock, got)
			}
		})
	}
}

func TestProductClone_StockIndependent(t *testing.T) {
	p := domain.Product{ID: 1, Title: "Widget", Stock: intPtr(3)}
	cp := p.Clone()

	*cp.Stock = 0
	if *p.Stock != 3 {
		t.Fatalf("clone shares stock pointer with the original")
	}
}

func TestCartTotal(t *testing.T) {
	items := []domain.CartItem{
		{Product: domain.Product{ID: 1, Price: decimal.NewFromFloat(10.00)}, Quantity: 2},
		{Product: domain.Product{ID: 2, Price: decimal.NewFromFloat(5.50)}, Quantity: 1},
	}

	total := domain.CartTotal(items)
	if !total.Equal(decimal.NewFromFloat(25.50)) {
		t.Fatalf("expected total 25.50, got %s", total)
	}
}

func TestAddressValidate(t *testing.T) {
	valid := domain.Address{Name: "Ann", Street: "Main St 1", City: "Springfield"}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors for valid address, got %v", errs)
	}

	empty := domain.Address{}
	if errs := empty.Validate(); len(errs) != 3 {
		t.Fatalf("expected 3 errors for empty address, got %v", errs)
	}
}
