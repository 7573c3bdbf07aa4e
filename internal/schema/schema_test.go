package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func validProduct() *Product {
	return &Product{
		Title:    "MK Classic Tee",
		Price:    floatPtr(24.99),
		Category: "T-Shirts",
	}
}

func validOrder() *Order {
	return &Order{
		Items: []OrderItem{
			{
				ProductID: "abc123",
				Title:     "MK Classic Tee",
				Price:     floatPtr(24.99),
				Quantity:  2,
			},
		},
		Customer: CustomerInfo{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Address: "1 Main St",
		},
		Total: floatPtr(49.98),
	}
}

func TestProductValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Product)
		wantErr bool
	}{
		{"valid minimal product", func(p *Product) {}, false},
		{"zero price is valid", func(p *Product) { p.Price = floatPtr(0) }, false},
		{"missing title", func(p *Product) { p.Title = "" }, true},
		{"missing price", func(p *Product) { p.Price = nil }, true},
		{"negative price", func(p *Product) { p.Price = floatPtr(-1) }, true},
		{"missing category", func(p *Product) { p.Category = "" }, true},
		{"optional fields may be set", func(p *Product) {
			p.Description = "Soft cotton tee"
			p.Image = "https://example.com/tee.jpg"
			p.Images = []string{"https://example.com/tee-2.jpg"}
			p.Sizes = []string{"S", "M", "L"}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(p)

			err := Validate(p)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductDefaults(t *testing.T) {
	p := validProduct()
	p.ApplyDefaults()

	require.NotNil(t, p.InStock)
	assert.True(t, *p.InStock)
	assert.Equal(t, "MK", p.Brand)
}

func TestProductDefaultsDoNotOverrideExplicitValues(t *testing.T) {
	outOfStock := false
	p := validProduct()
	p.InStock = &outOfStock
	p.Brand = "Acme"
	p.ApplyDefaults()

	assert.False(t, *p.InStock)
	assert.Equal(t, "Acme", p.Brand)
}

func TestOrderValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Order)
		wantErr bool
	}{
		{"valid order", func(o *Order) {}, false},
		{"empty items list is structurally valid", func(o *Order) { o.Items = nil }, false},
		{"missing total", func(o *Order) { o.Total = nil }, true},
		{"zero total is valid", func(o *Order) { o.Total = floatPtr(0) }, false},
		{"negative total", func(o *Order) { o.Total = floatPtr(-5) }, true},
		{"total need not match items", func(o *Order) { o.Total = floatPtr(1) }, false},
		{"invalid customer email", func(o *Order) { o.Customer.Email = "not-an-email" }, true},
		{"missing customer address", func(o *Order) { o.Customer.Address = "" }, true},
		{"item quantity zero", func(o *Order) { o.Items[0].Quantity = 0 }, true},
		{"item negative price", func(o *Order) { o.Items[0].Price = floatPtr(-1) }, true},
		{"item missing product reference", func(o *Order) { o.Items[0].ProductID = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOrder()
			tt.mutate(o)

			err := Validate(o)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderDefaults(t *testing.T) {
	o := validOrder()
	o.ApplyDefaults()
	assert.Equal(t, "pending", o.Status)

	o.Status = "shipped"
	o.ApplyDefaults()
	assert.Equal(t, "shipped", o.Status)
}

func TestUserValidation(t *testing.T) {
	valid := func() *User {
		return &User{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Address: "1 Main St",
		}
	}

	t.Run("valid user", func(t *testing.T) {
		assert.NoError(t, Validate(valid()))
	})

	t.Run("age bounds", func(t *testing.T) {
		u := valid()
		u.Age = intPtr(120)
		assert.NoError(t, Validate(u))

		u.Age = intPtr(121)
		assert.Error(t, Validate(u))

		u.Age = intPtr(-1)
		assert.Error(t, Validate(u))
	})

	t.Run("is_active defaults to true", func(t *testing.T) {
		u := valid()
		u.ApplyDefaults()
		require.NotNil(t, u.IsActive)
		assert.True(t, *u.IsActive)
	})
}
