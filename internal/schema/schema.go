// Package schema defines the record types stored in the document store
// and their validation rules. Each type maps to a collection named after
// the lowercased type name.
package schema

import (
	"github.com/go-playground/validator/v10"
)

// Collection names, one per record type.
const (
	CollectionProduct = "product"
	CollectionOrder   = "order"
	CollectionUser    = "user"
)

// Product is a catalog entry.
//
// Price is a pointer so that an explicit zero price passes the required
// check; the same applies to the other pointer fields with defaults.
type Product struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	InStock     *bool    `json:"in_stock,omitempty"`
	Image       string   `json:"image,omitempty"`
	Images      []string `json:"images,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Brand       string   `json:"brand,omitempty"`
}

// ApplyDefaults materializes default values so stored documents carry
// them explicitly.
func (p *Product) ApplyDefaults() {
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
	if p.Brand == "" {
		p.Brand = "MK"
	}
}

// OrderItem captures a price/title snapshot at order time. ProductID is
// an advisory reference; no existence check is performed against the
// product collection.
type OrderItem struct {
	ProductID string   `json:"product_id" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Quantity  int      `json:"quantity" validate:"required,gte=1"`
	Size      string   `json:"size,omitempty"`
	Image     string   `json:"image,omitempty"`
}

type CustomerInfo struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// Order is a customer order. Total is caller-supplied and never checked
// against the sum of item prices. An empty items list is structurally
// valid.
type Order struct {
	Items    []OrderItem  `json:"items" validate:"dive"`
	Customer CustomerInfo `json:"customer"`
	Total    *float64     `json:"total" validate:"required,gte=0"`
	Status   string       `json:"status,omitempty"`
}

func (o *Order) ApplyDefaults() {
	if o.Status == "" {
		o.Status = "pending"
	}
}

// User is defined for completeness; no endpoint exposes it.
type User struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"required"`
	Age      *int   `json:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (u *User) ApplyDefaults() {
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}

// StoredProduct is a Product as returned to clients, with the
// store-assigned identifier attached.
type StoredProduct struct {
	ID string `json:"id"`
	Product
}

// StoredOrder is an Order as returned to clients, with the
// store-assigned identifier attached.
type StoredOrder struct {
	ID string `json:"id"`
	Order
}

var validate = validator.New()

// Validate checks a record against its field constraints. Records
// decoded from storage are validated again with this before being
// returned to callers.
func Validate(v any) error {
	return validate.Struct(v)
}
