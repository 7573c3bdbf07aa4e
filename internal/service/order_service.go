package service

import (
	"context"
	"encoding/json"
	"fmt"

	"mk-store/internal/schema"
	"mk-store/internal/store"
)

// OrderService exposes order operations. Orders are created and listed,
// never updated.
type OrderService interface {
	CreateOrder(ctx context.Context, o *schema.Order) (string, error)
	ListOrders(ctx context.Context) ([]schema.StoredOrder, error)
}

type orderService struct {
	store store.Store
}

// NewOrderService creates a new OrderService backed by the given store.
func NewOrderService(st store.Store) OrderService {
	return &orderService{store: st}
}

// CreateOrder persists a validated order and returns its new
// identifier. The order total is stored exactly as submitted; it is not
// recomputed from the items.
func (s *orderService) CreateOrder(ctx context.Context, o *schema.Order) (string, error) {
	o.ApplyDefaults()

	id, err := s.store.Insert(ctx, schema.CollectionOrder, o)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// ListOrders returns all orders in store-native order.
func (s *orderService) ListOrders(ctx context.Context) ([]schema.StoredOrder, error) {
	docs, err := s.store.List(ctx, schema.CollectionOrder, nil)
	if err != nil {
		return nil, err
	}

	orders := []schema.StoredOrder{}
	for _, doc := range docs {
		var o schema.Order
		if err := json.Unmarshal(doc.Data, &o); err != nil {
			return nil, fmt.Errorf("failed to decode order %s: %w", doc.ID, err)
		}
		if err := schema.Validate(&o); err != nil {
			return nil, fmt.Errorf("stored order %s is invalid: %w", doc.ID, err)
		}
		orders = append(orders, schema.StoredOrder{ID: doc.ID.String(), Order: o})
	}

	return orders, nil
}
