package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"mk-store/internal/schema"
	"mk-store/internal/store"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

// SeedResult reports the outcome of a seed request.
type SeedResult struct {
	Seeded  bool     `json:"seeded"`
	Message string   `json:"message,omitempty"`
	Count   int      `json:"count,omitempty"`
	IDs     []string `json:"ids,omitempty"`
}

// CatalogService exposes product catalog operations.
type CatalogService interface {
	ListProducts(ctx context.Context, category, q string) ([]schema.StoredProduct, error)
	CreateProduct(ctx context.Context, p *schema.Product) (string, error)
	GetProduct(ctx context.Context, id string) (*schema.StoredProduct, error)
	Seed(ctx context.Context) (*SeedResult, error)
}

type catalogService struct {
	store store.Store
}

// NewCatalogService creates a new CatalogService backed by the given store.
func NewCatalogService(st store.Store) CatalogService {
	return &catalogService{store: st}
}

// ListProducts returns catalog entries, optionally filtered. The
// category filter is an exact match pushed down to the store; the q
// filter is a case-insensitive substring test against title and
// description, applied here after retrieval. When both are given a
// product must match both.
func (s *catalogService) ListProducts(ctx context.Context, category, q string) ([]schema.StoredProduct, error) {
	filter := map[string]string{}
	if category != "" {
		filter["category"] = category
	}

	docs, err := s.store.List(ctx, schema.CollectionProduct, filter)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(q)

	products := []schema.StoredProduct{}
	for _, doc := range docs {
		p, err := decodeProduct(doc)
		if err != nil {
			return nil, err
		}
		if q != "" {
			haystack := strings.ToLower(p.Title + " " + p.Description)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		products = append(products, *p)
	}

	return products, nil
}

// CreateProduct persists a validated product and returns its new
// identifier.
func (s *catalogService) CreateProduct(ctx context.Context, p *schema.Product) (string, error) {
	p.ApplyDefaults()

	id, err := s.store.Insert(ctx, schema.CollectionProduct, p)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// GetProduct looks up a single product by its external string
// identifier. An identifier that does not parse as a store-native id
// cannot have been issued by the store, so it is reported as not found.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*schema.StoredProduct, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	doc, err := s.store.FindByID(ctx, schema.CollectionProduct, uid)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return decodeProduct(doc)
}

// Seed inserts the sample products unless the collection already has
// documents. The inserts are independent; a failure partway through
// leaves a partial seed.
func (s *catalogService) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.store.Count(ctx, schema.CollectionProduct)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		return &SeedResult{Seeded: false, Message: "Products already exist"}, nil
	}

	ids := []string{}
	for _, p := range sampleProducts() {
		p.ApplyDefaults()
		id, err := s.store.Insert(ctx, schema.CollectionProduct, &p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id.String())
	}

	return &SeedResult{Seeded: true, Count: len(ids), IDs: ids}, nil
}

// decodeProduct turns a stored document into a client-facing product:
// the payload is decoded, re-validated, and the store identifier is
// attached as the id field.
func decodeProduct(doc store.Document) (*schema.StoredProduct, error) {
	var p schema.Product
	if err := json.Unmarshal(doc.Data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode product %s: %w", doc.ID, err)
	}
	if err := schema.Validate(&p); err != nil {
		return nil, fmt.Errorf("stored product %s is invalid: %w", doc.ID, err)
	}
	return &schema.StoredProduct{ID: doc.ID.String(), Product: p}, nil
}

func sampleProducts() []schema.Product {
	price := func(v float64) *float64 { return &v }
	inStock := true

	return []schema.Product{
		{
			Title:       "MK Classic Tee",
			Description: "Soft cotton tee with classic MK logo.",
			Price:       price(24.99),
			Category:    "T-Shirts",
			InStock:     &inStock,
			Image:       "https://images.unsplash.com/photo-1520975930498-0d7d5121f9de?q=80&w=1200&auto=format&fit=crop",
			Sizes:       []string{"S", "M", "L", "XL"},
			Brand:       "MK",
		},
		{
			Title:       "MK Denim Jacket",
			Description: "Premium denim with modern fit.",
			Price:       price(79.99),
			Category:    "Jackets",
			InStock:     &inStock,
			Image:       "https://images.unsplash.com/photo-1520975661595-6453be3f7070?q=80&w=1200&auto=format&fit=crop",
			Sizes:       []string{"S", "M", "L"},
			Brand:       "MK",
		},
		{
			Title:       "MK Joggers",
			Description: "Ultra comfy fleece joggers.",
			Price:       price(44.5),
			Category:    "Pants",
			InStock:     &inStock,
			Image:       "https://images.unsplash.com/photo-1520975916090-3105956dac38?q=80&w=1200&auto=format&fit=crop",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Brand:       "MK",
		},
	}
}
