// Package store provides generic document access against named
// collections. Documents live in a single PostgreSQL table with a
// collection discriminator and a JSONB payload; callers are responsible
// for decoding payloads into typed records and for identifier
// normalization.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

var ErrDocumentNotFound = errors.New("document not found")

// Document is a stored record: the store-assigned identifier plus the
// raw JSON payload.
type Document struct {
	ID   uuid.UUID
	Data json.RawMessage
}

// Store defines the primitive operations of the document store.
// Records are inserted and read, never updated or deleted.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (uuid.UUID, error)
	List(ctx context.Context, collection string, filter map[string]string) ([]Document, error)
	FindByID(ctx context.Context, collection string, id uuid.UUID) (Document, error)
	Count(ctx context.Context, collection string) (int, error)
	Collections(ctx context.Context) ([]string, error)
}

type documentStore struct {
	db *sql.DB
}

// New creates a Store backed by the given database handle.
func New(db *sql.DB) Store {
	return &documentStore{db: db}
}

// Insert serializes the record and inserts it with a fresh identifier.
// Single-statement; no transactionality beyond the insert itself.
func (s *documentStore) Insert(ctx context.Context, collection string, doc any) (uuid.UUID, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to serialize document: %w", err)
	}

	id := uuid.New()
	query := `INSERT INTO documents (id, collection, data) VALUES ($1, $2, $3)`

	if _, err := s.db.ExecContext(ctx, query, id, collection, data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert document into %s: %w", collection, err)
	}

	return id, nil
}

// List fetches all documents in a collection matching the optional
// equality filter. Filter keys address top-level fields of the payload
// and are pushed down to the store. Results come back in store-native
// order.
func (s *documentStore) List(ctx context.Context, collection string, filter map[string]string) ([]Document, error) {
	query := `SELECT id, data FROM documents WHERE collection = $1`
	args := []any{collection}

	// Sorted keys keep the generated SQL deterministic.
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		// The ::text cast disambiguates the ->> operator for the
		// untyped key parameter.
		query += fmt.Sprintf(" AND data->>$%d::text = $%d", len(args)+1, len(args)+2)
		args = append(args, k, filter[k])
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents in %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return docs, nil
}

// FindByID performs a point lookup by the store-native identifier.
func (s *documentStore) FindByID(ctx context.Context, collection string, id uuid.UUID) (Document, error) {
	query := `SELECT id, data FROM documents WHERE collection = $1 AND id = $2`

	var doc Document
	err := s.db.QueryRowContext(ctx, query, collection, id).Scan(&doc.ID, &doc.Data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrDocumentNotFound
		}
		return Document{}, fmt.Errorf("failed to find document in %s: %w", collection, err)
	}

	return doc, nil
}

// Count returns the number of documents in a collection.
func (s *documentStore) Count(ctx context.Context, collection string) (int, error) {
	query := `SELECT COUNT(*) FROM documents WHERE collection = $1`

	var count int
	if err := s.db.QueryRowContext(ctx, query, collection).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents in %s: %w", collection, err)
	}

	return count, nil
}

// Collections returns the distinct collection names currently present.
func (s *documentStore) Collections(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT collection FROM documents ORDER BY collection`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan collection name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collections: %w", err)
	}

	return names, nil
}
