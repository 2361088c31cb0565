// Package technical exposes the product catalog for use outside the CLI.
package technical

import (
	"log/slog"

	"github.com/ChintyaPuja/technical/internal/catalog"
	"github.com/ChintyaPuja/technical/internal/editor"
	"github.com/ChintyaPuja/technical/internal/idgen"
	"github.com/ChintyaPuja/technical/internal/kvstore"
	"github.com/ChintyaPuja/technical/internal/models"
	"github.com/ChintyaPuja/technical/internal/storage"
	"github.com/ChintyaPuja/technical/internal/view"
)

// Product is a single catalog entry
type Product = models.Product

// Draft holds product fields before an id is assigned
type Draft = models.Draft

// Store is the key-value backend the catalog persists into
type Store = kvstore.Store

// Adapter reads and writes the whole product collection
type Adapter = storage.Adapter

// Catalog is the in-memory mirror of the stored collection
type Catalog = catalog.Catalog

// Session holds search, paging, selection and edit state
type Session = editor.Session

// Form is raw user input for a product
type Form = editor.Form

// DefaultPageSize is the number of rows per page
const DefaultPageSize = view.DefaultPageSize

// OpenStore opens the key-value store selected by databaseURL
func OpenStore(databaseURL string) (Store, error) {
	return kvstore.Open(databaseURL, kvstore.DefaultTable, false)
}

// NewMemoryStore returns an in-memory store, useful for tests
func NewMemoryStore() Store {
	return kvstore.NewMemoryStore()
}

// NewAdapter creates the storage adapter writing under key
func NewAdapter(store Store, key string, logger *slog.Logger) Adapter {
	return storage.New(store, key, logger)
}

// NewCatalog creates a catalog over adapter and loads it
func NewCatalog(adapter Adapter, logger *slog.Logger) (*Catalog, error) {
	c := catalog.New(adapter, idgen.New(), logger)
	if err := c.Load(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewSession creates an editing session over c
func NewSession(c *Catalog, pageSize int) *Session {
	return editor.New(c, pageSize)
}

// Filter keeps products whose name or category contains query, ignoring case
func Filter(products []Product, query string) []Product {
	return view.Filter(products, query)
}

// Paginate returns the 1-indexed page of the given size
func Paginate(products []Product, page, size int) []Product {
	return view.Paginate(products, page, size)
}
