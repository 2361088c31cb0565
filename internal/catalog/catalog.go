package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/ChintyaPuja/technical/internal/idgen"
	"github.com/ChintyaPuja/technical/internal/models"
	"github.com/ChintyaPuja/technical/internal/storage"
)

var (
	ErrInvalidProduct = errors.New("invalid product")
	ErrNameRequired   = fmt.Errorf("%w: name is required", ErrInvalidProduct)
	ErrInvalidPrice   = fmt.Errorf("%w: price must be a non-negative number", ErrInvalidProduct)
)

// Catalog is the in-memory mirror of the persisted collection.
// Storage is the source of truth: every mutation is written through the
// adapter and the mirror is then reloaded from it.
type Catalog struct {
	adapter  storage.Adapter
	ids      *idgen.Generator
	logger   *slog.Logger
	products []models.Product
	loaded   bool
}

// New creates a catalog. Call Load before reading.
func New(adapter storage.Adapter, ids *idgen.Generator, logger *slog.Logger) *Catalog {
	if ids == nil {
		ids = idgen.New()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{
		adapter:  adapter,
		ids:      ids,
		logger:   logger.With("component", "catalog"),
		products: []models.Product{},
	}
}

// Load re-derives the mirror from storage
func (c *Catalog) Load() error {
	products, err := c.adapter.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	for _, p := range products {
		c.ids.Observe(p.ID)
	}
	c.products = products
	c.loaded = true
	return nil
}

func (c *Catalog) ensureLoaded() error {
	if c.loaded {
		return nil
	}
	return c.Load()
}

// Products returns a copy of the current collection in stored order
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the mirror
func (c *Catalog) Len() int {
	return len(c.products)
}

// Get returns the product with the given id from the mirror
func (c *Catalog) Get(id int64) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Add stores a new product under a fresh id and returns it
func (c *Catalog) Add(draft models.Draft) (models.Product, error) {
	if err := c.ensureLoaded(); err != nil {
		return models.Product{}, err
	}

	product := normalize(draft.WithID(c.ids.Next()))
	if err := Validate(product); err != nil {
		return models.Product{}, err
	}

	if err := c.adapter.Upsert(product); err != nil {
		return models.Product{}, fmt.Errorf("failed to add product: %w", err)
	}
	c.logger.Info("product added", "id", product.ID, "name", product.Name)

	return product, c.Load()
}

// Update replaces the stored product with the same id.
// An id that is not stored yet is appended.
func (c *Catalog) Update(product models.Product) error {
	if err := c.ensureLoaded(); err != nil {
		return err
	}

	product = normalize(product)
	if err := Validate(product); err != nil {
		return err
	}

	if err := c.adapter.Upsert(product); err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	c.ids.Observe(product.ID)
	c.logger.Info("product updated", "id", product.ID)

	return c.Load()
}

// Delete removes the products with the given ids. Unknown ids are ignored.
func (c *Catalog) Delete(ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}

	if err := c.adapter.RemoveByIDs(ids...); err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}
	c.logger.Info("products deleted", "ids", ids)

	return c.Load()
}

// Clear removes the whole persisted collection
func (c *Catalog) Clear() error {
	if err := c.adapter.Clear(); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}
	c.logger.Info("catalog cleared")

	return c.Load()
}

// Validate performs the required-field checks on a product
func Validate(p models.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

func normalize(p models.Product) models.Product {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	return p
}
