package storage

import (
	"fmt"
	"log/slog"

	"github.com/ChintyaPuja/technical/internal/kvstore"
	"github.com/ChintyaPuja/technical/internal/models"
	"github.com/goccy/go-json"
)

// DefaultKey is the key holding the product collection
const DefaultKey = "products"

// Adapter persists the whole product collection as one unit.
// It is the only component allowed to write the collection.
type Adapter interface {
	LoadAll() ([]models.Product, error)
	SaveAll(products []models.Product) error
	Upsert(product models.Product) error
	RemoveByID(id int64) error
	RemoveByIDs(ids ...int64) error
	Clear() error
}

// KVAdapter stores the collection as a JSON array under a single key
type KVAdapter struct {
	store  kvstore.Store
	key    string
	logger *slog.Logger
}

// New creates an adapter over store. An empty key falls back to DefaultKey.
func New(store kvstore.Store, key string, logger *slog.Logger) *KVAdapter {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &KVAdapter{
		store:  store,
		key:    key,
		logger: logger.With("component", "storage", "key", key),
	}
}

// Key returns the storage key the adapter writes to
func (a *KVAdapter) Key() string {
	return a.key
}

// LoadAll returns the persisted collection.
// Absent, empty, or malformed data yields an empty collection, not an error;
// only a failing backend is reported.
func (a *KVAdapter) LoadAll() ([]models.Product, error) {
	raw, found, err := a.store.Get(a.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	if !found || raw == "" {
		a.logger.Debug("no stored collection")
		return []models.Product{}, nil
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		a.logger.Warn("stored collection is malformed, treating as empty", "error", err)
		return []models.Product{}, nil
	}
	if products == nil {
		products = []models.Product{}
	}

	a.logger.Debug("loaded collection", "count", len(products))
	return products, nil
}

// SaveAll overwrites the persisted collection
func (a *KVAdapter) SaveAll(products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}

	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}
	if err := a.store.Set(a.key, string(data)); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}

	a.logger.Debug("saved collection", "count", len(products))
	return nil
}

// Upsert replaces the entry with a matching id, or appends the product
func (a *KVAdapter) Upsert(product models.Product) error {
	products, err := a.LoadAll()
	if err != nil {
		return err
	}

	replaced := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, product)
	}

	if err := a.SaveAll(products); err != nil {
		return err
	}
	a.logger.Info("upserted product", "id", product.ID, "replaced", replaced)
	return nil
}

// RemoveByID drops the entry with the given id. A missing id is a no-op.
func (a *KVAdapter) RemoveByID(id int64) error {
	return a.RemoveByIDs(id)
}

// RemoveByIDs drops every entry whose id is listed, in one load and save
func (a *KVAdapter) RemoveByIDs(ids ...int64) error {
	products, err := a.LoadAll()
	if err != nil {
		return err
	}

	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := make([]models.Product, 0, len(products))
	for _, p := range products {
		if _, ok := drop[p.ID]; ok {
			continue
		}
		kept = append(kept, p)
	}

	if err := a.SaveAll(kept); err != nil {
		return err
	}
	a.logger.Info("removed products", "requested", len(ids), "removed", len(products)-len(kept))
	return nil
}

// Find returns the persisted product with the given id
func (a *KVAdapter) Find(id int64) (models.Product, bool, error) {
	products, err := a.LoadAll()
	if err != nil {
		return models.Product{}, false, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return models.Product{}, false, nil
}

// Clear removes the collection key entirely
func (a *KVAdapter) Clear() error {
	if err := a.store.Remove(a.key); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}
	a.logger.Info("cleared collection")
	return nil
}
