package editor

import (
	"fmt"
	"strings"

	"github.com/ChintyaPuja/technical/internal/catalog"
	"github.com/ChintyaPuja/technical/internal/models"
	"github.com/shopspring/decimal"
)

// Form carries the raw text a user entered for a product.
// A non-zero ID marks the submission as an update of that product.
type Form struct {
	ID       int64
	Name     string
	Price    string
	Category string
}

// FormFor pre-populates a form from an existing product
func FormFor(p models.Product) Form {
	return Form{
		ID:       p.ID,
		Name:     p.Name,
		Price:    decimal.NewFromFloat(p.Price).String(),
		Category: p.Category,
	}
}

// Draft parses the form fields. A blank price counts as zero.
func (f Form) Draft() (models.Draft, error) {
	price, err := ParsePrice(f.Price)
	if err != nil {
		return models.Draft{}, err
	}
	return models.Draft{
		Name:     f.Name,
		Price:    price,
		Category: f.Category,
	}, nil
}

// ParsePrice converts user input into a price
func ParsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", catalog.ErrInvalidPrice, raw)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", catalog.ErrInvalidPrice, raw)
	}
	return d.InexactFloat64(), nil
}
