package models

// Product is a single catalog entry.
// The JSON shape is the persisted layout and must stay stable.
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Draft holds the editable fields of a product before an id is assigned
type Draft struct {
	Name     string
	Price    float64
	Category string
}

// WithID turns a draft into a product carrying the given id
func (d Draft) WithID(id int64) Product {
	return Product{
		ID:       id,
		Name:     d.Name,
		Price:    d.Price,
		Category: d.Category,
	}
}
