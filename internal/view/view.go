package view

import (
	"strings"

	"github.com/ChintyaPuja/technical/internal/models"
)

// DefaultPageSize is the number of rows shown per page
const DefaultPageSize = 8

// Filter keeps products whose name or category contains query, ignoring case.
// An empty query returns the collection unchanged.
func Filter(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}

	q := strings.ToLower(query)
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q) {
			result = append(result, p)
		}
	}
	return result
}

// Paginate returns the 1-indexed page of the given size.
// It does not clamp: pages outside the collection come back empty.
func Paginate(products []models.Product, page, size int) []models.Product {
	if page < 1 || size <= 0 {
		return []models.Product{}
	}

	if page-1 >= PageCount(len(products), size) {
		return []models.Product{}
	}
	start := (page - 1) * size
	end := len(products)
	if end-start > size {
		end = start + size
	}
	return products[start:end]
}

// PageCount returns how many pages count items fill
func PageCount(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	pages := count / size
	if count%size != 0 {
		pages++
	}
	return pages
}

// ClampPage keeps page within [1, max(total, 1)]
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
