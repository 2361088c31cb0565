package view

import (
	"fmt"
	"math"
	"testing"

	"github.com/ChintyaPuja/technical/internal/models"
)

func makeProducts(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{
			ID:       int64(i + 1),
			Name:     fmt.Sprintf("Item %d", i+1),
			Price:    float64(i),
			Category: "General",
		}
	}
	return products
}

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Pen", Price: 1.5, Category: "Stationery"},
		{ID: 2, Name: "Coffee Mug", Price: 7, Category: "Kitchen"},
		{ID: 3, Name: "Notebook", Price: 3, Category: "Stationery"},
		{ID: 4, Name: "ABC Blocks", Price: 12, Category: "Toys"},
		{ID: 5, Name: "Kettle", Price: 25, Category: "kitchen appliances"},
	}
}

func ids(products []models.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []int64
	}{
		{"empty query returns all", "", []int64{1, 2, 3, 4, 5}},
		{"matches name", "pen", []int64{1}},
		{"matches category", "stationery", []int64{1, 3}},
		{"case-insensitive category", "KITCHEN", []int64{2, 5}},
		{"substring of name", "book", []int64{3}},
		{"no match", "garden", []int64{}},
		{"upper-case query", "ABC", []int64{4}},
		{"lower-case query", "abc", []int64{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(catalogFixture(), tt.query))
			if !equalIDs(got, tt.expected) {
				t.Errorf("Filter(%q) = %v, expected %v", tt.query, got, tt.expected)
			}
		})
	}
}

func TestFilterEmptyQueryPreservesOrder(t *testing.T) {
	products := catalogFixture()
	got := Filter(products, "")
	if !equalIDs(ids(got), ids(products)) {
		t.Errorf("Filter with empty query changed the collection: %v", ids(got))
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	products := catalogFixture()
	upper := ids(Filter(products, "ABC"))
	lower := ids(Filter(products, "abc"))
	if !equalIDs(upper, lower) {
		t.Errorf("Expected identical results, got %v and %v", upper, lower)
	}
}

func TestPaginate(t *testing.T) {
	products := makeProducts(20)

	tests := []struct {
		name     string
		page     int
		size     int
		expected []int64
	}{
		{"first page", 1, 8, []int64{1, 2, 3, 4, 5, 6, 7, 8}},
		{"second page", 2, 8, []int64{9, 10, 11, 12, 13, 14, 15, 16}},
		{"last partial page", 3, 8, []int64{17, 18, 19, 20}},
		{"past the end", 4, 8, []int64{}},
		{"page zero", 0, 8, []int64{}},
		{"negative page", -1, 8, []int64{}},
		{"zero size", 1, 0, []int64{}},
		{"size larger than collection", 1, 50, ids(products)},
		{"huge page does not wrap", (1 << 61) + 1, 8, []int64{}},
		{"huge page does not panic", (1 << 62) + 1, 3, []int64{}},
		{"max page", math.MaxInt, 8, []int64{}},
		{"max size", 1, math.MaxInt, ids(products)},
		{"max size second page", 2, math.MaxInt, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Paginate(products, tt.page, tt.size))
			if !equalIDs(got, tt.expected) {
				t.Errorf("Paginate(page=%d, size=%d) = %v, expected %v", tt.page, tt.size, got, tt.expected)
			}
		})
	}
}

func TestPaginateIsPartition(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 16, 17, 63} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			products := makeProducts(n)
			pages := PageCount(n, DefaultPageSize)

			var rebuilt []int64
			for p := 1; p <= pages; p++ {
				page := Paginate(products, p, DefaultPageSize)
				if len(page) == 0 || len(page) > DefaultPageSize {
					t.Fatalf("Page %d has %d items", p, len(page))
				}
				rebuilt = append(rebuilt, ids(page)...)
			}

			if rebuilt == nil {
				rebuilt = []int64{}
			}
			if !equalIDs(rebuilt, ids(products)) {
				t.Errorf("Pages do not reconstruct the collection: %v", rebuilt)
			}
		})
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		count, size, expected int
	}{
		{0, 8, 0},
		{1, 8, 1},
		{8, 8, 1},
		{9, 8, 2},
		{16, 8, 2},
		{17, 8, 3},
		{5, 0, 0},
		{5, math.MaxInt, 1},
		{math.MaxInt, math.MaxInt, 1},
		{math.MaxInt, 2, math.MaxInt/2 + 1},
	}

	for _, tt := range tests {
		if got := PageCount(tt.count, tt.size); got != tt.expected {
			t.Errorf("PageCount(%d, %d) = %d, expected %d", tt.count, tt.size, got, tt.expected)
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, total, expected int
	}{
		{1, 3, 1},
		{2, 3, 2},
		{5, 3, 3},
		{0, 3, 1},
		{-4, 3, 1},
		{1, 0, 1},
		{3, 0, 1},
	}

	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.total); got != tt.expected {
			t.Errorf("ClampPage(%d, %d) = %d, expected %d", tt.page, tt.total, got, tt.expected)
		}
	}
}
