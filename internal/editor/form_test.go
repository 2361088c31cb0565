package editor

import (
	"errors"
	"testing"

	"github.com/ChintyaPuja/technical/internal/catalog"
	"github.com/ChintyaPuja/technical/internal/models"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		wantErr  bool
	}{
		{"blank", "", 0, false},
		{"spaces", "   ", 0, false},
		{"integer", "3", 3, false},
		{"decimal", "1.5", 1.5, false},
		{"zero", "0", 0, false},
		{"padded", " 2.25 ", 2.25, false},
		{"negative", "-1", 0, true},
		{"letters", "abc", 0, true},
		{"trailing junk", "1.5x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, catalog.ErrInvalidPrice) {
					t.Errorf("ParsePrice(%q) expected ErrInvalidPrice, got %v", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePrice(%q) failed: %v", tt.raw, err)
			}
			if got != tt.expected {
				t.Errorf("ParsePrice(%q) = %v, expected %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestFormFor(t *testing.T) {
	form := FormFor(models.Product{ID: 9, Name: "Pen", Price: 1.5, Category: "Stationery"})

	if form.ID != 9 || form.Name != "Pen" || form.Category != "Stationery" {
		t.Errorf("Unexpected form %+v", form)
	}
	if form.Price != "1.5" {
		t.Errorf("Expected price '1.5', got '%s'", form.Price)
	}

	draft, err := form.Draft()
	if err != nil {
		t.Fatalf("Draft failed: %v", err)
	}
	if draft.Price != 1.5 {
		t.Errorf("Expected round-tripped price 1.5, got %v", draft.Price)
	}
}
