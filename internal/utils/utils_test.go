package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"  y  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := Confirm(strings.NewReader(tt.input), &out, "Delete 2 products?")
		if got != tt.expected {
			t.Errorf("Confirm(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
		if !strings.Contains(out.String(), "Delete 2 products?") {
			t.Errorf("Prompt not written, got %q", out.String())
		}
	}
}

func TestFprintHelpers(t *testing.T) {
	var out bytes.Buffer
	FprintSuccess(&out, "Added %s", "Pen")
	FprintInfo(&out, "%d product(s)", 3)
	FprintWarning(&out, "No products found")

	text := out.String()
	for _, want := range []string{"✓ Added Pen", "ℹ 3 product(s)", "⚠ No products found"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to contain %q, got %q", want, text)
		}
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")

	if FileExists(path) {
		t.Error("File should not exist yet")
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if !FileExists(path) {
		t.Error("File should exist")
	}
}
