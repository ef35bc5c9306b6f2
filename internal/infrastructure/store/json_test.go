package store

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/seedcatalog/backend/internal/domain"
)

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()

	products := []domain.Product{
		{
			Title:      "Kale, Red Russian",
			CommonName: "Kale",
			Supplier:   "sprouting",
			Variations: []domain.Variation{
				{Size: "500 grams", Price: 11.50, IsVariationInStock: true, SKU: "N/A"},
			},
		},
		{Title: "Arugula", CommonName: "Arugula", Supplier: "sprouting"},
	}

	path, err := SaveSnapshot(dir, "sprouting.com", "CAD", 90*time.Second, products)
	if err != nil {
		t.Fatalf("SaveSnapshot error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("snapshot written to %s, want under %s", path, dir)
	}
	if !strings.HasSuffix(path, ".json") {
		t.Errorf("snapshot path %s, want .json suffix", path)
	}

	snapshot, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot error: %v", err)
	}

	if snapshot.SourceSite != "sprouting.com" {
		t.Errorf("SourceSite = %q, want sprouting.com", snapshot.SourceSite)
	}
	if snapshot.CurrencyCode != "CAD" {
		t.Errorf("CurrencyCode = %q, want CAD", snapshot.CurrencyCode)
	}
	if snapshot.ProductCount != 2 {
		t.Errorf("ProductCount = %d, want 2", snapshot.ProductCount)
	}
	if snapshot.ScrapeDurationSeconds != 90 {
		t.Errorf("ScrapeDurationSeconds = %v, want 90", snapshot.ScrapeDurationSeconds)
	}
	if len(snapshot.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(snapshot.Data))
	}
	if snapshot.Data[0].Title != "Kale, Red Russian" {
		t.Errorf("Data[0].Title = %q, want Kale, Red Russian", snapshot.Data[0].Title)
	}
	if len(snapshot.Data[0].Variations) != 1 {
		t.Errorf("Data[0] has %d variations, want 1", len(snapshot.Data[0].Variations))
	}
}

func TestSaveSnapshotCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "json_files")
	if _, err := SaveSnapshot(dir, "test", "CAD", 0, nil); err != nil {
		t.Fatalf("SaveSnapshot error: %v", err)
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadSnapshot = nil error, want error for missing file")
	}
}
