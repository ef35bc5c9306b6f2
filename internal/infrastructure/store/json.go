package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/seedcatalog/backend/internal/domain"
)

// Snapshot is the on-disk JSON shape for one scrape run.
type Snapshot struct {
	Timestamp             time.Time        `json:"timestamp"`
	ScrapeDurationSeconds float64          `json:"scrape_duration_seconds"`
	SourceSite            string           `json:"source_site"`
	CurrencyCode          string           `json:"currency_code"`
	ProductCount          int              `json:"product_count"`
	Data                  []domain.Product `json:"data"`
}

// SaveSnapshot writes normalized products to a timestamped JSON file under
// dir and returns the file path.
func SaveSnapshot(dir, sourceSite, currencyCode string, scrapeDuration time.Duration, products []domain.Product) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating snapshot dir: %w", err)
	}

	now := time.Now()
	path := filepath.Join(dir, now.Format("20060102_150405")+".json")

	snapshot := Snapshot{
		Timestamp:             now,
		ScrapeDurationSeconds: float64(int(scrapeDuration.Seconds()*100)) / 100,
		SourceSite:            sourceSite,
		CurrencyCode:          currencyCode,
		ProductCount:          len(products),
		Data:                  products,
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return path, nil
}

// LoadSnapshot reads a snapshot file written by SaveSnapshot.
func LoadSnapshot(path string) (*Snapshot, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}
	return &snapshot, nil
}
