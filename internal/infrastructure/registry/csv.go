package registry

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Column headers for the one-column registry files.
const (
	commonNameHeader = "common_name"
	cultivarHeader   = "cultivar_name"
)

// DefaultCommonNames seeds the common-name registry when no CSV exists.
// Covers the microgreen/sprouting seed crops carried by the supported
// suppliers.
var DefaultCommonNames = []string{
	"Alfalfa", "Amaranth", "Arugula", "Barley", "Basil", "Beet", "Bok Choy", "Borage",
	"Broccoli", "Buckwheat", "Cabbage", "Carrot", "Celery", "Chervil", "Chia", "Chicory",
	"Cilantro", "Clover", "Collard", "Coriander", "Corn Salad", "Cress", "Dill",
	"Endive", "Fava Bean", "Fennel", "Fenugreek", "Flax", "Garlic Chives", "Kale",
	"Kamut", "Kohlrabi", "Komatsuna", "Leek", "Lemon Balm", "Lentil", "Lettuce",
	"Mache", "Melon", "Millet", "Mizuna", "Mung Bean", "Mustard", "Nasturtium", "Oat",
	"Okra", "Onion", "Pak Choi", "Parsley", "Pea", "Peppergrass", "Perilla", "Popcorn",
	"Poppy", "Purslane", "Quinoa", "Radish", "Rapini", "Red Shiso", "Rice", "Rocket",
	"Rutabaga", "Rye", "Shiso", "Sorrel", "Spelt", "Spinach", "Sunflower", "Swiss Chard",
	"Tatsoi", "Thyme", "Turnip", "Watercress", "Wheat", "Wheatgrass",
}

// CSVSource loads name registries from one-column CSV files, seeding and
// writing back the default list when a file is missing.
type CSVSource struct {
	commonNamesPath string
	cultivarsPath   string
}

// NewCSVSource creates a registry source over the given file paths. The
// cultivars path may be empty when no cultivar registry is maintained.
func NewCSVSource(commonNamesPath, cultivarsPath string) *CSVSource {
	return &CSVSource{
		commonNamesPath: commonNamesPath,
		cultivarsPath:   cultivarsPath,
	}
}

// LoadCommonNames reads the common-name registry, seeding defaults on a
// missing file.
func (s *CSVSource) LoadCommonNames() ([]string, error) {
	return s.load(s.commonNamesPath, commonNameHeader, DefaultCommonNames)
}

// LoadCultivars reads the cultivar registry. A missing file yields an empty
// registry rather than an error; cultivars are learned over time.
func (s *CSVSource) LoadCultivars() ([]string, error) {
	if s.cultivarsPath == "" {
		return nil, nil
	}
	return s.load(s.cultivarsPath, cultivarHeader, nil)
}

// load reads one name per line from a one-column CSV. The first line is a
// header only when its first cell is exactly the expected header string;
// anything else is treated as a data row, so headerless files written by
// hand still load fully.
func (s *CSVSource) load(path, header string, defaults []string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		if defaults == nil {
			return nil, nil
		}
		log.Printf("[REGISTRY] %s not found, seeding %d defaults", path, len(defaults))
		if werr := Save(path, header, defaults); werr != nil {
			log.Printf("[REGISTRY] could not write defaults to %s: %v", path, werr)
		}
		return append([]string(nil), defaults...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening registry %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}

	var names []string
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		cell := strings.TrimSpace(record[0])
		if i == 0 && cell == header {
			continue
		}
		if cell != "" {
			names = append(names, cell)
		}
	}

	log.Printf("[REGISTRY] loaded %d names from %s", len(names), path)
	return names, nil
}

// Save writes a name list back in the same one-column format, header first.
func Save(path, header string, names []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating registry dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating registry %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{header}); err != nil {
		return err
	}
	for _, name := range names {
		if err := w.Write([]string{name}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// SaveCommonNames writes the common-name registry.
func (s *CSVSource) SaveCommonNames(names []string) error {
	return Save(s.commonNamesPath, commonNameHeader, names)
}
