package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/seedcatalog/backend/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	supplier      TEXT NOT NULL,
	title         TEXT NOT NULL,
	common_name   TEXT NOT NULL,
	cultivar_name TEXT NOT NULL,
	organic       INTEGER NOT NULL,
	url           TEXT NOT NULL,
	is_in_stock   INTEGER NOT NULL,
	UNIQUE (supplier, title)
);
CREATE TABLE IF NOT EXISTS variations (
	product_id            INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	size                  TEXT NOT NULL,
	price                 REAL NOT NULL,
	is_variation_in_stock INTEGER NOT NULL,
	weight_kg             REAL,
	original_weight_value REAL,
	original_weight_unit  TEXT,
	sku                   TEXT NOT NULL,
	canadian_costs        TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_common_name ON products(common_name);
`

// SQLiteStore persists normalized catalog records for cross-rebuild
// comparisons. Implements domain.CatalogRepository.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed initializes) a catalog database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog db %s: %w", path, err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing catalog schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// SaveProduct upserts a product by (supplier, title) and replaces its
// variations.
func (s *SQLiteStore) SaveProduct(ctx context.Context, product *domain.Product) error {
	if product == nil {
		return domain.ErrInvalidRequest
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO products (supplier, title, common_name, cultivar_name, organic, url, is_in_stock)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (supplier, title) DO UPDATE SET
			common_name = excluded.common_name,
			cultivar_name = excluded.cultivar_name,
			organic = excluded.organic,
			url = excluded.url,
			is_in_stock = excluded.is_in_stock`,
		product.Supplier, product.Title, product.CommonName, product.CultivarName,
		boolToInt(product.Organic), product.URL, boolToInt(product.IsInStock))
	if err != nil {
		return fmt.Errorf("upserting product: %w", err)
	}

	productID, err := res.LastInsertId()
	if err != nil || productID == 0 {
		// Upsert of an existing row does not report an insert id everywhere;
		// resolve it explicitly.
		row := tx.QueryRowContext(ctx,
			`SELECT id FROM products WHERE supplier = ? AND title = ?`,
			product.Supplier, product.Title)
		if err := row.Scan(&productID); err != nil {
			return fmt.Errorf("resolving product id: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM variations WHERE product_id = ?`, productID); err != nil {
		return fmt.Errorf("clearing variations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO variations
			(product_id, size, price, is_variation_in_stock, weight_kg,
			 original_weight_value, original_weight_unit, sku, canadian_costs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing variation insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range product.Variations {
		costs, err := json.Marshal(v.CanadianCosts)
		if err != nil {
			return fmt.Errorf("encoding costs: %w", err)
		}
		if _, err := stmt.ExecContext(ctx,
			productID, v.Size, v.Price, boolToInt(v.IsVariationInStock),
			v.WeightKG, v.OriginalWeightValue, v.OriginalWeightUnit,
			v.SKU, string(costs)); err != nil {
			return fmt.Errorf("inserting variation: %w", err)
		}
	}

	return tx.Commit()
}

// GetProduct fetches one product with its variations.
func (s *SQLiteStore) GetProduct(ctx context.Context, supplier, title string) (*domain.Product, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, supplier, title, common_name, cultivar_name, organic, url, is_in_stock
		FROM products WHERE supplier = ? AND title = ?`, supplier, title)

	var id int64
	product, err := scanProduct(row, &id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	if err := s.loadVariations(ctx, id, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListByCommonName returns all products sharing a common name,
// case-insensitively.
func (s *SQLiteStore) ListByCommonName(ctx context.Context, commonName string) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, supplier, title, common_name, cultivar_name, organic, url, is_in_stock
		FROM products WHERE common_name = ? COLLATE NOCASE
		ORDER BY supplier, title`, commonName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	var products []domain.Product
	var ids []int64
	for rows.Next() {
		var id int64
		product, err := scanProduct(rows, &id)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, *product)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	for i := range products {
		if err := s.loadVariations(ctx, ids[i], &products[i]); err != nil {
			return nil, err
		}
	}
	return products, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, id *int64) (*domain.Product, error) {
	var product domain.Product
	var organic, inStock int
	if err := row.Scan(id, &product.Supplier, &product.Title, &product.CommonName,
		&product.CultivarName, &organic, &product.URL, &inStock); err != nil {
		return nil, err
	}
	product.Organic = organic != 0
	product.IsInStock = inStock != 0
	return &product, nil
}

func (s *SQLiteStore) loadVariations(ctx context.Context, productID int64, product *domain.Product) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT size, price, is_variation_in_stock, weight_kg,
		       original_weight_value, original_weight_unit, sku, canadian_costs
		FROM variations WHERE product_id = ? ORDER BY rowid`, productID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.Variation
		var inStock int
		var costs string
		if err := rows.Scan(&v.Size, &v.Price, &inStock, &v.WeightKG,
			&v.OriginalWeightValue, &v.OriginalWeightUnit, &v.SKU, &costs); err != nil {
			return fmt.Errorf("scanning variation: %w", err)
		}
		v.IsVariationInStock = inStock != 0
		if err := json.Unmarshal([]byte(costs), &v.CanadianCosts); err != nil {
			return fmt.Errorf("decoding costs: %w", err)
		}
		product.Variations = append(product.Variations, v)
	}
	return rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
