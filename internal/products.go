// internal/products.go
package internal

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/reinhardt-bit/OrderFlow-Pricing/internal/engine"
)

// LoadProducts returns the active catalog ordered by name.
func LoadProducts(db *sql.DB) ([]engine.ProductCatalogEntry, error) {
	rows, err := db.Query(
		`SELECT id, name, code, price, category
    FROM products
    WHERE active = true
    ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	var products []engine.ProductCatalogEntry
	for rows.Next() {
		var (
			p        engine.ProductCatalogEntry
			code     sql.NullString
			category sql.NullString
			price    float64
		)
		err := rows.Scan(&p.ID, &p.Name, &code, &price, &category)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		p.Code = code.String
		p.Category = category.String
		p.BasePrice = decimal.NewFromFloat(price)
		products = append(products, p)
	}
	return products, rows.Err()
}

// AddProduct inserts an active product and returns its id.
func AddProduct(db *sql.DB, p engine.ProductCatalogEntry) (int64, error) {
	res, err := db.Exec("INSERT INTO products (name, code, price, category, active) VALUES (?, ?, ?, ?, true)",
		p.Name, p.Code, p.BasePrice.InexactFloat64(), p.Category)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateProduct rewrites name, code, price and category of an existing product.
func UpdateProduct(db *sql.DB, p engine.ProductCatalogEntry) error {
	_, err := db.Exec("UPDATE products SET name = ?, code = ?, price = ?, category = ? WHERE id = ?",
		p.Name, p.Code, p.BasePrice.InexactFloat64(), p.Category, p.ID)
	return err
}

// DeactivateProduct hides a product from new orders; old orders keep their lines.
func DeactivateProduct(db *sql.DB, id int64) error {
	_, err := db.Exec("UPDATE products SET active = false WHERE id = ?", id)
	return err
}
