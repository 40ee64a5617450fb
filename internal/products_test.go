// internal/products_test.go
package internal

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3" // Use SQLite for testing
	"github.com/shopspring/decimal"

	"github.com/reinhardt-bit/OrderFlow-Pricing/internal/engine"
	shareddb "github.com/reinhardt-bit/OrderFlow-Pricing/shared/db"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// every connection to :memory: is a fresh database
	db.SetMaxOpenConns(1)

	if err := shareddb.CreateSchema(db); err != nil {
		t.Fatalf("Failed to create test tables: %v", err)
	}

	return db
}

func TestLoadProducts(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec(`
		INSERT INTO products (name, code, price, category, active) VALUES
		('Mesa Simples', NULL, 300.00, 'Mesas', true),
		('Caixa 7 gavetas', 'CX7', 760.00, 'Caixas', true),
		('Inactive Product', NULL, 15.99, NULL, false)
	`)
	if err != nil {
		t.Fatalf("Failed to insert test data: %v", err)
	}

	products, err := LoadProducts(db)
	if err != nil {
		t.Fatalf("LoadProducts failed: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("Expected 2 active products, got %d", len(products))
	}

	first := products[0]
	if first.Name != "Caixa 7 gavetas" || first.Code != "CX7" || !first.BasePrice.Equal(decimal.NewFromInt(760)) {
		t.Errorf("First product data incorrect: %+v", first)
	}

	second := products[1]
	if second.Name != "Mesa Simples" || second.Code != "" || second.Category != "Mesas" {
		t.Errorf("Second product data incorrect: %+v", second)
	}
}

func TestProductLifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id, err := AddProduct(db, engine.ProductCatalogEntry{Name: "Banco", BasePrice: decimal.RequireFromString("89.90")})
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}

	err = UpdateProduct(db, engine.ProductCatalogEntry{ID: id, Name: "Banco Alto", Code: "BA", BasePrice: decimal.RequireFromString("99.90"), Category: "Bancos"})
	if err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}

	products, err := LoadProducts(db)
	if err != nil {
		t.Fatalf("LoadProducts failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Banco Alto" || !products[0].BasePrice.Equal(decimal.RequireFromString("99.90")) {
		t.Fatalf("Unexpected products after update: %+v", products)
	}

	if err := DeactivateProduct(db, id); err != nil {
		t.Fatalf("DeactivateProduct failed: %v", err)
	}
	products, err = LoadProducts(db)
	if err != nil {
		t.Fatalf("LoadProducts failed: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("Expected no active products, got %d", len(products))
	}
}

func TestLoadProducts_FeedsCatalogIndex(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec(`
		INSERT INTO products (name, price, active) VALUES
		('Mesa Simples', 300, true),
		('Mesa Reforçada', 420, true)
	`)
	if err != nil {
		t.Fatalf("Failed to insert test data: %v", err)
	}

	products, err := LoadProducts(db)
	if err != nil {
		t.Fatalf("LoadProducts failed: %v", err)
	}
	index := engine.NewCatalogIndex(products)

	if _, ok := index.Resolve("mesa"); ok {
		t.Error("Expected 'mesa' to stay unresolved")
	}
	p, ok := index.Resolve("reforç")
	if !ok || p.Name != "Mesa Reforçada" {
		t.Errorf("Expected 'reforç' to resolve to Mesa Reforçada, got %+v (ok=%v)", p, ok)
	}
}
