// shared/db/db.go
package db

import (
	"database/sql"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

var schema = []struct {
	table string
	ddl   string
}{
	{"products", `
    CREATE TABLE IF NOT EXISTS products (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL,
        code TEXT,
        price REAL NOT NULL,
        category TEXT,
        active BOOLEAN DEFAULT true
    )`},
	{"clients", `
    CREATE TABLE IF NOT EXISTS clients (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL,
        document TEXT,
        phone TEXT,
        street TEXT,
        number TEXT,
        district TEXT,
        city TEXT,
        state TEXT,
        zip TEXT,
        active BOOLEAN DEFAULT true
    )`},
	{"orders", `
    CREATE TABLE IF NOT EXISTS orders (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        reference TEXT,
        created_at DATETIME,
        due_date DATETIME,
        lead_time_days INTEGER DEFAULT 0,
        client_id INTEGER,
        client_name TEXT,
        contact TEXT,
        freight REAL DEFAULT 0,
        discount REAL DEFAULT 0,
        total_price REAL,
        comment TEXT,
        completed BOOLEAN,
        FOREIGN KEY(client_id) REFERENCES clients(id)
    )`},
	{"order_items", `
    CREATE TABLE IF NOT EXISTS order_items (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        order_id INTEGER,
        product_id INTEGER,
        description TEXT NOT NULL,
        color TEXT,
        reinforced BOOLEAN DEFAULT false,
        base_price REAL,
        price REAL,
        FOREIGN KEY(order_id) REFERENCES orders(id),
        FOREIGN KEY(product_id) REFERENCES products(id)
    )`},
}

// InitDB opens the configured database and makes sure every table exists.
func InitDB(cfg Config) (*sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid database configuration")
	}

	db, err := sql.Open(cfg.Driver, cfg.dataSourceName())
	if err != nil {
		return nil, errors.Wrap(err, "error connecting to database")
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"driver": cfg.Driver,
		"tables": len(schema),
	}).Info("database ready")
	return db, nil
}

// CreateSchema creates missing tables. It is safe to run on every start.
func CreateSchema(db *sql.DB) error {
	for _, s := range schema {
		if _, err := db.Exec(s.ddl); err != nil {
			return errors.Wrapf(err, "error creating %s table", s.table)
		}
	}
	return nil
}
