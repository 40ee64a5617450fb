// internal/clients.go
package internal

import (
	"database/sql"
	"fmt"

	"github.com/reinhardt-bit/OrderFlow-Pricing/internal/engine"
)

// LoadClients returns active clients ordered by name.
func LoadClients(db *sql.DB) ([]engine.ClientRecord, error) {
	rows, err := db.Query(`
        SELECT id, name, document, phone,
               street, number, district, city, state, zip
        FROM clients
        WHERE active = true
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("error querying clients: %w", err)
	}
	defer rows.Close()

	var clients []engine.ClientRecord
	for rows.Next() {
		var (
			c      engine.ClientRecord
			fields [8]sql.NullString
		)
		err := rows.Scan(&c.ID, &c.Name,
			&fields[0], &fields[1], &fields[2], &fields[3],
			&fields[4], &fields[5], &fields[6], &fields[7],
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning client: %w", err)
		}
		c.Document = fields[0].String
		c.Phone = fields[1].String
		c.Address = engine.Address{
			Street:   fields[2].String,
			Number:   fields[3].String,
			District: fields[4].String,
			City:     fields[5].String,
			State:    fields[6].String,
			ZIP:      fields[7].String,
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// AddClient inserts an active client and returns its id.
func AddClient(db *sql.DB, c engine.ClientRecord) (int64, error) {
	res, err := db.Exec(`
        INSERT INTO clients (
            name, document, phone, street, number, district, city, state, zip, active
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, true)`,
		c.Name, c.Document, c.Phone,
		c.Address.Street, c.Address.Number, c.Address.District,
		c.Address.City, c.Address.State, c.Address.ZIP,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DeactivateClient hides a client from the order form.
func DeactivateClient(db *sql.DB, id int64) error {
	_, err := db.Exec("UPDATE clients SET active = false WHERE id = ?", id)
	return err
}
