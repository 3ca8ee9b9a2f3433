package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate creates the schema if it does not exist yet. Statements are
// idempotent so the server can run them on every boot.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	createUsersTable := `CREATE TABLE IF NOT EXISTS users(
		id CHAR(36) PRIMARY KEY,
		username VARCHAR(64) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(72) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	createInventoryTable := `CREATE TABLE IF NOT EXISTS inventory(
		id BIGINT PRIMARY KEY AUTO_INCREMENT,
		item_name VARCHAR(64) NOT NULL UNIQUE,
		quantity INT NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	);`

	createCartsItemsTable := `CREATE TABLE IF NOT EXISTS carts_items(
		id BIGINT PRIMARY KEY AUTO_INCREMENT,
		user_id CHAR(36) NOT NULL,
		item_name VARCHAR(64) NOT NULL,
		quantity INT NOT NULL DEFAULT 0,

		UNIQUE KEY user_item (user_id, item_name),
		CONSTRAINT user_fk FOREIGN KEY (user_id) REFERENCES users(id)
	);`

	for _, stmt := range []string{createUsersTable, createInventoryTable, createCartsItemsTable} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
