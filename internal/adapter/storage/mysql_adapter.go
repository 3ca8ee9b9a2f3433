package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/bakeryshop/cart-service/internal/core/domain"
)

type MySQLAdapter struct {
	db *sqlx.DB
}

func NewMySQLAdapter(db *sqlx.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) CreateUser(ctx context.Context, user domain.User) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash)
		VALUES (?, ?, ?, ?)`,
		user.ID, user.Username, user.Email, user.PasswordHash,
	)
	if isDuplicateKey(err) {
		return domain.ErrDuplicateUser
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := m.db.GetContext(ctx, &user, `
		SELECT id, username, email, password_hash, created_at
		FROM users WHERE username = ?`, username,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

func (m *MySQLAdapter) GetInventory(ctx context.Context, itemName string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := m.db.GetContext(ctx, &item, `
		SELECT id, item_name, quantity, updated_at
		FROM inventory WHERE item_name = ?`, itemName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	return &item, nil
}

func (m *MySQLAdapter) ReleaseStock(ctx context.Context, itemName string, quantity int) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO inventory (item_name, quantity)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`,
		itemName, quantity,
	)
	if err != nil {
		return fmt.Errorf("release stock: %w", err)
	}
	return nil
}

// AddItemToCart reserves stock and upserts the cart line in one transaction.
// The conditional UPDATE serializes concurrent adds on the inventory row, so
// stock never goes negative.
func (m *MySQLAdapter) AddItemToCart(ctx context.Context, userID, itemName string, quantity int) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE inventory
		SET quantity = quantity - ?
		WHERE item_name = ? AND quantity >= ?`,
		quantity, itemName, quantity,
	)
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInsufficientStock
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO carts_items (user_id, item_name, quantity)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`,
		userID, itemName, quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert cart line: %w", err)
	}

	return tx.Commit()
}

// RemoveItemFromCart releases up to quantity units back into inventory in one
// transaction. The cart row is locked first so the clamp against the held
// quantity cannot race with a concurrent removal.
func (m *MySQLAdapter) RemoveItemFromCart(ctx context.Context, userID, itemName string, quantity int) (int, error) {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var held int
	err = tx.GetContext(ctx, &held, `
		SELECT quantity FROM carts_items
		WHERE user_id = ? AND item_name = ?
		FOR UPDATE`,
		userID, itemName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotInCart
	}
	if err != nil {
		return 0, fmt.Errorf("lock cart line: %w", err)
	}
	if held == 0 {
		return 0, domain.ErrNotInCart
	}

	removed := quantity
	if removed > held {
		removed = held
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE carts_items SET quantity = quantity - ?
		WHERE user_id = ? AND item_name = ?`,
		removed, userID, itemName,
	)
	if err != nil {
		return 0, fmt.Errorf("decrement cart line: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO inventory (item_name, quantity)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`,
		itemName, removed,
	)
	if err != nil {
		return 0, fmt.Errorf("release stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return removed, nil
}

func (m *MySQLAdapter) GetCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	items := []domain.CartItem{}
	err := m.db.SelectContext(ctx, &items, `
		SELECT user_id, item_name, quantity
		FROM carts_items WHERE user_id = ?
		ORDER BY id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query cart: %w", err)
	}
	return items, nil
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
