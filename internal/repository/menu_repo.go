package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Cheertaboi/coffee-shop-billing/internal/models"
)

const createMenuTable = `
	CREATE TABLE IF NOT EXISTS menu_items (
		id    SERIAL PRIMARY KEY,
		name  VARCHAR(100) NOT NULL UNIQUE,
		price NUMERIC(10, 2) NOT NULL CHECK (price >= 0)
	)
`

type MenuRepo struct {
	db *sql.DB
}

func NewMenuRepo(db *sql.DB) *MenuRepo {
	return &MenuRepo{db: db}
}

// EnsureSchema creates the menu table if it does not exist yet.
func (r *MenuRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createMenuTable); err != nil {
		return fmt.Errorf("create menu_items: %w", err)
	}
	return nil
}

func (r *MenuRepo) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	query := `SELECT id, name, price FROM menu_items ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var it models.MenuItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Price); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}
	return items, nil
}

// SeedItems inserts items only when the menu table is empty.
// It reports whether anything was inserted.
func (r *MenuRepo) SeedItems(ctx context.Context, items []models.MenuItem) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM menu_items)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("check menu items: %w", err)
	}
	if exists {
		return false, nil
	}

	stmt := `INSERT INTO menu_items (name, price) VALUES ($1, $2)`
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, stmt, it.Name, it.Price); err != nil {
			return false, fmt.Errorf("insert menu item %q: %w", it.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("tx commit: %w", err)
	}
	committed = true
	return true, nil
}
