package services

import (
	"context"
	"errors"
	"fmt"

	"cafe-julio/db"
	"cafe-julio/models"

	"github.com/jackc/pgx/v5"
)

const menuColumns = `id, name, COALESCE(description, ''), category, price, is_available, COALESCE(image_url, ''), created_at, updated_at`

func scanMenuItem(row pgx.Row) (models.MenuItem, error) {
	var m models.MenuItem
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Category, &m.Price,
		&m.IsAvailable, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func collectMenuItems(rows pgx.Rows) ([]models.MenuItem, error) {
	defer rows.Close()
	var items []models.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// ListMenuByCategory returns the category's items, availability-filtered
// when onlyAvailable is set.
func ListMenuByCategory(ctx context.Context, category string, onlyAvailable bool) ([]models.MenuItem, error) {
	if !db.Ready() {
		return nil, ErrStoreUnavailable
	}
	q := `SELECT ` + menuColumns + ` FROM menu_items WHERE category = $1 ORDER BY id`
	if onlyAvailable {
		q = `SELECT ` + menuColumns + ` FROM menu_items WHERE category = $1 AND is_available ORDER BY id`
	}
	rows, err := db.Pool.Query(ctx, q, category)
	if err != nil {
		return nil, err
	}
	return collectMenuItems(rows)
}

func ListAllMenu(ctx context.Context) ([]models.MenuItem, error) {
	if !db.Ready() {
		return nil, ErrStoreUnavailable
	}
	rows, err := db.Pool.Query(ctx, `SELECT `+menuColumns+` FROM menu_items ORDER BY category, id`)
	if err != nil {
		return nil, err
	}
	return collectMenuItems(rows)
}

func GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	if !db.Ready() {
		return nil, ErrStoreUnavailable
	}
	m, err := scanMenuItem(db.Pool.QueryRow(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &m, nil
}

func AddMenuItem(ctx context.Context, item models.MenuItem) (int64, error) {
	if !models.ValidCategory(item.Category) {
		return 0, fmt.Errorf("invalid category: %s", item.Category)
	}
	if item.Name == "" {
		return 0, fmt.Errorf("name is required")
	}
	if item.Price < 0 {
		return 0, fmt.Errorf("price must be >= 0")
	}
	if !db.Ready() {
		return 0, ErrStoreUnavailable
	}
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO menu_items (name, description, category, price, is_available, image_url)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, NULLIF($6, ''))
		RETURNING id`,
		item.Name, item.Description, item.Category, item.Price, item.IsAvailable, item.ImageURL,
	).Scan(&id)
	return id, err
}

// SetAvailability flips the item's flag. Writing the current value again
// is observably a no-op but still bumps updated_at; the barista panel
// relies on the write happening either way.
func SetAvailability(ctx context.Context, id int64, available bool) error {
	if !db.Ready() {
		return ErrStoreUnavailable
	}
	tag, err := db.Pool.Exec(ctx, `
		UPDATE menu_items SET is_available = $1, updated_at = now() WHERE id = $2`,
		available, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func DeleteMenuItem(ctx context.Context, id int64) error {
	if !db.Ready() {
		return ErrStoreUnavailable
	}
	_, err := db.Pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	return err
}
