package services

import (
	"context"
	"strconv"

	"cafe-order/db"
	"cafe-order/models"
)

// ListAvailableMenu returns every available item ordered by category (id
// as tiebreak). Unavailable items never leave the database.
func ListAvailableMenu(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, description, price, category, image_url, available FROM menu
		WHERE available = true
		ORDER BY category, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var id int64
		var item models.MenuItem
		if err := rows.Scan(&id, &item.Name, &item.Description, &item.Price, &item.Category, &item.ImageURL, &item.Available); err != nil {
			return nil, err
		}
		item.ID = strconv.FormatInt(id, 10)
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetMenuItem fetches one row regardless of availability; the caller
// decides what to do with an unavailable item.
func GetMenuItem(ctx context.Context, idStr string) (*models.MenuItem, error) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, err
	}
	item := models.MenuItem{ID: idStr}
	err = db.Pool.QueryRow(ctx, `
		SELECT name, description, price, category, image_url, available FROM menu
		WHERE id = $1`,
		id,
	).Scan(&item.Name, &item.Description, &item.Price, &item.Category, &item.ImageURL, &item.Available)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
