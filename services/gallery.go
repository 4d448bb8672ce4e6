package services

import (
	"context"

	"cafe-julio/db"
	"cafe-julio/models"
)

func ListGalleryPhotos(ctx context.Context) ([]models.GalleryPhoto, error) {
	if !db.Ready() {
		return nil, ErrStoreUnavailable
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT id, title, COALESCE(description, ''), image_url, image_key, display_order, created_at
		FROM gallery_photos
		ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []models.GalleryPhoto
	for rows.Next() {
		var p models.GalleryPhoto
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.ImageKey, &p.DisplayOrder, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func AddGalleryPhoto(ctx context.Context, p models.GalleryPhoto) (int64, error) {
	if !db.Ready() {
		return 0, ErrStoreUnavailable
	}
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO gallery_photos (title, description, image_url, image_key, display_order)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5)
		RETURNING id`,
		p.Title, p.Description, p.ImageURL, p.ImageKey, p.DisplayOrder,
	).Scan(&id)
	return id, err
}

func DeleteGalleryPhoto(ctx context.Context, id int64) error {
	if !db.Ready() {
		return ErrStoreUnavailable
	}
	_, err := db.Pool.Exec(ctx, `DELETE FROM gallery_photos WHERE id = $1`, id)
	return err
}
