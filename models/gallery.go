package models

import "time"

type GalleryPhoto struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"imageUrl"`
	ImageKey     string    `json:"imageKey"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}
