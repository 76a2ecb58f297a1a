package models

import "time"

// PortfolioDB represents a portfolio item. Tags are stored as a
// comma-delimited string and split into a list on read.
type PortfolioDB struct {
	ID            int64      `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	TitleAr       *string    `json:"title_ar" db:"title_ar"`
	Description   *string    `json:"description" db:"description"`
	DescriptionAr *string    `json:"description_ar" db:"description_ar"`
	Category      string     `json:"category" db:"category"`
	ImageURL      string     `json:"image_url" db:"image_url"`
	ThumbnailURL  *string    `json:"thumbnail_url" db:"thumbnail_url"`
	ClientName    *string    `json:"client_name" db:"client_name"`
	ProjectDate   *time.Time `json:"project_date" db:"project_date"`
	Tags          *string    `json:"tags" db:"tags"` // Comma-separated
	IsFeatured    bool       `json:"is_featured" db:"is_featured"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	OrderNum      int        `json:"order_num" db:"order_num"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}
