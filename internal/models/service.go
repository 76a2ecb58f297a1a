package models

import "time"

// ServiceDB represents a catalog service offered by the studio.
// Titles and descriptions are bilingual (English + Arabic).
type ServiceDB struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	TitleAr       string    `json:"title_ar" db:"title_ar"`
	Description   string    `json:"description" db:"description"`
	DescriptionAr string    `json:"description_ar" db:"description_ar"`
	Icon          *string   `json:"icon" db:"icon"` // Icon class name
	PriceRange    *string   `json:"price_range" db:"price_range"`
	OrderNum      int       `json:"order_num" db:"order_num"` // Display sequence
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
