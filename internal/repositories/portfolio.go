package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/models"
)

// PortfolioReadRepository lists portfolio items.
type PortfolioReadRepository struct {
	db *sqlx.DB
}

func NewPortfolioReadRepository(db *sqlx.DB) *PortfolioReadRepository {
	return &PortfolioReadRepository{db: db}
}

// ListActive returns active portfolio items, optionally filtered by
// category, in display order with newest first inside the same slot.
func (r *PortfolioReadRepository) ListActive(ctx context.Context, category *string) ([]models.PortfolioDB, error) {
	const query = `
		SELECT id, title, title_ar, description, description_ar, category, image_url,
		       thumbnail_url, client_name, project_date, tags, is_featured, is_active,
		       order_num, created_at
		FROM portfolio
		WHERE is_active = TRUE
		  AND ($1::VARCHAR IS NULL OR category = $1)
		ORDER BY order_num, created_at DESC
	`

	items := []models.PortfolioDB{}
	if err := r.db.SelectContext(ctx, &items, query, category); err != nil {
		logger.Log.Errorw("portfolio list failed", "err", err)
		return nil, err
	}
	return items, nil
}

// PortfolioWriteRepository creates portfolio items.
type PortfolioWriteRepository struct {
	db *sqlx.DB
}

func NewPortfolioWriteRepository(db *sqlx.DB) *PortfolioWriteRepository {
	return &PortfolioWriteRepository{db: db}
}

// Save inserts a portfolio item and returns its id.
func (r *PortfolioWriteRepository) Save(ctx context.Context, p *models.PortfolioDB) (int64, error) {
	const query = `
		INSERT INTO portfolio (title, title_ar, description, description_ar, category,
		                       image_url, thumbnail_url, client_name, project_date, tags,
		                       is_featured, is_active, order_num, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		p.Title, p.TitleAr, p.Description, p.DescriptionAr, p.Category,
		p.ImageURL, p.ThumbnailURL, p.ClientName, p.ProjectDate, p.Tags,
		p.IsFeatured, p.IsActive, p.OrderNum)
	if err != nil {
		logger.Log.Errorw("portfolio insert failed", "err", err)
		return 0, err
	}
	return id, nil
}
