package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/models"
)

// ServiceReadRepository lists catalog services.
type ServiceReadRepository struct {
	db *sqlx.DB
}

func NewServiceReadRepository(db *sqlx.DB) *ServiceReadRepository {
	return &ServiceReadRepository{db: db}
}

// ListActive returns active services in display order.
func (r *ServiceReadRepository) ListActive(ctx context.Context) ([]models.ServiceDB, error) {
	const query = `
		SELECT id, title, title_ar, description, description_ar, icon, price_range,
		       order_num, is_active, created_at
		FROM services
		WHERE is_active = TRUE
		ORDER BY order_num, created_at DESC
	`

	services := []models.ServiceDB{}
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		logger.Log.Errorw("service list failed", "err", err)
		return nil, err
	}
	return services, nil
}

// ServiceWriteRepository creates catalog services.
type ServiceWriteRepository struct {
	db *sqlx.DB
}

func NewServiceWriteRepository(db *sqlx.DB) *ServiceWriteRepository {
	return &ServiceWriteRepository{db: db}
}

// Save inserts a service and returns its id.
func (r *ServiceWriteRepository) Save(ctx context.Context, s *models.ServiceDB) (int64, error) {
	const query = `
		INSERT INTO services (title, title_ar, description, description_ar, icon,
		                      price_range, order_num, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		s.Title, s.TitleAr, s.Description, s.DescriptionAr,
		s.Icon, s.PriceRange, s.OrderNum, s.IsActive)
	if err != nil {
		logger.Log.Errorw("service insert failed", "err", err)
		return 0, err
	}
	return id, nil
}
