package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/models"
)

const designRequestColumns = `id, name, email, phone, company, service_type, project_description,
	budget_range, deadline, status, user_id, notes, created_at, updated_at`

// DesignRequestReadRepository lists design requests.
type DesignRequestReadRepository struct {
	db *sqlx.DB
}

func NewDesignRequestReadRepository(db *sqlx.DB) *DesignRequestReadRepository {
	return &DesignRequestReadRepository{db: db}
}

// ListByUserID returns the requests submitted by one user, newest first.
func (r *DesignRequestReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.DesignRequestDB, error) {
	const query = `
		SELECT ` + designRequestColumns + `
		FROM design_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	requests := []models.DesignRequestDB{}
	if err := r.db.SelectContext(ctx, &requests, query, userID); err != nil {
		logger.Log.Errorw("design request list by user failed", "err", err)
		return nil, err
	}
	return requests, nil
}

// ListAll returns every request, newest first.
func (r *DesignRequestReadRepository) ListAll(ctx context.Context) ([]models.DesignRequestDB, error) {
	const query = `
		SELECT ` + designRequestColumns + `
		FROM design_requests
		ORDER BY created_at DESC
	`

	requests := []models.DesignRequestDB{}
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		logger.Log.Errorw("design request list failed", "err", err)
		return nil, err
	}
	return requests, nil
}

// DesignRequestWriteRepository creates and updates design requests.
type DesignRequestWriteRepository struct {
	db *sqlx.DB
}

func NewDesignRequestWriteRepository(db *sqlx.DB) *DesignRequestWriteRepository {
	return &DesignRequestWriteRepository{db: db}
}

// Save inserts a request with status "pending" and returns its id.
func (r *DesignRequestWriteRepository) Save(ctx context.Context, req *models.DesignRequestDB) (int64, error) {
	const query = `
		INSERT INTO design_requests (name, email, phone, company, service_type,
		                             project_description, budget_range, deadline,
		                             status, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		req.Name, req.Email, req.Phone, req.Company, req.ServiceType,
		req.ProjectDescription, req.BudgetRange, req.Deadline,
		models.RequestStatusPending, req.UserID)
	if err != nil {
		logger.Log.Errorw("design request insert failed", "err", err)
		return 0, err
	}
	return id, nil
}

// Update sets status and/or notes on a request; nil fields keep their
// current value. Returns the number of rows matched.
func (r *DesignRequestWriteRepository) Update(ctx context.Context, id int64, status, notes *string) (int64, error) {
	const query = `
		UPDATE design_requests
		SET status = COALESCE($2, status),
		    notes = COALESCE($3, notes),
		    updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, status, notes)
	if err != nil {
		logger.Log.Errorw("design request update failed", "err", err)
		return 0, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, nil
}
