package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/models"
)

// PortfolioLister defines the listing interface the handler consumes.
type PortfolioLister interface {
	ListPortfolio(ctx context.Context, category *string) ([]models.PortfolioDB, error)
}

// PortfolioCreator defines the create interface the handler consumes.
type PortfolioCreator interface {
	CreatePortfolio(ctx context.Context, p *models.PortfolioDB) (int64, error)
}

// PortfolioItemResponse is the public view of a portfolio item
// swagger:model PortfolioItemResponse
type PortfolioItemResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	TitleAr       *string  `json:"title_ar"`
	Description   *string  `json:"description"`
	DescriptionAr *string  `json:"description_ar"`
	Category      string   `json:"category"`
	ImageURL      string   `json:"image_url"`
	ThumbnailURL  string   `json:"thumbnail_url"` // Falls back to image_url
	ClientName    *string  `json:"client_name"`
	Tags          []string `json:"tags"`
	IsFeatured    bool     `json:"is_featured"`
}

// NewListPortfolioHandler returns active portfolio items, optionally
// filtered by the category query parameter.
// @Summary List portfolio items
// @Tags portfolio
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} handlers.PortfolioItemResponse
// @Router /api/portfolio [get]
func NewListPortfolioHandler(svc PortfolioLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category *string
		if c := r.URL.Query().Get("category"); c != "" {
			category = &c
		}

		items, err := svc.ListPortfolio(r.Context(), category)
		if err != nil {
			logger.Log.Errorw("portfolio listing failed", "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		resp := make([]PortfolioItemResponse, 0, len(items))
		for _, p := range items {
			thumbnail := p.ImageURL
			if p.ThumbnailURL != nil && *p.ThumbnailURL != "" {
				thumbnail = *p.ThumbnailURL
			}
			resp = append(resp, PortfolioItemResponse{
				ID:            p.ID,
				Title:         p.Title,
				TitleAr:       p.TitleAr,
				Description:   p.Description,
				DescriptionAr: p.DescriptionAr,
				Category:      p.Category,
				ImageURL:      p.ImageURL,
				ThumbnailURL:  thumbnail,
				ClientName:    p.ClientName,
				Tags:          splitTags(p.Tags),
				IsFeatured:    p.IsFeatured,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// splitTags turns the stored comma-delimited string into a list.
func splitTags(tags *string) []string {
	if tags == nil || *tags == "" {
		return []string{}
	}
	parts := strings.Split(*tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CreatePortfolioRequest represents the JSON body for portfolio creation
// swagger:model CreatePortfolioRequest
type CreatePortfolioRequest struct {
	Title         string  `json:"title"`
	TitleAr       *string `json:"title_ar"`
	Description   *string `json:"description"`
	DescriptionAr *string `json:"description_ar"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"image_url"`
	ThumbnailURL  *string `json:"thumbnail_url"`
	ClientName    *string `json:"client_name"`
	ProjectDate   *string `json:"project_date"` // ISO date
	Tags          *string `json:"tags"`         // Comma-separated
	IsFeatured    bool    `json:"is_featured"`
	OrderNum      int     `json:"order_num"`
	IsActive      *bool   `json:"is_active"`
}

// NewCreatePortfolioHandler returns an admin handler creating a
// portfolio item.
// @Summary Create a portfolio item
// @Tags portfolio
// @Accept json
// @Produce json
// @Param createPortfolioRequest body handlers.CreatePortfolioRequest true "Portfolio fields"
// @Success 201 {object} handlers.CreatedResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Router /api/portfolio [post]
// @Security BearerAuth
func NewCreatePortfolioHandler(svc PortfolioCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePortfolioRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var projectDate *time.Time
		if req.ProjectDate != nil && *req.ProjectDate != "" {
			d, err := parseISODate(*req.ProjectDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, "project_date must be an ISO date")
				return
			}
			projectDate = &d
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		id, err := svc.CreatePortfolio(r.Context(), &models.PortfolioDB{
			Title:         req.Title,
			TitleAr:       req.TitleAr,
			Description:   req.Description,
			DescriptionAr: req.DescriptionAr,
			Category:      req.Category,
			ImageURL:      req.ImageURL,
			ThumbnailURL:  req.ThumbnailURL,
			ClientName:    req.ClientName,
			ProjectDate:   projectDate,
			Tags:          req.Tags,
			IsFeatured:    req.IsFeatured,
			IsActive:      isActive,
			OrderNum:      req.OrderNum,
		})
		if err != nil {
			logger.Log.Errorw("portfolio creation failed", "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		writeJSON(w, http.StatusCreated, CreatedResponse{Message: "Portfolio item created", ID: id})
	}
}

// parseISODate accepts a bare date or a full RFC 3339 timestamp.
func parseISODate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}
