package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/models"
)

// ServicesLister defines the listing interface the handler consumes.
type ServicesLister interface {
	ListServices(ctx context.Context) ([]models.ServiceDB, error)
}

// ServiceCreator defines the create interface the handler consumes.
type ServiceCreator interface {
	CreateService(ctx context.Context, s *models.ServiceDB) (int64, error)
}

// ServiceResponse is the public view of a catalog service
// swagger:model ServiceResponse
type ServiceResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	TitleAr       string  `json:"title_ar"`
	Description   string  `json:"description"`
	DescriptionAr string  `json:"description_ar"`
	Icon          *string `json:"icon"`
	PriceRange    *string `json:"price_range"`
}

// NewListServicesHandler returns active services in display order.
// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} handlers.ServiceResponse
// @Router /api/services [get]
func NewListServicesHandler(svc ServicesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := svc.ListServices(r.Context())
		if err != nil {
			logger.Log.Errorw("service listing failed", "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		resp := make([]ServiceResponse, 0, len(services))
		for _, s := range services {
			resp = append(resp, ServiceResponse{
				ID:            s.ID,
				Title:         s.Title,
				TitleAr:       s.TitleAr,
				Description:   s.Description,
				DescriptionAr: s.DescriptionAr,
				Icon:          s.Icon,
				PriceRange:    s.PriceRange,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// CreateServiceRequest represents the JSON body for service creation.
// Field values are trusted as supplied by the admin caller.
// swagger:model CreateServiceRequest
type CreateServiceRequest struct {
	Title         string  `json:"title"`
	TitleAr       string  `json:"title_ar"`
	Description   string  `json:"description"`
	DescriptionAr string  `json:"description_ar"`
	Icon          *string `json:"icon"`
	PriceRange    *string `json:"price_range"`
	OrderNum      int     `json:"order_num"`
	IsActive      *bool   `json:"is_active"`
}

// CreatedResponse acknowledges a created entity
// swagger:model CreatedResponse
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// NewCreateServiceHandler returns an admin handler creating a service.
// @Summary Create a service
// @Tags services
// @Accept json
// @Produce json
// @Param createServiceRequest body handlers.CreateServiceRequest true "Service fields"
// @Success 201 {object} handlers.CreatedResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Router /api/services [post]
// @Security BearerAuth
func NewCreateServiceHandler(svc ServiceCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		id, err := svc.CreateService(r.Context(), &models.ServiceDB{
			Title:         req.Title,
			TitleAr:       req.TitleAr,
			Description:   req.Description,
			DescriptionAr: req.DescriptionAr,
			Icon:          req.Icon,
			PriceRange:    req.PriceRange,
			OrderNum:      req.OrderNum,
			IsActive:      isActive,
		})
		if err != nil {
			logger.Log.Errorw("service creation failed", "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		writeJSON(w, http.StatusCreated, CreatedResponse{Message: "Service created", ID: id})
	}
}
