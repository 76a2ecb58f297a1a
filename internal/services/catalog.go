package services

import (
	"context"

	"github.com/nawi-studio/nawi-backend/internal/models"
)

// ServiceReader lists catalog services.
type ServiceReader interface {
	ListActive(ctx context.Context) ([]models.ServiceDB, error)
}

// ServiceWriter creates catalog services.
type ServiceWriter interface {
	Save(ctx context.Context, s *models.ServiceDB) (int64, error)
}

// PortfolioReader lists portfolio items.
type PortfolioReader interface {
	ListActive(ctx context.Context, category *string) ([]models.PortfolioDB, error)
}

// PortfolioWriter creates portfolio items.
type PortfolioWriter interface {
	Save(ctx context.Context, p *models.PortfolioDB) (int64, error)
}

// CatalogService exposes the public services and portfolio listings
// plus their admin-only create operations.
type CatalogService struct {
	serviceReader   ServiceReader
	serviceWriter   ServiceWriter
	portfolioReader PortfolioReader
	portfolioWriter PortfolioWriter
}

func NewCatalogService(
	serviceReader ServiceReader,
	serviceWriter ServiceWriter,
	portfolioReader PortfolioReader,
	portfolioWriter PortfolioWriter,
) *CatalogService {
	return &CatalogService{
		serviceReader:   serviceReader,
		serviceWriter:   serviceWriter,
		portfolioReader: portfolioReader,
		portfolioWriter: portfolioWriter,
	}
}

// ListServices returns active services in display order.
func (svc *CatalogService) ListServices(ctx context.Context) ([]models.ServiceDB, error) {
	return svc.serviceReader.ListActive(ctx)
}

// CreateService stores a new service. Field values are trusted as
// supplied by the admin caller.
func (svc *CatalogService) CreateService(ctx context.Context, s *models.ServiceDB) (int64, error) {
	return svc.serviceWriter.Save(ctx, s)
}

// ListPortfolio returns active portfolio items, optionally filtered by
// category.
func (svc *CatalogService) ListPortfolio(ctx context.Context, category *string) ([]models.PortfolioDB, error) {
	return svc.portfolioReader.ListActive(ctx, category)
}

// CreatePortfolio stores a new portfolio item.
func (svc *CatalogService) CreatePortfolio(ctx context.Context, p *models.PortfolioDB) (int64, error) {
	return svc.portfolioWriter.Save(ctx, p)
}
