package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nawi-studio/nawi-backend/internal/models"
	"github.com/nawi-studio/nawi-backend/internal/services"
)

func newCatalogService(ctrl *gomock.Controller) (*services.CatalogService, *services.MockServiceReader, *services.MockServiceWriter, *services.MockPortfolioReader, *services.MockPortfolioWriter) {
	serviceReader := services.NewMockServiceReader(ctrl)
	serviceWriter := services.NewMockServiceWriter(ctrl)
	portfolioReader := services.NewMockPortfolioReader(ctrl)
	portfolioWriter := services.NewMockPortfolioWriter(ctrl)

	svc := services.NewCatalogService(serviceReader, serviceWriter, portfolioReader, portfolioWriter)
	return svc, serviceReader, serviceWriter, portfolioReader, portfolioWriter
}

func TestCatalogService_ListServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, serviceReader, _, _, _ := newCatalogService(ctrl)

	want := []models.ServiceDB{{ID: 1, Title: "Logo Design"}}
	serviceReader.EXPECT().ListActive(gomock.Any()).Return(want, nil)

	got, err := svc.ListServices(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalogService_CreateService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, serviceWriter, _, _ := newCatalogService(ctrl)

	s := &models.ServiceDB{Title: "Print Design", IsActive: true}
	serviceWriter.EXPECT().Save(gomock.Any(), s).Return(int64(4), nil)

	id, err := svc.CreateService(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestCatalogService_ListPortfolio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, portfolioReader, _ := newCatalogService(ctrl)

	category := "branding"
	want := []models.PortfolioDB{{ID: 1, Category: "branding"}}
	portfolioReader.EXPECT().ListActive(gomock.Any(), &category).Return(want, nil)

	got, err := svc.ListPortfolio(context.Background(), &category)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalogService_CreatePortfolio_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, portfolioWriter := newCatalogService(ctrl)

	p := &models.PortfolioDB{Title: "x", Category: "branding"}
	portfolioWriter.EXPECT().Save(gomock.Any(), p).Return(int64(0), errors.New("insert failed"))

	id, err := svc.CreatePortfolio(context.Background(), p)
	assert.Error(t, err)
	assert.Zero(t, id)
}
