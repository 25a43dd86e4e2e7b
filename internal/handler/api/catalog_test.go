//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"glamping-api/internal/handler/api"
	reqdto "glamping-api/internal/handler/dto/request"
	"glamping-api/internal/handler/validation"
	"glamping-api/internal/pkg/errs"
	"glamping-api/internal/usecase/commands"
	"glamping-api/internal/usecase/queries"
	"glamping-api/internal/usecase/shared"
	"glamping-api/tests/common/httptest"
	commandsmock "glamping-api/tests/mock/commands"
	queriesmock "glamping-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.RegisterTagNames()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	h := api.NewCatalogHandler(s.mockQueries, s.mockCommands)

	s.router.GET("/locations", h.ListLocations)
	s.router.GET("/locations/:id", h.GetLocation)
	s.router.GET("/packages", h.ListPackages)
	s.router.GET("/packages/featured", h.FeaturedPackages)
	s.router.GET("/packages/:id", h.GetPackageBySlug)
	s.router.POST("/admin/packages", h.CreatePackage)
	s.router.PUT("/admin/packages/:id", h.UpdatePackage)
	s.router.DELETE("/admin/packages/:id", h.DeletePackage)
	s.router.POST("/admin/locations", h.CreateLocation)
	s.router.DELETE("/admin/locations/:id", h.DeleteLocation)
}

func (s *CatalogHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func packageView() *queries.PackageView {
	return &queries.PackageView{
		ID:            uuid.New(),
		LocationID:    uuid.New(),
		Name:          "Forest Dome",
		Slug:          "forest-dome",
		PricePerNight: decimal.RequireFromString("750000"),
		Capacity:      4,
		Facilities:    []string{"Private bathroom"},
		Images:        []string{},
		IsActive:      true,
	}
}

type packageEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func (s *CatalogHandlerTestSuite) TestPublicPackages() {
	s.Run("success: slugでパッケージを返す", func() {
		s.mockQueries.EXPECT().GetPackageBySlug(gomock.Any(), "forest-dome").Return(packageView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/packages/forest-dome", nil, "")

		var resp packageEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("Forest Dome", resp.Data["name"])
		s.Equal("750000.00", resp.Data["price_per_night"])
	})

	s.Run("error: 非公開のslugは404", func() {
		s.mockQueries.EXPECT().GetPackageBySlug(gomock.Any(), "hidden").Return(nil, queries.ErrPackageNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/packages/hidden", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Package not found")
	})

	s.Run("success: location_idとsearchで絞り込む", func() {
		locationID := uuid.New()
		s.mockQueries.EXPECT().ListPackages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.PackageFilter) ([]*queries.PackageView, error) {
				s.Require().NotNil(f.LocationID)
				s.Equal(locationID, *f.LocationID)
				s.Require().NotNil(f.Search)
				s.Equal("dome", *f.Search)
				return []*queries.PackageView{packageView()}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/packages?location_id="+locationID.String()+"&search=dome", nil, "")

		var resp struct {
			Data []map[string]any `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Data, 1)
	})

	s.Run("error: location_idがUUIDでなければ422", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/packages?location_id=pine-ridge", nil, "")
		httptest.AssertFieldErrors(s.T(), rec, "location_id")
	})

	s.Run("success: おすすめは空でも配列を返す", func() {
		s.mockQueries.EXPECT().FeaturedPackages(gomock.Any()).Return([]*queries.PackageView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/packages/featured", nil, "")

		var resp struct {
			Data []map[string]any `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.NotNil(resp.Data)
		s.Empty(resp.Data)
	})
}

func (s *CatalogHandlerTestSuite) TestLocations() {
	s.Run("error: 存在しないロケーションは404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetLocation(gomock.Any(), id).Return(nil, queries.ErrLocationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/locations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Location not found")
	})

	s.Run("error: 名前のないロケーションは422", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/locations", map[string]any{"address": "Bandung"}, "")
		httptest.AssertFieldErrors(s.T(), rec, "name")
	})
}

func (s *CatalogHandlerTestSuite) TestCreatePackage() {
	locationID := uuid.New()
	body := map[string]any{
		"location_id":     locationID.String(),
		"name":            "Forest Dome",
		"price_per_night": "750000",
		"capacity":        4,
		"facilities":      []string{"Private bathroom"},
	}

	s.Run("success: 201で作成したパッケージを返す", func() {
		s.mockCommands.EXPECT().CreatePackage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req reqdto.CreatePackageRequest) (*queries.PackageView, error) {
				s.Equal(locationID, req.LocationID)
				s.Require().NotNil(req.PricePerNight)
				s.True(req.PricePerNight.Equal(decimal.NewFromInt(750000)))
				s.Nil(req.IsActive)
				return packageView(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/packages", body, "")

		var resp packageEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("Package created successfully", resp.Message)
		s.Equal("forest-dome", resp.Data["slug"])
	})

	s.Run("error: 必須項目の欠落は422", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/packages", map[string]any{"name": "Forest Dome"}, "")
		httptest.AssertFieldErrors(s.T(), rec, "location_id", "price_per_night", "capacity")
	})

	s.Run("error: slugの重複は422", func() {
		s.mockCommands.EXPECT().CreatePackage(gomock.Any(), gomock.Any()).
			Return(nil, shared.FieldValidationError("name", "The name has already been taken."))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/packages", body, "")
		fields := httptest.AssertFieldErrors(s.T(), rec, "name")
		s.Equal([]string{"The name has already been taken."}, fields["name"])
	})
}

func (s *CatalogHandlerTestSuite) TestUpdateAndDeletePackage() {
	id := uuid.New()

	s.Run("success: 部分更新", func() {
		s.mockCommands.EXPECT().UpdatePackage(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req reqdto.UpdatePackageRequest) (*queries.PackageView, error) {
				s.Require().NotNil(req.Capacity)
				s.Equal(6, *req.Capacity)
				s.Nil(req.Name)
				return packageView(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/packages/"+id.String(), map[string]any{"capacity": 6}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 存在しないパッケージの更新は404", func() {
		s.mockCommands.EXPECT().UpdatePackage(gomock.Any(), id, gomock.Any()).Return(nil, queries.ErrPackageNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/packages/"+id.String(), map[string]any{"capacity": 6}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Package not found")
	})

	s.Run("success: 削除", func() {
		s.mockCommands.EXPECT().DeletePackage(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/packages/"+id.String(), nil, "")

		var resp packageEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("Package deleted successfully", resp.Message)
	})

	s.Run("error: 予約のあるパッケージは409", func() {
		s.mockCommands.EXPECT().DeletePackage(gomock.Any(), id).Return(errs.Wrap(commands.ErrPackageHasReservations, "delete package"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/packages/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cannot delete package with existing reservations.")
	})
}

func (s *CatalogHandlerTestSuite) TestDeleteLocation() {
	id := uuid.New()

	s.Run("success: 削除", func() {
		s.mockCommands.EXPECT().DeleteLocation(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/locations/"+id.String(), nil, "")

		var resp packageEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("Location deleted successfully", resp.Message)
	})

	s.Run("error: パッケージのあるロケーションは409", func() {
		s.mockCommands.EXPECT().DeleteLocation(gomock.Any(), id).Return(errs.Wrap(commands.ErrLocationHasPackages, "delete location"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/locations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cannot delete location with existing packages.")
	})

	s.Run("error: 存在しないロケーションは404", func() {
		s.mockCommands.EXPECT().DeleteLocation(gomock.Any(), id).Return(errs.Wrap(queries.ErrLocationNotFound, "delete location"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/locations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Location not found")
	})
}
