//go:build unit

package queries_test

import (
	"context"
	"testing"

	"glamping-api/internal/pkg/errs"
	"glamping-api/internal/usecase/queries"
	queriesmock "glamping-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockCatalogReadStore
	queries   queries.CatalogQueries
}

func TestCatalogQueriesSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesTestSuite))
}

func (s *CatalogQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockCatalogReadStore(s.mockCtrl)
	s.queries = queries.NewCatalogQueries(s.mockStore)
}

func (s *CatalogQueriesTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *CatalogQueriesTestSuite) TestListPackages() {
	s.Run("空の検索語はnilにする", func() {
		blank := "  "
		s.mockStore.EXPECT().ListActivePackages(gomock.Any(), queries.PackageFilter{}).Return([]*queries.PackageView{}, nil)

		views, err := s.queries.ListPackages(context.Background(), queries.PackageFilter{Search: &blank})
		s.Require().NoError(err)
		s.Empty(views)
	})

	s.Run("ロケーションと検索語で絞り込む", func() {
		locationID := uuid.New()
		search := " dome "
		s.mockStore.EXPECT().ListActivePackages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.PackageFilter) ([]*queries.PackageView, error) {
				s.Equal(locationID, *f.LocationID)
				s.Equal("dome", *f.Search)
				return []*queries.PackageView{{Name: "Forest Dome"}}, nil
			})

		views, err := s.queries.ListPackages(context.Background(), queries.PackageFilter{LocationID: &locationID, Search: &search})
		s.Require().NoError(err)
		s.Len(views, 1)
	})
}

func (s *CatalogQueriesTestSuite) TestFeaturedPackages() {
	s.mockStore.EXPECT().ListFeaturedPackages(gomock.Any(), int32(queries.FeaturedPackagesLimit)).Return(nil, nil)

	_, err := s.queries.FeaturedPackages(context.Background())
	s.NoError(err)
}

func (s *CatalogQueriesTestSuite) TestNotFoundMapping() {
	id := uuid.New()

	s.Run("非公開パッケージのslugはErrPackageNotFound", func() {
		s.mockStore.EXPECT().FindActivePackageBySlug(gomock.Any(), "hidden").Return(nil, notFound())

		_, err := s.queries.GetPackageBySlug(context.Background(), "hidden")
		s.True(errs.Is(err, queries.ErrPackageNotFound))
	})

	s.Run("公開ロケーションがなければErrLocationNotFound", func() {
		s.mockStore.EXPECT().FindActiveLocation(gomock.Any(), id).Return(nil, notFound())

		_, err := s.queries.GetLocation(context.Background(), id)
		s.True(errs.Is(err, queries.ErrLocationNotFound))
	})

	s.Run("管理画面では非公開パッケージも取得できる", func() {
		s.mockStore.EXPECT().FindPackageByID(gomock.Any(), id).Return(&queries.PackageView{ID: id, IsActive: false}, nil)

		view, err := s.queries.AdminGetPackage(context.Background(), id)
		s.Require().NoError(err)
		s.False(view.IsActive)
	})

	s.Run("管理画面で存在しないロケーションはNotFound", func() {
		s.mockStore.EXPECT().FindLocationByID(gomock.Any(), id).Return(nil, notFound())

		_, err := s.queries.AdminGetLocation(context.Background(), id)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}
