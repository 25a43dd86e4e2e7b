//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"glamping-api/internal/domain/reservation"
	"glamping-api/internal/pkg/clock"
	"glamping-api/internal/pkg/config"
	"glamping-api/internal/pkg/errs"
	"glamping-api/internal/usecase/queries"
	"glamping-api/internal/usecase/shared"
	queriesmock "glamping-api/tests/mock/queries"

	"github.com/golang-sql/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var jakarta = time.FixedZone("WIB", 7*60*60)

func date(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func occupancy(in, out string, status reservation.Status) reservation.Occupancy {
	return reservation.Occupancy{
		ReservationID: uuid.New(),
		Stay:          reservation.ReconstructStay(date(in), date(out)),
		Status:        status,
	}
}

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockStore    *queriesmock.MockAvailabilityReadStore
	mockPackages *queriesmock.MockActivePackageChecker
	mockCache    *queriesmock.MockAvailabilityCache
	packageID    uuid.UUID
	queries      queries.AvailabilityQueries
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockAvailabilityReadStore(s.mockCtrl)
	s.mockPackages = queriesmock.NewMockActivePackageChecker(s.mockCtrl)
	s.mockCache = queriesmock.NewMockAvailabilityCache(s.mockCtrl)
	s.packageID = uuid.New()

	cfg := config.BookingConfig{AvailabilityDefaultMonths: 3, AvailabilityMaxDays: 366}
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 23, 30, 0, 0, jakarta))
	s.queries = queries.NewAvailabilityQueries(s.mockStore, s.mockPackages, s.mockCache, clk, jakarta, cfg)
}

func (s *AvailabilityQueriesTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *AvailabilityQueriesTestSuite) expectMiss() {
	s.mockPackages.EXPECT().ActivePackageExists(gomock.Any(), s.packageID).Return(true, nil)
	s.mockCache.EXPECT().Get(gomock.Any(), s.packageID, gomock.Any(), gomock.Any()).Return(queries.CacheLookup{Version: 7}, nil)
	s.mockCache.EXPECT().Set(gomock.Any(), int64(7), gomock.Any()).Return(nil)
}

func (s *AvailabilityQueriesTestSuite) TestGetBookedDates() {
	s.Run("チェックアウト日を含めて日ごとに展開する", func() {
		start, end := date("2025-06-01"), date("2025-06-30")
		s.expectMiss()
		s.mockStore.EXPECT().Occupancies(gomock.Any(), s.packageID, gomock.Any()).Return([]reservation.Occupancy{
			occupancy("2025-06-10", "2025-06-12", reservation.StatusConfirmed),
			occupancy("2025-06-20", "2025-06-21", reservation.StatusPending),
		}, nil)

		view, err := s.queries.GetBookedDates(context.Background(), s.packageID, &start, &end)
		s.Require().NoError(err)

		want := []queries.BookedDateView{
			{Date: date("2025-06-10"), Status: "confirmed"},
			{Date: date("2025-06-11"), Status: "confirmed"},
			{Date: date("2025-06-12"), Status: "confirmed"},
			{Date: date("2025-06-20"), Status: "pending"},
			{Date: date("2025-06-21"), Status: "pending"},
		}
		if diff := cmp.Diff(want, view.BookedDates); diff != "" {
			s.Failf("booked dates mismatch", "(-want +got):\n%s", diff)
		}
		s.Equal(start, view.StartDate)
		s.Equal(end, view.EndDate)
	})

	s.Run("同じ日が重複した場合はより強いステータスを残す", func() {
		start, end := date("2025-06-01"), date("2025-06-30")
		s.expectMiss()
		s.mockStore.EXPECT().Occupancies(gomock.Any(), s.packageID, gomock.Any()).Return([]reservation.Occupancy{
			occupancy("2025-06-10", "2025-06-11", reservation.StatusPending),
			occupancy("2025-06-11", "2025-06-12", reservation.StatusConfirmed),
		}, nil)

		view, err := s.queries.GetBookedDates(context.Background(), s.packageID, &start, &end)
		s.Require().NoError(err)
		s.Require().Len(view.BookedDates, 3)
		s.Equal("confirmed", view.BookedDates[1].Status)
	})

	s.Run("範囲を指定しない場合は今日から3か月", func() {
		s.expectMiss()
		s.mockStore.EXPECT().Occupancies(gomock.Any(), s.packageID, gomock.Any()).Return(nil, nil)

		view, err := s.queries.GetBookedDates(context.Background(), s.packageID, nil, nil)
		s.Require().NoError(err)
		s.Equal(date("2025-06-01"), view.StartDate)
		s.Equal(date("2025-09-01"), view.EndDate)
		s.NotNil(view.BookedDates)
		s.Empty(view.BookedDates)
	})

	s.Run("キャッシュにあればストアを読まない", func() {
		start, end := date("2025-06-01"), date("2025-06-30")
		cached := &queries.AvailabilityView{PackageID: s.packageID, StartDate: start, EndDate: end}
		s.mockPackages.EXPECT().ActivePackageExists(gomock.Any(), s.packageID).Return(true, nil)
		s.mockCache.EXPECT().Get(gomock.Any(), s.packageID, start, end).Return(queries.CacheLookup{View: cached, Version: 2, Hit: true}, nil)

		view, err := s.queries.GetBookedDates(context.Background(), s.packageID, &start, &end)
		s.Require().NoError(err)
		s.Same(cached, view)
	})

	s.Run("キャッシュの読み取り障害ではストアにフォールバックし書き戻さない", func() {
		start, end := date("2025-06-01"), date("2025-06-30")
		s.mockPackages.EXPECT().ActivePackageExists(gomock.Any(), s.packageID).Return(true, nil)
		s.mockCache.EXPECT().Get(gomock.Any(), s.packageID, start, end).Return(queries.CacheLookup{}, errors.New("redis down"))
		s.mockStore.EXPECT().Occupancies(gomock.Any(), s.packageID, gomock.Any()).Return(nil, nil)
		s.mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.queries.GetBookedDates(context.Background(), s.packageID, &start, &end)
		s.NoError(err)
	})

	s.Run("キャッシュの書き込み障害は無視する", func() {
		start, end := date("2025-06-01"), date("2025-06-30")
		s.mockPackages.EXPECT().ActivePackageExists(gomock.Any(), s.packageID).Return(true, nil)
		s.mockCache.EXPECT().Get(gomock.Any(), s.packageID, start, end).Return(queries.CacheLookup{Version: 1}, nil)
		s.mockStore.EXPECT().Occupancies(gomock.Any(), s.packageID, gomock.Any()).Return(nil, nil)
		s.mockCache.EXPECT().Set(gomock.Any(), int64(1), gomock.Any()).Return(errors.New("redis down"))

		_, err := s.queries.GetBookedDates(context.Background(), s.packageID, &start, &end)
		s.NoError(err)
	})

	s.Run("ミス時は読み取り時点のバージョンで書き戻す", func() {
		start, end := date("2025-06-01"), date("2025-06-30")
		s.mockPackages.EXPECT().ActivePackageExists(gomock.Any(), s.packageID).Return(true, nil)
		s.mockCache.EXPECT().Get(gomock.Any(), s.packageID, start, end).Return(queries.CacheLookup{Version: 3}, nil)
		s.mockStore.EXPECT().Occupancies(gomock.Any(), s.packageID, gomock.Any()).Return(nil, nil)
		s.mockCache.EXPECT().Set(gomock.Any(), int64(3), gomock.Any()).Return(nil)

		_, err := s.queries.GetBookedDates(context.Background(), s.packageID, &start, &end)
		s.NoError(err)
	})

	s.Run("非公開または存在しないパッケージはNotFound", func() {
		s.mockPackages.EXPECT().ActivePackageExists(gomock.Any(), s.packageID).Return(false, nil)

		_, err := s.queries.GetBookedDates(context.Background(), s.packageID, nil, nil)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("終了日が開始日より前ならend_dateのエラー", func() {
		start, end := date("2025-06-30"), date("2025-06-01")

		_, err := s.queries.GetBookedDates(context.Background(), s.packageID, &start, &end)
		fields, ok := shared.AsValidationError(err)
		s.Require().True(ok)
		s.NotEmpty(fields["end_date"])
	})

	s.Run("長すぎる範囲は拒否される", func() {
		start, end := date("2025-06-01"), date("2026-12-31")

		_, err := s.queries.GetBookedDates(context.Background(), s.packageID, &start, &end)
		fields, ok := shared.AsValidationError(err)
		s.Require().True(ok)
		s.Equal([]string{"The requested date range is too large."}, fields["end_date"])
	})
}
