//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"glamping-api/internal/handler/api"
	"glamping-api/internal/handler/validation"
	"glamping-api/internal/usecase/queries"
	"glamping-api/internal/usecase/shared"
	"glamping-api/tests/common/httptest"
	queriesmock "glamping-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAvailabilityRouter(t *testing.T) (*gin.Engine, *queriesmock.MockAvailabilityQueries) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.RegisterTagNames()

	ctrl := gomock.NewController(t)
	mockQueries := queriesmock.NewMockAvailabilityQueries(ctrl)
	router := gin.New()
	router.GET("/packages/:id/availability", api.NewAvailabilityHandler(mockQueries).GetAvailability)
	return router, mockQueries
}

func TestGetAvailability(t *testing.T) {
	packageID := uuid.New()
	url := "/packages/" + packageID.String() + "/availability"

	t.Run("success: 予約済みの日付を返す", func(t *testing.T) {
		router, mockQueries := newAvailabilityRouter(t)
		start := civil.Date{Year: 2025, Month: 6, Day: 1}
		end := civil.Date{Year: 2025, Month: 6, Day: 30}
		mockQueries.EXPECT().GetBookedDates(gomock.Any(), packageID, &start, &end).Return(&queries.AvailabilityView{
			PackageID: packageID,
			StartDate: start,
			EndDate:   end,
			BookedDates: []queries.BookedDateView{
				{Date: civil.Date{Year: 2025, Month: 6, Day: 10}, Status: "confirmed"},
				{Date: civil.Date{Year: 2025, Month: 6, Day: 11}, Status: "confirmed"},
			},
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, url+"?start_date=2025-06-01&end_date=2025-06-30", nil, "")

		var resp struct {
			Data struct {
				StartDate   string `json:"start_date"`
				BookedDates []struct {
					Date   string `json:"date"`
					Status string `json:"status"`
				} `json:"booked_dates"`
			} `json:"data"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		assert.Equal(t, "2025-06-01", resp.Data.StartDate)
		require.Len(t, resp.Data.BookedDates, 2)
		assert.Equal(t, "2025-06-10", resp.Data.BookedDates[0].Date)
		assert.Equal(t, "confirmed", resp.Data.BookedDates[0].Status)
	})

	t.Run("success: 範囲の省略はnilで渡す", func(t *testing.T) {
		router, mockQueries := newAvailabilityRouter(t)
		mockQueries.EXPECT().GetBookedDates(gomock.Any(), packageID, gomock.Nil(), gomock.Nil()).
			Return(&queries.AvailabilityView{PackageID: packageID, BookedDates: []queries.BookedDateView{}}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		assert.Contains(t, rec.Body.String(), `"booked_dates":[]`)
	})

	t.Run("error: 日付の形式不正は422", func(t *testing.T) {
		router, _ := newAvailabilityRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, url+"?start_date=06/01/2025", nil, "")
		httptest.AssertFieldErrors(t, rec, "start_date")
	})

	t.Run("error: 範囲エラーは422", func(t *testing.T) {
		router, mockQueries := newAvailabilityRouter(t)
		mockQueries.EXPECT().GetBookedDates(gomock.Any(), packageID, gomock.Any(), gomock.Any()).
			Return(nil, shared.FieldValidationError("end_date", "The end date must be a date after or equal to start date."))

		rec := httptest.PerformRequest(t, router, http.MethodGet, url+"?start_date=2025-06-30&end_date=2025-06-01", nil, "")
		httptest.AssertFieldErrors(t, rec, "end_date")
	})

	t.Run("error: 非公開のパッケージは404", func(t *testing.T) {
		router, mockQueries := newAvailabilityRouter(t)
		mockQueries.EXPECT().GetBookedDates(gomock.Any(), packageID, gomock.Any(), gomock.Any()).Return(nil, queries.ErrPackageNotFound)

		rec := httptest.PerformRequest(t, router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Package not found")
	})

	t.Run("error: UUIDでないIDは404", func(t *testing.T) {
		router, _ := newAvailabilityRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/packages/forest-dome/availability", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Package not found")
	})
}
