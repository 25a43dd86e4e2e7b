//go:build unit

package api_test

import (
	"errors"
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
	"glamping-api/tests/common/testutil"
	commandsmock "glamping-api/tests/mock/commands"
	queriesmock "glamping-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.RegisterTagNames()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	h := api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", h.CreateReservation)
	s.router.POST("/reservations/check", h.CheckReservation)
	s.router.GET("/admin/reservations", h.ListReservations)
	s.router.GET("/admin/reservations/:id", h.GetReservation)
	s.router.PATCH("/admin/reservations/:id/status", h.UpdateStatus)
}

func (s *ReservationHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func reservationView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           uuid.New(),
		BookingCode:  "GC-AB12CD34",
		GuestName:    "Budi Santoso",
		GuestEmail:   "budi@example.com",
		GuestPhone:   "+628123456789",
		CheckInDate:  civil.Date{Year: 2025, Month: 6, Day: 10},
		CheckOutDate: civil.Date{Year: 2025, Month: 6, Day: 12},
		Nights:       2,
		GuestsCount:  2,
		TotalPrice:   decimal.RequireFromString("1500000"),
		Status:       "pending",
		Package: queries.ReservationPackage{
			ID:            uuid.New(),
			Name:          "Forest Dome",
			PricePerNight: decimal.RequireFromString("750000"),
			Capacity:      4,
		},
	}
}

func validReservationRequest(packageID uuid.UUID) reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		PackageID:    packageID.String(),
		GuestName:    "Budi Santoso",
		GuestEmail:   "budi@example.com",
		GuestPhone:   "+628123456789",
		CheckInDate:  "2025-06-10",
		CheckOutDate: "2025-06-12",
		GuestsCount:  2,
	}
}

type reservationEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	view := reservationView()
	req := validReservationRequest(view.Package.ID)

	s.Run("success: 201で予約を返す", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), req).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		var body reservationEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Success)
		s.Equal("Reservation created successfully", body.Message)
		s.Equal("GC-AB12CD34", body.Data["booking_code"])
		s.Equal("2025-06-10", body.Data["check_in_date"])
		s.Equal("1500000.00", body.Data["total_price"])
		s.Equal("pending", body.Data["status"])
	})

	s.Run("error: 入力エラーはフィールドごとに422", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
			field  string
		}{
			{name: "package_id 欠落", mutate: testutil.Field("package_id", nil), field: "package_id"},
			{name: "package_id UUIDでない", mutate: testutil.Field("package_id", "abc"), field: "package_id"},
			{name: "guest_email 形式不正", mutate: testutil.Field("guest_email", "nope"), field: "guest_email"},
			{name: "guest_phone 長すぎる", mutate: testutil.Field("guest_phone", "+62812345678901234567"), field: "guest_phone"},
			{name: "check_in_date 形式不正", mutate: testutil.Field("check_in_date", "10/06/2025"), field: "check_in_date"},
			{name: "guests_count 0", mutate: testutil.Field("guests_count", 0), field: "guests_count"},
			{name: "guests_count 文字列", mutate: testutil.Field("guests_count", "two"), field: "guests_count"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), req, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertFieldErrors(s.T(), rec, tc.field)
			})
		}
	})

	s.Run("error: 日付の重複は専用メッセージで422", func() {
		conflict := errs.Mark(
			shared.NewValidationError(shared.FieldErrors{"check_in_date": {commands.MsgDatesUnavailable}}),
			errs.ErrDatesUnavailable,
		)
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), req).Return(nil, errs.Wrap(conflict, "create reservation"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, commands.MsgDatesUnavailable)
		httptest.AssertFieldErrors(s.T(), rec, "check_in_date")
	})

	s.Run("error: 定員超過はその理由をメッセージにする", func() {
		over := errs.Mark(
			shared.NewValidationError(shared.FieldErrors{"guests_count": {"Maximum capacity for this package is 4 guests."}}),
			errs.ErrCapacityExceeded,
		)
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), req).Return(nil, over)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Maximum capacity for this package is 4 guests.")
	})

	s.Run("error: 想定外のエラーは500", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), req).Return(nil, errors.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ReservationHandlerTestSuite) TestCheckReservation() {
	url := "/reservations/check"
	body := map[string]any{"booking_code": "GC-AB12CD34", "guest_email": "budi@example.com"}

	s.Run("success: 予約を返す", func() {
		s.mockQueries.EXPECT().CheckBooking(gomock.Any(), "GC-AB12CD34", "budi@example.com").Return(reservationView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var resp reservationEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("Budi Santoso", resp.Data["guest_name"])
	})

	s.Run("error: 見つからなければ404", func() {
		s.mockQueries.EXPECT().CheckBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Please check your booking code and email.")
	})

	s.Run("error: メール欠落は422", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"booking_code": "GC-AB12CD34"}, "")
		httptest.AssertFieldErrors(s.T(), rec, "guest_email")
	})
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	s.Run("success: ページ情報をmetaに入れる", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f queries.ReservationFilter) (*queries.ReservationPage, error) {
				s.Require().NotNil(f.Status)
				s.Equal("confirmed", *f.Status)
				s.Nil(f.Search)
				s.Equal(2, f.Page)
				s.Equal(10, f.PerPage)
				return &queries.ReservationPage{
					Items:   []*queries.ReservationListItem{{BookingCode: "GC-AB12CD34", TotalPrice: decimal.NewFromInt(10)}},
					Total:   25,
					Page:    2,
					PerPage: 10,
				}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations?status=confirmed&page=2&per_page=10", nil, "")

		var resp struct {
			Data []map[string]any `json:"data"`
			Meta map[string]any   `json:"meta"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Data, 1)
		s.InDelta(3, resp.Meta["last_page"], 0)
		s.InDelta(25, resp.Meta["total"], 0)
	})

	s.Run("error: 不明なステータスは422", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations?status=archived", nil, "")
		httptest.AssertFieldErrors(s.T(), rec, "status")
	})

	s.Run("error: per_pageが上限超えなら422", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations?per_page=500", nil, "")
		httptest.AssertFieldErrors(s.T(), rec, "per_page")
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("error: UUIDでないIDは404", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 存在しない予約は404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String() + "/status"

	s.Run("success: 更新後の予約を返す", func() {
		view := reservationView()
		view.Status = "confirmed"
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, reqdto.UpdateReservationStatusRequest{Status: "confirmed"}).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"}, "")

		var resp reservationEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("confirmed", resp.Data["status"])
	})

	s.Run("error: 許可されないステータスは422", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "archived"}, "")
		httptest.AssertFieldErrors(s.T(), rec, "status")
	})

	s.Run("error: 遷移できない場合は422", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, gomock.Any()).
			Return(nil, shared.FieldValidationError("status", "Cannot change reservation status from completed to pending."))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "pending"}, "")
		fields := httptest.AssertFieldErrors(s.T(), rec, "status")
		s.Equal([]string{"Cannot change reservation status from completed to pending."}, fields["status"])
	})
}
