package api

import (
	"net/http"

	reqdto "glamping-api/internal/handler/dto/request"
	resdto "glamping-api/internal/handler/dto/response"
	"glamping-api/internal/handler/httperr"
	"glamping-api/internal/pkg/ptr"
	"glamping-api/internal/usecase/commands"
	"glamping-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgReservationNotFound = "Reservation not found"
	msgCheckNotFound       = "Reservation not found. Please check your booking code and email."
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Books a package for the given dates. The new reservation starts as pending.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.Envelope{data=resdto.ReservationResponse}
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.reservationCommands.CreateReservation(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, msgPackageNotFound)
		return
	}

	c.JSON(http.StatusCreated, resdto.OKWithMessage("Reservation created successfully", resdto.FromReservationView(view)))
}

// @Summary Check reservation
// @Description Guest self-service lookup by booking code and e-mail
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CheckReservationRequest true "Lookup"
// @Success 200 {object} resdto.Envelope{data=resdto.ReservationResponse}
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/check [post]
func (h *ReservationHandler) CheckReservation(c *gin.Context) {
	var req reqdto.CheckReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.reservationQueries.CheckBooking(c.Request.Context(), req.BookingCode, req.GuestEmail)
	if err != nil {
		abortWithUsecaseError(c, err, msgCheckNotFound)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromReservationView(view)))
}

// @Summary List reservations
// @Tags admin-reservations
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter" Enums(pending, confirmed, cancelled, completed)
// @Param search query string false "Booking code, guest name or e-mail"
// @Param page query int false "Page (1-based)"
// @Param per_page query int false "Page size (max 100)"
// @Success 200 {object} resdto.Envelope{data=[]resdto.ReservationListResponse}
// @Failure 422 {object} httperr.Response
// @Router /admin/reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}

	page, err := h.reservationQueries.List(c.Request.Context(), queries.ReservationFilter{
		Status:  ptr.NonBlank(&q.Status),
		Search:  ptr.NonBlank(&q.Search),
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		abortWithUsecaseError(c, err, msgReservationNotFound)
		return
	}

	items, meta := resdto.FromReservationPage(page)
	c.JSON(http.StatusOK, resdto.Envelope{Success: true, Data: items, Meta: meta})
}

// @Summary Get reservation
// @Tags admin-reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.Envelope{data=resdto.ReservationResponse}
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseID(c, msgReservationNotFound)
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, msgReservationNotFound)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromReservationView(view)))
}

// @Summary Update reservation status
// @Tags admin-reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "New status"
// @Success 200 {object} resdto.Envelope{data=resdto.ReservationResponse}
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/reservations/{id}/status [patch]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, msgReservationNotFound)
	if !ok {
		return
	}

	var req reqdto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.reservationCommands.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		abortWithUsecaseError(c, err, msgReservationNotFound)
		return
	}

	c.JSON(http.StatusOK, resdto.OKWithMessage("Reservation status updated", resdto.FromReservationView(view)))
}

// parseID answers 404 for ids that cannot exist.
func parseID(c *gin.Context, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, notFound, nil)
		return uuid.Nil, false
	}
	return id, true
}
