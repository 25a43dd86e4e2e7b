package api

import (
	"net/http"

	reqdto "glamping-api/internal/handler/dto/request"
	resdto "glamping-api/internal/handler/dto/response"
	"glamping-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Package availability
// @Description Booked days of a package within [start_date, end_date]. Defaults to today plus three months.
// @Tags packages
// @Produce json
// @Param id path string true "Package ID"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.Envelope{data=resdto.AvailabilityResponse}
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /packages/{id}/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	id, ok := parseID(c, msgPackageNotFound)
	if !ok {
		return
	}

	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}
	start, end, err := q.Window()
	if err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.availabilityQueries.GetBookedDates(c.Request.Context(), id, start, end)
	if err != nil {
		abortWithUsecaseError(c, err, msgPackageNotFound)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromAvailabilityView(view)))
}
