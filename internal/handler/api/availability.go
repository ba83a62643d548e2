package api

import (
	"net/http"

	"homefix-scheduling/internal/domain/schedule"
	resdto "homefix-scheduling/internal/handler/dto/response"
	"homefix-scheduling/internal/handler/httperr"
	"homefix-scheduling/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
	appointmentQueries  queries.AppointmentQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries, appointmentQueries queries.AppointmentQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
		appointmentQueries:  appointmentQueries,
	}
}

// @Summary Get available slots
// @Description List free slots for a resource on a date, in day order
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param resourceId query string true "Resource ID"
// @Param date query string true "Service date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Query("resourceId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}

	day, err := schedule.ParseDay(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.availabilityQueries.GetAvailableSlots(c.Request.Context(), resourceID, day)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary List resource appointments
// @Description List appointments for a resource on a date (staff only)
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param date query string true "Service date (YYYY-MM-DD)"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /resources/{id}/appointments [get]
func (h *AvailabilityHandler) ListResourceDay(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}

	day, err := schedule.ParseDay(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	items, err := h.appointmentQueries.ListByResourceDay(c.Request.Context(), resourceID, day)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	resp := make([]*resdto.AppointmentResponse, len(items))
	for i, item := range items {
		resp[i] = resdto.FromAppointmentView(item)
	}
	c.JSON(http.StatusOK, resp)
}
