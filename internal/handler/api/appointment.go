package api

import (
	"errors"
	"net/http"

	"homefix-scheduling/internal/domain/appointment"
	reqdto "homefix-scheduling/internal/handler/dto/request"
	resdto "homefix-scheduling/internal/handler/dto/response"
	"homefix-scheduling/internal/handler/middleware"
	"homefix-scheduling/internal/usecase/commands"
	"homefix-scheduling/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	bookingCommands    commands.BookingCommands
	appointmentQueries queries.AppointmentQueries
}

func NewAppointmentHandler(bookingCommands commands.BookingCommands, appointmentQueries queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{
		bookingCommands:    bookingCommands,
		appointmentQueries: appointmentQueries,
	}
}

// @Summary Book appointment
// @Description Book a slot for a resource on a date
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BookAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(customerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date or slot format",
		})
		return
	}

	view, err := h.bookingCommands.BookAppointment(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Service date is in the past",
			})
		case errors.Is(err, commands.ErrUnknownSlot):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Slot is not part of the service day",
			})
		case errors.Is(err, commands.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is already booked, pick another time",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Get appointment
// @Description Get appointment by ID
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List own appointments
// @Description List appointments for the authenticated customer
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 401 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.appointmentQueries.ListByCustomer(c.Request.Context(), customerID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp := make([]*resdto.AppointmentListResponse, len(items))
	for i, item := range items {
		resp[i] = resdto.FromAppointmentListItem(item)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update appointment status
// @Description Advance the appointment lifecycle (staff only)
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	var req reqdto.UpdateStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.UpdateStatus(c.Request.Context(), id, appointment.Status(req.Status), actor)
	if err != nil {
		h.writeTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Cancel appointment
// @Description Cancel an appointment; customers may cancel their own
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	view, err := h.bookingCommands.CancelAppointment(c.Request.Context(), id, actor)
	if err != nil {
		h.writeTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

func (h *AppointmentHandler) writeTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Appointment not found",
		})
	case errors.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to modify this appointment",
		})
	case errors.Is(err, commands.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown appointment status",
		})
	case errors.Is(err, commands.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Status transition not allowed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
