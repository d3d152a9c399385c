package booking

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"studioslot/internal/api"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	api.RegisterValidators()
	return &Handler{
		service: service,
	}
}

// @Summary      Request a studio booking
// @Description  Creates a pending booking after checking the slot against confirmed bookings and blocked slots.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body booking.CreateBookingRequest true "Booking request"
// @Success      201 {object} booking.CreateBookingResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      429 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary      Ask for an engineer
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        request body booking.ServiceRequest true "Engineer request"
// @Success      201 {object} booking.ServiceRequestResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /engineer-request [post]
func (h *Handler) EngineerRequest(c *gin.Context) {
	h.serviceRequest(c, StatusEngineerRequest, "Engineer request submitted successfully")
}

// @Summary      Ask for mixing
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        request body booking.ServiceRequest true "Mixing request"
// @Success      201 {object} booking.ServiceRequestResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /mixing-request [post]
func (h *Handler) MixingRequest(c *gin.Context) {
	h.serviceRequest(c, StatusMixingRequest, "Mixing request submitted successfully")
}

func (h *Handler) serviceRequest(c *gin.Context, kind, message string) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	b, err := h.service.CreateServiceRequest(c.Request.Context(), kind, req)
	if err != nil {
		api.RespondError(c, err, "Failed to submit request")
		return
	}

	c.JSON(http.StatusCreated, ServiceRequestResponse{Message: message, Request: b})
}

// @Summary      Unavailable slots
// @Description  Every slot held by a confirmed booking or an administrator block, grouped by date in clock order.
// @Tags         availability
// @Produce      json
// @Success      200 {object} map[string][]string
// @Failure      500 {object} api.ErrorResponse
// @Router       /availability [get]
func (h *Handler) Availability(c *gin.Context) {
	avail, err := h.service.Availability(c.Request.Context())
	if err != nil {
		api.RespondError(c, err, "Failed to compute availability")
		return
	}

	c.JSON(http.StatusOK, avail)
}

// @Summary      List bookings
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Filter by status"
// @Success      200 {array} booking.Booking
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/bookings [get]
func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		api.RespondError(c, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// @Summary      Get a booking
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Booking ID"
// @Success      200 {object} booking.Booking
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/bookings/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err, "Failed to fetch booking")
		return
	}

	c.JSON(http.StatusOK, b)
}

// @Summary      Change booking status
// @Description  Confirming re-checks the slot against other confirmed bookings and blocks unless force is set.
// @Tags         admin,bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Booking ID"
// @Param        request body booking.UpdateStatusRequest true "New status"
// @Success      200 {object} booking.UpdateStatusResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/bookings/{id} [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		api.RespondError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, UpdateStatusResponse{
		Message: fmt.Sprintf("Booking %s successfully", req.Status),
		Booking: b,
	})
}

// @Summary      Delete a booking
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Booking ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/bookings/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		api.RespondError(c, err, "Failed to delete booking")
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking deleted successfully"})
}

// @Summary      Dashboard counters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} booking.Stats
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	st, err := h.service.Stats(c.Request.Context())
	if err != nil {
		api.RespondError(c, err, "Failed to load stats")
		return
	}

	c.JSON(http.StatusOK, st)
}

// @Summary      Export bookings
// @Description  Spreadsheet of bookings, optionally filtered by status
// @Tags         admin,bookings
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        status query string false "Filter by status"
// @Success      200 {file} file
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/bookings/export [get]
func (h *Handler) Export(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		api.RespondError(c, err, "Failed to fetch bookings")
		return
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, bookings); err != nil {
		api.RespondError(c, err, "Failed to build export")
		return
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func bookingID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return 0, false
	}
	return id, true
}
