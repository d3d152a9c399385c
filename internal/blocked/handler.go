package blocked

import (
	"fmt"
	"net/http"
	"strconv"

	"studioslot/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	api.RegisterValidators()
	return &Handler{
		service: service,
	}
}

// @Summary      Blocked slots for the calendar
// @Description  Blocked time labels grouped by date
// @Tags         availability
// @Produce      json
// @Success      200 {object} map[string][]string
// @Failure      500 {object} api.ErrorResponse
// @Router       /blocked-slots [get]
func (h *Handler) Grouped(c *gin.Context) {
	grouped, err := h.service.Grouped(c.Request.Context())
	if err != nil {
		api.RespondError(c, err, "Failed to fetch blocked slots")
		return
	}

	c.JSON(http.StatusOK, grouped)
}

// @Summary      List blocked slots
// @Tags         admin,blocked-slots
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} blocked.BlockedSlot
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/blocked-slots [get]
func (h *Handler) List(c *gin.Context) {
	slots, err := h.service.List(c.Request.Context())
	if err != nil {
		api.RespondError(c, err, "Failed to fetch blocked slots")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// @Summary      Block a time slot
// @Tags         admin,blocked-slots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body blocked.CreateRequest true "Slot to block"
// @Success      201 {object} blocked.CreateResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/blocked-slots [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	slot, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err, "Failed to block time slot")
		return
	}

	c.JSON(http.StatusCreated, CreateResponse{
		Message:     "Time slot blocked successfully",
		BlockedSlot: slot,
	})
}

// @Summary      Bulk block time slots
// @Description  Blocks every selected time on every selected weekday in an inclusive date range. Already blocked slots are skipped.
// @Tags         admin,blocked-slots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body blocked.BulkBlockRequest true "Bulk block payload"
// @Success      200 {object} blocked.BulkBlockResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/bulk-block [post]
func (h *Handler) BulkBlock(c *gin.Context) {
	var req BulkBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	n, err := h.service.BulkBlock(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err, "Failed to block time slots")
		return
	}

	c.JSON(http.StatusOK, BulkBlockResponse{
		Message:      fmt.Sprintf("Successfully blocked %d time slots", n),
		BlockedCount: n,
	})
}

// @Summary      Remove a blocked slot
// @Tags         admin,blocked-slots
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Blocked slot ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/blocked-slots/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid blocked slot ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		api.RespondError(c, err, "Failed to remove blocked slot")
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Blocked slot removed successfully"})
}

// @Summary      Remove all blocked slots on a date
// @Tags         admin,blocked-slots
// @Produce      json
// @Security     BearerAuth
// @Param        date query string true "Date (YYYY-MM-DD)"
// @Success      200 {object} blocked.DeleteByDateResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/blocked-slots [delete]
func (h *Handler) DeleteByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	n, err := h.service.DeleteByDate(c.Request.Context(), date)
	if err != nil {
		api.RespondError(c, err, "Failed to remove blocked slots")
		return
	}

	c.JSON(http.StatusOK, DeleteByDateResponse{
		Message:      fmt.Sprintf("Removed %d blocked slots", n),
		DeletedCount: n,
	})
}
