package admin

import (
	"net/http"

	"studioslot/internal/api"
	"studioslot/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Login godoc
// @Summary      Administrator login
// @Description  Exchanges the studio admin password for a bearer token pair.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body admin.LoginRequest true "Password"
// @Success      200 {object} admin.TokenResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if api.IsKind(err, api.KindUnauthorized) {
			logger.Warn("admin login failed", "ip", c.ClientIP(), "error", err)
		}
		api.RespondError(c, err, "Failed to log in")
		return
	}

	logger.Info("admin logged in", "ip", c.ClientIP())
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary      Refresh the admin access token
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body admin.RefreshRequest true "Refresh token"
// @Success      200 {object} admin.TokenResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /admin/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err, "Failed to refresh token")
		return
	}

	c.JSON(http.StatusOK, resp)
}
