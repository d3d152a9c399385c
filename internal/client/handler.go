package client

import (
	"errors"
	"net/http"
	"strconv"

	"studioslot/internal/api"

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

// @Summary      List clients
// @Tags         admin,clients
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} client.Client
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/clients [get]
func (h *Handler) List(c *gin.Context) {
	clients, err := h.service.List(c.Request.Context())
	if err != nil {
		api.RespondError(c, err, "Failed to fetch clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// @Summary      Get a client
// @Tags         admin,clients
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Client ID"
// @Success      200 {object} client.Client
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/clients/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid client ID"})
		return
	}

	cl, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Client not found"})
			return
		}
		api.RespondError(c, err, "Failed to fetch client")
		return
	}

	c.JSON(http.StatusOK, cl)
}

// @Summary      Update client admin fields
// @Description  Admin notes, flagging and ID verification status
// @Tags         admin,clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Client ID"
// @Param        request body client.UpdateClientRequest true "Fields to change"
// @Success      200 {object} client.Client
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/clients/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid client ID"})
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	cl, err := h.service.UpdateAdmin(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Client not found"})
			return
		}
		api.RespondError(c, err, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, cl)
}
