package server

import (
	"context"
	"net/http"
	"time"

	"studioslot/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "studioslot"

// HealthCheck is a named dependency probe, e.g. a database ping.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Mailer queues an ad-hoc email.
type Mailer interface {
	Send(ctx context.Context, to, name, subject, body string) error
}

// @Summary      Health check
// @Description  Pings storage and the queue; 503 when any check fails.
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Failure      503 {object} api.HealthResponse
// @Router       /health [get]
func Health(checks ...HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		resp := api.HealthResponse{Status: "healthy", Service: serviceName}
		status := http.StatusOK
		for _, hc := range checks {
			if resp.Checks == nil {
				resp.Checks = make(map[string]string, len(checks))
			}
			if err := hc.Check(ctx); err != nil {
				resp.Checks[hc.Name] = err.Error()
				resp.Status = "unhealthy"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[hc.Name] = "ok"
		}

		c.JSON(status, resp)
	}
}

type TestEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary      Queue a test email
// @Tags         system
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body server.TestEmailRequest true "Recipient"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/test-email [post]
func TestEmail(mailer Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TestEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			api.RespondBindError(c, err)
			return
		}

		if err := mailer.Send(c.Request.Context(), req.Email, "Studio Admin", "Test email", "Email delivery is working."); err != nil {
			api.RespondError(c, err, "Failed to queue email")
			return
		}

		c.JSON(http.StatusOK, api.MessageResponse{Message: "Email queued successfully"})
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
