package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"studioslot/internal/admin"
	"studioslot/internal/auth"
	"studioslot/internal/blocked"
	"studioslot/internal/booking"
	"studioslot/internal/client"
	"studioslot/internal/config"
	"studioslot/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "server-test-secret"

// Stubs embed the interface; only the methods a test hits are implemented.
type stubBookings struct{ booking.Service }

func (stubBookings) Availability(context.Context) (schedule.Availability, error) {
	return schedule.Availability{"2024-06-01": {"2:00 PM"}}, nil
}

func (stubBookings) Stats(context.Context) (*booking.Stats, error) {
	return &booking.Stats{Total: 1}, nil
}

type stubBlocked struct{ blocked.Service }

type stubClients struct{ client.Service }

type recordingMailer struct{ to string }

func (m *recordingMailer) Send(_ context.Context, to, _, _, _ string) error {
	m.to = to
	return nil
}

func newTestServer(t *testing.T, mailer Mailer, checks ...HealthCheck) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Port:          "0",
		JWTSecret:     testSecret,
		RefreshSecret: testSecret + "-refresh",
		CORSOrigins:   []string{"*"},
	}
	srv := New(cfg, Handlers{
		Bookings: booking.NewHandler(stubBookings{}),
		Blocked:  blocked.NewHandler(stubBlocked{}),
		Clients:  client.NewHandler(stubClients{}),
		Admin: admin.NewHandler(admin.NewService(admin.Credentials{
			Password:      "pw",
			AccessSecret:  cfg.JWTSecret,
			RefreshSecret: cfg.RefreshSecret,
		})),
		Mailer: mailer,
	}, checks...)
	return srv.Handler()
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateAccessToken(admin.Subject, auth.RoleAdmin, testSecret)
	require.NoError(t, err)
	return token
}

func TestRoutes_PublicAvailability(t *testing.T) {
	h := newTestServer(t, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/availability", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"2024-06-01":["2:00 PM"]}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRoutes_AdminRequiresToken(t *testing.T) {
	h := newTestServer(t, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	clientToken, err := auth.GenerateAccessToken("someone", "client", testSecret)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+clientToken)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoutes_LoginIsPublic(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(`{"password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_TestEmail(t *testing.T) {
	mailer := &recordingMailer{}
	h := newTestServer(t, mailer)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/test-email", bytes.NewBufferString(`{"email":"me@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "me@example.com", mailer.to)
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		h := newTestServer(t, nil, HealthCheck{Name: "postgres", Check: func(context.Context) error { return nil }})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy","service":"studioslot","checks":{"postgres":"ok"}}`, w.Body.String())
	})

	t.Run("unhealthy", func(t *testing.T) {
		h := newTestServer(t, nil,
			HealthCheck{Name: "postgres", Check: func(context.Context) error { return nil }},
			HealthCheck{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }},
		)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/availability", nil))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
