package server

import (
	"context"
	"net/http"
	"time"

	"studioslot/internal/admin"
	"studioslot/internal/auth"
	"studioslot/internal/blocked"
	"studioslot/internal/booking"
	"studioslot/internal/client"
	"studioslot/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Bookings *booking.Handler
	Blocked  *blocked.Handler
	Clients  *client.Handler
	Admin    *admin.Handler
	Mailer   Mailer
}

type Server struct {
	router *gin.Engine
	http   *http.Server
}

func New(cfg *config.Config, h Handlers, checks ...HealthCheck) *Server {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		corsMiddleware(cfg.CORSOrigins),
	)

	router.GET("/health", Health(checks...))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	limiter := RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	public := router.Group("/api")
	{
		public.POST("/bookings", limiter, h.Bookings.Create)
		public.POST("/engineer-request", limiter, h.Bookings.EngineerRequest)
		public.POST("/mixing-request", limiter, h.Bookings.MixingRequest)
		public.GET("/availability", h.Bookings.Availability)
		public.GET("/blocked-slots", h.Blocked.Grouped)

		public.POST("/admin/login", limiter, h.Admin.Login)
		public.POST("/admin/refresh", limiter, h.Admin.Refresh)
	}

	adminGroup := router.Group("/api/admin")
	adminGroup.Use(auth.AuthMiddleware(cfg.JWTSecret), auth.RequireRole(auth.RoleAdmin))
	{
		adminGroup.GET("/bookings", h.Bookings.List)
		adminGroup.GET("/bookings/export", h.Bookings.Export)
		adminGroup.GET("/bookings/:id", h.Bookings.Get)
		adminGroup.PUT("/bookings/:id", h.Bookings.UpdateStatus)
		adminGroup.DELETE("/bookings/:id", h.Bookings.Delete)
		adminGroup.GET("/stats", h.Bookings.Stats)

		adminGroup.GET("/blocked-slots", h.Blocked.List)
		adminGroup.POST("/blocked-slots", h.Blocked.Create)
		adminGroup.DELETE("/blocked-slots", h.Blocked.DeleteByDate)
		adminGroup.DELETE("/blocked-slots/:id", h.Blocked.Delete)
		adminGroup.POST("/bulk-block", h.Blocked.BulkBlock)

		adminGroup.GET("/clients", h.Clients.List)
		adminGroup.GET("/clients/:id", h.Clients.Get)
		adminGroup.PATCH("/clients/:id", h.Clients.Update)

		if h.Mailer != nil {
			adminGroup.POST("/test-email", TestEmail(h.Mailer))
		}
	}

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	})
}
