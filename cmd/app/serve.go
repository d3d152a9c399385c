package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studioslot/internal/admin"
	"studioslot/internal/blocked"
	"studioslot/internal/booking"
	"studioslot/internal/client"
	"studioslot/internal/config"
	"studioslot/internal/db"
	"studioslot/internal/email"
	"studioslot/internal/lock"
	"studioslot/internal/logger"
	"studioslot/internal/server"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the email worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(migrateUp)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "run database migrations on startup")
	return cmd
}

func serve(migrateUp bool) error {
	logger.Init()
	logger.Info("Starting studioslot", "version", version)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		logger.Warn("no admin password configured, admin login is disabled")
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()
	logger.Info("Database connected")

	if migrateUp {
		if err := db.RunMigrations(database, cfg.MigrationsDir); err != nil {
			return err
		}
		logger.Info("Migrations completed")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	var locker lock.Locker = lock.NewMemory()
	if cfg.LockBackend == "redis" {
		locker = lock.NewRedis(rdb, 0)
	}
	logger.Info("Date lock ready", "backend", cfg.LockBackend)

	emailService := email.New(rdb, email.NewSMTPSender(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Pass:     cfg.SMTPPass,
		From:     cfg.EmailFrom,
		FromName: cfg.EmailFromName,
	}), cfg.Studio.Name, cfg.StudioEmail)
	defer emailService.Close()

	clientService := client.NewService(client.NewRepository(database), cfg.Studio)
	blockedService := blocked.NewService(blocked.NewRepository(database))
	bookingService := booking.NewService(
		booking.NewRepository(database),
		clientService,
		blockedService,
		locker,
		emailService,
		booking.Options{StrictOverlap: cfg.StrictOverlap},
	)
	adminService := admin.NewService(admin.Credentials{
		PasswordHash:  cfg.AdminPasswordHash,
		Password:      cfg.AdminPassword,
		AccessSecret:  cfg.JWTSecret,
		RefreshSecret: cfg.RefreshSecret,
	})

	srv := server.New(cfg, server.Handlers{
		Bookings: booking.NewHandler(bookingService),
		Blocked:  blocked.NewHandler(blockedService),
		Clients:  client.NewHandler(clientService),
		Admin:    admin.NewHandler(adminService),
		Mailer:   emailService,
	},
		server.HealthCheck{Name: "postgres", Check: database.PingContext},
		server.HealthCheck{Name: "redis", Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		emailService.Start(ctx)
	}()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serverErr:
		logger.Error("Server error", "error", err)
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during server shutdown", "error", err)
	}
	<-workerDone

	logger.Info("Server stopped")
	return nil
}
