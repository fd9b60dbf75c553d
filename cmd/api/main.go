package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/config"
	appHTTP "github.com/DeFacto365/Protip365-sub004/internal/handler/http"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/cron"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/database"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/jwt"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/sse"
	"github.com/DeFacto365/Protip365-sub004/internal/repository/postgresql"
	dashboardService "github.com/DeFacto365/Protip365-sub004/internal/service/dashboard"
	employerService "github.com/DeFacto365/Protip365-sub004/internal/service/employer"
	profileService "github.com/DeFacto365/Protip365-sub004/internal/service/profile"
	reportService "github.com/DeFacto365/Protip365-sub004/internal/service/report"
	shiftService "github.com/DeFacto365/Protip365-sub004/internal/service/shift"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	shiftRepo := postgresql.NewShiftRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)
	employerRepo := postgresql.NewEmployerRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	transactor := postgresql.NewTransactor(db)

	hub := sse.NewHub()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.SSEExpiration)

	profileSvc := profileService.NewProfileService(profileRepo, hub)
	employerSvc := employerService.NewEmployerService(employerRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, entryRepo, employerRepo, profileSvc, transactor, hub)
	dashboardSvc := dashboardService.NewDashboardService(shiftRepo, profileSvc)
	reportSvc := reportService.NewReportService(shiftRepo, profileSvc)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
		Shift:     appHTTP.NewShiftHandler(shiftSvc),
		Profile:   appHTTP.NewProfileHandler(profileSvc),
		Employer:  appHTTP.NewEmployerHandler(employerSvc),
		Report:    appHTTP.NewReportHandler(reportSvc),
		Events:    appHTTP.NewEventsHandler(hub, JWTService),
	}, appHTTP.RouterConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
	})

	scheduler := cron.NewScheduler()
	if cfg.Cron.Enabled {
		cron.NewShiftJobs(shiftSvc, cfg.Cron.MissedShiftsInterval).RegisterJobs(scheduler)
		scheduler.Start()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	server.RegisterOnShutdown(hub.Close)

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cfg.Cron.Enabled {
		scheduler.Stop()
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}

func newLogger(app config.AppConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(app.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(app.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", app.Name),
		slog.String("version", app.Version),
		slog.String("env", app.Env),
	)
}
