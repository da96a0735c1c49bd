package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/offcon/crono/internal/cli"
	"github.com/offcon/crono/internal/db"
	"github.com/offcon/crono/internal/httpapi"
	"github.com/offcon/crono/internal/repository"
	"github.com/offcon/crono/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.crono/crono.db
	dbPath := os.Getenv("CRONO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".crono", "crono.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := newLogger()

	planRepo := repository.NewSQLitePlanRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	followUpRepo := repository.NewSQLiteFollowUpRepo(database)
	linkRepo := repository.NewSQLiteLinkRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewSlogUseCaseObserver(logger)

	reconciler := service.NewReconcileService(uow, observer)
	planSvc := service.NewPlanService(planRepo, uow)
	activitySvc := service.NewActivityService(activityRepo, uow)
	followUpSvc := service.NewFollowUpService(followUpRepo, activityRepo)
	linkSvc := service.NewLinkService(linkRepo, activityRepo)
	projectionSvc := service.NewProjectionService(planRepo, activityRepo, linkRepo)
	templateSvc := service.NewTemplateService(reconciler)
	importSvc := service.NewImportService(planRepo, reconciler)

	app := &cli.App{
		Plans:       planSvc,
		Reconciler:  reconciler,
		Import:      importSvc,
		Projections: projectionSvc,
		Templates:   templateSvc,
		ServeFn: func(ctx context.Context, addr string) error {
			server := httpapi.NewServer(httpapi.Services{
				Plans:       planSvc,
				Activities:  activitySvc,
				FollowUps:   followUpSvc,
				Links:       linkSvc,
				Reconciler:  reconciler,
				Projections: projectionSvc,
				Templates:   templateSvc,
			}, logger)
			return serve(ctx, addr, server, logger)
		},
	}

	return cli.NewRootCmd(app).Execute()
}

// newLogger writes structured logs to stderr; text when attached to a
// terminal, JSON otherwise.
func newLogger() *slog.Logger {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(handler)
}

// serve runs the HTTP server until the context is cancelled or a signal
// arrives, then drains connections.
func serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
