// @title			PartnerLink API
// @version		1.0
// @description	Unified calendar of vendor work orders, follow-ups, reservations and personal to-dos.
// @BasePath		/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/partnerlink/partnerlink/internal/config"
	"github.com/partnerlink/partnerlink/internal/database"
	"github.com/partnerlink/partnerlink/internal/domain"
	"github.com/partnerlink/partnerlink/internal/handler"
	"github.com/partnerlink/partnerlink/internal/handler/dto"
	"github.com/partnerlink/partnerlink/internal/logger"
	"github.com/partnerlink/partnerlink/internal/repository"
	"github.com/partnerlink/partnerlink/internal/seed"
	"github.com/partnerlink/partnerlink/internal/service"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "partnerlink",
		Usage: "Vendor calendar and task aggregation service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   config.DefaultLogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   config.DefaultLogFormat,
				Usage:   "Log format (json, text)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:     "database-url",
				Aliases:  []string{"d"},
				Value:    config.DefaultDatabaseURL,
				Usage:    "PostgreSQL database URL",
				EnvVars:  []string{"DATABASE_URL"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "calendar-tz",
				Value:   config.DefaultCalendarTimezone,
				Usage:   "IANA time zone that decides what today is",
				EnvVars: []string{"CALENDAR_TZ"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")), c.String("log-format"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
					&cli.IntFlag{
						Name:    "max-conns",
						Value:   config.DefaultMaxConns,
						Usage:   "Maximum database connections",
						EnvVars: []string{"DB_MAX_CONNS"},
					},
					&cli.IntFlag{
						Name:    "min-conns",
						Value:   config.DefaultMinConns,
						Usage:   "Minimum idle database connections",
						EnvVars: []string{"DB_MIN_CONNS"},
					},
				},
				Action: runServe,
			},
			{
				Name:   "migrate",
				Usage:  "Apply database migrations and exit",
				Action: runMigrate,
			},
			{
				Name:  "seed",
				Usage: "Import a YAML fixture of users, vendors and tasks",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the fixture file",
						Required: true,
					},
				},
				Action: runSeed,
			},
			{
				Name:  "agenda",
				Usage: "Print one user's agenda for a day as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "user",
						Aliases:  []string{"u"},
						Usage:    "User ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "Day as YYYY-MM-DD (default: today)",
					},
				},
				Action: runAgenda,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

// connect opens the pool and applies migrations.
func connect(c *cli.Context, opts database.PoolOptions) (*database.DB, error) {
	ctx := c.Context

	db, err := database.NewWithOptions(ctx, c.String("database-url"), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func newCalendar(c *cli.Context) (*service.Calendar, error) {
	loc, err := config.LoadLocation(c.String("calendar-tz"))
	if err != nil {
		return nil, err
	}
	return service.NewCalendar(loc), nil
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	opts := database.DefaultPoolOptions
	if c.IsSet("max-conns") {
		opts.MaxConns = int32(c.Int("max-conns"))
	}
	if c.IsSet("min-conns") {
		opts.MinConns = int32(c.Int("min-conns"))
	}

	calendar, err := newCalendar(c)
	if err != nil {
		return err
	}

	db, err := connect(c, opts)
	if err != nil {
		return err
	}
	defer db.Close()

	h := handler.New(db.Pool(), calendar)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server",
			"server_addr", "http://localhost:"+port,
			"calendar_tz", calendar.Location().String(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runMigrate(c *cli.Context) error {
	db, err := connect(c, database.DefaultPoolOptions)
	if err != nil {
		return err
	}
	db.Close()
	return nil
}

func runSeed(c *cli.Context) error {
	fixture, err := seed.Load(c.String("file"))
	if err != nil {
		return err
	}

	db, err := connect(c, database.DefaultPoolOptions)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := seed.Import(c.Context, db.Pool(), fixture); err != nil {
		return fmt.Errorf("failed to import fixture: %w", err)
	}
	return nil
}

func runAgenda(c *cli.Context) error {
	ctx := c.Context

	calendar, err := newCalendar(c)
	if err != nil {
		return err
	}

	date := calendar.Today()
	if raw := c.String("date"); raw != "" {
		if date, err = domain.ParseDate(raw); err != nil {
			return err
		}
	}

	db, err := connect(c, database.DefaultPoolOptions)
	if err != nil {
		return err
	}
	defer db.Close()

	pool := db.Pool()
	user, err := repository.NewUserRepository(pool).GetByID(ctx, c.String("user"))
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	taskRepo := repository.NewManualTaskRepository(pool)
	agendaService := service.NewAgendaService(
		repository.NewWorkOrderRepository(pool),
		repository.NewContactLogRepository(pool),
		taskRepo,
		repository.NewVendorRepository(pool),
		calendar,
	)

	tasks, err := agendaService.Day(ctx, user.ID, date)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.ToAgendaResponse(date, tasks))
}
