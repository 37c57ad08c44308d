package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/TravelDesk/internal/config"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/handler"
	"github.com/stpnv0/TravelDesk/internal/middleware"
	"github.com/stpnv0/TravelDesk/internal/notification"
	"github.com/stpnv0/TravelDesk/internal/repository"
	"github.com/stpnv0/TravelDesk/internal/repository/memory"
	"github.com/stpnv0/TravelDesk/internal/router"
	"github.com/stpnv0/TravelDesk/internal/scheduler"
	"github.com/stpnv0/TravelDesk/internal/service"
	"github.com/stpnv0/TravelDesk/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	repos      repositories
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

type repositories struct {
	tours        ports.TourRepo
	bookings     ports.BookingRepo
	users        ports.UserRepo
	ledger       ports.LedgerRepo
	applications ports.ApplicationRepo
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TravelDesk",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStorage(); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() error {
	switch a.cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		a.repos = repositories{
			tours:        store.Tours(),
			bookings:     store.Bookings(),
			users:        store.Users(),
			ledger:       store.Ledger(),
			applications: store.Applications(),
		}
		a.log.Warn("using in-memory storage, data is lost on restart")
		return nil

	case config.StorageDriverPostgres:
		if err := a.runMigrations(); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		if err := a.initDB(); err != nil {
			return err
		}
		a.repos = repositories{
			tours:        repository.NewTourRepo(a.db),
			bookings:     repository.NewBookingRepo(a.db),
			users:        repository.NewUserRepo(a.db),
			ledger:       repository.NewLedgerRepo(a.db),
			applications: repository.NewApplicationRepo(a.db),
		}
		return nil

	default:
		return fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	loc, err := a.cfg.Booking.Location()
	if err != nil {
		return err
	}

	alerter, err := notification.NewTelegramAlerter(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.log)
	if err != nil {
		return fmt.Errorf("init telegram: %w", err)
	}
	mailer := notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     a.cfg.SMTP.Host,
		Port:     a.cfg.SMTP.Port,
		Username: a.cfg.SMTP.Username,
		Password: a.cfg.SMTP.Password,
		From:     a.cfg.SMTP.From,
	}, a.log)
	n := notification.New(alerter, mailer, a.log)

	policy := service.BookingPolicy{
		Location: loc,
		Payment: domain.PaymentPolicy{
			Window:          a.cfg.Booking.PaymentWindow,
			DepartureCutoff: a.cfg.Booking.DepartureCutoff,
			Fallback:        a.cfg.Booking.FallbackWindow,
		},
		NumberAttempts: a.cfg.Booking.NumberAttempts,
	}

	capacity := service.NewCapacityLedger(a.repos.tours, loc)
	tourService := service.NewTourService(a.repos.tours, loc)
	userService := service.NewUserService(a.repos.users)
	bookingService := service.NewBookingService(a.repos.bookings, capacity, n, policy, a.log)
	ledgerService := service.NewLedgerService(a.repos.ledger, a.log)
	applicationService := service.NewApplicationService(a.repos.applications, a.repos.users, n, a.log)
	summaryService := service.NewSummaryService(a.repos.bookings, a.repos.applications)

	if a.cfg.Scheduler.Enabled {
		a.scheduler = scheduler.New(bookingService, a.cfg.Scheduler.Interval, a.log)
	}

	h := handler.NewHandler(tourService, bookingService, userService, ledgerService, applicationService, summaryService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.cfg.Auth.JWTSecret, a.cfg.Auth.Issuer),
		middleware.RequireAdmin(),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS.AllowedOrigins),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// Run serves HTTP and runs the expiry scheduler until a signal arrives or
// either of them fails.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if a.scheduler != nil {
		g.Go(func() error {
			a.scheduler.Start(gctx)
			return nil
		})
	}

	g.Go(func() error {
		a.log.LogAttrs(gctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
		return a.shutdown()
	})

	return g.Wait()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
