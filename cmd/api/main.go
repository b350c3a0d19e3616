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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	httpadp "loanbook-api/internal/adapter/http"
	appmw "loanbook-api/internal/adapter/middleware"
	"loanbook-api/internal/adapter/repository/mysql"
	"loanbook-api/internal/config"
	"loanbook-api/internal/infrastructure/cache"
	"loanbook-api/internal/infrastructure/db"
	"loanbook-api/internal/infrastructure/hash"
	"loanbook-api/internal/infrastructure/logger"
	"loanbook-api/internal/usecase/creditscore"
	"loanbook-api/internal/usecase/loan"
	"loanbook-api/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// run owns every resource it opens, so they are closed before main exits.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	gdb, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("db connect (%s): %w", cfg.DBDriver, err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("db handle: %w", err)
	}
	defer sqlDB.Close()

	if cfg.DBAutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	checks := map[string]httpadp.HealthCheck{
		"db": func(ctx context.Context) error { return sqlDB.PingContext(ctx) },
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	// repositories + usecases
	users := mysql.NewUserRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	userUC := user.NewUsecase(users, tx, hash.NewHashService(cfg.BcryptCost))
	loanUC := loan.NewUsecase(loans, tx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Str("request_id", v.RequestID).
				Dur("latency", v.Latency).
				Msg("http_request")
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowMethods: []string{
			http.MethodOptions, http.MethodGet, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowHeaders: []string{
			"X-Requested-With", echo.HeaderContentType, appmw.HeaderIdempotencyKey,
		},
	}))
	if rdb != nil {
		e.Use(appmw.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL()))
	}

	httpadp.RegisterRoutes(e, httpadp.Handlers{
		Base:        httpadp.NewHandler(checks),
		Users:       httpadp.NewUserHandler(userUC),
		Loans:       httpadp.NewLoanHandler(loanUC),
		CreditScore: httpadp.NewCreditScoreHandler(creditscore.NewGenerator()),
	}, cfg.Delay)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Str("driver", cfg.DBDriver).Msg("server starting")
	return serve(ctx, e, addr)
}

// serve runs e until ctx is done or the listener fails, then shuts it down.
func serve(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server shutdown complete")
	return nil
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	level := db.ParseLogLevel(cfg.DBLogLevel)
	if cfg.DBDriver == config.DriverSQLite {
		return db.OpenSQLite(cfg.SQLitePath, level)
	}
	return db.OpenGorm(cfg.MySQLDSN(), level)
}
