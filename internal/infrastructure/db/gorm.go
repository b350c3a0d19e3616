package db

import (
	"fmt"
	"strings"
	"time"

	"loanbook-api/internal/domain/loan"
	"loanbook-api/internal/domain/user"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), level)
}

// OpenSQLite is used for local runs without a MySQL server.
func OpenSQLite(path string, level logger.LogLevel) (*gorm.DB, error) {
	gdb, err := OpenGormWithDialector(sqlite.Open(path), level)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	// sqlite serializes writers anyway
	sqlDB.SetMaxOpenConns(1)
	return gdb, nil
}

func OpenGormWithDialector(dial gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:                                   logger.Default.LogMode(level),
		TranslateError:                           true,
		DisableAutomaticPing:                     true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
	gdb, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s: %w", dial.Name(), err)
	}
	log.Info().Str("dialect", dial.Name()).Msg("gorm: connected")
	return gdb, nil
}

// Migrate creates or updates the users and loan_bookings tables.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&user.User{}, &loan.Booking{})
}

// ParseLogLevel maps silent/error/warn/info to the gorm logger level; unknown
// values fall back to warn.
func ParseLogLevel(s string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
