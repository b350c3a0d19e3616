package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"loanbook-api/internal/domain/user"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm/logger"
)

func TestOpenGormWithDialector_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing()

	// mysql dialector on top of the mocked *sql.DB
	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true, // don't query @@version
	})

	gdb, err := OpenGormWithDialector(dial, logger.Silent)
	if err != nil {
		t.Fatalf("OpenGormWithDialector error: %v", err)
	}
	if gdb == nil {
		t.Fatalf("got nil gorm.DB")
	}
	if !gdb.Config.TranslateError {
		t.Errorf("TranslateError should be enabled")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenGormWithDialector_PingFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	pingErr := errors.New("no ping")
	mock.ExpectPing().WillReturnError(pingErr)

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})

	gdb, err := OpenGormWithDialector(dial, logger.Silent)
	if !errors.Is(err, pingErr) {
		t.Fatalf("expected ping error, got %v (gdb=%v)", err, gdb)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenSQLiteAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loanbook.db")
	gdb, err := OpenSQLite(path, logger.Silent)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	sqlDB, _ := gdb.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	for _, table := range []string{"users", "loan_bookings"} {
		if !gdb.Migrator().HasTable(table) {
			t.Errorf("table %s not created", table)
		}
	}
	if !gdb.Migrator().HasIndex(&user.User{}, "ux_users_email") {
		t.Errorf("unique email index missing")
	}

	// second run is a no-op
	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate again: %v", err)
	}
	if err := sqlDB.PingContext(context.Background()); err != nil {
		t.Fatalf("ping after migrate: %v", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]logger.LogLevel{
		"silent": logger.Silent,
		"ERROR":  logger.Error,
		" info ": logger.Info,
		"warn":   logger.Warn,
		"":       logger.Warn,
		"bogus":  logger.Warn,
	}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q)=%v want %v", in, got, want)
		}
	}
}
