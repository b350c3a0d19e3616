package mysql

import (
	"testing"

	loanDomain "loanbook-api/internal/domain/loan"
	userDomain "loanbook-api/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with the domain schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every connection to :memory: is a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&userDomain.User{}, &loanDomain.Booking{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeUser(userID string, n int64) *userDomain.User {
	return &userDomain.User{
		UserID:     userID,
		Name:       "Asha Rao",
		Email:      "asha" + string(rune('a'+n)) + "@example.com",
		AadhaarNum: 100000000000 + n,
		MobileNum:  9000000000 + n,
		PanNum:     "ABCDE" + string(rune('A'+n)) + "234F",
		Address:    "12 MG Road, Bengaluru",
		Password:   "$2a$04$hash",
		Gender:     "female",
		Salary:     85000,
	}
}

func makeBooking(loanID, borrowerID string) *loanDomain.Booking {
	return &loanDomain.Booking{
		LoanID:           loanID,
		BorrowerID:       borrowerID,
		LoanType:         loanDomain.TypeHome,
		LoanAmount:       1_200_000,
		InterestRate:     8.5,
		Tenure:           12,
		LoanStatus:       loanDomain.StatusPending,
		EMIAmount:        100_000,
		TotalOutstanding: 1_200_000,
	}
}
