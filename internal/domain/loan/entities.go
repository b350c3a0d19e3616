package loan

import (
	"errors"
	"strings"
	"time"

	"loanbook-api/internal/domain/user"
)

var (
	ErrNotFound         = errors.New("loan not found")
	ErrBorrowerNotFound = errors.New("borrower not found")
	ErrInvalidTenure    = errors.New("tenure must be greater than zero")
	ErrInvalidLoanType  = errors.New("unsupported loan type")
	ErrInvalidAmount    = errors.New("loan amount must not be negative")
	ErrMissingStatus    = errors.New("loan status is required")
)

type Type string

const (
	TypePersonal  Type = "Personal Loan"
	TypeHome      Type = "Home Loan"
	TypeCar       Type = "Car Loan"
	TypeEducation Type = "Education Loan"
	TypeBusiness  Type = "Business Loan"
)

var types = []Type{TypePersonal, TypeHome, TypeCar, TypeEducation, TypeBusiness}

// ParseType accepts the stored form ("Home Loan") or the short form ("Home"),
// case-insensitively.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	for _, t := range types {
		full := string(t)
		short := strings.TrimSuffix(full, " Loan")
		if strings.EqualFold(s, full) || strings.EqualFold(s, short) {
			return t, nil
		}
	}
	return "", ErrInvalidLoanType
}

// Status is stored verbatim; the constants are the documented lifecycle,
// not a closed set.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusDisbursed Status = "Disbursed"
	StatusClosed    Status = "Closed"
	StatusRejected  Status = "Rejected"
)

// Table: loan_bookings
type Booking struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	LoanID string `gorm:"column:loan_id;size:32;not null;uniqueIndex:ux_loan_bookings_loan_id"`
	// Weak reference to users.user_id; the loan never owns the borrower.
	BorrowerID string     `gorm:"column:borrower_id;size:32;not null;index:idx_loan_bookings_borrower"`
	Borrower   *user.User `gorm:"foreignKey:BorrowerID;references:UserID"`

	LoanType      Type       `gorm:"column:loan_type;size:32;not null"`
	LoanAmount    float64    `gorm:"column:loan_amount;not null"`
	InterestRate  float64    `gorm:"column:interest_rate;not null"`
	Tenure        float64    `gorm:"column:tenure;not null"`
	LoanStatus    Status     `gorm:"column:loan_status;type:text;not null"`
	DisbursalDate *time.Time `gorm:"column:disbursal_date"`

	EMIAmount        float64 `gorm:"column:emi_amount;not null"`
	TotalOutstanding float64 `gorm:"column:total_outstanding;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Booking) TableName() string { return "loan_bookings" }
