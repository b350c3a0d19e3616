package loan

import (
	"time"

	domain "loanbook-api/internal/domain/loan"
	"loanbook-api/internal/usecase/user"
)

type CreateLoanInput struct {
	BorrowerID   string
	LoanType     string
	LoanAmount   float64
	InterestRate float64
	Tenure       float64
}

type LoanDetails struct {
	LoanType      string     `json:"loanType"`
	LoanAmount    float64    `json:"loanAmount"`
	InterestRate  float64    `json:"interestRate"`
	Tenure        float64    `json:"tenure"`
	LoanStatus    string     `json:"loanStatus"`
	DisbursalDate *time.Time `json:"disbursalDate,omitempty"`
}

type RepaymentDetails struct {
	EMIAmount        float64 `json:"emiAmount"`
	TotalOutstanding float64 `json:"totalOutstanding"`
}

type LoanDTO struct {
	ID         string `json:"id"`
	BorrowerID string `json:"borrowerId"`
	// expanded on reads
	Borrower         *user.UserDTO    `json:"borrower,omitempty"`
	LoanDetails      LoanDetails      `json:"loanDetails"`
	RepaymentDetails RepaymentDetails `json:"repaymentDetails"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

func toDTO(b *domain.Booking) *LoanDTO {
	return &LoanDTO{
		ID:         b.LoanID,
		BorrowerID: b.BorrowerID,
		Borrower:   user.ToDTO(b.Borrower),
		LoanDetails: LoanDetails{
			LoanType:      string(b.LoanType),
			LoanAmount:    b.LoanAmount,
			InterestRate:  b.InterestRate,
			Tenure:        b.Tenure,
			LoanStatus:    string(b.LoanStatus),
			DisbursalDate: b.DisbursalDate,
		},
		RepaymentDetails: RepaymentDetails{
			EMIAmount:        b.EMIAmount,
			TotalOutstanding: b.TotalOutstanding,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
