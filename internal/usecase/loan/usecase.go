package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"loanbook-api/internal/domain/loan"
	"loanbook-api/internal/domain/uow"
	domainUser "loanbook-api/internal/domain/user"
	"loanbook-api/pkg/id"

	"github.com/shopspring/decimal"
)

type Usecase struct {
	repo loan.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r loan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

// Create books a loan for an existing borrower. EMI is a flat
// amount/tenure split; the interest rate is stored but not applied.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if !id.IsID32(in.BorrowerID) {
			return loan.ErrBorrowerNotFound
		}
		borrower, err := r.Users.GetByUserID(ctx, in.BorrowerID)
		if errors.Is(err, domainUser.ErrNotFound) {
			return loan.ErrBorrowerNotFound
		}
		if err != nil {
			return fmt.Errorf("lookup borrower: %w", err)
		}

		if in.Tenure <= 0 {
			return loan.ErrInvalidTenure
		}
		lt, err := loan.ParseType(in.LoanType)
		if err != nil {
			return err
		}
		if in.LoanAmount < 0 {
			return loan.ErrInvalidAmount
		}

		b := &loan.Booking{
			LoanID:           id.NewID32(),
			BorrowerID:       borrower.UserID,
			LoanType:         lt,
			LoanAmount:       in.LoanAmount,
			InterestRate:     in.InterestRate,
			Tenure:           in.Tenure,
			LoanStatus:       loan.StatusPending,
			EMIAmount:        computeEMI(in.LoanAmount, in.Tenure),
			TotalOutstanding: in.LoanAmount,
		}
		if err := r.Loans.Create(ctx, b); err != nil {
			return fmt.Errorf("create loan: %w", err)
		}
		dto = toDTO(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// computeEMI returns amount/tenure. tenure must be positive.
func computeEMI(amount, tenure float64) float64 {
	emi, _ := decimal.NewFromFloat(amount).Div(decimal.NewFromFloat(tenure)).Float64()
	return emi
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	out := make([]LoanDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	if !id.IsID32(loanID) {
		return nil, loan.ErrNotFound
	}
	b, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

// UpdateStatus stores status verbatim; values outside the documented
// lifecycle are accepted.
func (u *Usecase) UpdateStatus(ctx context.Context, loanID, status string) (*LoanDTO, error) {
	if !id.IsID32(loanID) {
		return nil, loan.ErrNotFound
	}
	if strings.TrimSpace(status) == "" {
		return nil, loan.ErrMissingStatus
	}
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, b *loan.Booking) error {
		b.LoanStatus = loan.Status(status)
		if err := r.Loans.Save(ctx, b); err != nil {
			return fmt.Errorf("save loan: %w", err)
		}
		dto = toDTO(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Delete(ctx context.Context, loanID string) error {
	if !id.IsID32(loanID) {
		return loan.ErrNotFound
	}
	return u.repo.Delete(ctx, loanID)
}
