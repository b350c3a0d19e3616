package uow

import (
	"context"

	"loanbook-api/internal/domain/loan"
	"loanbook-api/internal/domain/user"
)

type Repos struct {
	Users user.Repository
	Loans loan.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, b *loan.Booking) error) error
}
