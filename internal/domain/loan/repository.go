package loan

import "context"

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	Save(ctx context.Context, b *Booking) error

	// List and GetByLoanID expand the borrower.
	List(ctx context.Context) ([]Booking, error)
	GetByLoanID(ctx context.Context, loanID string) (*Booking, error)
	// Row lock for read-modify-write; borrower is not expanded.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Booking, error)

	CountByBorrowerID(ctx context.Context, borrowerID string) (int64, error)
	// Delete returns ErrNotFound when no row matched.
	Delete(ctx context.Context, loanID string) error
}
