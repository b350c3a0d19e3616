package loanmock

import (
	"context"

	domain "loanbook-api/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to success; reads default to context.Canceled.
type Repo struct {
	CreateFn               func(ctx context.Context, b *domain.Booking) error
	SaveFn                 func(ctx context.Context, b *domain.Booking) error
	ListFn                 func(ctx context.Context) ([]domain.Booking, error)
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Booking, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Booking, error)
	CountByBorrowerIDFn    func(ctx context.Context, borrowerID string) (int64, error)
	DeleteFn               func(ctx context.Context, loanID string) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Booking) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, b *domain.Booking) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Booking, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Booking, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Booking, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) CountByBorrowerID(ctx context.Context, borrowerID string) (int64, error) {
	if m.CountByBorrowerIDFn != nil {
		return m.CountByBorrowerIDFn(ctx, borrowerID)
	}
	return 0, context.Canceled
}

func (m *Repo) Delete(ctx context.Context, loanID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, loanID)
	}
	return nil
}
