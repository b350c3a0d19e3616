package usermock

import (
	"context"

	domain "loanbook-api/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset functions return context.Canceled so a missing stub is loud.
type Repo struct {
	CreateFn          func(ctx context.Context, u *domain.User) error
	ListFn            func(ctx context.Context) ([]domain.User, error)
	GetByUserIDFn     func(ctx context.Context, userID string) (*domain.User, error)
	GetByAadhaarNumFn func(ctx context.Context, aadhaarNum int64) (*domain.User, error)
	FindConflictingFn func(ctx context.Context, email string, aadhaarNum, mobileNum int64, panNum string) (*domain.User, error)
	UpdateFn          func(ctx context.Context, userID string, p domain.Patch) error
	DeleteFn          func(ctx context.Context, userID string) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByAadhaarNum(ctx context.Context, aadhaarNum int64) (*domain.User, error) {
	if m.GetByAadhaarNumFn != nil {
		return m.GetByAadhaarNumFn(ctx, aadhaarNum)
	}
	return nil, context.Canceled
}

func (m *Repo) FindConflicting(ctx context.Context, email string, aadhaarNum, mobileNum int64, panNum string) (*domain.User, error) {
	if m.FindConflictingFn != nil {
		return m.FindConflictingFn(ctx, email, aadhaarNum, mobileNum, panNum)
	}
	return nil, context.Canceled
}

func (m *Repo) Update(ctx context.Context, userID string, p domain.Patch) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, p)
	}
	return context.Canceled
}

func (m *Repo) Delete(ctx context.Context, userID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}
	return context.Canceled
}
