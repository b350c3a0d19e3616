package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "loanbook-api/internal/domain/user"
	"loanbook-api/internal/domain/uow"
	"loanbook-api/pkg/id"
)

type Hasher interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

type Usecase struct {
	users  domain.Repository
	uow    uow.UnitOfWork
	hasher Hasher
}

func NewUsecase(users domain.Repository, tx uow.UnitOfWork, hasher Hasher) *Usecase {
	return &Usecase{users: users, uow: tx, hasher: hasher}
}

// Register stores a new user and returns its public id. The unique indexes
// are the real guard; the lookup only short-circuits the common case.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (string, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.PanNum = strings.TrimSpace(in.PanNum)

	existing, err := u.users.FindConflicting(ctx, in.Email, in.AadhaarNum, in.MobileNum, in.PanNum)
	switch {
	case err == nil && existing != nil:
		return "", domain.ErrAlreadyExists
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return "", fmt.Errorf("check existing user: %w", err)
	}

	hash, err := u.hasher.HashPassword(in.Password)
	if err != nil {
		return "", err
	}

	rec := &domain.User{
		UserID:     id.NewID32(),
		Name:       in.Name,
		Email:      in.Email,
		AadhaarNum: in.AadhaarNum,
		MobileNum:  in.MobileNum,
		PanNum:     in.PanNum,
		Address:    in.Address,
		Password:   hash,
		Gender:     in.Gender,
		Salary:     in.Salary,
		IsKyc:      in.IsKyc,
	}
	if err := u.users.Create(ctx, rec); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return "", err
		}
		return "", fmt.Errorf("create user: %w", err)
	}
	return rec.UserID, nil
}

func (u *Usecase) List(ctx context.Context) ([]UserDTO, error) {
	rows, err := u.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]UserDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *ToDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*UserDTO, error) {
	if !id.IsID32(userID) {
		return nil, domain.ErrInvalidID
	}
	rec, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToDTO(rec), nil
}

// Update applies a partial update. The national id and the public id are
// not part of UpdateInput and so can never change.
func (u *Usecase) Update(ctx context.Context, userID string, in UpdateInput) error {
	if !id.IsID32(userID) {
		return domain.ErrInvalidID
	}
	// same normalization as Register so the unique indexes compare like for like
	if in.Email != nil {
		v := strings.TrimSpace(*in.Email)
		in.Email = &v
	}
	if in.PanNum != nil {
		v := strings.TrimSpace(*in.PanNum)
		in.PanNum = &v
	}
	p := domain.Patch{
		Name:      in.Name,
		Email:     in.Email,
		MobileNum: in.MobileNum,
		PanNum:    in.PanNum,
		Address:   in.Address,
		Gender:    in.Gender,
		Salary:    in.Salary,
		IsKyc:     in.IsKyc,
	}
	if in.Password != nil {
		hash, err := u.hasher.HashPassword(*in.Password)
		if err != nil {
			return err
		}
		p.Password = &hash
	}
	if p.IsEmpty() {
		return domain.ErrEmptyPatch
	}
	return u.users.Update(ctx, userID, p)
}

// Delete removes a user that no loan booking references.
func (u *Usecase) Delete(ctx context.Context, userID string) error {
	if !id.IsID32(userID) {
		return domain.ErrNotFound
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Users.GetByUserID(ctx, userID); err != nil {
			return err
		}
		n, err := r.Loans.CountByBorrowerID(ctx, userID)
		if err != nil {
			return fmt.Errorf("count loans: %w", err)
		}
		if n > 0 {
			return domain.ErrHasLoans
		}
		return r.Users.Delete(ctx, userID)
	})
}

// Authenticate checks credentials only; no session is issued.
func (u *Usecase) Authenticate(ctx context.Context, aadhaarNum int64, password string) error {
	rec, err := u.users.GetByAadhaarNum(ctx, aadhaarNum)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotRegistered
	}
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if !u.hasher.CheckPasswordHash(password, rec.Password) {
		return domain.ErrWrongPassword
	}
	return nil
}
