package user

import "context"

type Repository interface {
	// Create inserts u; a unique-key violation surfaces as ErrAlreadyExists.
	Create(ctx context.Context, u *User) error
	List(ctx context.Context) ([]User, error)
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByAadhaarNum(ctx context.Context, aadhaarNum int64) (*User, error)

	// FindConflicting returns any user sharing one of the unique keys.
	FindConflicting(ctx context.Context, email string, aadhaarNum, mobileNum int64, panNum string) (*User, error)

	// Update applies p; returns ErrNotFound when no row matched.
	Update(ctx context.Context, userID string, p Patch) error
	// Delete returns ErrNotFound when no row matched.
	Delete(ctx context.Context, userID string) error
}
