package user

import (
	"time"

	domain "loanbook-api/internal/domain/user"
)

type RegisterInput struct {
	Name       string
	Email      string
	AadhaarNum int64
	MobileNum  int64
	PanNum     string
	Address    string
	Password   string
	Gender     string
	Salary     float64
	IsKyc      bool
}

// UpdateInput is the closed set of mutable fields; nil means unchanged.
// Password is plaintext here and hashed by the usecase.
type UpdateInput struct {
	Name      *string
	Email     *string
	MobileNum *int64
	PanNum    *string
	Address   *string
	Gender    *string
	Salary    *float64
	IsKyc     *bool
	Password  *string
}

// UserDTO is the public view of a user. The password hash is never exposed.
type UserDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	AadhaarNum int64     `json:"aadharNum"`
	MobileNum  int64     `json:"mobileNum"`
	PanNum     string    `json:"panNum"`
	Address    string    `json:"address"`
	Gender     string    `json:"gender"`
	Salary     float64   `json:"salary"`
	IsKyc      bool      `json:"isKyc"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ToDTO(u *domain.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:         u.UserID,
		Name:       u.Name,
		Email:      u.Email,
		AadhaarNum: u.AadhaarNum,
		MobileNum:  u.MobileNum,
		PanNum:     u.PanNum,
		Address:    u.Address,
		Gender:     u.Gender,
		Salary:     u.Salary,
		IsKyc:      u.IsKyc,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
