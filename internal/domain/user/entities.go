package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrInvalidID     = errors.New("invalid user id")
	ErrAlreadyExists = errors.New("user already exists")
	ErrHasLoans      = errors.New("user has loan bookings")
	ErrNotRegistered = errors.New("user not registered")
	ErrWrongPassword = errors.New("wrong password")
	ErrEmptyPatch    = errors.New("no updatable fields supplied")
)

// Table: users
type User struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	UserID     string    `gorm:"column:user_id;size:32;not null;uniqueIndex:ux_users_user_id"`
	Name       string    `gorm:"column:name;size:255;not null"`
	Email      string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_users_email"`
	AadhaarNum int64     `gorm:"column:aadhaar_num;not null;uniqueIndex:ux_users_aadhaar_num"`
	MobileNum  int64     `gorm:"column:mobile_num;not null;uniqueIndex:ux_users_mobile_num"`
	PanNum     string    `gorm:"column:pan_num;size:32;not null;uniqueIndex:ux_users_pan_num"`
	Address    string    `gorm:"column:address;type:text;not null"`
	Password   string    `gorm:"column:password;size:255;not null"`
	Gender     string    `gorm:"column:gender;size:32;not null"`
	Salary     float64   `gorm:"column:salary;not null"`
	IsKyc      bool      `gorm:"column:is_kyc;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "users" }

// Patch is the closed set of fields a caller may change after registration.
// Nil means "leave as is". The national id and the public id are immutable.
type Patch struct {
	Name      *string
	Email     *string
	MobileNum *int64
	PanNum    *string
	Address   *string
	Gender    *string
	Salary    *float64
	IsKyc     *bool
	// Password must already be hashed.
	Password *string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.MobileNum == nil && p.PanNum == nil &&
		p.Address == nil && p.Gender == nil && p.Salary == nil && p.IsKyc == nil && p.Password == nil
}

// Columns maps the patch to column updates.
func (p Patch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.MobileNum != nil {
		cols["mobile_num"] = *p.MobileNum
	}
	if p.PanNum != nil {
		cols["pan_num"] = *p.PanNum
	}
	if p.Address != nil {
		cols["address"] = *p.Address
	}
	if p.Gender != nil {
		cols["gender"] = *p.Gender
	}
	if p.Salary != nil {
		cols["salary"] = *p.Salary
	}
	if p.IsKyc != nil {
		cols["is_kyc"] = *p.IsKyc
	}
	if p.Password != nil {
		cols["password"] = *p.Password
	}
	return cols
}
