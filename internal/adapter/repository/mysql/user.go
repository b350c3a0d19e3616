package mysql

import (
	"context"
	"errors"

	userDomain "loanbook-api/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if isDuplicateKey(err) {
		return userDomain.ErrAlreadyExists
	}
	return err
}

func (r *UserRepository) List(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, userDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *UserRepository) GetByAadhaarNum(ctx context.Context, aadhaarNum int64) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("aadhaar_num = ?", aadhaarNum).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, userDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *UserRepository) FindConflicting(ctx context.Context, email string, aadhaarNum, mobileNum int64, panNum string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).
		Where("email = ? OR aadhaar_num = ? OR mobile_num = ? OR pan_num = ?", email, aadhaarNum, mobileNum, panNum).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, userDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *UserRepository) Update(ctx context.Context, userID string, p userDomain.Patch) error {
	if p.IsEmpty() {
		return userDomain.ErrEmptyPatch
	}
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("user_id = ?", userID).
		Updates(p.Columns())
	if isDuplicateKey(res.Error) {
		return userDomain.ErrAlreadyExists
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// mysql reports 0 affected rows when nothing changed
		var n int64
		if err := r.db.WithContext(ctx).Model(&userDomain.User{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return userDomain.ErrNotFound
		}
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&userDomain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return userDomain.ErrNotFound
	}
	return nil
}
