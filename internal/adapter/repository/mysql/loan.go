package mysql

import (
	"context"
	"errors"

	loanDomain "loanbook-api/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, b *loanDomain.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func (r *LoanRepository) Save(ctx context.Context, b *loanDomain.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

func (r *LoanRepository) List(ctx context.Context) ([]loanDomain.Booking, error) {
	var out []loanDomain.Booking
	res := r.db.WithContext(ctx).Preload("Borrower").Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Booking, error) {
	var out loanDomain.Booking
	res := r.db.WithContext(ctx).Preload("Borrower").Where("loan_id = ?", loanID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Booking, error) {
	var out loanDomain.Booking
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) CountByBorrowerID(ctx context.Context, borrowerID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loanDomain.Booking{}).Where("borrower_id = ?", borrowerID).Count(&n)
	return n, res.Error
}

func (r *LoanRepository) Delete(ctx context.Context, loanID string) error {
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Delete(&loanDomain.Booking{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrNotFound
	}
	return nil
}
