package user

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "loanbook-api/internal/domain/user"
	"loanbook-api/internal/domain/uow"
	"loanbook-api/internal/infrastructure/hash"
	"loanbook-api/internal/testutil/loanmock"
	"loanbook-api/internal/testutil/uowmock"
	"loanbook-api/internal/testutil/usermock"
	"loanbook-api/pkg/id"

	"golang.org/x/crypto/bcrypt"
)

const knownID = "0123456789abcdef0123456789abcdef"

func newUC(users *usermock.Repo, loans *loanmock.Repo) *Usecase {
	repos := uow.Repos{Users: users, Loans: loans}
	return NewUsecase(users, uowmock.Passthrough(repos), hash.NewHashService(bcrypt.MinCost))
}

func validInput() RegisterInput {
	return RegisterInput{
		Name:       "Rajesh Kumar",
		Email:      " rajesh.kumar22@example.com ",
		AadhaarNum: 987654321098,
		MobileNum:  9123456780,
		PanNum:     "XYZPQ6789A",
		Address:    "45 Sector 12, Noida",
		Password:   "SecurePass456",
		Gender:     "Male",
		Salary:     550000,
	}
}

func TestRegister_Success(t *testing.T) {
	var created *domain.User
	users := &usermock.Repo{
		FindConflictingFn: func(_ context.Context, email string, aadhaarNum, mobileNum int64, panNum string) (*domain.User, error) {
			if email != "rajesh.kumar22@example.com" {
				t.Fatalf("email not trimmed: %q", email)
			}
			return nil, domain.ErrNotFound
		},
		CreateFn: func(_ context.Context, u *domain.User) error {
			created = u
			return nil
		},
	}
	uc := newUC(users, &loanmock.Repo{})

	userID, err := uc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if !id.IsID32(userID) {
		t.Fatalf("bad user id %q", userID)
	}
	if created == nil || created.UserID != userID {
		t.Fatalf("Create not called with the returned id")
	}
	if created.Password == "SecurePass456" {
		t.Fatalf("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("SecurePass456")) != nil {
		t.Fatalf("stored hash does not match password")
	}
	if created.IsKyc {
		t.Errorf("isKyc should default to false")
	}
}

func TestRegister_ConflictFromPrecheck(t *testing.T) {
	users := &usermock.Repo{
		FindConflictingFn: func(context.Context, string, int64, int64, string) (*domain.User, error) {
			return &domain.User{UserID: knownID}, nil
		},
		CreateFn: func(context.Context, *domain.User) error {
			t.Fatalf("Create must not be called on conflict")
			return nil
		},
	}
	_, err := newUC(users, &loanmock.Repo{}).Register(context.Background(), validInput())
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
}

func TestRegister_ConflictFromUniqueIndex(t *testing.T) {
	// pre-check raced: the insert is the authoritative signal
	users := &usermock.Repo{
		FindConflictingFn: func(context.Context, string, int64, int64, string) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
		CreateFn: func(context.Context, *domain.User) error { return domain.ErrAlreadyExists },
	}
	_, err := newUC(users, &loanmock.Repo{}).Register(context.Background(), validInput())
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
}

func TestRegister_StorageError(t *testing.T) {
	boom := errors.New("db down")
	users := &usermock.Repo{
		FindConflictingFn: func(context.Context, string, int64, int64, string) (*domain.User, error) {
			return nil, boom
		},
	}
	_, err := newUC(users, &loanmock.Repo{}).Register(context.Background(), validInput())
	if !errors.Is(err, boom) || errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("want wrapped storage error, got %v", err)
	}
}

func TestList_HidesPassword(t *testing.T) {
	now := time.Now().UTC()
	users := &usermock.Repo{
		ListFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{
				{UserID: knownID, Name: "A", Password: "$2a$10$secret", CreatedAt: now},
				{UserID: id.NewID32(), Name: "B", Password: "$2a$10$secret"},
			}, nil
		},
	}
	got, err := newUC(users, &loanmock.Repo{}).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != knownID || got[0].Name != "A" || !got[0].CreatedAt.Equal(now) {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestList_Empty(t *testing.T) {
	users := &usermock.Repo{
		ListFn: func(context.Context) ([]domain.User, error) { return nil, nil },
	}
	got, err := newUC(users, &loanmock.Repo{}).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestGet(t *testing.T) {
	users := &usermock.Repo{
		GetByUserIDFn: func(_ context.Context, userID string) (*domain.User, error) {
			if userID == knownID {
				return &domain.User{UserID: knownID, Email: "a@example.com"}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	uc := newUC(users, &loanmock.Repo{})
	ctx := context.Background()

	dto, err := uc.Get(ctx, knownID)
	if err != nil || dto.ID != knownID || dto.Email != "a@example.com" {
		t.Fatalf("Get: dto=%+v err=%v", dto, err)
	}
	if _, err := uc.Get(ctx, id.NewID32()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing: want ErrNotFound, got %v", err)
	}
	if _, err := uc.Get(ctx, "66eeaa61a06e295739cd6297"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("malformed: want ErrInvalidID, got %v", err)
	}
}

func TestUpdate_RehashesPassword(t *testing.T) {
	var got domain.Patch
	users := &usermock.Repo{
		UpdateFn: func(_ context.Context, userID string, p domain.Patch) error {
			got = p
			return nil
		},
	}
	pw, kyc := "n3w-pass", true
	err := newUC(users, &loanmock.Repo{}).Update(context.Background(), knownID, UpdateInput{Password: &pw, IsKyc: &kyc})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Password == nil || *got.Password == pw {
		t.Fatalf("password not hashed: %v", got.Password)
	}
	if bcrypt.CompareHashAndPassword([]byte(*got.Password), []byte(pw)) != nil {
		t.Fatalf("hash does not match new password")
	}
	if got.IsKyc == nil || !*got.IsKyc || got.Name != nil {
		t.Fatalf("unexpected patch: %+v", got)
	}
}

func TestUpdate_TrimsEmailAndPan(t *testing.T) {
	var got domain.Patch
	users := &usermock.Repo{
		UpdateFn: func(_ context.Context, _ string, p domain.Patch) error {
			got = p
			return nil
		},
	}
	email, pan := "  new.mail@example.com ", " XYZPQ6789A "
	if err := newUC(users, &loanmock.Repo{}).Update(context.Background(), knownID, UpdateInput{Email: &email, PanNum: &pan}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Email == nil || *got.Email != "new.mail@example.com" {
		t.Fatalf("email not trimmed: %v", got.Email)
	}
	if got.PanNum == nil || *got.PanNum != "XYZPQ6789A" {
		t.Fatalf("pan not trimmed: %v", got.PanNum)
	}
	if email != "  new.mail@example.com " {
		t.Fatalf("caller input mutated: %q", email)
	}
}

func TestUpdate_Errors(t *testing.T) {
	users := &usermock.Repo{
		UpdateFn: func(context.Context, string, domain.Patch) error { return domain.ErrNotFound },
	}
	uc := newUC(users, &loanmock.Repo{})
	ctx := context.Background()
	name := "New Name"

	if err := uc.Update(ctx, knownID, UpdateInput{}); !errors.Is(err, domain.ErrEmptyPatch) {
		t.Fatalf("empty: want ErrEmptyPatch, got %v", err)
	}
	if err := uc.Update(ctx, "nope", UpdateInput{Name: &name}); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("malformed: want ErrInvalidID, got %v", err)
	}
	if err := uc.Update(ctx, knownID, UpdateInput{Name: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing: want ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	deleted := false
	users := &usermock.Repo{
		GetByUserIDFn: func(_ context.Context, userID string) (*domain.User, error) {
			return &domain.User{UserID: userID}, nil
		},
		DeleteFn: func(context.Context, string) error {
			deleted = true
			return nil
		},
	}
	loans := &loanmock.Repo{
		CountByBorrowerIDFn: func(context.Context, string) (int64, error) { return 0, nil },
	}
	if err := newUC(users, loans).Delete(context.Background(), knownID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Fatalf("repo Delete not called")
	}
}

func TestDelete_RejectedWhileLoansExist(t *testing.T) {
	users := &usermock.Repo{
		GetByUserIDFn: func(_ context.Context, userID string) (*domain.User, error) {
			return &domain.User{UserID: userID}, nil
		},
		DeleteFn: func(context.Context, string) error {
			t.Fatalf("Delete must not run while loans reference the user")
			return nil
		},
	}
	loans := &loanmock.Repo{
		CountByBorrowerIDFn: func(context.Context, string) (int64, error) { return 2, nil },
	}
	if err := newUC(users, loans).Delete(context.Background(), knownID); !errors.Is(err, domain.ErrHasLoans) {
		t.Fatalf("want ErrHasLoans, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	users := &usermock.Repo{
		GetByUserIDFn: func(context.Context, string) (*domain.User, error) { return nil, domain.ErrNotFound },
	}
	uc := newUC(users, &loanmock.Repo{})
	if err := uc.Delete(context.Background(), knownID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := uc.Delete(context.Background(), "bad"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("malformed: want ErrNotFound, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	hs := hash.NewHashService(bcrypt.MinCost)
	stored, err := hs.HashPassword("SecurePass456")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	users := &usermock.Repo{
		GetByAadhaarNumFn: func(_ context.Context, n int64) (*domain.User, error) {
			if n == 987654321098 {
				return &domain.User{Password: stored}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	uc := newUC(users, &loanmock.Repo{})
	ctx := context.Background()

	if err := uc.Authenticate(ctx, 987654321098, "SecurePass456"); err != nil {
		t.Fatalf("correct credentials rejected: %v", err)
	}
	if err := uc.Authenticate(ctx, 987654321098, "nope"); !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("want ErrWrongPassword, got %v", err)
	}
	if err := uc.Authenticate(ctx, 111111111111, "SecurePass456"); !errors.Is(err, domain.ErrNotRegistered) {
		t.Fatalf("want ErrNotRegistered, got %v", err)
	}
}
