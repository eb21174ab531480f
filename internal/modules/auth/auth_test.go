package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/repository"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, ok := r.users[user.Username]; ok {
		return repository.ErrDuplicate
	}
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &fakeUserRepo{users: map[string]*models.User{
		"admin": {Base: models.Base{ID: "u-1"}, Username: "admin", Password: string(hash)},
	}}
	return NewService(repo)
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService(t)

	token, user, err := svc.Login(context.Background(), &LoginDTO{Username: "admin", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
	if user.ID != "u-1" {
		t.Errorf("user.ID = %q", user.ID)
	}
}

func TestLoginFailureIsUniform(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, wrongPass := svc.Login(ctx, &LoginDTO{Username: "admin", Password: "wrong"})
	_, _, noUser := svc.Login(ctx, &LoginDTO{Username: "ghost", Password: "wrong"})

	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", wrongPass)
	}
	if !errors.Is(noUser, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Error("wrong password and unknown user must be indistinguishable")
	}
}
