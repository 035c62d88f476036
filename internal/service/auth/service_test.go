package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/UserShri98/employee-system/internal/domain/auth"
	"github.com/UserShri98/employee-system/internal/domain/user"
	"github.com/UserShri98/employee-system/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret    = "test-secret-key-for-jwt"
	testAccessExp = "1h"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
	seq     int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]user.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return user.User{}, user.ErrEmailExists
	}
	r.seq++
	u.ID = fmt.Sprintf("usr-%d", r.seq)
	r.byEmail[u.Email] = u
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, _ user.Role) ([]user.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) ListActive(_ context.Context) ([]user.User, error) { return nil, nil }

func (r *fakeUserRepo) ListIDsByManager(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, _ user.UpdateEmployeeRequest) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(_ context.Context, _ string) error { return nil }

func newTestService(repo *fakeUserRepo) (auth.Service, jwt.Service) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	return NewAuthService(repo, jwtService), jwtService
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc, jwtService := newTestService(repo)

	registered, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "Shreya",
		Email:    "shreya@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "EMPLOYEE", registered.User.Role)

	// Stored hash must not be the raw password.
	stored := repo.byEmail["shreya@example.com"]
	assert.NotEqual(t, "secret123", stored.PasswordHash)

	loggedIn, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "shreya@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	token, err := jwtService.JWTAuth().Decode(loggedIn.Token)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims["user_id"])
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, "EMPLOYEE", claims["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(newFakeUserRepo())

	req := auth.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret123"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegisterWithRole(t *testing.T) {
	svc, _ := newTestService(newFakeUserRepo())

	role := "OWNER"
	registered, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "Boss",
		Email:    "boss@example.com",
		Password: "secret123",
		Role:     &role,
	})
	require.NoError(t, err)
	assert.Equal(t, "OWNER", registered.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name: "A", Email: "a@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "a@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name: "A", Email: "a@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	u := repo.byEmail["a@example.com"]
	u.Status = user.StatusInactive
	repo.byEmail["a@example.com"] = u

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "a@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}
