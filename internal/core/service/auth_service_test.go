package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/printops/backoffice-system/internal/core/domain"
)

type stubAuthRepo struct {
	byEmail map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, domain.ErrUserExists
	}
	clone := *u
	r.byEmail[u.Email] = &clone
	return &clone, nil
}

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) (*AuthService, *stubAuthRepo, *stubRoleRepo) {
	t.Helper()
	users := newStubAuthRepo()
	roles := newStubRoleRepo()
	seedRole(roles, "sales_manager", "Sales Manager", "order:view", "order:create")
	svc := NewAuthService(users, roles, testSecret, time.Hour, discardLogger)
	return svc, users, roles
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	user, err := svc.Register(context.Background(), "alice@example.com", "secret", "sales_manager", "alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "secret" {
		t.Fatal("password must be hashed")
	}
	if user.Username == nil || *user.Username != "alice" {
		t.Fatalf("username not stored: %v", user.Username)
	}

	token, logged, err := svc.Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", logged)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["role"] != "sales_manager" {
		t.Fatalf("expected role claim, got %v", claims["role"])
	}
	perms, ok := claims["permissions"].([]any)
	if !ok || len(perms) != 2 {
		t.Fatalf("expected 2 permission claims, got %v", claims["permissions"])
	}
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), "bob@example.com", "pw", "ghost_role", "")
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	if _, err := svc.Register(context.Background(), "alice@example.com", "secret", "sales_manager", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_InactiveRoleGrantsNothing(t *testing.T) {
	svc, _, roles := newAuthFixture(t)
	if _, err := svc.Register(context.Background(), "alice@example.com", "secret", "sales_manager", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	roles.byName["sales_manager"].Status = domain.RoleStatusInactive

	token, _, err := svc.Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	perms, _ := claims["permissions"].([]any)
	if len(perms) != 0 {
		t.Fatalf("inactive role must grant no permissions, got %v", perms)
	}
}
