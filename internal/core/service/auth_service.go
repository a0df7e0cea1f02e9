package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/printops/backoffice-system/internal/core/domain"
	"github.com/printops/backoffice-system/internal/core/ports"
)

// AuthService implements registration and login for back-office users.
// Login resolves the user's role to its permission keys and embeds them in
// the token so the RBAC middleware never hits the database.
type AuthService struct {
	repo      ports.AuthRepository
	roles     ports.RoleRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, roles ports.RoleRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, roles: roles, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, email, password, roleName, username string) (*domain.User, error) {
	if email == "" || password == "" || roleName == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := s.roles.FindByName(ctx, roleName); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		RoleName:     roleName,
	}
	if username != "" {
		user.Username = &username
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("email", email).Str("role", roleName).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(ctx, user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateToken(ctx context.Context, user *domain.User) (string, error) {
	// An inactive role still authenticates but grants nothing.
	permissions := []string{}
	role, err := s.roles.FindByName(ctx, user.RoleName)
	if err != nil && !errors.Is(err, domain.ErrRoleNotFound) {
		return "", err
	}
	if role != nil && role.Status == domain.RoleStatusActive {
		permissions = role.PermissionKeys()
	}

	claims := jwt.MapClaims{
		"sub":         user.ID,
		"email":       user.Email,
		"role":        user.RoleName,
		"permissions": permissions,
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
