package ports

import (
	"context"

	"github.com/printops/backoffice-system/internal/core/domain"
)

// AuthService implements admin registration and login. Login resolves the
// user's role to its permission keys and embeds them in the token claims.
type AuthService interface {
	Register(ctx context.Context, email, password, roleName, username string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
