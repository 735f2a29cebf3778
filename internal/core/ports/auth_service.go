package ports

import (
	"context"

	"github.com/autopark/rental-system/internal/core/domain"
)

// AuthService handles account registration and login.
type AuthService interface {
	// Register creates a new account. Role defaults to CUSTOMER when empty.
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token. Unknown
	// user and wrong password both surface as domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
