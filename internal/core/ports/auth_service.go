package ports

import (
	"context"

	"github.com/opencourses/course-api/internal/core/domain"
)

// AuthService is the authentication gate consumed by the API layer. Every
// resolver either returns a current user or fails; callers must short-circuit
// on failure before touching any other repository.
type AuthService interface {
	// Register creates an account. The raw password is hashed before storage.
	Register(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error)

	// Authenticate verifies Basic credentials against the stored hash.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// Login verifies credentials and issues a signed JWT for Bearer access.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// ResolveToken verifies a Bearer token and resolves its user.
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}
