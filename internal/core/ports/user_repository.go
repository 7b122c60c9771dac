package ports

import (
	"context"

	"github.com/opencourses/course-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Create enforces
// profile validation and email uniqueness, surfacing both as
// *domain.ValidationError so the API renders them identically.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
