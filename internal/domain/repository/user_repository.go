package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hong-layeang/quickstock-api/internal/domain/entity"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	"github.com/hong-layeang/quickstock-api/pkg/pagination"
)

// UserFilterParams contains filtering parameters for user queries
type UserFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Role       *enum.Role
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *UserFilterParams) ([]entity.User, int64, error)
	// CountByRole returns the number of users holding the given role.
	CountByRole(ctx context.Context, role enum.Role) (int64, error)
	// CountCreatedBetween returns the number of users created inside the range (inclusive).
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}
