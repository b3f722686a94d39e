package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hong-layeang/quickstock-api/internal/domain/entity"
	"github.com/hong-layeang/quickstock-api/pkg/pagination"
)

// ActivityRepository defines the interface for activity log operations
type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	// ListRecent returns the newest activities first, capped at limit.
	// A non-nil userID scopes the log to a single user's actions.
	ListRecent(ctx context.Context, userID *uuid.UUID, limit int) ([]entity.Activity, error)
	List(ctx context.Context, userID *uuid.UUID, params *pagination.PaginationParams) ([]entity.Activity, int64, error)
}
