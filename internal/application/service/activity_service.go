package service

import (
	"context"

	"github.com/hong-layeang/quickstock-api/internal/domain/entity"
	"github.com/hong-layeang/quickstock-api/internal/domain/repository"
	"github.com/hong-layeang/quickstock-api/pkg/pagination"
)

// ActivityService exposes the activity log. Admins see every entry,
// suppliers only their own.
type ActivityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// ListActivities returns the activity log visible to the actor, newest
// first.
func (s *ActivityService) ListActivities(ctx context.Context, actor Actor, params *pagination.PaginationParams) ([]entity.Activity, int64, error) {
	return s.activityRepo.List(ctx, actor.scope(), params)
}
