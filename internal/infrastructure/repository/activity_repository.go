package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hong-layeang/quickstock-api/internal/domain/entity"
	domainRepo "github.com/hong-layeang/quickstock-api/internal/domain/repository"
	"github.com/hong-layeang/quickstock-api/pkg/pagination"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) domainRepo.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) ListRecent(ctx context.Context, userID *uuid.UUID, limit int) ([]entity.Activity, error) {
	var activities []entity.Activity

	query := r.db.WithContext(ctx).Model(&entity.Activity{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	err := query.Order("created_at DESC").Limit(limit).Find(&activities).Error
	return activities, err
}

func (r *activityRepository) List(ctx context.Context, userID *uuid.UUID, params *pagination.PaginationParams) ([]entity.Activity, int64, error) {
	var activities []entity.Activity
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Activity{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&activities).Error

	return activities, total, err
}
