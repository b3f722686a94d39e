package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hong-layeang/quickstock-api/internal/domain/entity"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	"github.com/hong-layeang/quickstock-api/internal/domain/repository"
	"github.com/hong-layeang/quickstock-api/pkg/apperror"
	"github.com/hong-layeang/quickstock-api/pkg/pagination"
	"github.com/hong-layeang/quickstock-api/pkg/utils"
)

// UserService handles admin user management
type UserService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, activityRepo repository.ActivityRepository) *UserService {
	return &UserService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

// recordActivity appends a log entry; a failed write is logged but never
// fails the operation that produced it.
func recordActivity(ctx context.Context, repo repository.ActivityRepository, userID uuid.UUID, action, detail string) {
	err := repo.Create(ctx, &entity.Activity{
		UserID: userID,
		Action: action,
		Detail: detail,
	})
	if err != nil {
		logrus.WithError(err).WithField("action", action).Warn("failed to record activity")
	}
}

// ListUsers returns users filtered by role and search term
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams, search string, role *enum.Role) ([]entity.User, int64, error) {
	return s.userRepo.List(ctx, &repository.UserFilterParams{
		Pagination: params,
		Search:     search,
		Role:       role,
	})
}

// GetUser returns a single user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// CreateUserInput represents an admin-created account
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     enum.Role
	Phone    *string
	Address  *string
}

// CreateUser creates an account with an explicit role
func (s *UserService) CreateUser(ctx context.Context, actorID uuid.UUID, input *CreateUserInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid role")
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
		Phone:    input.Phone,
		Address:  input.Address,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.activityRepo, actorID, "user.created", user.Email)
	return user, nil
}

// UpdateUserInput represents an admin user update
type UpdateUserInput struct {
	Name    string
	Role    *enum.Role
	Phone   *string
	Address *string
}

// UpdateUser updates an account's profile fields and role
func (s *UserService) UpdateUser(ctx context.Context, actorID, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid role")
		}
		user.Role = *input.Role
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Address != nil {
		user.Address = input.Address
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.activityRepo, actorID, "user.updated", user.Email)
	return user, nil
}

// DeleteUser soft-deletes an account. Admins cannot delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return apperror.NewBadRequestError("Cannot delete your own account")
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.activityRepo, actorID, "user.deleted", user.Email)
	return nil
}
