package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hong-layeang/quickstock-api/internal/domain/entity"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	"github.com/hong-layeang/quickstock-api/pkg/apperror"
)

func TestCreateUser_InvalidRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeActivityRepo{})

	_, err := svc.CreateUser(context.Background(), uuid.New(), &CreateUserInput{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "password-1",
		Role:     enum.Role("superuser"),
	})
	assert.Error(t, err)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	users.add(&entity.User{Name: "A", Email: "a@example.com", Role: enum.RoleSupplier})
	svc := NewUserService(users, &fakeActivityRepo{})

	_, err := svc.CreateUser(context.Background(), uuid.New(), &CreateUserInput{
		Name:     "B",
		Email:    "a@example.com",
		Password: "password-1",
		Role:     enum.RoleSupplier,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateUser_RecordsActivity(t *testing.T) {
	users := newFakeUserRepo()
	activity := &fakeActivityRepo{}
	svc := NewUserService(users, activity)
	actorID := uuid.New()

	user, err := svc.CreateUser(context.Background(), actorID, &CreateUserInput{
		Name:     "Acme",
		Email:    "acme@example.com",
		Password: "password-1",
		Role:     enum.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.RoleAdmin, user.Role)

	require.Len(t, activity.activities, 1)
	assert.Equal(t, "user.created", activity.activities[0].Action)
	assert.Equal(t, actorID, activity.activities[0].UserID)
}

func TestDeleteUser_SelfDeleteForbidden(t *testing.T) {
	users := newFakeUserRepo()
	admin := users.add(&entity.User{Name: "Root", Email: "root@example.com", Role: enum.RoleAdmin})
	svc := NewUserService(users, &fakeActivityRepo{})

	err := svc.DeleteUser(context.Background(), admin.ID, admin.ID)
	assert.Error(t, err)

	other := users.add(&entity.User{Name: "B", Email: "b@example.com", Role: enum.RoleSupplier})
	require.NoError(t, svc.DeleteUser(context.Background(), admin.ID, other.ID))
}

func TestUpdateUser_RoleChange(t *testing.T) {
	users := newFakeUserRepo()
	target := users.add(&entity.User{Name: "B", Email: "b@example.com", Role: enum.RoleSupplier})
	svc := NewUserService(users, &fakeActivityRepo{})

	admin := enum.RoleAdmin
	updated, err := svc.UpdateUser(context.Background(), uuid.New(), target.ID, &UpdateUserInput{Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, enum.RoleAdmin, updated.Role)

	bad := enum.Role("superuser")
	_, err = svc.UpdateUser(context.Background(), uuid.New(), target.ID, &UpdateUserInput{Role: &bad})
	assert.Error(t, err)
}

func TestListUsers_FiltersByRole(t *testing.T) {
	users := newFakeUserRepo()
	users.add(&entity.User{Name: "Root", Email: "root@example.com", Role: enum.RoleAdmin})
	users.add(&entity.User{Name: "A", Email: "a@example.com", Role: enum.RoleSupplier})
	users.add(&entity.User{Name: "B", Email: "b@example.com", Role: enum.RoleSupplier})
	svc := NewUserService(users, &fakeActivityRepo{})

	role := enum.RoleSupplier
	got, total, err := svc.ListUsers(context.Background(), nil, "", &role)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, got, 2)
}
