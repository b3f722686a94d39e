package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	"github.com/hong-layeang/quickstock-api/pkg/apperror"
	"github.com/hong-layeang/quickstock-api/pkg/utils"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, jwtManager), users
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{
		Name:     "Acme Supplies",
		Email:    "acme@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.RoleSupplier, user.Role, "self-registration always yields a supplier")
	assert.NotEqual(t, "s3cret-pass", user.Password, "password must be stored hashed")

	out, err := svc.Login(ctx, &LoginInput{Email: "acme@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestLogin_WrongCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "A", Email: "a@example.com", Password: "correct-pass"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "a@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	// Unknown emails produce the same error, not a 404.
	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "A", Email: "a@example.com", Password: "password-1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Name: "B", Email: "a@example.com", Password: "password-2"})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestRefresh_RotatesTokens(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "A", Email: "a@example.com", Password: "password-1"})
	require.NoError(t, err)
	out, err := svc.Login(ctx, &LoginInput{Email: "a@example.com", Password: "password-1"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, out.User.ID, refreshed.User.ID)

	_, err = svc.Refresh(ctx, "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{Name: "A", Email: "a@example.com", Password: "old-password"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "wrong-password", "new-password")
	assert.Error(t, err)

	err = svc.ChangePassword(ctx, user.ID, "old-password", "new-password")
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "a@example.com", Password: "new-password"})
	assert.NoError(t, err)
}
