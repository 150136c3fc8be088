package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/mesto/internal/server/config"
	crypt "github.com/IvanChernomyrdin/mesto/internal/server/crypto"
	"github.com/IvanChernomyrdin/mesto/internal/server/models"
	"github.com/IvanChernomyrdin/mesto/internal/server/service"
	"github.com/IvanChernomyrdin/mesto/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/mesto/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
	"github.com/IvanChernomyrdin/mesto/internal/shared/utils"
)

const (
	testKey = "supersecretkeysupersecretkey123456"
	userA   = "aaaaaaaaaaaaaaaaaaaaaaaa"
	userB   = "bbbbbbbbbbbbbbbbbbbbbbbb"
	cardID  = "cccccccccccccccccccccccc"
)

// создаём сервис на моках и быстром bcrypt
func newAuthService(t *testing.T) (*service.AuthService, *mocks.MockUsersRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)
	return service.NewAuthService(users, crypt.NewBcryptHasher(4), crypt.NewJWT(testKey)), users
}

func TestAuthService_Register_Defaults(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, models.DefaultName, u.Name)
			assert.Equal(t, models.DefaultAbout, u.About)
			assert.Equal(t, models.DefaultAvatar, u.Avatar)
			assert.Equal(t, "a@b.com", u.Email)
			assert.NotEqual(t, "secret123", u.PasswordHash)
			u.ID = userA
			return u, nil
		})

	u, err := svc.Register(ctx, shared.SignupRequest{Email: " A@B.com ", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, userA, u.ID)
}

func TestAuthService_Register_CustomProfile(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "Анна", u.Name)
			assert.Equal(t, models.DefaultAbout, u.About)
			return u, nil
		})

	_, err := svc.Register(ctx, shared.SignupRequest{Name: utils.Ptr("Анна"), Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)
}

// Повторная регистрация — конфликт из хранилища пробрасывается как есть
func TestAuthService_Register_Conflict(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().Create(ctx, gomock.Any()).Return(models.User{}, serr.Conflict(serr.MsgEmailExists))

	_, err := svc.Register(ctx, shared.SignupRequest{Email: "a@b.com", Password: "secret123"})
	require.ErrorIs(t, err, serr.ErrConflict)
}

// Успех: возвращается сохранённый профиль и токен с его id
func TestAuthService_Login_OK(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	hash, err := crypt.NewBcryptHasher(4).Hash("secret123")
	require.NoError(t, err)

	users.EXPECT().
		FindOneByEmail(ctx, "a@b.com").
		Return(models.User{ID: userA, Name: "Анна", Email: "a@b.com", PasswordHash: hash}, nil)

	u, token, err := svc.Login(ctx, "a@b.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "Анна", u.Name)
	assert.Empty(t, u.PasswordHash)

	id, err := svc.Tokens().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userA, id)
}

// Неверный пароль
func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	hash, err := crypt.NewBcryptHasher(4).Hash("secret123")
	require.NoError(t, err)

	users.EXPECT().FindOneByEmail(ctx, "a@b.com").Return(models.User{ID: userA, PasswordHash: hash}, nil)

	_, _, err = svc.Login(ctx, "a@b.com", "wrong")
	require.ErrorIs(t, err, serr.ErrUnauthorized)
	assert.Equal(t, serr.MsgInvalidCredentials, serr.PublicMessage(err))
}

// Неизвестная почта даёт тот же ответ, что и неверный пароль
func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().FindOneByEmail(ctx, "x@b.com").Return(models.User{}, serr.NotFound(serr.MsgUserNotFound))

	_, _, err := svc.Login(ctx, "x@b.com", "secret123")
	require.ErrorIs(t, err, serr.ErrUnauthorized)
	assert.Equal(t, serr.MsgInvalidCredentials, serr.PublicMessage(err))
}

func TestAuthService_Login_StoreError(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	boom := errors.New("db down")
	users.EXPECT().FindOneByEmail(ctx, "a@b.com").Return(models.User{}, boom)

	_, _, err := svc.Login(ctx, "a@b.com", "secret123")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 500, serr.Status(err))
}

func TestNewServices(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Auth.JWT.SigningKey = testKey

	ctrl := gomock.NewController(t)
	svc, err := service.NewServices(service.Repositories{
		Users: mocks.NewMockUsersRepo(ctrl),
		Cards: mocks.NewMockCardsRepo(ctrl),
	}, cfg)
	require.NoError(t, err)
	require.NotNil(t, svc.Auth)
	require.NotNil(t, svc.Users)
	require.NotNil(t, svc.Cards)

	cfg.Password.Hasher = "md5"
	_, err = service.NewServices(service.Repositories{}, cfg)
	require.Error(t, err)
}
