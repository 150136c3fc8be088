package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/mesto/internal/server/middleware"
	srvmodels "github.com/IvanChernomyrdin/mesto/internal/server/models"
	serr "github.com/IvanChernomyrdin/mesto/internal/shared/errors"
	"github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

func TestGetUsers_EmptyIsArray(t *testing.T) {
	f := NewTestHandler(t)
	f.users.EXPECT().List(gomock.Any()).Return(nil, nil)

	rr := httptest.NewRecorder()
	middleware.Handle(f.h.Log, f.h.GetUsers).ServeHTTP(rr,
		asUser(httptest.NewRequest(http.MethodGet, "/users", nil), userA))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetUsers_NoPasswordHash(t *testing.T) {
	f := NewTestHandler(t)
	f.users.EXPECT().List(gomock.Any()).Return([]srvmodels.User{
		{ID: userA, Name: "Анна", Email: "a@b.com", PasswordHash: "$2a$04$secret"},
		{ID: userB, Name: "Борис", Email: "b@b.com", PasswordHash: "$2a$04$secret"},
	}, nil)

	rr := httptest.NewRecorder()
	middleware.Handle(f.h.Log, f.h.GetUsers).ServeHTTP(rr,
		asUser(httptest.NewRequest(http.MethodGet, "/users", nil), userA))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret")
	users := decode[[]models.User](t, rr)
	require.Len(t, users, 2)
	assert.Equal(t, userB, users[1].ID)
}

func TestGetMe(t *testing.T) {
	f := NewTestHandler(t)
	f.users.EXPECT().FindByID(gomock.Any(), userA).Return(srvmodels.User{ID: userA, Name: "Анна"}, nil)

	rr := httptest.NewRecorder()
	middleware.Handle(f.h.Log, f.h.GetMe).ServeHTTP(rr,
		asUser(httptest.NewRequest(http.MethodGet, "/users/me", nil), userA))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Анна", decode[models.User](t, rr).Name)
}

// Без пользователя в контексте хендлер отвечает 401
func TestGetMe_NoUser(t *testing.T) {
	f := NewTestHandler(t)

	rr := httptest.NewRecorder()
	middleware.Handle(f.h.Log, f.h.GetMe).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	f := NewTestHandler(t)
	f.users.EXPECT().FindByID(gomock.Any(), userB).Return(srvmodels.User{}, serr.NotFound(serr.MsgUserNotFound))

	rr := httptest.NewRecorder()
	req := withParam(asUser(httptest.NewRequest(http.MethodGet, "/users/"+userB, nil), userA), "userId", userB)
	middleware.Handle(f.h.Log, f.h.GetUser).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, serr.MsgUserNotFound, decode[models.MessageResponse](t, rr).Message)
}

// Пустой PATCH возвращает текущий профиль без записи
func TestUpdateProfile_Empty(t *testing.T) {
	f := NewTestHandler(t)
	f.users.EXPECT().FindByID(gomock.Any(), userA).Return(srvmodels.User{ID: userA, Name: "Анна"}, nil)

	rr := httptest.NewRecorder()
	req := asUser(jsonRequest(t, http.MethodPatch, "/users/me", map[string]string{}), userA)
	withBody[models.ProfileRequest](f, f.h.UpdateProfile).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Анна", decode[models.User](t, rr).Name)
}

func TestUpdateProfile_OnlyName(t *testing.T) {
	f := NewTestHandler(t)
	f.users.EXPECT().
		UpdateFields(gomock.Any(), userA, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd srvmodels.UserUpdate) (srvmodels.User, error) {
			require.NotNil(t, upd.Name)
			assert.Nil(t, upd.About)
			assert.Nil(t, upd.Avatar)
			return srvmodels.User{ID: userA, Name: *upd.Name, About: "Фотограф"}, nil
		})

	rr := httptest.NewRecorder()
	req := asUser(jsonRequest(t, http.MethodPatch, "/users/me", map[string]string{"name": "Новое имя"}), userA)
	withBody[models.ProfileRequest](f, f.h.UpdateProfile).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	u := decode[models.User](t, rr)
	assert.Equal(t, "Новое имя", u.Name)
	assert.Equal(t, "Фотограф", u.About)
}

func TestUpdateProfile_TooShort(t *testing.T) {
	f := NewTestHandler(t)

	rr := httptest.NewRecorder()
	req := asUser(jsonRequest(t, http.MethodPatch, "/users/me", map[string]string{"name": "A"}), userA)
	withBody[models.ProfileRequest](f, f.h.UpdateProfile).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateAvatar(t *testing.T) {
	f := NewTestHandler(t)
	const link = "https://example.com/me.png"
	f.users.EXPECT().
		UpdateFields(gomock.Any(), userA, srvmodels.UserUpdate{Avatar: ptr(link)}).
		Return(srvmodels.User{ID: userA, Avatar: link}, nil)

	rr := httptest.NewRecorder()
	req := asUser(jsonRequest(t, http.MethodPatch, "/users/me/avatar", map[string]string{"avatar": link}), userA)
	withBody[models.AvatarRequest](f, f.h.UpdateAvatar).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, link, decode[models.User](t, rr).Avatar)
}

func TestUpdateAvatar_BadURL(t *testing.T) {
	f := NewTestHandler(t)

	rr := httptest.NewRecorder()
	req := asUser(jsonRequest(t, http.MethodPatch, "/users/me/avatar", map[string]string{"avatar": "ftp://x"}), userA)
	withBody[models.AvatarRequest](f, f.h.UpdateAvatar).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Ошибка в запросе: avatar", decode[models.MessageResponse](t, rr).Message)
}

func ptr[T any](v T) *T { return &v }
