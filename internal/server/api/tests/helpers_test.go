package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/mesto/internal/server/api"
	"github.com/IvanChernomyrdin/mesto/internal/server/config"
	"github.com/IvanChernomyrdin/mesto/internal/server/middleware"
	"github.com/IvanChernomyrdin/mesto/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/mesto/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/mesto/internal/server/validation"
	"github.com/IvanChernomyrdin/mesto/internal/shared/logger"
)

const (
	signingKey = "supersecretkeysupersecretkey123456"
	userA      = "aaaaaaaaaaaaaaaaaaaaaaaa"
	userB      = "bbbbbbbbbbbbbbbbbbbbbbbb"
	cardID     = "cccccccccccccccccccccccc"
)

type fixture struct {
	h     *api.Handler
	users *svcmocks.MockUsersRepo
	cards *svcmocks.MockCardsRepo
}

// NewTestHandler создаёт Handler с моками репозиториев и быстрым bcrypt
func NewTestHandler(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := svcmocks.NewMockUsersRepo(ctrl)
	cards := svcmocks.NewMockCardsRepo(ctrl)

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Auth.JWT.SigningKey = signingKey
	cfg.Auth.Cookie.Secure = true
	cfg.Password.Bcrypt.Cost = 4

	svc, err := service.NewServices(service.Repositories{Users: users, Cards: cards}, cfg)
	require.NoError(t, err)

	log := logger.NewNop()
	verifier := middleware.NewJWTVerifier(svc.Auth.Tokens(), cfg.Auth.Cookie.Name, log)
	h := api.NewHandler(svc, log, verifier, validation.New(), cfg.Auth.Cookie)

	return fixture{h: h, users: users, cards: cards}
}

// withBody оборачивает хендлер так же, как это делает роутер
func withBody[T any](f fixture, fn middleware.HandlerFunc) http.Handler {
	return middleware.ValidateBody[T](f.h.Validator, 1<<20, f.h.Log)(middleware.Handle(f.h.Log, fn))
}

func jsonRequest(t *testing.T, method, target string, v any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser кладёт id пользователя в контекст, как AuthMiddleware
func asUser(req *http.Request, id string) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), id))
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v), rr.Body.String())
	return v
}

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// withParam добавляет параметр пути так, как его выставляет chi
func withParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(req.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
