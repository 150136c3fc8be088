// Package api реализует HTTP-слой сервера Mesto.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - установку и очистку cookie с сессионным токеном.
//
// Хендлеры возвращают error; перевод ошибок в HTTP-ответы делает
// middleware.Handle, а проверку тел и параметров пути — middleware.ValidateBody
// и middleware.ValidateIDParam ещё до вызова хендлера.
package api

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/IvanChernomyrdin/mesto/internal/server/config"
	"github.com/IvanChernomyrdin/mesto/internal/server/middleware"
	"github.com/IvanChernomyrdin/mesto/internal/server/service"
	"github.com/IvanChernomyrdin/mesto/internal/server/validation"
	serr "github.com/IvanChernomyrdin/mesto/internal/shared/errors"
	"github.com/IvanChernomyrdin/mesto/internal/shared/logger"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: проверка сессионного токена и middleware авторизации;
//   - Validator: проверка тел запросов и параметров пути;
//   - Cookie: параметры cookie с токеном.
type Handler struct {
	Svc       *service.Services
	Log       *logger.HTTPLogger
	Verifier  *middleware.JWTVerifier
	Validator *validation.Validator
	Cookie    config.CookieConfig
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(
	svc *service.Services,
	log *logger.HTTPLogger,
	verifier *middleware.JWTVerifier,
	validator *validation.Validator,
	cookie config.CookieConfig,
) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	if cookie.Name == "" {
		cookie.Name = "jwt"
	}
	return &Handler{
		Svc:       svc,
		Log:       log,
		Verifier:  verifier,
		Validator: validator,
		Cookie:    cookie,
	}
}

// currentUser достаёт id пользователя, положенный AuthMiddleware.
func currentUser(r *http.Request) (string, error) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return "", serr.Unauthorized(serr.MsgUnauthorized)
	}
	return id, nil
}

// body достаёт тело, проверенное middleware.ValidateBody.
func body[T any](r *http.Request) (T, error) {
	v, ok := middleware.BodyFromContext[T](r.Context())
	if !ok {
		var zero T
		return zero, serr.BadRequest(serr.MsgBadRequest)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, v)
	return nil
}

// NotFound — ответ на любой незарегистрированный путь.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) error {
	return serr.NotFound(serr.MsgRouteNotFound)
}

// CrashTest падает с паникой. Нужен для проверки, что сервер
// переживает панику в хендлере и отвечает общим 500.
//
// @Summary      Crash test
// @Tags         service
// @Produce      json
// @Failure      500 {object} models.MessageResponse
// @Router       /crash-test [get]
func (h *Handler) CrashTest(w http.ResponseWriter, r *http.Request) error {
	panic("Server Error")
}
