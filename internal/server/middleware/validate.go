package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/mesto/internal/server/validation"
	serr "github.com/IvanChernomyrdin/mesto/internal/shared/errors"
	"github.com/IvanChernomyrdin/mesto/internal/shared/logger"
)

const bodyKey ctxKey = "body"

// ValidateBody декодирует JSON-тело в T, проверяет его валидатором
// и кладёт результат в контекст. Хендлер получает тело через BodyFromContext.
//
// Ответ 400, если:
//   - тело не JSON или содержит неизвестные поля;
//   - тело больше maxBytes;
//   - поля не прошли проверку (в сообщении перечислены поля).
func ValidateBody[T any](v *validation.Validator, maxBytes int64, log *logger.HTTPLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body T
			if err := decodeJSON(w, r, maxBytes, &body); err != nil {
				WriteError(w, r, log, err)
				return
			}
			if err := v.Struct(body); err != nil {
				WriteError(w, r, log, err)
				return
			}

			ctx := context.WithValue(r.Context(), bodyKey, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BodyFromContext возвращает тело, проверенное ValidateBody.
func BodyFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(bodyKey).(T)
	return v, ok
}

func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return serr.BadRequest(serr.MsgBadRequest + ": тело запроса слишком большое")
		}
		if errors.Is(err, io.EOF) {
			return serr.BadRequest(serr.MsgBadRequest + ": пустое тело")
		}
		return serr.BadRequest(serr.MsgBadRequest)
	}
	// после объекта не должно быть ничего, кроме пробелов
	if dec.More() {
		return serr.BadRequest(serr.MsgBadRequest)
	}
	return nil
}

// ValidateIDParam проверяет параметр пути name (например, cardId):
// ровно 24 hex-символа. Иначе 400, хендлер не вызывается.
// Значение приводится к нижнему регистру.
func ValidateIDParam(v *validation.Validator, name string, log *logger.HTTPLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, name)
			if err := v.ID(name, raw); err != nil {
				WriteError(w, r, log, err)
				return
			}

			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				for i, key := range rctx.URLParams.Keys {
					if key == name {
						rctx.URLParams.Values[i] = strings.ToLower(raw)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
