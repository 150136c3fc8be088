// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"net/http"

	"github.com/IvanChernomyrdin/mesto/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/mesto/internal/shared/errors"
	"github.com/IvanChernomyrdin/mesto/internal/shared/logger"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userIDKey — ключ контекста, под которым хранится ID аутентифицированного пользователя.
const userIDKey ctxKey = "user_id"

// JWTVerifier проверяет сессионный токен из cookie.
//
// Используется в HTTP middleware для:
//   - чтения токена из cookie (по умолчанию jwt)
//   - проверки подписи
//   - извлечения userID из claims
type JWTVerifier struct {
	Tokens     *crypto.JWT
	CookieName string
	Log        *logger.HTTPLogger
}

// NewJWTVerifier создаёт JWTVerifier. Пустое имя cookie означает "jwt".
func NewJWTVerifier(tokens *crypto.JWT, cookieName string, log *logger.HTTPLogger) *JWTVerifier {
	if cookieName == "" {
		cookieName = "jwt"
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &JWTVerifier{Tokens: tokens, CookieName: cookieName, Log: log}
}

// UserIDFromContext извлекает userID аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - userID
//   - false, если пользователь не аутентифицирован
func UserIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKey)
	s, ok := v.(string)
	return s, ok && s != ""
}

// WithUserID кладёт userID в контекст (так делает AuthMiddleware после проверки токена).
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// AuthMiddleware возвращает HTTP middleware для проверки сессионного токена.
//
// Нет cookie, токен испорчен или подписан другим ключом: 401 с
// {"message":"Необходима авторизация"}, следующий обработчик не вызывается.
// Личность берётся из токена на каждом запросе и нигде не кэшируется.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if c, err := r.Cookie(v.CookieName); err == nil {
				token = c.Value
			}

			userID, err := v.Tokens.Verify(token)
			if err != nil {
				WriteError(w, r, v.Log, serr.Unauthorized(serr.MsgUnauthorized))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
