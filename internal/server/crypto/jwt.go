// Package crypto содержит криптографические примитивы,
// используемые сервером Mesto.
//
// В частности, пакет отвечает за:
//   - выпуск и проверку JWT сессионных токенов;
//   - хэширование и проверку паролей пользователей (bcrypt / argon2id).
package crypto

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken возвращается, если токен отсутствует, испорчен или подписан другим ключом.
var ErrInvalidToken = errors.New("invalid token")

var timeNow = time.Now

// Claims — полезная нагрузка сессионного токена.
//
// Токен несёт только идентификатор пользователя в поле _id.
// Срок жизни в самом токене не задаётся: сессию ограничивает max-age cookie.
type Claims struct {
	UserID string `json:"_id"`
	jwt.RegisteredClaims
}

// JWT выпускает и проверяет сессионные токены, подписанные HS256.
type JWT struct {
	// SigningKey — секретный ключ для подписи токена (HS256).
	SigningKey string
}

// NewJWT создаёт JWT с ключом signingKey.
func NewJWT(signingKey string) *JWT {
	return &JWT{SigningKey: signingKey}
}

// Issue создаёт и подписывает токен для пользователя userID.
func (j *JWT) Issue(userID string) (string, error) {
	claims := Claims{
		UserID:           userID,
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(timeNow())},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(j.SigningKey))
}

// Verify проверяет подпись токена и возвращает userID из claims.
//
// Ошибка ErrInvalidToken возвращается, если:
//   - токен пустой;
//   - подпись не сходится или алгоритм не HS256;
//   - в claims нет _id.
func (j *JWT) Verify(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}

	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(j.SigningKey), nil
	}); err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}

	userID := strings.TrimSpace(claims.UserID)
	if userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}
