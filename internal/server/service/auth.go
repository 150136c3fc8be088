package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/IvanChernomyrdin/mesto/internal/server/crypto"
	"github.com/IvanChernomyrdin/mesto/internal/server/models"
	serr "github.com/IvanChernomyrdin/mesto/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
	"github.com/IvanChernomyrdin/mesto/internal/shared/utils"
)

// AuthService реализует регистрацию и вход.
//
// Сервис не хранит сессий: после входа выдаётся JWT с id пользователя,
// а middleware проверяет его на каждом запросе.
type AuthService struct {
	users  UsersRepo
	hasher crypto.Hasher
	tokens *crypto.JWT
}

func NewAuthService(users UsersRepo, hasher crypto.Hasher, tokens *crypto.JWT) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Tokens возвращает выпускающий/проверяющий JWT компонент (нужен middleware).
func (s *AuthService) Tokens() *crypto.JWT {
	return s.tokens
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register создаёт пользователя.
//
// Незаданные name/about/avatar получают значения по умолчанию.
// Ошибки:
//   - Conflict — email уже зарегистрирован
//   - BadRequest — данные не прошли ограничения хранилища
func (s *AuthService) Register(ctx context.Context, req shared.SignupRequest) (models.User, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, models.User{
		Name:         utils.Deref(req.Name, models.DefaultName),
		About:        utils.Deref(req.About, models.DefaultAbout),
		Avatar:       utils.Deref(req.Avatar, models.DefaultAvatar),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
	})
}

// Login проверяет почту и пароль и выдаёт токен.
//
// Возвращает сохранённый профиль пользователя и подписанный JWT.
// Не раскрывает, что именно не совпало: и для неизвестной почты,
// и для неверного пароля ответ одинаковый.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.users.FindOneByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.User{}, "", serr.Unauthorized(serr.MsgInvalidCredentials)
		}
		return models.User{}, "", err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return models.User{}, "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return models.User{}, "", serr.Unauthorized(serr.MsgInvalidCredentials)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	user.PasswordHash = ""
	return user, token, nil
}
