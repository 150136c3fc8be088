// Package service содержит бизнес-логику приложения Mesto.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

//go:generate mockgen -source=service.go -destination=mocks/mock_repos.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/IvanChernomyrdin/mesto/internal/server/config"
	"github.com/IvanChernomyrdin/mesto/internal/server/crypto"
	"github.com/IvanChernomyrdin/mesto/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
	Cards CardsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Users *UsersService
	Cards *CardsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (алгоритм хэширования пароля и ключ подписи JWT).
func NewServices(repos Repositories, cfg *config.Config) (*Services, error) {
	hasher, err := crypto.NewHasher(cfg.Password.Hasher, cfg.Password.Bcrypt.Cost, crypto.Argon2Params{
		Time:      cfg.Password.Argon2.Time,
		MemoryKiB: cfg.Password.Argon2.MemoryKiB,
		Threads:   cfg.Password.Argon2.Threads,
		KeyLen:    cfg.Password.Argon2.KeyLen,
		SaltLen:   cfg.Password.Argon2.SaltLen,
	})
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}

	return &Services{
		Auth:  NewAuthService(repos.Users, hasher, crypto.NewJWT(cfg.Auth.JWT.SigningKey)),
		Users: NewUsersService(repos.Users),
		Cards: NewCardsService(repos.Cards),
	}, nil
}

// UsersRepo — репозиторий пользователей.
type UsersRepo interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	FindOneByEmail(ctx context.Context, email string) (models.User, error)
	UpdateFields(ctx context.Context, id string, upd models.UserUpdate) (models.User, error)
}

// CardsRepo — репозиторий карточек. AddLike/RemoveLike атомарны.
type CardsRepo interface {
	Create(ctx context.Context, c models.Card) (models.Card, error)
	List(ctx context.Context) ([]models.Card, error)
	FindByID(ctx context.Context, id string) (models.Card, error)
	Delete(ctx context.Context, id string) (models.Card, error)
	AddLike(ctx context.Context, cardID, userID string) (models.Card, error)
	RemoveLike(ctx context.Context, cardID, userID string) (models.Card, error)
}
