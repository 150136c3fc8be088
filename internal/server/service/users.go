package service

import (
	"context"

	"github.com/IvanChernomyrdin/mesto/internal/server/models"
)

// UsersService — чтение и изменение профилей.
type UsersService struct {
	users UsersRepo
}

func NewUsersService(users UsersRepo) *UsersService {
	return &UsersService{users: users}
}

func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Get возвращает пользователя по id (NotFound, если его нет).
func (s *UsersService) Get(ctx context.Context, id string) (models.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateProfile меняет name/about текущего пользователя.
// Если оба поля не заданы, возвращает профиль без изменений.
func (s *UsersService) UpdateProfile(ctx context.Context, id string, name, about *string) (models.User, error) {
	upd := models.UserUpdate{Name: name, About: about}
	if upd.Empty() {
		return s.users.FindByID(ctx, id)
	}
	return s.users.UpdateFields(ctx, id, upd)
}

// UpdateAvatar меняет только аватар текущего пользователя.
func (s *UsersService) UpdateAvatar(ctx context.Context, id, avatar string) (models.User, error) {
	return s.users.UpdateFields(ctx, id, models.UserUpdate{Avatar: &avatar})
}
