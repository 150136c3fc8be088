// Серверные модели пользователя и карточки
package models

import (
	"time"

	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// Значения профиля по умолчанию.
const (
	DefaultName   = "Жак-Ив Кусто"
	DefaultAbout  = "Исследователь"
	DefaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

type User struct {
	ID           string
	Name         string
	About        string
	Avatar       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Public возвращает представление пользователя для API (без хэша пароля).
func (u User) Public() shared.User {
	return shared.User{
		ID:     u.ID,
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
		Email:  u.Email,
	}
}

// UserUpdate — частичное обновление профиля. nil означает "не менять".
type UserUpdate struct {
	Name   *string
	About  *string
	Avatar *string
}

// Empty сообщает, что обновлять нечего.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.About == nil && u.Avatar == nil
}
