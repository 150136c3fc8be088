package models

import "time"

// User — публичное представление пользователя в HTTP API.
//
// Пароль (и его хэш) в ответах не передаётся никогда.
type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

// Card — карточка с фотографией.
//
// Поля:
//   - ID: идентификатор карточки (24 hex-символа)
//   - Name: подпись к фотографии
//   - Link: ссылка на изображение
//   - Owner: ID пользователя, создавшего карточку
//   - Likes: ID пользователей, поставивших лайк (без повторов, всегда массив)
//   - CreatedAt: время создания (серверное)
type Card struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikedBy сообщает, есть ли userID среди лайкнувших.
func (c Card) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// SignupRequest — тело POST /signup.
type SignupRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=30"`
	About    *string `json:"about,omitempty" validate:"omitempty,min=2,max=30"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,mesto_url"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required"`
}

// SigninRequest — тело POST /signin.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileRequest — тело PATCH /users/me. Незаданные поля не меняются.
type ProfileRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=2,max=30"`
	About *string `json:"about,omitempty" validate:"omitempty,min=2,max=30"`
}

// AvatarRequest — тело PATCH /users/me/avatar.
type AvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,mesto_url"`
}

// CardRequest — тело POST /cards.
type CardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,mesto_url"`
}

// MessageResponse — ответ с одним сообщением. Так же выглядят все ошибки API.
type MessageResponse struct {
	Message string `json:"message"`
}
