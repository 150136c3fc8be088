package api

import (
	"context"
	"net/url"

	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// GetUserInfo возвращает профиль текущего пользователя (GET /users/me).
func (c *Client) GetUserInfo(ctx context.Context) (shared.User, error) {
	var resp shared.User
	err := c.GetJSON(ctx, "/users/me", &resp)
	return resp, err
}

// GetUsers возвращает всех пользователей.
func (c *Client) GetUsers(ctx context.Context) ([]shared.User, error) {
	var resp []shared.User
	err := c.GetJSON(ctx, "/users", &resp)
	return resp, err
}

// GetUser возвращает пользователя по id.
func (c *Client) GetUser(ctx context.Context, id string) (shared.User, error) {
	var resp shared.User
	err := c.GetJSON(ctx, "/users/"+url.PathEscape(id), &resp)
	return resp, err
}

// SetUserInfo меняет имя и описание. nil-поле не отправляется и не меняется.
func (c *Client) SetUserInfo(ctx context.Context, name, about *string) (shared.User, error) {
	var resp shared.User
	err := c.PatchJSON(ctx, "/users/me", shared.ProfileRequest{Name: name, About: about}, &resp)
	return resp, err
}

// SetAvatar меняет аватар.
func (c *Client) SetAvatar(ctx context.Context, link string) (shared.User, error) {
	var resp shared.User
	err := c.PatchJSON(ctx, "/users/me/avatar", shared.AvatarRequest{Avatar: link}, &resp)
	return resp, err
}
