package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	srvmodels "github.com/IvanChernomyrdin/mesto/internal/server/models"
	"github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

func publicUsers(users []srvmodels.User) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}

// GetUsers возвращает всех пользователей.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Success      200 {array}  models.User
// @Failure      401 {object} models.MessageResponse
// @Router       /users [get]
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.Svc.Users.List(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, r, publicUsers(users))
}

// GetMe возвращает профиль текущего пользователя.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Success      200 {object} models.User
// @Failure      401 {object} models.MessageResponse
// @Failure      404 {object} models.MessageResponse
// @Router       /users/me [get]
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) error {
	id, err := currentUser(r)
	if err != nil {
		return err
	}

	user, err := h.Svc.Users.Get(r.Context(), id)
	if err != nil {
		return err
	}
	return writeJSON(w, r, user.Public())
}

// GetUser возвращает пользователя по id.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Param        userId path string true "24 hex chars"
// @Success      200 {object} models.User
// @Failure      400 {object} models.MessageResponse "Malformed id"
// @Failure      401 {object} models.MessageResponse
// @Failure      404 {object} models.MessageResponse
// @Router       /users/{userId} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) error {
	user, err := h.Svc.Users.Get(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		return err
	}
	return writeJSON(w, r, user.Public())
}

// UpdateProfile меняет имя и описание текущего пользователя.
//
// @Summary      Update profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        request body models.ProfileRequest true "Fields to change"
// @Success      200 {object} models.User
// @Failure      400 {object} models.MessageResponse
// @Failure      401 {object} models.MessageResponse
// @Failure      404 {object} models.MessageResponse
// @Router       /users/me [patch]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) error {
	id, err := currentUser(r)
	if err != nil {
		return err
	}
	req, err := body[models.ProfileRequest](r)
	if err != nil {
		return err
	}

	user, err := h.Svc.Users.UpdateProfile(r.Context(), id, req.Name, req.About)
	if err != nil {
		return err
	}
	return writeJSON(w, r, user.Public())
}

// UpdateAvatar меняет аватар текущего пользователя.
//
// @Summary      Update avatar
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        request body models.AvatarRequest true "New avatar link"
// @Success      200 {object} models.User
// @Failure      400 {object} models.MessageResponse
// @Failure      401 {object} models.MessageResponse
// @Failure      404 {object} models.MessageResponse
// @Router       /users/me/avatar [patch]
func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) error {
	id, err := currentUser(r)
	if err != nil {
		return err
	}
	req, err := body[models.AvatarRequest](r)
	if err != nil {
		return err
	}

	user, err := h.Svc.Users.UpdateAvatar(r.Context(), id, req.Avatar)
	if err != nil {
		return err
	}
	return writeJSON(w, r, user.Public())
}
