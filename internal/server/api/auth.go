// HTTP-хендлеры регистрации, входа и выхода
package api

import (
	"net/http"
	"time"

	"github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// SignoutMessage — ответ на выход.
const SignoutMessage = "cookies are cleaned"

// Signup регистрирует пользователя.
//
// @Summary      Sign up
// @Description  Creates a user. Name, about and avatar are optional and get defaults. Password is never returned.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.SignupRequest true "Sign up request"
// @Success      200 {object} models.User
// @Failure      400 {object} models.MessageResponse "Validation error"
// @Failure      409 {object} models.MessageResponse "Email already registered"
// @Failure      500 {object} models.MessageResponse
// @Router       /signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) error {
	req, err := body[models.SignupRequest](r)
	if err != nil {
		return err
	}

	user, err := h.Svc.Auth.Register(r.Context(), req)
	if err != nil {
		return err
	}
	return writeJSON(w, r, user.Public())
}

// Signin проверяет почту и пароль, ставит cookie jwt и возвращает профиль.
//
// @Summary      Sign in
// @Description  Sets an httpOnly jwt cookie valid for 7 days and returns the stored profile.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.SigninRequest true "Sign in request"
// @Success      200 {object} models.User
// @Failure      400 {object} models.MessageResponse "Validation error"
// @Failure      401 {object} models.MessageResponse "Wrong email or password"
// @Failure      500 {object} models.MessageResponse
// @Router       /signin [post]
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) error {
	req, err := body[models.SigninRequest](r)
	if err != nil {
		return err
	}

	user, token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	http.SetCookie(w, h.sessionCookie(token, int(h.Cookie.MaxAge/time.Second)))
	return writeJSON(w, r, user.Public())
}

// Signout очищает cookie с токеном.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200 {object} models.MessageResponse
// @Failure      401 {object} models.MessageResponse
// @Router       /signout [get]
func (h *Handler) Signout(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, h.sessionCookie("", -1))
	return writeJSON(w, r, models.MessageResponse{Message: SignoutMessage})
}

// sessionCookie собирает cookie с токеном. maxAge < 0 удаляет cookie.
func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    value,
		Path:     "/",
		Domain:   h.Cookie.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.Cookie.Secure,
		SameSite: h.Cookie.SameSiteMode(),
	}
}
