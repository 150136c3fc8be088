// Методы клиента для регистрации, входа и выхода
package api

import (
	"context"
	"net/http"
	"time"

	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// Session — cookie с токеном, полученная при входе.
type Session struct {
	Token   string
	Expires time.Time
}

// Register регистрирует пользователя (POST /signup) и возвращает созданный профиль.
// Cookie при этом не ставится: после регистрации нужен Authorize.
func (c *Client) Register(ctx context.Context, req shared.SignupRequest) (shared.User, error) {
	var resp shared.User
	err := c.PostJSON(ctx, "/signup", req, &resp)
	return resp, err
}

// Authorize выполняет вход (POST /signin). Сервер ставит cookie jwt,
// jar запоминает её; она же возвращается для сохранения на диск.
func (c *Client) Authorize(ctx context.Context, email, password string) (shared.User, Session, error) {
	var resp shared.User
	res, err := c.send(ctx, http.MethodPost, "/signin", shared.SigninRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return shared.User{}, Session{}, err
	}

	var s Session
	for _, ck := range res.Cookies() {
		if ck.Name != SessionCookie {
			continue
		}
		s.Token = ck.Value
		switch {
		case ck.MaxAge > 0:
			s.Expires = time.Now().Add(time.Duration(ck.MaxAge) * time.Second)
		case !ck.Expires.IsZero():
			s.Expires = ck.Expires
		}
	}
	if s.Token == "" {
		s.Token, _ = c.Session()
	}
	return resp, s, nil
}

// SignOut просит сервер удалить cookie (GET /signout).
func (c *Client) SignOut(ctx context.Context) error {
	return c.GetJSON(ctx, "/signout", nil)
}
