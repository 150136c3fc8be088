// Package api содержит HTTP-клиент для взаимодействия с сервером Mesto.
//
// Клиент хранит базовый URL сервера и http.Client с cookie jar: после
// Authorize сервер ставит httpOnly cookie jwt, и jar отправляет её
// со всеми следующими запросами.
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - По умолчанию добавляется заголовок Accept: application/json.
//   - Заголовок Content-Type: application/json добавляется только при наличии тела запроса.
//   - При ответе не 2xx возвращается *StatusError с сообщением сервера.
//   - Повторов и кэша нет.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// SessionCookie — имя cookie с токеном.
const SessionCookie = "jwt"

// StatusError — ответ сервера со статусом не 2xx.
//
// Message берётся из тела {"message": "..."}, а если его нет — из текста тела
// или строки статуса.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// IsUnauthorized сообщает, что сервер ответил 401.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusUnauthorized
}

// Client реализует HTTP-клиент для общения с сервером Mesto.
type Client struct {
	baseURL string
	base    *url.URL
	http    *http.Client
	cards   *Superseder
}

// NewClient создаёт клиент с пустым cookie jar и таймаутом 10 секунд.
func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		u = &url.URL{}
	}
	// cookiejar.New с nil-опциями ошибку не возвращает
	jar, _ := cookiejar.New(nil)

	return &Client{
		baseURL: baseURL,
		base:    u,
		http: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
		cards: NewSuperseder(),
	}
}

// Session возвращает значение cookie jwt, если она есть в jar.
func (c *Client) Session() (string, bool) {
	for _, ck := range c.http.Jar.Cookies(c.base) {
		if ck.Name == SessionCookie && ck.Value != "" {
			return ck.Value, true
		}
	}
	return "", false
}

// RestoreSession кладёт сохранённый токен в jar.
// Истёкшая сессия (expires в прошлом) не восстанавливается.
func (c *Client) RestoreSession(token string, expires time.Time) {
	if token == "" || (!expires.IsZero() && !expires.After(time.Now())) {
		return
	}
	c.http.Jar.SetCookies(c.base, []*http.Cookie{{
		Name:    SessionCookie,
		Value:   token,
		Path:    "/",
		Expires: expires,
	}})
}

// readAPIError собирает StatusError из ответа.
func readAPIError(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)

	var m shared.MessageResponse
	msg := ""
	if err := json.Unmarshal(raw, &m); err == nil && m.Message != "" {
		msg = m.Message
	} else {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = res.Status
	}
	return &StatusError{Code: res.StatusCode, Message: msg}
}

// decodeJSONOrOK декодирует JSON из r в resp. Пустое тело — не ошибка.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// send выполняет запрос и декодирует ответ в resp.
// Возвращает *http.Response с уже закрытым телом (нужны заголовки и cookie).
func (c *Client) send(ctx context.Context, method, path string, req, resp any) (*http.Response, error) {
	var body io.Reader
	if req != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return nil, err
		}
		body = &buf
	}

	r, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(r)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, readAPIError(res)
	}
	if res.StatusCode == http.StatusNoContent {
		return res, nil
	}
	return res, decodeJSONOrOK(res.Body, resp)
}

// GetJSON выполняет GET-запрос и декодирует JSON-ответ в resp.
func (c *Client) GetJSON(ctx context.Context, path string, resp any) error {
	_, err := c.send(ctx, http.MethodGet, path, nil, resp)
	return err
}

// PostJSON выполняет POST-запрос с телом req.
func (c *Client) PostJSON(ctx context.Context, path string, req, resp any) error {
	_, err := c.send(ctx, http.MethodPost, path, req, resp)
	return err
}

// PatchJSON выполняет PATCH-запрос с телом req.
func (c *Client) PatchJSON(ctx context.Context, path string, req, resp any) error {
	_, err := c.send(ctx, http.MethodPatch, path, req, resp)
	return err
}

// PutJSON выполняет PUT-запрос. req может быть nil.
func (c *Client) PutJSON(ctx context.Context, path string, req, resp any) error {
	_, err := c.send(ctx, http.MethodPut, path, req, resp)
	return err
}

// DeleteJSON выполняет DELETE-запрос.
func (c *Client) DeleteJSON(ctx context.Context, path string, resp any) error {
	_, err := c.send(ctx, http.MethodDelete, path, nil, resp)
	return err
}
