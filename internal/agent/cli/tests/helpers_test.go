package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/mesto/internal/agent/cli"
	"github.com/IvanChernomyrdin/mesto/internal/agent/config"
	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

const (
	userID   = "aaaaaaaaaaaaaaaaaaaaaaaa"
	otherID  = "bbbbbbbbbbbbbbbbbbbbbbbb"
	cardID   = "cccccccccccccccccccccccc"
	token    = "tok-1"
	email    = "test@example.com"
	password = "StrongPass123"
)

// fakeServer — упрощённый сервер Mesto для тестов клиента.
type fakeServer struct {
	*httptest.Server

	mu    sync.Mutex
	user  shared.User
	cards []shared.Card
	calls []string
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	fs := &fakeServer{
		user: shared.User{ID: userID, Name: "Анна", About: "Фотограф", Email: email},
		cards: []shared.Card{
			{ID: cardID, Name: "Байкал", Link: "https://example.com/b.jpg", Owner: otherID, Likes: []string{}},
		},
	}

	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ck, err := r.Cookie("jwt")
			if err != nil || ck.Value != token {
				writeJSON(w, http.StatusUnauthorized, shared.MessageResponse{Message: "Необходима авторизация"})
				return
			}
			h(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /signup", func(w http.ResponseWriter, r *http.Request) {
		var req shared.SignupRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email == "taken@example.com" {
			writeJSON(w, http.StatusConflict, shared.MessageResponse{Message: "Пользователь с таким email уже существует"})
			return
		}
		name := "Жак-Ив Кусто"
		if req.Name != nil {
			name = *req.Name
		}
		writeJSON(w, http.StatusOK, shared.User{ID: otherID, Name: name, Email: req.Email})
	})
	mux.HandleFunc("POST /signin", func(w http.ResponseWriter, r *http.Request) {
		var req shared.SigninRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != email || req.Password != password {
			writeJSON(w, http.StatusUnauthorized, shared.MessageResponse{Message: "Неправильные почта или пароль"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "jwt", Value: token, Path: "/", MaxAge: 604800, HttpOnly: true})
		fs.mu.Lock()
		defer fs.mu.Unlock()
		writeJSON(w, http.StatusOK, fs.user)
	})
	mux.HandleFunc("GET /signout", authed(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "jwt", Path: "/", MaxAge: -1})
		writeJSON(w, http.StatusOK, shared.MessageResponse{Message: "cookies are cleaned"})
	}))
	mux.HandleFunc("GET /users/me", authed(func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		writeJSON(w, http.StatusOK, fs.user)
	}))
	mux.HandleFunc("PATCH /users/me", authed(func(w http.ResponseWriter, r *http.Request) {
		var req shared.ProfileRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		fs.mu.Lock()
		defer fs.mu.Unlock()
		if req.Name != nil {
			fs.user.Name = *req.Name
		}
		if req.About != nil {
			fs.user.About = *req.About
		}
		writeJSON(w, http.StatusOK, fs.user)
	}))
	mux.HandleFunc("PATCH /users/me/avatar", authed(func(w http.ResponseWriter, r *http.Request) {
		var req shared.AvatarRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.user.Avatar = req.Avatar
		writeJSON(w, http.StatusOK, fs.user)
	}))
	mux.HandleFunc("GET /users", authed(func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		writeJSON(w, http.StatusOK, []shared.User{fs.user, {ID: otherID, Name: "Борис"}})
	}))
	mux.HandleFunc("GET /users/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, shared.User{ID: r.PathValue("id"), Name: "Борис"})
	}))
	mux.HandleFunc("GET /cards", authed(func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		writeJSON(w, http.StatusOK, fs.cards)
	}))
	mux.HandleFunc("POST /cards", authed(func(w http.ResponseWriter, r *http.Request) {
		var req shared.CardRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		c := shared.Card{ID: "dddddddddddddddddddddddd", Name: req.Name, Link: req.Link, Owner: userID, Likes: []string{}}
		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.cards = append([]shared.Card{c}, fs.cards...)
		writeJSON(w, http.StatusOK, c)
	}))
	mux.HandleFunc("DELETE /cards/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		for i, c := range fs.cards {
			if c.ID != r.PathValue("id") {
				continue
			}
			if c.Owner != userID {
				writeJSON(w, http.StatusForbidden, shared.MessageResponse{Message: "Нельзя удалить чужую карточку"})
				return
			}
			fs.cards = append(fs.cards[:i], fs.cards[i+1:]...)
			writeJSON(w, http.StatusOK, c)
			return
		}
		writeJSON(w, http.StatusNotFound, shared.MessageResponse{Message: "Карточка не найдена"})
	}))
	mux.HandleFunc("/cards/{id}/likes", authed(func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.calls = append(fs.calls, r.Method+" likes")
		for i, c := range fs.cards {
			if c.ID != r.PathValue("id") {
				continue
			}
			if r.Method == http.MethodPut {
				if !c.LikedBy(userID) {
					c.Likes = append(c.Likes, userID)
				}
			} else {
				c.Likes = []string{}
			}
			fs.cards[i] = c
			writeJSON(w, http.StatusOK, c)
			return
		}
		writeJSON(w, http.StatusNotFound, shared.MessageResponse{Message: "Карточка не найдена"})
	}))

	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newApp создаёт App с файлом сессии во временной директории.
// signedIn=true кладёт туда действующую сессию.
func newApp(t *testing.T, fs *fakeServer, signedIn bool) *cli.App {
	t.Helper()

	app := &cli.App{
		ServerURL:   fs.URL,
		SessionPath: filepath.Join(t.TempDir(), "session.json"),
		Session:     &config.Session{},
	}
	if signedIn {
		app.Session = &config.Session{Server: fs.URL, Email: email, Token: token}
		if err := config.Save(app.SessionPath, app.Session); err != nil {
			t.Fatalf("save session: %v", err)
		}
	}
	return app
}

func run(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
