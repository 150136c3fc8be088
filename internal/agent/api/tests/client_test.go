package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IvanChernomyrdin/mesto/internal/agent/api"
)

func TestClient_PostJSON_SetsHeaders_AndDecodesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected method POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected Content-Type application/json, got %q", ct)
		}
		if acc := r.Header.Get("Accept"); acc != "application/json" {
			t.Errorf("expected Accept application/json, got %q", acc)
		}

		var got map[string]any
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if got["a"] != float64(1) {
			t.Errorf("expected a=1, got %#v", got["a"])
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL + "/")

	var resp map[string]any
	if err := c.PostJSON(context.Background(), "/x", map[string]any{"a": 1}, &resp); err != nil {
		t.Fatalf("PostJSON returned error: %v", err)
	}
	if resp["ok"] != true {
		t.Fatalf("expected ok=true, got %#v", resp["ok"])
	}
}

func TestClient_GetJSON_NoBody_NoContentType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Errorf("expected no Content-Type, got %q", ct)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	var resp map[string]any
	if err := api.NewClient(srv.URL).GetJSON(context.Background(), "/x", &resp); err != nil {
		t.Fatalf("GetJSON returned error: %v", err)
	}
	if resp != nil {
		t.Fatalf("expected untouched resp, got %#v", resp)
	}
}

// Сообщение ошибки берётся из {"message": ...}
func TestClient_Non2xx_StatusErrorFromMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Пользователь с таким email уже существует"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	err := api.NewClient(srv.URL).PostJSON(context.Background(), "/x", map[string]string{}, nil)

	var se *api.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *api.StatusError, got %T %v", err, err)
	}
	if se.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", se.Code)
	}
	if se.Message != "Пользователь с таким email уже существует" {
		t.Fatalf("unexpected message %q", se.Message)
	}
}

func TestClient_Non2xx_PlainBodyAndEmptyBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/plain", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("  upstream down \n"))
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := api.NewClient(srv.URL)

	err := c.GetJSON(context.Background(), "/plain", nil)
	if err == nil || err.Error() != "upstream down" {
		t.Fatalf("expected body text as error, got %v", err)
	}

	err = c.GetJSON(context.Background(), "/empty", nil)
	if err == nil || err.Error() != "401 Unauthorized" {
		t.Fatalf("expected status as error, got %v", err)
	}
	if !api.IsUnauthorized(err) {
		t.Fatal("expected IsUnauthorized to be true")
	}
}

func TestClient_EmptyBody_IsOK(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	var resp map[string]any
	if err := api.NewClient(srv.URL).GetJSON(context.Background(), "/x", &resp); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestClient_InvalidJSON(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{broken"))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	var resp map[string]any
	if err := api.NewClient(srv.URL).GetJSON(context.Background(), "/x", &resp); err == nil {
		t.Fatal("expected decode error")
	}
}

// Восстановленная сессия отправляется как cookie jwt
func TestClient_RestoreSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie(api.SessionCookie)
		if err != nil || ck.Value != "tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"_id":"aaaaaaaaaaaaaaaaaaaaaaaa"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)
	if _, err := c.GetUserInfo(context.Background()); !api.IsUnauthorized(err) {
		t.Fatalf("expected 401 without session, got %v", err)
	}

	c.RestoreSession("tok", time.Now().Add(time.Hour))
	if tok, ok := c.Session(); !ok || tok != "tok" {
		t.Fatalf("expected session tok, got %q %v", tok, ok)
	}
	u, err := c.GetUserInfo(context.Background())
	if err != nil {
		t.Fatalf("GetUserInfo returned error: %v", err)
	}
	if u.ID != "aaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Fatalf("unexpected user %+v", u)
	}
}

func TestClient_RestoreSession_Expired(t *testing.T) {
	c := api.NewClient("http://127.0.0.1:1")
	c.RestoreSession("tok", time.Now().Add(-time.Minute))

	if _, ok := c.Session(); ok {
		t.Fatal("expired session must not be restored")
	}
}
