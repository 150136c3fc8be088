package tests

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/mesto/internal/agent/cli"
	"github.com/IvanChernomyrdin/mesto/internal/agent/config"
)

func writeFile(p, s string) error {
	return os.WriteFile(p, []byte(s), 0o600)
}

func TestSignin_SavesSession(t *testing.T) {
	fs := newFakeServer(t)
	app := newApp(t, fs, false)

	out, err := run(cli.NewSigninCmd(app), "--email", email, "--password", password)
	if err != nil {
		t.Fatalf("signin returned error: %v (%s)", err, out)
	}
	if !strings.Contains(out, "signin ok") {
		t.Fatalf("unexpected output %q", out)
	}

	s, err := config.Load(app.SessionPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Token != token || s.Email != email || s.Server != fs.URL {
		t.Fatalf("unexpected session %+v", s)
	}
	if s.Expires.IsZero() {
		t.Fatal("expected session expiry from cookie Max-Age")
	}
}

func TestSignin_PasswordFromStdin(t *testing.T) {
	fs := newFakeServer(t)
	app := newApp(t, fs, false)

	cmd := cli.NewSigninCmd(app)
	cmd.SetIn(strings.NewReader(password + "\n"))
	if out, err := run(cmd, "--email", email, "--password-stdin"); err != nil {
		t.Fatalf("signin returned error: %v (%s)", err, out)
	}
}

// Пароль без флага запрашивается через ReadPassword
func TestSignin_PromptsPassword(t *testing.T) {
	fs := newFakeServer(t)
	app := newApp(t, fs, false)

	prev := cli.ReadPassword
	t.Cleanup(func() { cli.ReadPassword = prev })
	called := false
	cli.ReadPassword = func(*cobra.Command, bool) (string, error) {
		called = true
		return password, nil
	}

	if out, err := run(cli.NewSigninCmd(app), "--email", email); err != nil {
		t.Fatalf("signin returned error: %v (%s)", err, out)
	}
	if !called {
		t.Fatal("expected password prompt")
	}
}

func TestSignin_WrongPassword(t *testing.T) {
	fs := newFakeServer(t)
	app := newApp(t, fs, false)

	out, err := run(cli.NewSigninCmd(app), "--email", email, "--password", "wrong")
	if err == nil || !strings.Contains(err.Error(), "Неправильные почта или пароль") {
		t.Fatalf("expected credentials error, got %v", err)
	}
	if !strings.Contains(out, "Что-то пошло не так") {
		t.Fatalf("expected failure tooltip, got %q", out)
	}
	if _, statErr := os.Stat(app.SessionPath); !os.IsNotExist(statErr) {
		t.Fatal("session must not be saved on failure")
	}
}

func TestSignup(t *testing.T) {
	fs := newFakeServer(t)
	app := newApp(t, fs, false)

	out, err := run(cli.NewSignupCmd(app), "--email", "new@example.com", "--password", password)
	if err != nil {
		t.Fatalf("signup returned error: %v", err)
	}
	if !strings.Contains(out, "Вы успешно зарегистрировались") || !strings.Contains(out, otherID) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSignup_Conflict(t *testing.T) {
	fs := newFakeServer(t)
	app := newApp(t, fs, false)

	out, err := run(cli.NewSignupCmd(app), "--email", "taken@example.com", "--password", password)
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if !strings.Contains(out, "Что-то пошло не так") {
		t.Fatalf("expected failure tooltip, got %q", out)
	}
}

func TestSignout_ClearsSession(t *testing.T) {
	fs := newFakeServer(t)
	app := newApp(t, fs, true)

	if out, err := run(cli.NewSignoutCmd(app)); err != nil {
		t.Fatalf("signout returned error: %v (%s)", err, out)
	}
	if _, err := os.Stat(app.SessionPath); !os.IsNotExist(err) {
		t.Fatalf("expected session file to be removed, got %v", err)
	}
}

// Сервер уже не принимает токен: локальная сессия всё равно удаляется
func TestSignout_StaleSession(t *testing.T) {
	fs := newFakeServer(t)
	app := newApp(t, fs, true)
	app.Session.Token = "stale"

	if _, err := run(cli.NewSignoutCmd(app)); err != nil {
		t.Fatalf("signout returned error: %v", err)
	}
	if _, err := os.Stat(app.SessionPath); !os.IsNotExist(err) {
		t.Fatal("expected session file to be removed")
	}
}

func TestCommands_RequireSession(t *testing.T) {
	fs := newFakeServer(t)

	for name, cmd := range map[string]*cobra.Command{
		"me":      cli.NewMeCmd(newApp(t, fs, false)),
		"cards":   cli.NewCardsCmd(newApp(t, fs, false)),
		"signout": cli.NewSignoutCmd(newApp(t, fs, false)),
	} {
		if _, err := run(cmd); err == nil || !strings.Contains(err.Error(), "signin") {
			t.Fatalf("%s: expected not signed in error, got %v", name, err)
		}
	}
}
