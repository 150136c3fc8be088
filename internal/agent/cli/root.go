// Package cli реализует командный интерфейс (CLI) клиента Mesto.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку и сохранение локальной сессии (cookie jwt);
//   - выполнение действий через контроллер view.App и вывод результата.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/mesto/internal/agent/api"
	"github.com/IvanChernomyrdin/mesto/internal/agent/config"
	"github.com/IvanChernomyrdin/mesto/internal/agent/view"
	"github.com/IvanChernomyrdin/mesto/internal/shared/logger"
)

// DefaultServerURL — адрес сервера по умолчанию.
const DefaultServerURL = "http://localhost:3000"

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	// ServerURL — базовый URL сервера Mesto.
	ServerURL string

	// SessionPath — путь к файлу с сохранённой сессией.
	SessionPath string
	// Session — загруженная сессия. Может быть пустой, но не nil после PersistentPreRunE.
	Session *config.Session

	// Log — логгер ошибок запросов (stderr). nil означает логгер по умолчанию.
	Log *logger.HTTPLogger
}

// client создаёт API-клиент и восстанавливает в нём сохранённую сессию,
// если она получена от того же сервера.
func (a *App) client() *api.Client {
	c := NewAPIClient(a.ServerURL)
	if a.Session.Valid(timeNow()) && (a.Session.Server == "" || a.Session.Server == a.ServerURL) {
		c.RestoreSession(a.Session.Token, a.Session.Expires)
	}
	return c
}

// controller создаёт контроллер интерфейса поверх API-клиента.
func (a *App) controller() *view.App {
	return view.NewApp(a.client(), view.NewState(), a.Log)
}

func (a *App) saveSession(email string, s api.Session) error {
	a.Session = &config.Session{
		Server:  a.ServerURL,
		Email:   email,
		Token:   s.Token,
		Expires: s.Expires,
	}
	return config.Save(a.SessionPath, a.Session)
}

func (a *App) clearSession() error {
	a.Session = &config.Session{}
	return config.Clear(a.SessionPath)
}

// requireSession возвращает ошибку, если вход не выполнен.
func (a *App) requireSession() error {
	if !a.Session.Valid(timeNow()) {
		return errNotSignedIn
	}
	return nil
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE определяется путь к файлу сессии и загружается сохранённая сессия.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "mesto",
		Short: "Mesto CLI: клиент сервиса фотографий",
		Long: `Mesto CLI.

Команды:
  signup    Регистрация
  signin    Вход (сохраняет сессию локально)
  signout   Выход
  me        Профиль текущего пользователя и карточки
  users     Список пользователей или один пользователь
  profile   Изменить имя и описание
  avatar    Изменить аватар
  cards     Список карточек
  card      Добавить, удалить карточку, поставить или снять лайк
  version   Версия и дата сборки

Примеры:
  mesto signup --email test@example.com
  mesto signin --email test@example.com
  mesto card add --name "Байкал" --link https://example.com/baikal.jpg
  mesto card like 64b7f0c2a1b2c3d4e5f60718
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.SessionPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.SessionPath = p
			}

			s, err := config.Load(app.SessionPath)
			if err != nil {
				return err
			}
			app.Session = s
			if app.Log == nil {
				app.Log = logger.NewConsoleLogger(cmd.ErrOrStderr(), "warn")
			}
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", DefaultServerURL, "server base URL")
	cmd.PersistentFlags().StringVar(&app.SessionPath, "session", "", "session file (default ~/.mesto/session.json)")

	cmd.AddCommand(NewSignupCmd(app))
	cmd.AddCommand(NewSigninCmd(app))
	cmd.AddCommand(NewSignoutCmd(app))
	cmd.AddCommand(NewMeCmd(app))
	cmd.AddCommand(NewUsersCmd(app))
	cmd.AddCommand(NewProfileCmd(app))
	cmd.AddCommand(NewAvatarCmd(app))
	cmd.AddCommand(NewCardsCmd(app))
	cmd.AddCommand(NewCardCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
