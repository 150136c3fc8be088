package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/mesto/internal/agent/api"
	"github.com/IvanChernomyrdin/mesto/internal/agent/view"
	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// NewSignupCmd создаёт команду регистрации.
//
// Пароль берётся из --password, из stdin (--password-stdin) или
// запрашивается в терминале без эха.
//
//	mesto signup --email test@example.com [--name "Анна"] [--about "Фотограф"] [--avatar URL]
func NewSignupCmd(app *App) *cobra.Command {
	var (
		email, pw, name, about, avatar string
		pwStdin                        bool
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Регистрация нового пользователя",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := password(cmd, pw, pwStdin)
			if err != nil {
				return err
			}

			req := shared.SignupRequest{Email: email, Password: p}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("about") {
				req.About = &about
			}
			if cmd.Flags().Changed("avatar") {
				req.Avatar = &avatar
			}

			ctl := app.controller()
			user, err := ctl.Register(cmd.Context(), req)
			if rerr := view.Render(cmd.OutOrStdout(), ctl.State().Snapshot()); rerr != nil {
				return rerr
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "id: %s\nТеперь выполните mesto signin --email %s\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&pw, "password", "", "password (prompted when empty)")
	cmd.Flags().BoolVar(&pwStdin, "password-stdin", false, "read password from stdin")
	cmd.Flags().StringVar(&name, "name", "", "name, 2-30 characters")
	cmd.Flags().StringVar(&about, "about", "", "about, 2-30 characters")
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar link")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// NewSigninCmd создаёт команду входа. Полученная cookie сохраняется
// в файл сессии и используется следующими командами.
//
//	mesto signin --email test@example.com
func NewSigninCmd(app *App) *cobra.Command {
	var (
		email, pw string
		pwStdin   bool
	)

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Вход (сохраняет сессию локально)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := password(cmd, pw, pwStdin)
			if err != nil {
				return err
			}

			ctl := app.controller()
			sess, err := ctl.Login(cmd.Context(), email, p)
			if err != nil {
				_ = view.Render(cmd.OutOrStdout(), ctl.State().Snapshot())
				return err
			}
			if err := app.saveSession(email, sess); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "signin ok (session saved)")
			return view.Render(cmd.OutOrStdout(), ctl.State().Snapshot())
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&pw, "password", "", "password (prompted when empty)")
	cmd.Flags().BoolVar(&pwStdin, "password-stdin", false, "read password from stdin")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// NewSignoutCmd создаёт команду выхода. Локальная сессия удаляется,
// даже если сервер уже считает её недействительной (401).
func NewSignoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Выход",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}

			err := app.controller().Logout(cmd.Context())
			if err != nil && !api.IsUnauthorized(err) {
				return err
			}
			if err := app.clearSession(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "signout ok")
			return nil
		},
	}
}
