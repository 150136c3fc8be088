package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/mesto/internal/agent/view"
	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// NewMeCmd показывает профиль и ленту карточек.
func NewMeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Профиль текущего пользователя и карточки",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}

			ctl := app.controller()
			err := ctl.Load(cmd.Context())
			if rerr := view.Render(cmd.OutOrStdout(), ctl.State().Snapshot()); rerr != nil {
				return rerr
			}
			return err
		},
	}
}

func printUser(cmd *cobra.Command, u shared.User) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s, %s\n    %s  %s\n", u.ID, u.Name, u.About, u.Email, u.Avatar)
}

// NewUsersCmd выводит всех пользователей или одного по id.
//
//	mesto users
//	mesto users 64b7f0c2a1b2c3d4e5f60718
func NewUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users [id]",
		Short: "Список пользователей или один пользователь",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}
			c := app.client()

			if len(args) == 1 {
				u, err := c.GetUser(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printUser(cmd, u)
				return nil
			}

			users, err := c.GetUsers(cmd.Context())
			if err != nil {
				return err
			}
			for _, u := range users {
				printUser(cmd, u)
			}
			return nil
		},
	}
}

// NewProfileCmd меняет имя и/или описание. Незаданный флаг не меняет поле.
//
//	mesto profile --name "Анна" --about "Фотограф"
func NewProfileCmd(app *App) *cobra.Command {
	var name, about string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Изменить имя и описание",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}

			var namePtr, aboutPtr *string
			if cmd.Flags().Changed("name") {
				namePtr = &name
			}
			if cmd.Flags().Changed("about") {
				aboutPtr = &about
			}
			if namePtr == nil && aboutPtr == nil {
				return errors.New("укажите --name и/или --about")
			}

			ctl := app.controller()
			ctl.State().Open(view.PopupEditProfile)
			if err := ctl.UpdateUser(cmd.Context(), namePtr, aboutPtr); err != nil {
				return err
			}
			return view.Render(cmd.OutOrStdout(), ctl.State().Snapshot())
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name, 2-30 characters")
	cmd.Flags().StringVar(&about, "about", "", "about, 2-30 characters")

	return cmd
}

// NewAvatarCmd меняет аватар.
//
//	mesto avatar https://example.com/me.png
func NewAvatarCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <url>",
		Short: "Изменить аватар",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}

			ctl := app.controller()
			ctl.State().Open(view.PopupEditAvatar)
			if err := ctl.UpdateAvatar(cmd.Context(), args[0]); err != nil {
				return err
			}
			return view.Render(cmd.OutOrStdout(), ctl.State().Snapshot())
		},
	}
}
