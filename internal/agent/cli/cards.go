package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/mesto/internal/agent/view"
	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// NewCardsCmd выводит ленту карточек (новые первыми).
func NewCardsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cards",
		Short: "Список карточек",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}

			ctl := app.controller()
			err := ctl.Load(cmd.Context())
			snap := ctl.State().Snapshot()
			if rerr := view.RenderCards(cmd.OutOrStdout(), snap.Cards, snap.CurrentUser.ID); rerr != nil {
				return rerr
			}
			return err
		},
	}
}

// NewCardCmd группирует действия с одной карточкой.
func NewCardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Добавить, удалить карточку, поставить или снять лайк",
	}

	cmd.AddCommand(newCardAddCmd(app))
	cmd.AddCommand(newCardDeleteCmd(app))
	cmd.AddCommand(newCardLikeCmd(app))

	return cmd
}

// mesto card add --name "Байкал" --link https://example.com/baikal.jpg
func newCardAddCmd(app *App) *cobra.Command {
	var name, link string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Добавить карточку",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}

			ctl := app.controller()
			ctl.State().Open(view.PopupAddPlace)
			card, err := ctl.AddPlace(cmd.Context(), name, link)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "card added: %s\n", card.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "caption, 2-30 characters")
	cmd.Flags().StringVar(&link, "link", "", "image link")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("link")

	return cmd
}

func newCardDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить свою карточку",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}

			card := shared.Card{ID: args[0]}
			ctl := app.controller()
			ctl.State().OpenConfirmDelete(card)
			if err := ctl.CardDelete(cmd.Context(), card); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "card deleted: %s\n", card.ID)
			return nil
		},
	}
}

// Лайк переключается: если он уже стоит, то снимается.
func newCardLikeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Поставить или снять лайк",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}

			ctl := app.controller()
			if err := ctl.Load(cmd.Context()); err != nil {
				return err
			}
			card, ok := ctl.State().Card(args[0])
			if !ok {
				return fmt.Errorf("карточка %s не найдена", args[0])
			}

			updated, err := ctl.CardLike(cmd.Context(), card)
			if err != nil {
				return err
			}

			verb := "unliked"
			if updated.LikedBy(ctl.State().Snapshot().CurrentUser.ID) {
				verb = "liked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, likes: %d\n", verb, updated.ID, len(updated.Likes))
			return nil
		},
	}
}
