package view

import (
	"fmt"
	"io"
	"strings"

	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// Render печатает состояние в текстовом виде: профиль, затем карточки.
func Render(w io.Writer, s Snapshot) error {
	var b strings.Builder

	if s.LoggedIn {
		fmt.Fprintf(&b, "Вы вошли как %s\n", s.Email)
	}
	if s.CurrentUser.ID != "" {
		u := s.CurrentUser
		fmt.Fprintf(&b, "%s, %s\n", u.Name, u.About)
		fmt.Fprintf(&b, "  id: %s\n  email: %s\n  avatar: %s\n", u.ID, u.Email, u.Avatar)
	}

	if len(s.Cards) > 0 {
		b.WriteString("\n")
		writeCards(&b, s.Cards, s.CurrentUser.ID)
	}

	if s.Popup == PopupInfoTooltip {
		if s.TooltipSuccess {
			b.WriteString("Вы успешно зарегистрировались!\n")
		} else {
			b.WriteString("Что-то пошло не так! Попробуйте ещё раз.\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderCards печатает только карточки. userID отмечает свои карточки и лайки.
func RenderCards(w io.Writer, cards []shared.Card, userID string) error {
	if len(cards) == 0 {
		_, err := io.WriteString(w, "карточек нет\n")
		return err
	}
	var b strings.Builder
	writeCards(&b, cards, userID)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeCards(b *strings.Builder, cards []shared.Card, userID string) {
	for _, c := range cards {
		mark := " "
		if userID != "" && c.LikedBy(userID) {
			mark = "♥"
		}
		own := ""
		if userID != "" && c.Owner == userID {
			own = " (ваша)"
		}
		fmt.Fprintf(b, "%s %s  %s%s\n    %s  лайков: %d\n", mark, c.ID, c.Name, own, c.Link, len(c.Likes))
	}
}
