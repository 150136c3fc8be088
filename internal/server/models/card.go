package models

import (
	"time"

	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

type Card struct {
	ID        string
	Name      string
	Link      string
	Owner     string
	Likes     []string
	CreatedAt time.Time
}

// Public возвращает представление карточки для API.
// Likes всегда массив, даже пустой.
func (c Card) Public() shared.Card {
	likes := c.Likes
	if likes == nil {
		likes = []string{}
	}
	return shared.Card{
		ID:        c.ID,
		Name:      c.Name,
		Link:      c.Link,
		Owner:     c.Owner,
		Likes:     likes,
		CreatedAt: c.CreatedAt,
	}
}
