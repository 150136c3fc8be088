package api

import (
	"context"
	"net/url"

	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// GetCards возвращает все карточки, новые первыми.
func (c *Client) GetCards(ctx context.Context) ([]shared.Card, error) {
	var resp []shared.Card
	err := c.GetJSON(ctx, "/cards", &resp)
	return resp, err
}

// AddCard создаёт карточку.
func (c *Client) AddCard(ctx context.Context, name, link string) (shared.Card, error) {
	var resp shared.Card
	err := c.PostJSON(ctx, "/cards", shared.CardRequest{Name: name, Link: link}, &resp)
	return resp, err
}

// DeleteCard удаляет свою карточку.
//
// Вызовы DeleteCard и ChangeLikeCardStatus для одной карточки вытесняют
// друг друга: предыдущий ещё не завершённый вызов получает ErrSuperseded.
func (c *Client) DeleteCard(ctx context.Context, id string) (shared.Card, error) {
	var resp shared.Card
	err := c.cards.Run(ctx, id, func(ctx context.Context) error {
		return c.DeleteJSON(ctx, "/cards/"+url.PathEscape(id), &resp)
	})
	if err != nil {
		return shared.Card{}, err
	}
	return resp, nil
}

// ChangeLikeCardStatus ставит (like=true, PUT) или снимает (DELETE) лайк.
func (c *Client) ChangeLikeCardStatus(ctx context.Context, id string, like bool) (shared.Card, error) {
	path := "/cards/" + url.PathEscape(id) + "/likes"

	var resp shared.Card
	err := c.cards.Run(ctx, id, func(ctx context.Context) error {
		if like {
			return c.PutJSON(ctx, path, nil, &resp)
		}
		return c.DeleteJSON(ctx, path, &resp)
	})
	if err != nil {
		return shared.Card{}, err
	}
	return resp, nil
}
