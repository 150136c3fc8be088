package service

import (
	"context"

	"github.com/IvanChernomyrdin/mesto/internal/server/models"
	serr "github.com/IvanChernomyrdin/mesto/internal/shared/errors"
)

// CardsService — карточки и лайки.
type CardsService struct {
	cards CardsRepo
}

func NewCardsService(cards CardsRepo) *CardsService {
	return &CardsService{cards: cards}
}

func (s *CardsService) List(ctx context.Context) ([]models.Card, error) {
	return s.cards.List(ctx)
}

// Create создаёт карточку от имени ownerID.
func (s *CardsService) Create(ctx context.Context, ownerID, name, link string) (models.Card, error) {
	return s.cards.Create(ctx, models.Card{Name: name, Link: link, Owner: ownerID})
}

// Delete удаляет карточку, если userID — её владелец.
//
// Ошибки:
//   - NotFound — карточки нет
//   - Forbidden — карточка чужая (и остаётся на месте)
func (s *CardsService) Delete(ctx context.Context, userID, cardID string) (models.Card, error) {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return models.Card{}, err
	}
	if card.Owner != userID {
		return models.Card{}, serr.Forbidden(serr.MsgForbiddenCard)
	}
	return s.cards.Delete(ctx, cardID)
}

// Like ставит лайк. Повторный лайк того же пользователя ничего не меняет.
func (s *CardsService) Like(ctx context.Context, userID, cardID string) (models.Card, error) {
	return s.cards.AddLike(ctx, cardID, userID)
}

// Dislike снимает лайк.
func (s *CardsService) Dislike(ctx context.Context, userID, cardID string) (models.Card, error) {
	return s.cards.RemoveLike(ctx, cardID, userID)
}
