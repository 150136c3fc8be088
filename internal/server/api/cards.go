package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	srvmodels "github.com/IvanChernomyrdin/mesto/internal/server/models"
	"github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

func publicCards(cards []srvmodels.Card) []models.Card {
	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Public())
	}
	return out
}

// GetCards возвращает все карточки, новые первыми.
//
// @Summary      List cards
// @Tags         cards
// @Produce      json
// @Security     CookieAuth
// @Success      200 {array}  models.Card
// @Failure      401 {object} models.MessageResponse
// @Router       /cards [get]
func (h *Handler) GetCards(w http.ResponseWriter, r *http.Request) error {
	cards, err := h.Svc.Cards.List(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, r, publicCards(cards))
}

// CreateCard создаёт карточку от имени текущего пользователя.
//
// @Summary      Create card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        request body models.CardRequest true "Card"
// @Success      200 {object} models.Card
// @Failure      400 {object} models.MessageResponse
// @Failure      401 {object} models.MessageResponse
// @Router       /cards [post]
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) error {
	owner, err := currentUser(r)
	if err != nil {
		return err
	}
	req, err := body[models.CardRequest](r)
	if err != nil {
		return err
	}

	card, err := h.Svc.Cards.Create(r.Context(), owner, req.Name, req.Link)
	if err != nil {
		return err
	}
	return writeJSON(w, r, card.Public())
}

// DeleteCard удаляет свою карточку и возвращает её.
//
// @Summary      Delete card
// @Tags         cards
// @Produce      json
// @Security     CookieAuth
// @Param        cardId path string true "24 hex chars"
// @Success      200 {object} models.Card
// @Failure      400 {object} models.MessageResponse "Malformed id"
// @Failure      401 {object} models.MessageResponse
// @Failure      403 {object} models.MessageResponse "Card belongs to another user"
// @Failure      404 {object} models.MessageResponse
// @Router       /cards/{cardId} [delete]
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) error {
	userID, err := currentUser(r)
	if err != nil {
		return err
	}

	card, err := h.Svc.Cards.Delete(r.Context(), userID, chi.URLParam(r, "cardId"))
	if err != nil {
		return err
	}
	return writeJSON(w, r, card.Public())
}

// LikeCard ставит лайк текущего пользователя.
//
// @Summary      Like card
// @Tags         cards
// @Produce      json
// @Security     CookieAuth
// @Param        cardId path string true "24 hex chars"
// @Success      200 {object} models.Card
// @Failure      400 {object} models.MessageResponse
// @Failure      401 {object} models.MessageResponse
// @Failure      404 {object} models.MessageResponse
// @Router       /cards/{cardId}/likes [put]
func (h *Handler) LikeCard(w http.ResponseWriter, r *http.Request) error {
	userID, err := currentUser(r)
	if err != nil {
		return err
	}

	card, err := h.Svc.Cards.Like(r.Context(), userID, chi.URLParam(r, "cardId"))
	if err != nil {
		return err
	}
	return writeJSON(w, r, card.Public())
}

// DislikeCard снимает лайк текущего пользователя.
//
// @Summary      Dislike card
// @Tags         cards
// @Produce      json
// @Security     CookieAuth
// @Param        cardId path string true "24 hex chars"
// @Success      200 {object} models.Card
// @Failure      400 {object} models.MessageResponse
// @Failure      401 {object} models.MessageResponse
// @Failure      404 {object} models.MessageResponse
// @Router       /cards/{cardId}/likes [delete]
func (h *Handler) DislikeCard(w http.ResponseWriter, r *http.Request) error {
	userID, err := currentUser(r)
	if err != nil {
		return err
	}

	card, err := h.Svc.Cards.Dislike(r.Context(), userID, chi.URLParam(r, "cardId"))
	if err != nil {
		return err
	}
	return writeJSON(w, r, card.Public())
}
