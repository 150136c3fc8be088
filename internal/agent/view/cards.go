package view

import (
	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// Card возвращает карточку из списка по id.
func (s *State) Card(id string) (shared.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.cards {
		if c.ID == id {
			return c, true
		}
	}
	return shared.Card{}, false
}

// replaceCards полностью заменяет список карточек ответом сервера.
func (s *State) replaceCards(cards []shared.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards = make([]shared.Card, len(cards))
	copy(s.cards, cards)
}

// prependCard добавляет новую карточку в начало списка.
func (s *State) prependCard(c shared.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards = append([]shared.Card{c}, s.cards...)
}

// replaceCard заменяет карточку с тем же id на месте. Порядок не меняется.
func (s *State) replaceCard(c shared.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cards {
		if s.cards[i].ID == c.ID {
			s.cards[i] = c
			return
		}
	}
}

// removeCard удаляет карточку из списка.
func (s *State) removeCard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.cards[:0]
	for _, c := range s.cards {
		if c.ID != id {
			out = append(out, c)
		}
	}
	s.cards = out
}
