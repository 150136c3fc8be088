// Package view хранит состояние интерфейса клиента Mesto и согласует его
// с ответами сервера.
//
// State — потокобезопасное состояние: открытый попап, текущий пользователь,
// список карточек, флаг загрузки. App — контроллер: по одному методу на
// действие пользователя. Render печатает состояние в текстовом виде.
package view

import (
	"sync"

	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// Popup — какой попап открыт.
type Popup string

const (
	PopupNone          Popup = "none"
	PopupEditProfile   Popup = "edit-profile"
	PopupAddPlace      Popup = "add-place"
	PopupEditAvatar    Popup = "edit-avatar"
	PopupConfirmDelete Popup = "confirm-delete"
	PopupImage         Popup = "image"
	PopupInfoTooltip   Popup = "info-tooltip"
)

// KeyEscape — клавиша, закрывающая любой попап.
const KeyEscape = "Escape"

// State — потокобезопасное состояние интерфейса.
//
// Используется контроллером App для:
//   - открытия и закрытия попапов
//   - хранения текущего пользователя и признака входа
//   - хранения списка карточек в порядке показа (новые первыми)
type State struct {
	mu sync.RWMutex

	popup          Popup
	selectedCard   *shared.Card
	cardToDelete   *shared.Card
	tooltipSuccess bool

	currentUser shared.User
	loggedIn    bool
	email       string

	cards   []shared.Card
	loading bool
}

// Snapshot — копия состояния для отрисовки и проверок.
type Snapshot struct {
	Popup          Popup
	SelectedCard   *shared.Card
	CardToDelete   *shared.Card
	TooltipSuccess bool
	CurrentUser    shared.User
	LoggedIn       bool
	Email          string
	Cards          []shared.Card
	Loading        bool
}

// NewState создаёт пустое состояние: попапы закрыты, вход не выполнен.
func NewState() *State {
	return &State{popup: PopupNone}
}

// Snapshot возвращает копию состояния. Срез карточек копируется.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := make([]shared.Card, len(s.cards))
	copy(cards, s.cards)

	return Snapshot{
		Popup:          s.popup,
		SelectedCard:   copyCard(s.selectedCard),
		CardToDelete:   copyCard(s.cardToDelete),
		TooltipSuccess: s.tooltipSuccess,
		CurrentUser:    s.currentUser,
		LoggedIn:       s.loggedIn,
		Email:          s.email,
		Cards:          cards,
		Loading:        s.loading,
	}
}

func copyCard(c *shared.Card) *shared.Card {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Open открывает попап формы (edit-profile, add-place, edit-avatar).
func (s *State) Open(p Popup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popup = p
}

// OpenImage открывает просмотр фотографии карточки.
func (s *State) OpenImage(card shared.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popup = PopupImage
	s.selectedCard = &card
}

// OpenConfirmDelete открывает подтверждение удаления карточки.
func (s *State) OpenConfirmDelete(card shared.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popup = PopupConfirmDelete
	s.cardToDelete = &card
}

// OpenTooltip открывает информационный попап об успехе или ошибке входа/регистрации.
func (s *State) OpenTooltip(success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popup = PopupInfoTooltip
	s.tooltipSuccess = success
}

// CloseAll закрывает все попапы и сбрасывает выбранные карточки.
func (s *State) CloseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popup = PopupNone
	s.selectedCard = nil
	s.cardToDelete = nil
}

// HandleKey закрывает попапы по Escape. Возвращает true, если клавиша обработана.
func (s *State) HandleKey(key string) bool {
	if key != KeyEscape {
		return false
	}
	s.mu.RLock()
	open := s.popup != PopupNone
	s.mu.RUnlock()
	if !open {
		return false
	}
	s.CloseAll()
	return true
}

// HandleOverlayClick закрывает попапы, только если клик пришёлся на сам
// оверлей (target совпадает с currentTarget), а не на содержимое попапа.
func (s *State) HandleOverlayClick(target, currentTarget any) bool {
	if target != currentTarget {
		return false
	}
	s.CloseAll()
	return true
}

func (s *State) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *State) setUser(u shared.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = u
}

func (s *State) setLoggedIn(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true
	s.email = email
}

func (s *State) setLoggedOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
	s.email = ""
	s.currentUser = shared.User{}
	s.cards = nil
}

func (s *State) currentUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser.ID
}
