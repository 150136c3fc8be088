package view

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/mesto/internal/agent/api"
	"github.com/IvanChernomyrdin/mesto/internal/shared/logger"
	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

//go:generate mockgen -source=app.go -destination=mocks/mock_api.go -package=mocks

// API — методы сервера, которые нужны контроллеру. Реализуется *api.Client.
type API interface {
	Register(ctx context.Context, req shared.SignupRequest) (shared.User, error)
	Authorize(ctx context.Context, email, password string) (shared.User, api.Session, error)
	SignOut(ctx context.Context) error
	GetUserInfo(ctx context.Context) (shared.User, error)
	GetCards(ctx context.Context) ([]shared.Card, error)
	SetUserInfo(ctx context.Context, name, about *string) (shared.User, error)
	SetAvatar(ctx context.Context, link string) (shared.User, error)
	AddCard(ctx context.Context, name, link string) (shared.Card, error)
	DeleteCard(ctx context.Context, id string) (shared.Card, error)
	ChangeLikeCardStatus(ctx context.Context, id string, like bool) (shared.Card, error)
}

// App — контроллер интерфейса.
//
// Каждый метод вызывает API и согласует State с ответом. При ошибке
// она пишется в лог, состояние остаётся прежним, а ошибка возвращается
// вызывающему. Ответ вытесненного запроса (api.ErrSuperseded) не применяется.
type App struct {
	api   API
	state *State
	log   *logger.HTTPLogger
}

func NewApp(a API, state *State, log *logger.HTTPLogger) *App {
	if state == nil {
		state = NewState()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &App{api: a, state: state, log: log}
}

// State возвращает состояние, с которым работает контроллер.
func (a *App) State() *State {
	return a.state
}

func (a *App) fail(action string, err error) error {
	if errors.Is(err, api.ErrSuperseded) {
		a.log.Debug("superseded", zap.String("action", action))
		return err
	}
	a.log.Warn("request failed", zap.String("action", action), zap.Error(err))
	return err
}

// Login выполняет вход. При ошибке открывается попап с признаком неудачи.
func (a *App) Login(ctx context.Context, email, password string) (api.Session, error) {
	user, sess, err := a.api.Authorize(ctx, email, password)
	if err != nil {
		a.state.OpenTooltip(false)
		return api.Session{}, a.fail("login", err)
	}

	a.state.setLoggedIn(email)
	a.state.setUser(user)
	return sess, nil
}

// Register регистрирует пользователя. Результат (успех или ошибка)
// показывается информационным попапом.
func (a *App) Register(ctx context.Context, req shared.SignupRequest) (shared.User, error) {
	user, err := a.api.Register(ctx, req)
	if err != nil {
		a.state.OpenTooltip(false)
		return shared.User{}, a.fail("register", err)
	}
	a.state.OpenTooltip(true)
	return user, nil
}

// Logout выходит из аккаунта. При ошибке состояние не меняется.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.SignOut(ctx); err != nil {
		return a.fail("logout", err)
	}
	a.state.setLoggedOut()
	a.state.CloseAll()
	return nil
}

// Load загружает профиль и карточки. Запросы независимы: ошибка одного
// не мешает применить результат другого. Возвращается первая ошибка.
func (a *App) Load(ctx context.Context) error {
	var firstErr error

	user, err := a.api.GetUserInfo(ctx)
	if err != nil {
		firstErr = a.fail("load user", err)
	} else {
		a.state.setUser(user)
	}

	cards, err := a.api.GetCards(ctx)
	if err != nil {
		if firstErr == nil {
			firstErr = a.fail("load cards", err)
		} else {
			a.fail("load cards", err)
		}
	} else {
		a.state.replaceCards(cards)
	}
	return firstErr
}

// submit выставляет флаг загрузки на время отправки формы и сбрасывает его при любом исходе.
func (a *App) submit(fn func() error) error {
	a.state.setLoading(true)
	defer a.state.setLoading(false)
	return fn()
}

// UpdateUser меняет имя и описание и закрывает попап.
func (a *App) UpdateUser(ctx context.Context, name, about *string) error {
	return a.submit(func() error {
		user, err := a.api.SetUserInfo(ctx, name, about)
		if err != nil {
			return a.fail("update user", err)
		}
		a.state.setUser(user)
		a.state.CloseAll()
		return nil
	})
}

// UpdateAvatar меняет аватар и закрывает попап.
func (a *App) UpdateAvatar(ctx context.Context, link string) error {
	return a.submit(func() error {
		user, err := a.api.SetAvatar(ctx, link)
		if err != nil {
			return a.fail("update avatar", err)
		}
		a.state.setUser(user)
		a.state.CloseAll()
		return nil
	})
}

// AddPlace создаёт карточку и ставит её первой в списке.
func (a *App) AddPlace(ctx context.Context, name, link string) (shared.Card, error) {
	var card shared.Card
	err := a.submit(func() error {
		c, err := a.api.AddCard(ctx, name, link)
		if err != nil {
			return a.fail("add place", err)
		}
		card = c
		a.state.prependCard(c)
		a.state.CloseAll()
		return nil
	})
	return card, err
}

// CardLike переключает лайк текущего пользователя: если он уже есть
// в likes, лайк снимается, иначе ставится. Карточка заменяется на месте.
func (a *App) CardLike(ctx context.Context, card shared.Card) (shared.Card, error) {
	liked := card.LikedBy(a.state.currentUserID())

	updated, err := a.api.ChangeLikeCardStatus(ctx, card.ID, !liked)
	if err != nil {
		return shared.Card{}, a.fail("card like", err)
	}
	a.state.replaceCard(updated)
	return updated, nil
}

// CardDelete удаляет карточку и убирает её из списка.
func (a *App) CardDelete(ctx context.Context, card shared.Card) error {
	return a.submit(func() error {
		if _, err := a.api.DeleteCard(ctx, card.ID); err != nil {
			return a.fail("card delete", err)
		}
		a.state.removeCard(card.ID)
		a.state.CloseAll()
		return nil
	})
}
