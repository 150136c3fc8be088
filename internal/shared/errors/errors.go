// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Ошибки делятся на виды (kind). Каждый вид знает свой HTTP-статус,
// а конкретная ошибка несёт сообщение, которое безопасно показать пользователю.
// Всё, что не относится ни к одному виду, считается внутренней ошибкой (500).
package errors

import (
	"errors"
	"net/http"
)

var (
	// Некорректный запрос или нарушение схемы при записи в хранилище
	ErrBadRequest = errors.New("bad request")
	// Нет токена, токен невалиден или неверные учётные данные
	ErrUnauthorized = errors.New("unauthorized")
	// Нарушение владения (чужая карточка)
	ErrForbidden = errors.New("forbidden")
	// Сущность или маршрут не найдены
	ErrNotFound = errors.New("not found")
	// Нарушение уникальности (email уже занят)
	ErrConflict = errors.New("conflict")
	// Исчерпан лимит запросов
	ErrTooManyRequests = errors.New("too many requests")
	// Непредвиденная ошибка, например паника в хендлере
	ErrInternal = errors.New("internal error")
)

// Сообщения, которые уходят клиенту.
const (
	MsgBadRequest         = "Ошибка в запросе"
	MsgUnauthorized       = "Необходима авторизация"
	MsgInvalidCredentials = "Неправильные почта или пароль"
	MsgForbiddenCard      = "Нельзя удалить чужую карточку"
	MsgUserNotFound       = "Пользователь не найден"
	MsgCardNotFound       = "Карточка не найдена"
	MsgRouteNotFound      = "Страница не найдена"
	MsgEmailExists        = "Пользователь с таким email уже существует"
	MsgTooManyRequests    = "Слишком много запросов"
	MsgInternal           = "На сервере произошла ошибка"
)

// Error — ошибка известного вида с сообщением для клиента.
//
// errors.Is(err, ErrNotFound) работает через Unwrap, поэтому
// сервисный слой может сравнивать вид, не зная про сообщение.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// New создаёт ошибку вида kind с сообщением msg.
func New(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func BadRequest(msg string) *Error   { return New(ErrBadRequest, msg) }
func Unauthorized(msg string) *Error { return New(ErrUnauthorized, msg) }
func Forbidden(msg string) *Error    { return New(ErrForbidden, msg) }
func NotFound(msg string) *Error     { return New(ErrNotFound, msg) }
func Conflict(msg string) *Error     { return New(ErrConflict, msg) }

func TooManyRequests(msg string) *Error { return New(ErrTooManyRequests, msg) }

// Status возвращает HTTP-статус для ошибки.
// Неизвестные ошибки маппятся на 500.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrInternal):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage возвращает текст, который можно отдать клиенту.
//
// Для 500 всегда возвращается общее сообщение, исходный текст ошибки наружу не уходит.
func PublicMessage(err error) string {
	status := Status(err)
	if status == http.StatusInternalServerError {
		return MsgInternal
	}
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	switch status {
	case http.StatusBadRequest:
		return MsgBadRequest
	case http.StatusUnauthorized:
		return MsgUnauthorized
	case http.StatusNotFound:
		return MsgRouteNotFound
	case http.StatusTooManyRequests:
		return MsgTooManyRequests
	}
	return err.Error()
}
