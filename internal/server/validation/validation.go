// Package validation проверяет тела запросов и параметры пути до вызова хендлеров.
//
// Правила описываются тегами validate в структурах запросов
// (internal/shared/models). Кроме встроенных тегов go-playground/validator
// зарегистрированы:
//   - mesto_url — ссылка на изображение (аватар, карточка)
//   - objectid  — ключ хранилища из 24 hex-символов
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator"

	"github.com/IvanChernomyrdin/mesto/internal/server/models"
	serr "github.com/IvanChernomyrdin/mesto/internal/shared/errors"
)

var urlRe = regexp.MustCompile(`^(https?:\/\/)?([\da-z.-]+)\.([a-z.]{2,6})([/\w.-]*)*\/?$`)

// IsURL сообщает, подходит ли строка как ссылка на изображение.
func IsURL(s string) bool {
	return urlRe.MatchString(s)
}

// Validator — обёртка над validator.Validate с тегами приложения.
type Validator struct {
	v *validator.Validate
}

// New создаёт валидатор и регистрирует теги mesto_url и objectid.
func New() *Validator {
	v := validator.New()

	// в сообщениях об ошибках используем имена полей из json
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("mesto_url", func(fl validator.FieldLevel) bool {
		return IsURL(fl.Field().String())
	})
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return models.IsID(fl.Field().String())
	})

	return &Validator{v: v}
}

// Struct проверяет структуру запроса.
// Ошибка — BadRequest с перечнем полей: "Ошибка в запросе: email, password".
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return serr.BadRequest(serr.MsgBadRequest)
	}
	return serr.BadRequest(fieldsMessage(verrs))
}

// ID проверяет параметр пути name (userId, cardId).
func (v *Validator) ID(name, value string) error {
	if err := v.v.Var(value, "required,objectid"); err != nil {
		return serr.BadRequest(serr.MsgBadRequest + ": " + name)
	}
	return nil
}

func fieldsMessage(verrs validator.ValidationErrors) string {
	seen := make(map[string]struct{}, len(verrs))
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		f := fe.Field()
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		fields = append(fields, f)
	}
	return serr.MsgBadRequest + ": " + strings.Join(fields, ", ")
}
