// Package config содержит функции для работы с локальной конфигурацией CLI-клиента.
//
// Конфигурация хранит сессию (значение cookie jwt и срок её жизни)
// и размещается в домашней директории пользователя в файле:
//
//	~/.mesto/session.json
//
// Пакет предоставляет функции для получения пути по умолчанию, загрузки и сохранения
// сессии в JSON формате.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Session — сохранённая сессия CLI-клиента.
//
// Token — значение cookie jwt. Email — почта, под которой выполнен вход
// (её показывает клиент, сервер её не требует).
type Session struct {
	Server  string    `json:"server,omitempty"`
	Email   string    `json:"email,omitempty"`
	Token   string    `json:"token,omitempty"`
	Expires time.Time `json:"expires,omitzero"`
}

// Valid сообщает, что в сессии есть токен и срок её жизни не истёк.
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.Token == "" {
		return false
	}
	return s.Expires.IsZero() || now.Before(s.Expires)
}

// DefaultPath возвращает путь к файлу сессии в домашней директории пользователя.
//
// Формат пути:
//
//	<home>/.mesto/session.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mesto", "session.json"), nil
}

// Load загружает сессию из указанного файла.
//
// Если файл не существует, возвращает пустую сессию без ошибки.
// Если файл существует, но содержит некорректный JSON, возвращает ошибку.
func Load(path string) (*Session, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Session{}, nil
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save сохраняет сессию в указанный файл в JSON формате.
//
// При необходимости создаёт директорию назначения с правами 0700.
// Файл записывается с правами 0600: в нём лежит токен.
func Save(path string, s *Session) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Clear удаляет файл сессии. Отсутствие файла не ошибка.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
