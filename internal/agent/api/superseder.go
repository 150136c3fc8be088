package api

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded возвращается вызовом, который отменили более новым вызовом
// с тем же ключом. Результат такого вызова применять нельзя.
var ErrSuperseded = errors.New("request superseded by a newer one")

// Superseder держит не больше одного активного вызова на ключ.
// Новый Begin по тому же ключу отменяет предыдущий.
type Superseder struct {
	mu       sync.Mutex
	seq      uint64
	inflight map[string]inflightCall
}

type inflightCall struct {
	id     uint64
	cancel context.CancelCauseFunc
}

func NewSuperseder() *Superseder {
	return &Superseder{inflight: make(map[string]inflightCall)}
}

// Begin регистрирует вызов по ключу key и отменяет предыдущий.
// done нужно вызвать по завершении (обычно через defer).
func (s *Superseder) Begin(ctx context.Context, key string) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(ctx)

	s.mu.Lock()
	if prev, ok := s.inflight[key]; ok {
		prev.cancel(ErrSuperseded)
	}
	s.seq++
	id := s.seq
	s.inflight[key] = inflightCall{id: id, cancel: cancel}
	s.mu.Unlock()

	return ctx, func() {
		s.mu.Lock()
		if cur, ok := s.inflight[key]; ok && cur.id == id {
			delete(s.inflight, key)
		}
		s.mu.Unlock()
		cancel(nil)
	}
}

// Superseded сообщает, что ctx, полученный из Begin, отменён новым вызовом.
func Superseded(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), ErrSuperseded)
}

// Run выполняет fn под ключом key. Если за время выполнения пришёл
// новый вызов с тем же ключом, результат fn отбрасывается и возвращается ErrSuperseded.
func (s *Superseder) Run(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	ctx, done := s.Begin(ctx, key)
	defer done()

	err := fn(ctx)
	if Superseded(ctx) {
		return ErrSuperseded
	}
	return err
}
