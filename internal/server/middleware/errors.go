package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	serr "github.com/IvanChernomyrdin/mesto/internal/shared/errors"
	"github.com/IvanChernomyrdin/mesto/internal/shared/logger"
	shared "github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// HandlerFunc — хендлер, возвращающий ошибку вместо того, чтобы писать её сам.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle превращает HandlerFunc в http.HandlerFunc.
//
// Это терминальный переводчик ошибок: известный вид ошибки отдаётся
// со своим статусом и сообщением, всё остальное — 500 с общим текстом.
func Handle(log *logger.HTTPLogger, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			WriteError(w, r, log, err)
		}
	}
}

// WriteError пишет ошибку в формате {"message": "..."}.
// Исходный текст 500-х попадает только в лог.
func WriteError(w http.ResponseWriter, r *http.Request, log *logger.HTTPLogger, err error) {
	status := serr.Status(err)
	if status == http.StatusInternalServerError && log != nil {
		log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
	}

	render.Status(r, status)
	render.JSON(w, r, shared.MessageResponse{Message: serr.PublicMessage(err)})
}

// Recoverer перехватывает панику в хендлере и отвечает общим 500.
func Recoverer(log *logger.HTTPLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// http.ErrAbortHandler — штатный способ оборвать ответ
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				if log != nil {
					log.Error("panic recovered",
						zap.Any("panic", rec),
						zap.ByteString("stack", debug.Stack()),
					)
				}
				WriteError(w, r, nil, fmt.Errorf("panic: %v: %w", rec, serr.ErrInternal))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
