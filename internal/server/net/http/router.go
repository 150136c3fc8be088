// Package http реализует маршрутизацию HTTP-слоя сервера Mesto.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - порядок middleware: request id, логирование, recover, CORS, rate limit, метрики;
//   - проверку сессионного токена для всех путей, кроме /signup и /signin.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/mesto/internal/server/api"
	"github.com/IvanChernomyrdin/mesto/internal/server/middleware"
	"github.com/IvanChernomyrdin/mesto/internal/shared/models"
)

// Options — необязательные части роутера.
type Options struct {
	// AllowedOrigins — фронтенды для CORS. Пусто — CORS не подключается.
	AllowedOrigins []string
	// RateLimiter — лимит запросов по IP. nil — без лимита.
	RateLimiter *middleware.RateLimiter
	// Metrics — сбор метрик. nil — без метрик и без MetricsPath.
	Metrics     *middleware.Metrics
	MetricsPath string
	// MaxBodyBytes — лимит размера тела запроса.
	MaxBodyBytes int64
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Публичные пути: /signup, /signin, /crash-test, /swagger/*, метрики.
// Остальное, включая неизвестные пути, проходит через проверку токена.
func NewRouter(h *api.Handler, opts Options) http.Handler {
	r := chi.NewRouter()

	handle := func(fn middleware.HandlerFunc) http.HandlerFunc {
		return middleware.Handle(h.Log, fn)
	}
	auth := h.Verifier.AuthMiddleware()
	id := func(name string) func(http.Handler) http.Handler {
		return middleware.ValidateIDParam(h.Validator, name, h.Log)
	}

	r.Use(middleware.RequestID)
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	r.Use(middleware.Recoverer(h.Log))
	if len(opts.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(opts.AllowedOrigins))
	}
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Middleware)
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, opts.Metrics.Handler())
	}

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/crash-test", handle(h.CrashTest))

	// Публичные пути
	r.With(middleware.ValidateBody[models.SignupRequest](h.Validator, opts.MaxBodyBytes, h.Log)).
		Post("/signup", handle(h.Signup))
	r.With(middleware.ValidateBody[models.SigninRequest](h.Validator, opts.MaxBodyBytes, h.Log)).
		Post("/signin", handle(h.Signin))

	// защищённые пути
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/signout", handle(h.Signout))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", handle(h.GetUsers))
			r.Get("/me", handle(h.GetMe))
			r.With(middleware.ValidateBody[models.ProfileRequest](h.Validator, opts.MaxBodyBytes, h.Log)).
				Patch("/me", handle(h.UpdateProfile))
			r.With(middleware.ValidateBody[models.AvatarRequest](h.Validator, opts.MaxBodyBytes, h.Log)).
				Patch("/me/avatar", handle(h.UpdateAvatar))
			r.With(id("userId")).Get("/{userId}", handle(h.GetUser))
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", handle(h.GetCards))
			r.With(middleware.ValidateBody[models.CardRequest](h.Validator, opts.MaxBodyBytes, h.Log)).
				Post("/", handle(h.CreateCard))
			r.With(id("cardId")).Delete("/{cardId}", handle(h.DeleteCard))
			r.With(id("cardId")).Put("/{cardId}/likes", handle(h.LikeCard))
			r.With(id("cardId")).Delete("/{cardId}/likes", handle(h.DislikeCard))
		})
	})

	// неизвестный путь: сначала авторизация, потом 404
	notFound := auth(handle(h.NotFound))
	r.NotFound(notFound.ServeHTTP)
	r.MethodNotAllowed(notFound.ServeHTTP)

	return r
}
