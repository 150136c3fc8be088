// @title           Mesto API
// @version         1.0
// @description     Backend of the Mesto photo-sharing service.
// @description     Users register, sign in with a cookie session, edit their profile and share photo cards that others can like.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name jwt
//
// Package main содержит точку входа сервера Mesto.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации (путь в MESTO_CONFIG, по умолчанию ./configs/server.yaml);
//   - подключение к базе данных и применение миграций;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - запуск сервера с таймаутами из конфига (TLS, если включён);
//   - корректное (graceful) завершение работы по SIGINT, SIGTERM, SIGQUIT.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/mesto/internal/server/api"
	"github.com/IvanChernomyrdin/mesto/internal/server/config"
	"github.com/IvanChernomyrdin/mesto/internal/server/middleware"
	h "github.com/IvanChernomyrdin/mesto/internal/server/net/http"
	"github.com/IvanChernomyrdin/mesto/internal/server/repository"
	"github.com/IvanChernomyrdin/mesto/internal/server/service"
	"github.com/IvanChernomyrdin/mesto/internal/server/validation"
	"github.com/IvanChernomyrdin/mesto/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/mesto/swagger/docs"
)

const defaultConfigPath = "./configs/server.yaml"

func main() {
	boot := logger.NewConsoleLogger(os.Stderr, "info").Sugar()

	if err := godotenv.Load(); err != nil {
		boot.Warnf("no .env file loaded, error: %v", err)
	}

	path := os.Getenv("MESTO_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		boot.Fatal(err)
	}

	httpLogger := logger.New(logger.Options{
		Dir:    cfg.Log.Dir,
		File:   "http.log",
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Stderr: cfg.Log.Stderr,
	})
	defer func() { _ = httpLogger.Sync() }()
	sugar := httpLogger.Sugar()

	if cfg.Auth.JWT.DevFallback {
		sugar.Warn("JWT_SECRET is not set, using development signing key")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// подключаем базу данных
	db, err := config.OpenDB(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer db.Close()

	if cfg.Migrations.Enabled {
		if err := config.Migrate(db, cfg.Migrations.Path); err != nil {
			sugar.Fatal(err)
		}
		sugar.Info("migrations applied")
	}

	repos := service.Repositories{
		Users: repository.NewUsersRepository(db),
		Cards: repository.NewCardsRepository(db),
	}
	svc, err := service.NewServices(repos, cfg)
	if err != nil {
		sugar.Fatal(err)
	}

	verifier := middleware.NewJWTVerifier(svc.Auth.Tokens(), cfg.Auth.Cookie.Name, httpLogger)
	handler := api.NewHandler(svc, httpLogger, verifier, validation.New(), cfg.Auth.Cookie)

	opts := h.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
	}
	if cfg.Security.RateLimit.Enabled {
		opts.RateLimiter = middleware.NewRateLimiter(cfg.Security.RateLimit.RPS, cfg.Security.RateLimit.Burst, httpLogger)
	}
	if cfg.Observability.Metrics.Enabled {
		opts.Metrics = middleware.NewMetrics()
		opts.MetricsPath = cfg.Observability.Metrics.Path
	}
	router := h.NewRouter(handler, opts)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if cfg.TLS.Enabled {
			sugar.Infof("server started on https://%s", addr)
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			sugar.Infof("server started on http://%s", addr)
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
