// Package main - точка входа HTTP-сервера Pulseboard.
//
// Архитектура следует принципам Clean Architecture:
// - Domain: чистая бизнес-логика без внешних зависимостей
// - Application: оркестрация use cases (Commands/Queries)
// - Infrastructure: реализация репозиториев, хранилища, события
// - Interface: HTTP endpoints
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pulseboard/pulseboard-backend/config"
	"github.com/pulseboard/pulseboard-backend/internal/application/command"
	"github.com/pulseboard/pulseboard-backend/internal/application/query"
	"github.com/pulseboard/pulseboard-backend/internal/domain/comment"
	"github.com/pulseboard/pulseboard-backend/internal/domain/follow"
	"github.com/pulseboard/pulseboard-backend/internal/domain/like"
	"github.com/pulseboard/pulseboard-backend/internal/domain/post"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/domain/user"
	"github.com/pulseboard/pulseboard-backend/internal/infrastructure/auth"
	"github.com/pulseboard/pulseboard-backend/internal/infrastructure/messaging"
	"github.com/pulseboard/pulseboard-backend/internal/infrastructure/persistence/memory"
	"github.com/pulseboard/pulseboard-backend/internal/infrastructure/persistence/postgres"
	"github.com/pulseboard/pulseboard-backend/internal/infrastructure/persistence/redis"
	httpserver "github.com/pulseboard/pulseboard-backend/internal/interface/http"
	"github.com/pulseboard/pulseboard-backend/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

// repositories groups the five entity stores behind their domain interfaces.
type repositories struct {
	users    user.Repository
	posts    post.Repository
	comments comment.Repository
	likes    like.Repository
	follows  follow.Repository
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЗАГРУЗКА КОНФИГУРАЦИИ
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. НАСТРОЙКА ЛОГИРОВАНИЯ
	// ─────────────────────────────────────────────────────────────────────────
	log := logger.New(os.Stdout, logger.ParseLevel(cfg.App.LogLevel)).With(
		logger.String("app", cfg.App.Name),
		logger.String("env", string(cfg.App.Environment)),
	)
	log.Info("starting Pulseboard",
		logger.String("version", cfg.App.Version),
		logger.String("store", string(cfg.App.Store)),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ХРАНИЛИЩЕ (PostgreSQL или in-memory)
	// ─────────────────────────────────────────────────────────────────────────
	repos, cleanup, err := buildRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	// ─────────────────────────────────────────────────────────────────────────
	// 4. СЕССИИ (Redis или in-memory fallback)
	// ─────────────────────────────────────────────────────────────────────────
	sessions, sessionCleanup, err := buildSessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer sessionCleanup()

	// ─────────────────────────────────────────────────────────────────────────
	// 5. АУТЕНТИФИКАЦИЯ
	// ─────────────────────────────────────────────────────────────────────────
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenService(auth.TokenConfig{
		Secret:     cfg.Auth.JWTSecret,
		Issuer:     cfg.Auth.Issuer,
		AccessTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTTL: cfg.Auth.RefreshTokenTTL,
	}, sessions)

	// ─────────────────────────────────────────────────────────────────────────
	// 6. СОБЫТИЯ
	// ─────────────────────────────────────────────────────────────────────────
	bus := messaging.NewEventBus(log)
	messaging.LogEvents(bus, log,
		shared.EventUserRegistered,
		shared.EventPostCreated,
		shared.EventPostDeleted,
		shared.EventCommentAdded,
		shared.EventFollowCreated,
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 7. USE CASES
	// ─────────────────────────────────────────────────────────────────────────
	deps := httpserver.Dependencies{
		Tokens:    tokens,
		Refresher: tokens,

		CreateAccount:  command.NewCreateAccountHandler(repos.users, hasher, bus),
		Login:          command.NewLoginHandler(repos.users, hasher, tokens),
		UpdateUser:     command.NewUpdateUserHandler(repos.users),
		UpdatePassword: command.NewUpdateUserPasswordHandler(repos.users, hasher),

		CreatePost: command.NewCreatePostHandler(repos.posts, repos.users, bus),
		UpdatePost: command.NewUpdatePostHandler(repos.posts),
		DeletePost: command.NewDeletePostHandler(repos.posts, bus),

		AddComment:    command.NewAddCommentHandler(repos.comments, repos.posts, repos.users, bus),
		UpdateComment: command.NewUpdateCommentHandler(repos.comments),
		DeleteComment: command.NewDeleteCommentHandler(repos.comments),

		Like:   command.NewLikeHandler(repos.likes, repos.posts, repos.comments),
		Unlike: command.NewUnlikeHandler(repos.likes),

		Follow:   command.NewFollowHandler(repos.follows, repos.users, bus),
		Unfollow: command.NewUnfollowHandler(repos.follows),

		Me:          query.NewMeHandler(repos.users),
		GetProfile:  query.NewGetProfileHandler(repos.users, repos.posts, repos.comments, repos.likes, repos.follows),
		GetPost:     query.NewGetPostHandler(repos.posts, repos.comments, repos.likes, repos.users),
		GetManyPost: query.NewGetManyPostHandler(repos.posts),
		Comments:    query.NewCommentQueries(repos.comments),
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 8. HTTP СЕРВЕР
	// ─────────────────────────────────────────────────────────────────────────
	server := httpserver.NewServer(httpserver.Config{
		Host:           cfg.HTTP.Host,
		Port:           cfg.HTTP.Port,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		EnableCORS:     cfg.HTTP.EnableCORS,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	}, deps, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// ─────────────────────────────────────────────────────────────────────────
	// 9. GRACEFUL SHUTDOWN
	// ─────────────────────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info("shutdown complete")
	return nil
}

// buildRepositories selects the persistence backend from configuration.
// STORE_DRIVER=memory runs entirely in process; STORE_DRIVER=postgres
// connects, migrates and serves the same repository contracts durably.
func buildRepositories(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repositories, func(), error) {
	if cfg.App.Store == config.StorePostgres {
		log.Info("connecting to database...")
		conn, err := postgres.Connect(ctx, postgres.Config{
			URL:             cfg.Database.URL,
			MaxConns:        int32(cfg.Database.MaxConns),
			MinConns:        int32(cfg.Database.MinConns),
			MaxConnLifetime: cfg.Database.ConnMaxLifetime,
			MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
			ConnectTimeout:  cfg.Database.ConnectTimeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		log.Info("running database migrations...")
		if err := postgres.Migrate(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		repos := &repositories{
			users:    postgres.NewUserRepository(conn),
			posts:    postgres.NewPostRepository(conn),
			comments: postgres.NewCommentRepository(conn),
			likes:    postgres.NewLikeRepository(conn),
			follows:  postgres.NewFollowRepository(conn),
		}
		cleanup := func() {
			log.Info("closing database connection...")
			conn.Close()
		}
		return repos, cleanup, nil
	}

	log.Info("using in-memory store")
	repos := &repositories{
		users:    memory.NewUserRepository(),
		posts:    memory.NewPostRepository(),
		comments: memory.NewCommentRepository(),
		likes:    memory.NewLikeRepository(),
		follows:  memory.NewFollowRepository(),
	}
	return repos, func() {}, nil
}

// buildSessionStore returns Redis-backed sessions, or the in-process store
// when Redis is disabled.
func buildSessionStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (auth.SessionStore, func(), error) {
	if cfg.Redis.Disabled {
		log.Info("redis disabled, using in-memory sessions")
		return auth.NewMemorySessionStore(), func() {}, nil
	}

	log.Info("connecting to Redis...", logger.String("addr", cfg.Redis.Addr))
	store, err := redis.NewSessionStore(ctx, redis.Config{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
		DialTimeout: cfg.Redis.DialTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	cleanup := func() {
		log.Info("closing redis connection...")
		_ = store.Close()
	}
	return store, cleanup, nil
}
