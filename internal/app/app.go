package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/config"
	"github.com/GlebRadaev/gamemarket/internal/handlers"
	authhandlers "github.com/GlebRadaev/gamemarket/internal/handlers/auth"
	"github.com/GlebRadaev/gamemarket/internal/notify"
	"github.com/GlebRadaev/gamemarket/internal/pg"
	"github.com/GlebRadaev/gamemarket/internal/redisx"
	"github.com/GlebRadaev/gamemarket/internal/repo"
	"github.com/GlebRadaev/gamemarket/internal/service"
	"github.com/GlebRadaev/gamemarket/internal/service/orderservice"
	pkgauth "github.com/GlebRadaev/gamemarket/pkg/auth"
	"github.com/GlebRadaev/gamemarket/pkg/clients"
	"github.com/GlebRadaev/gamemarket/pkg/logger"
	"github.com/GlebRadaev/gamemarket/pkg/oauth"
)

const (
	shutdownTimeout = 5 * time.Second
	notifyQueueSize = 100
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	pool    *pgxpool.Pool
	rdb     *redis.Client
	workers notify.WorkerPoolI

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		zap.L().Error("invalid config: ", zap.Error(err))
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.InsecureJWTSecret() {
		zap.L().Warn("JWT_SECRET is not set, tokens are signed with the development secret")
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.workers = notify.NewWorkerPool(cfg.NotifyWorkers, notifyQueueSize)

	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(a.repo, txManager, service.Options{
		Hash:        pkgauth.NewHashService(0),
		JWT:         jwtService,
		Notifier:    notify.New(a.workers, notify.NewSender(cfg.TelegramBotToken, cfg.TelegramChatID)),
		Idempotency: a.idempotencyStore(ctx),
		TokenTTL:    cfg.JWTTTL,
	})
	a.api = handlers.New(a.srv, pkgauth.NewMiddleware(jwtService, a.repo.UserRepo), handlers.Options{
		Auth: authhandlers.Options{
			TokenTTL:     cfg.JWTTTL,
			CookieSecure: cfg.CookieSecure,
			FrontendURL:  cfg.FrontendURL,
		},
		Google:         googleProvider(cfg),
		RequestTimeout: cfg.RequestTimeout,
	})

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	if cfg.DBMaxConns > 0 {
		cfgpool.MaxConns = cfg.DBMaxConns
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// idempotencyStore connects to Redis when configured. Checkout runs without
// idempotency keys when Redis is absent or unreachable.
func (a *Application) idempotencyStore(ctx context.Context) orderservice.IdempotencyStore {
	if a.cfg.RedisAddr == "" {
		return nil
	}
	rdb := redisx.New(a.cfg.RedisAddr)
	if err := redisx.Ping(ctx, rdb); err != nil {
		zap.L().Warn("redis unavailable, checkout idempotency disabled", zap.String("addr", a.cfg.RedisAddr), zap.Error(err))
		rdb.Close()
		return nil
	}
	a.rdb = rdb
	return redisx.NewIdempotencyStore(rdb)
}

func googleProvider(cfg *config.Config) authhandlers.OAuthProvider {
	if !cfg.GoogleEnabled() {
		return nil
	}
	return oauth.NewGoogle(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL, clients.NewHTTPClient())
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// close releases what Start acquired once the server has stopped; queued
// notifications are drained before the pool goes away.
func (a *Application) close() {
	if a.workers != nil {
		a.workers.Close()
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			zap.L().Warn("redis close failed", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()
	a.close()

	return appErr
}
