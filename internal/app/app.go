package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/adminconfig"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/client"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/interaction"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/membership"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/organization"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/crm-backend/internal/adapter/redis/dedup"
	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/admin"
	"github.com/heartmarshall/crm-backend/internal/service/magicextract"
	"github.com/heartmarshall/crm-backend/internal/transport/middleware"
	"github.com/heartmarshall/crm-backend/internal/transport/rest"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type dedupFilter interface {
	Claim(ctx context.Context, orgID uuid.UUID, messageID string) (domain.DeliveryState, error)
	Complete(ctx context.Context, orgID uuid.UUID, messageID string) error
	Forget(ctx context.Context, orgID uuid.UUID, messageID string) error
}

// probePaths are polled by orchestrators and scrapers and kept out of request logs.
var probePaths = []string{"/live", "/ready", "/metrics"}

// Run is the application entry point. It loads configuration, connects to
// storage, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	var (
		filter dedupFilter
		cache  pinger
	)
	if cfg.Redis.Enabled() {
		rdb, err := dedup.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer closeRedis(logger, rdb)
		filter = dedup.NewFilter(rdb, cfg.Inbound.DedupTTL)
		cache = rest.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	} else {
		logger.Warn("redis not configured; inbound dedup relies on client upsert only")
	}

	if cfg.Admin.UsesDefaultSecret() {
		logger.Warn("ADMIN_CENTER_SESSION_SECRET is not set; using the default secret")
	}
	if cfg.Admin.Email == "" {
		logger.Warn("ADMIN_EMAIL is not set; the admin access code cannot be viewed")
	}
	if cfg.Inbound.Secret == "" {
		logger.Warn("INBOUND_SECRET is not set; the inbound webhook rejects all requests")
	}

	txm := postgres.NewTxManager(pool)

	orgRepo := organization.New(pool)
	memberRepo := membership.New(pool)
	userRepo := user.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	sessions := auth.NewSessionSigner(cfg.Admin.SessionSecret, cfg.Admin.SessionTTL, time.Now)

	extractSvc := magicextract.NewService(
		logger,
		orgRepo,
		memberRepo,
		client.New(pool),
		interaction.New(pool),
		notification.New(pool),
		filter,
		txm,
	)

	adminSvc := admin.NewService(
		logger,
		admin.Config{
			AdminEmail:       cfg.Admin.Email,
			AppURL:           cfg.Admin.AppURL,
			ImpersonationTTL: cfg.Admin.ImpersonationTTL,
		},
		adminconfig.New(pool),
		sessions,
		jwtManager,
		userRepo,
		orgRepo,
		memberRepo,
		audit.New(pool),
	)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	router := NewRouter(
		Handlers{
			Health:       rest.NewHealthHandler(pool, cache, BuildVersion()),
			MagicExtract: rest.NewMagicExtractHandler(extractSvc, logger),
			Inbound:      rest.NewInboundHandler(extractSvc, cfg.Inbound.Secret, logger),
			AdminCode:    rest.NewAdminCodeHandler(adminSvc, logger),
			AdminCenter: rest.NewAdminCenterHandler(adminSvc, rest.CookieSettings{
				Path:   cfg.Admin.CookiePath,
				Secure: cfg.Admin.CookieSecure,
				MaxAge: cfg.Admin.SessionTTL,
			}, logger),
		},
		RouterDeps{
			Auth:       middleware.Auth(jwtManager),
			AdminGuard: middleware.AdminSession(adminSvc, cfg.Admin.CookiePath),
			LoginLimit: limiter.Limit("admin_login", cfg.Admin.LoginRateLimit),
			AdminPath:  cfg.Admin.CookiePath,
		},
	)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Except(middleware.Logger(logger), probePaths...),
		middleware.Recovery(logger),
		middleware.Metrics(),
		// The admin center is same-origin and the webhook is server-to-server.
		middleware.Except(middleware.CORS(cfg.CORS), cfg.Admin.CookiePath, "/api/inbound/"),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func closeRedis(logger *slog.Logger, rdb *redis.Client) {
	if err := rdb.Close(); err != nil {
		logger.Error("close redis", slog.String("error", err.Error()))
	}
}
