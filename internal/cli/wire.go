package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"bank-account-service/config"
	"bank-account-service/internal/adapter/directory"
	httpHandler "bank-account-service/internal/adapter/http/handler"
	"bank-account-service/internal/adapter/lock"
	"bank-account-service/internal/adapter/storage/memory"
	pgStorage "bank-account-service/internal/adapter/storage/postgres"
	redisStorage "bank-account-service/internal/adapter/storage/redis"
	"bank-account-service/internal/core/ports"
	"bank-account-service/internal/service"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// app is the wired process: the HTTP engine plus everything that must be
// closed on shutdown.
type app struct {
	router  *gin.Engine
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

type stores struct {
	accounts ports.AccountRepository
	cards    ports.DebitCardRepository
	audit    ports.AuditRepository
}

// buildApp connects the configured backends and assembles the services.
// On error everything opened so far is closed.
func buildApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	var checkers []ports.HealthChecker

	st, err := openStores(ctx, cfg, log, a, &checkers)
	if err != nil {
		return nil, err
	}

	var rdb *goredis.Client
	if cfg.Redis.Enabled {
		rdb, err = redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("connecting to Redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	locker, err := newLocker(cfg.Lock, rdb, log)
	if err != nil {
		return nil, err
	}

	vipMinimum, commission, err := cfg.Ledger.Parse()
	if err != nil {
		return nil, err
	}
	rules := service.AccountRules{VIPMinimumBalance: vipMinimum, DefaultCommission: commission}

	var dir ports.CustomerDirectory = directory.NewClient(
		cfg.Directory.CustomerURL,
		cfg.Directory.CreditCardURL,
		&http.Client{Timeout: cfg.Directory.Timeout},
		log,
	)
	var rateLimits ports.RateLimitStore
	if rdb != nil {
		dir = directory.NewCachedDirectory(dir, redisStorage.NewCustomerCache(rdb), cfg.Directory.CacheTTL, log)
		rateLimits = redisStorage.NewRateLimitStore(rdb)
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	a.router = httpHandler.SetupRouter(httpHandler.RouterDeps{
		AccountSvc:     service.NewAccountService(st.accounts, dir, rules, log),
		LedgerSvc:      service.NewLedgerService(st.accounts, locker, log),
		DebitCardSvc:   service.NewDebitCardService(st.cards, st.accounts, locker, log),
		ReportingSvc:   service.NewReportingService(st.accounts),
		RateLimitStore: rateLimits,
		HealthCheckers: checkers,
		AuditSvc:       service.NewAuditService(st.audit, log),
		MetricsPath:    metricsPath,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})
	return a, nil
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger, a *app, checkers *[]ports.HealthChecker) (*stores, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		*checkers = append(*checkers, pgStorage.NewHealthCheck(pool))
		return &stores{
			accounts: pgStorage.NewAccountRepo(pool),
			cards:    pgStorage.NewDebitCardRepo(pool),
			audit:    pgStorage.NewAuditRepo(pool),
		}, nil
	case "memory":
		log.Warn().Msg("using in-memory storage; data is lost on restart")
		return &stores{
			accounts: memory.NewAccountStore(),
			cards:    memory.NewDebitCardStore(),
			audit:    memory.NewAuditStore(),
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage.driver %q (want postgres or memory)", cfg.Storage.Driver)
	}
}

func newLocker(cfg config.LockConfig, rdb *goredis.Client, log zerolog.Logger) (ports.AccountLocker, error) {
	switch cfg.Backend {
	case "redis":
		if rdb == nil {
			return nil, errors.New("lock.backend redis requires redis.enabled")
		}
		return redisStorage.NewAccountLocker(rdb, cfg, log), nil
	case "memory":
		return lock.NewMemoryLocker(cfg.WaitTimeout), nil
	case "none":
		log.Warn().Msg("per-account locking disabled; concurrent updates to one account may be lost")
		return lock.NoopLocker{}, nil
	default:
		return nil, fmt.Errorf("unknown lock.backend %q (want redis, memory or none)", cfg.Backend)
	}
}
