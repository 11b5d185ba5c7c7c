package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/ipl-dashboard/internal/config"
	"github.com/riskibarqy/ipl-dashboard/internal/fallback"
	"github.com/riskibarqy/ipl-dashboard/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/ipl-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/ipl-dashboard/internal/scraper"
	"github.com/riskibarqy/ipl-dashboard/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

var errStoreMissing = errors.New("sqlite database file does not exist")

// OpenWriteStore opens the store for the scraper and creates the SQLite file when needed.
func OpenWriteStore(ctx context.Context, cfg config.Config) (*usecase.Store, func() error, error) {
	db, err := openDB(ctx, cfg, true)
	if err != nil {
		return nil, nil, err
	}
	return NewStore(db), db.Close, nil
}

func NewStore(db *sqlx.DB) *usecase.Store {
	if db == nil {
		return nil
	}
	return &usecase.Store{
		Teams:     sqlstore.NewTeamRepository(db),
		Standings: sqlstore.NewStandingRepository(db),
		Matches:   sqlstore.NewMatchRepository(db),
		Live:      sqlstore.NewLiveMatchRepository(db),
	}
}

func openDB(ctx context.Context, cfg config.Config, create bool) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBDriver, cfg.DBURL, cfg.DBDisablePreparedBinary)

	if cfg.DBDriver == config.DBDriverSQLite {
		if path := sqlitePathFromDSN(dsn); path != "" {
			if create {
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					return nil, fmt.Errorf("create database dir: %w", err)
				}
			} else if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				return nil, errStoreMissing
			}
		}
	}

	if cfg.DBAutoMigrate {
		if err := sqlstore.MigrateUp(cfg.DBDriver, dsn); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}

	db, err := otelsqlx.Open(cfg.DBDriver, dsn,
		otelsql.WithDBSystem(dbSystem(cfg.DBDriver)),
		otelsql.WithDBName(dbNameFromURL(cfg.DBDriver, dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.DBDriver == config.DBDriverSQLite {
		db.SetMaxOpenConns(1)
	}
	otelsql.ReportDBStatsMetrics(db.DB)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func dbSystem(driver string) string {
	if driver == config.DBDriverPostgres {
		return "postgresql"
	}
	return "sqlite"
}

func NewHTTPServer(cfg config.Config, stores usecase.StoreSource, logger *logging.Logger) (*http.Server, error) {
	queryService := usecase.NewQueryService(stores, fallback.NewFileStore(cfg.FallbackDataPath), logger)

	handler := httpapi.NewHandler(queryService, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func NewReconciler(cfg config.Config, store *usecase.Store, logger *logging.Logger) (*usecase.ReconcileService, error) {
	if store == nil {
		return nil, fmt.Errorf("reconciler requires a store")
	}

	fetcher := scraper.NewPageFetcher(scraper.FetcherConfig{
		BaseURL:      cfg.ScraperBaseURL,
		UserAgent:    cfg.ScraperUserAgent,
		Timeout:      cfg.ScraperTimeout,
		MaxRetries:   cfg.ScraperMaxRetries,
		RetryBackoff: cfg.ScraperRetryBackoff,
		Logger:       logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ScraperCircuitEnabled,
			FailureThreshold: cfg.ScraperCircuitFailureCount,
			OpenTimeout:      cfg.ScraperCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ScraperCircuitHalfOpenMaxReq,
		},
	})

	extractor, err := scraper.NewExtractor(fetcher, fallback.NewFileStore(cfg.FallbackDataPath), cfg.ScraperBaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("build extractor: %w", err)
	}

	return usecase.NewReconcileService(
		extractor,
		store.Teams,
		store.Standings,
		store.Matches,
		store.Live,
		nil,
		logger,
	), nil
}
