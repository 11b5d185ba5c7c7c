package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/ipl-dashboard/internal/config"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/ipl-dashboard/internal/usecase"
)

const defaultReopenBackoff = 5 * time.Second

// ReadStore resolves the API server's store on every request. A SQLite file is checked
// for existence on each Acquire, so a database created after start-up is picked up and a
// removed one sends reads back to static data. The server never creates the database.
type ReadStore struct {
	cfg        config.Config
	sqlitePath string
	backoff    time.Duration
	logger     *logging.Logger
	now        func() time.Time

	mu       sync.Mutex
	db       *sqlx.DB
	store    *usecase.Store
	failedAt time.Time
	lastErr  error
}

func NewReadStore(cfg config.Config, logger *logging.Logger) *ReadStore {
	if logger == nil {
		logger = logging.Default()
	}

	s := &ReadStore{
		cfg:     cfg,
		backoff: defaultReopenBackoff,
		logger:  logger,
		now:     time.Now,
	}
	if cfg.DBDriver == config.DBDriverSQLite {
		s.sqlitePath = sqlitePathFromDSN(normalizeDBURL(cfg.DBDriver, cfg.DBURL, cfg.DBDisablePreparedBinary))
	}
	return s
}

// Acquire returns nil without error when the SQLite file does not exist. Open failures
// are returned and not retried until the backoff has passed.
func (s *ReadStore) Acquire(ctx context.Context) (*usecase.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sqlitePath != "" {
		_, err := os.Stat(s.sqlitePath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			if s.db != nil {
				s.logger.WarnContext(ctx, "database file removed, serving static data", "path", s.sqlitePath)
				s.closeLocked()
			}
			return nil, nil
		case err != nil:
			return nil, fmt.Errorf("stat database file: %w", err)
		}
	}

	if s.store != nil {
		return s.store, nil
	}
	if s.lastErr != nil && s.now().Sub(s.failedAt) < s.backoff {
		return nil, s.lastErr
	}

	db, err := openDB(ctx, s.cfg, false)
	switch {
	case errors.Is(err, errStoreMissing):
		return nil, nil
	case err != nil:
		s.failedAt = s.now()
		s.lastErr = err
		s.logger.WarnContext(ctx, "database unavailable, serving static data", "driver", s.cfg.DBDriver, "error", err)
		return nil, err
	}

	s.db = db
	s.store = NewStore(db)
	s.lastErr = nil
	s.logger.InfoContext(ctx, "database opened", "driver", s.cfg.DBDriver)
	return s.store, nil
}

func (s *ReadStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

func (s *ReadStore) closeLocked() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.store = nil
	return err
}
