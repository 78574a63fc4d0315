package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mealtrack-backend/internal/adapter/filestore"
	"github.com/heartmarshall/mealtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mealtrack-backend/internal/adapter/postgres/record"
	"github.com/heartmarshall/mealtrack-backend/internal/config"
	"github.com/heartmarshall/mealtrack-backend/internal/ledger"
)

// OpenLedger builds the ledger over the configured backend. The returned
// func releases backend resources.
func OpenLedger(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*ledger.Ledger, func(), error) {
	switch cfg.Ledger.Backend {
	case config.LedgerBackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres ledger: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("migrate postgres ledger: %w", err)
			}
		}
		logger.Info("ledger opened", slog.String("backend", config.LedgerBackendPostgres))
		return ledger.New(record.New(pool)), pool.Close, nil

	case config.LedgerBackendFile:
		store, err := filestore.New(cfg.Ledger.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("open file ledger: %w", err)
		}
		logger.Info("ledger opened",
			slog.String("backend", config.LedgerBackendFile),
			slog.String("dir", cfg.Ledger.Dir),
		)
		return ledger.New(store), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown ledger backend %q", cfg.Ledger.Backend)
	}
}
