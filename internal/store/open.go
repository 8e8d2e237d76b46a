package store

import (
	"context"
	"fmt"

	"github.com/avireddy0/XERReader/internal/config"
)

// Open opens the store backend selected by cfg.Type ("sqlite", "postgres",
// or "none"), using cfg.DSN as the connection string. "none" returns a nil
// Store and a nil error — callers (e.g. the `cache` command) should treat
// a nil Store as "caching disabled."
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Type {
	case "none":
		return nil, nil
	case "", "sqlite":
		return OpenSQLite(cfg.DSN)
	case "postgres":
		return OpenPostgres(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Type)
	}
}
