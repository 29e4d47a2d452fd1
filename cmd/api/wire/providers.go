package wire

import (
	"fmt"
	"log/slog"
	"sync"

	"crm-server/cmd/config"
	"crm-server/internal/infra/httpserver"
	"crm-server/internal/infra/sql"
)

var (
	databaseOnce sync.Once
	database     sql.ORM
	databaseErr  error
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

// provideDatabase opens one ORM per process so every injector shares the same
// store. The local environment runs on an in-memory sqlite database.
func provideDatabase(cfg config.AppConfig) (sql.ORM, error) {
	databaseOnce.Do(func() {
		if cfg.General.IsLocal() {
			slog.Info("using in-memory database")
			database, databaseErr = sql.NewMemoryORM()
			return
		}

		database, databaseErr = sql.NewPostgresORM(cfg.Database.DSN, cfg.Database.QueryTimeout)
	})

	if databaseErr != nil {
		return nil, fmt.Errorf("opening database: %w", databaseErr)
	}

	return database, nil
}

// providePinger prefers the raw postgres pool for readiness and falls back to
// the ORM handle when no url is configured.
func providePinger(cfg config.AppConfig, orm sql.ORM) (sql.Pinger, error) {
	if !cfg.General.IsLocal() && cfg.Database.URL != "" {
		db := sql.NewPostgresDatabase(cfg.Database.URL)
		if err := db.Open(); err != nil {
			return nil, fmt.Errorf("opening postgres pool: %w", err)
		}
		return db, nil
	}

	pinger, ok := orm.(sql.Pinger)
	if !ok {
		return nil, fmt.Errorf("database handle does not support ping")
	}

	return pinger, nil
}

func provideServerOptions(cfg config.AppConfig, pinger sql.Pinger) httpserver.ServerOptions {
	return httpserver.ServerOptions{
		Address:        cfg.HTTP.Address,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Database:       pinger,
	}
}
