package platform

import (
	"context"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-exchange-rates/internal/config"
	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
)

// ConnectPostgres opens the warehouse pool and pings it.
func ConnectPostgres(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	logger.Log.Infow("connecting to PostgreSQL",
		"host", cfg.Postgres.Host,
		"port", cfg.Postgres.Port,
		"database", cfg.ProjectID,
	)

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	return db, nil
}
