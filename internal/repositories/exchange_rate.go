package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

// ExchangeRateRepository reads and appends exchange rate rows in the warehouse.
// The dataset maps to a PostgreSQL schema, the project to the database the pool is connected to.
type ExchangeRateRepository struct {
	db *sqlx.DB
}

func NewExchangeRateRepository(db *sqlx.DB) *ExchangeRateRepository {
	return &ExchangeRateRepository{db: db}
}

// tableIdent returns the quoted schema.table reference.
func tableIdent(table models.TableRef) string {
	return pgx.Identifier{table.DatasetID, table.TableName}.Sanitize()
}

// ExistsByDedupKey reports whether a row with the given load_ts and currency is stored.
func (r *ExchangeRateRepository) ExistsByDedupKey(ctx context.Context, table models.TableRef, loadTS, currency string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*) AS total
		FROM %s
		WHERE load_ts = $1 AND currency = $2
	`, tableIdent(table))

	var total int64
	rows, err := r.db.QueryxContext(ctx, query, loadTS, currency)
	if err == nil {
		defer rows.Close()
		if rows.Next() {
			err = rows.Scan(&total)
		}
		if err == nil {
			err = rows.Err()
		}
	}

	logger.Log.Infow("warehouse query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{loadTS, currency},
		"result", total,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return total > 0, nil
}

// InsertRows appends rates one row at a time.
// PostgreSQL errors are reported per row; any other error aborts and is returned as is.
func (r *ExchangeRateRepository) InsertRows(ctx context.Context, table models.TableRef, rates []models.ExchangeRate) ([]models.RowError, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (buy_rate, sell_rate, closing_rate, exchange_name, currency, load_ts)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, tableIdent(table))

	var rowErrs []models.RowError
	for i, rate := range rates {
		args := []any{rate.BuyRate, rate.SellRate, rate.ClosingRate, rate.ExchangeName, rate.Currency, rate.LoadTS}
		_, err := r.db.ExecContext(ctx, query, args...)

		logger.Log.Infow("warehouse insert",
			"query", strings.Join(strings.Fields(query), " "),
			"args", args,
			"result", i,
			"error", err,
		)

		if err == nil {
			continue
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			rowErrs = append(rowErrs, models.RowError{
				Index:   i,
				Reason:  pgErr.Code,
				Message: pgErr.Message,
			})
			continue
		}
		return rowErrs, err
	}

	return rowErrs, nil
}

// List returns up to limit rows as loosely typed column maps.
func (r *ExchangeRateRepository) List(ctx context.Context, table models.TableRef, limit int) ([]map[string]any, error) {
	query := fmt.Sprintf(`SELECT * FROM %s LIMIT %d`, tableIdent(table), limit)

	result := make([]map[string]any, 0)
	rows, err := r.db.QueryxContext(ctx, query)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			row := make(map[string]any)
			if err = rows.MapScan(row); err != nil {
				break
			}
			for k, v := range row {
				if b, ok := v.([]byte); ok {
					row[k] = string(b)
				}
			}
			result = append(result, row)
		}
		if err == nil {
			err = rows.Err()
		}
	}

	logger.Log.Infow("warehouse query",
		"query", query,
		"args", []any{},
		"result", len(result),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return result, nil
}

// EnsureTable creates the schema, the table and the dedup lookup index when missing.
// The index is not unique: duplicate rows stay possible under concurrent writers.
func (r *ExchangeRateRepository) EnsureTable(ctx context.Context, table models.TableRef) error {
	queries := []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, pgx.Identifier{table.DatasetID}.Sanitize()),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				buy_rate DOUBLE PRECISION NOT NULL,
				sell_rate DOUBLE PRECISION NOT NULL,
				closing_rate DOUBLE PRECISION NOT NULL,
				exchange_name TEXT NOT NULL,
				currency TEXT NOT NULL,
				load_ts TEXT NOT NULL
			)
		`, tableIdent(table)),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (load_ts, currency)`,
			pgx.Identifier{table.TableName + "_load_ts_currency_idx"}.Sanitize(), tableIdent(table)),
	}

	for _, query := range queries {
		_, err := r.db.ExecContext(ctx, query)

		logger.Log.Infow("warehouse ddl",
			"query", strings.Join(strings.Fields(query), " "),
			"args", []any{},
			"result", "ok",
			"error", err,
		)

		if err != nil {
			return err
		}
	}

	return nil
}
