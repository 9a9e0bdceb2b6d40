package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_statements/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// collectAll runs query and scans every row into T by column name.
// An empty result is an empty, non-nil slice.
func collectAll[T any](ctx context.Context, r *BaseRepository, what, query string, args ...any) ([]T, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query %s", what), err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to collect %s rows", what), err)
	}
	if items == nil {
		return []T{}, nil
	}
	return items, nil
}

// collectOne runs query and scans exactly one row into T.
// No rows maps to apperrors.ErrNotFound.
func collectOne[T any](ctx context.Context, r *BaseRepository, what, query string, args ...any) (*T, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query %s", what), err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to collect %s row", what), err)
	}
	return &item, nil
}
