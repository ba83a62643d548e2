package commands

import (
	"context"
	"errors"
	"log/slog"

	"homefix-scheduling/internal/infra/db"
	"homefix-scheduling/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
)

// withinTx runs fn in one transaction. The rollback after commit is a
// no-op; pgx reports ErrTxClosed which is not worth logging.
func (u *bookingUseCaseImpl) withinTx(ctx context.Context, fn func(tx db.DBTX) error) error {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}
	return nil
}
