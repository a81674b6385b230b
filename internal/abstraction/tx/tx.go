package tx

import (
	"context"

	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

// Tx scopes a single mutation; every engine write goes through exactly one Tx
// so guard checks and the write land atomically on the same record.
type Tx interface {
	Commit(ctx context.Context) *app_errors.AppError
	Rollback(ctx context.Context) *app_errors.AppError
}

type TxManager interface {
	Begin(ctx context.Context) (Tx, *app_errors.AppError)
}
