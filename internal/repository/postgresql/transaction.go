package postgresql

import (
	"context"

	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
)

// GetQuerier returns the transaction carried by the context when present,
// otherwise the pool. Repositories call this so they work the same inside and
// outside database.WithTx.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := database.TxFromContext(ctx); ok {
		return tx
	}
	return db.Pool
}
