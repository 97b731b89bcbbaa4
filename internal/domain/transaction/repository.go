package transaction

import (
	"context"
	"time"

	"Credify/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Save(ctx context.Context, tx *Transaction) (*Transaction, error)
	FindAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
	FindByCreditID(ctx context.Context, creditID ulid.ULID) ([]*Transaction, error)
	FindByCreditIDAndDateBetween(ctx context.Context, creditID ulid.ULID, start, end time.Time) ([]*Transaction, error)
}
