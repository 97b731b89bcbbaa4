package credit

import (
	"context"

	"Credify/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Save(ctx context.Context, account *CreditAccount) (*CreditAccount, error)
	FindByID(ctx context.Context, creditID ulid.ULID) (*CreditAccount, error)
	FindAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*CreditAccount, int64, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]*CreditAccount, error)
	DeleteByID(ctx context.Context, creditID ulid.ULID) error
	UpdateAvailableCredit(ctx context.Context, creditID ulid.ULID, value float64) error
	UpdateAmountPaid(ctx context.Context, creditID ulid.ULID, value float64) error
}
