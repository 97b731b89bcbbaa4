package credit_test

import (
	"context"
	"errors"
	"testing"

	"Credify/internal/domain/credit"
	appErrors "Credify/internal/errors"

	"github.com/oklog/ulid/v2"
)

func newService(repo *fakeCreditRepository) *credit.Service {
	return &credit.Service{
		Repository: repo,
		Strategies: credit.NewStrategyRegistry(repo),
	}
}

func TestServiceCreateRequiresCustomerType(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeCreditRepository{})

	_, err := svc.Create(context.Background(), &credit.CreditAccount{
		Type:   credit.TypeCreditCard,
		Amount: 1000,
	})
	if !errors.Is(err, appErrors.ErrMissingCustomerType) {
		t.Fatalf("expected missing customer type error, got %v", err)
	}
}

func TestServiceCreateGeneratesIDAndNormalizes(t *testing.T) {
	t.Parallel()

	var saved *credit.CreditAccount
	repo := &fakeCreditRepository{
		saveFn: func(ctx context.Context, account *credit.CreditAccount) (*credit.CreditAccount, error) {
			saved = account
			return account, nil
		},
	}
	svc := newService(repo)

	clientID := ulid.Make()
	paid := 300.0
	account := &credit.CreditAccount{
		CreditID:     clientID,
		CustomerID:   "cust-1",
		CustomerType: credit.CustomerBusiness,
		Type:         credit.TypeCreditCard,
		Amount:       8000,
		CardNumber:   "5555-4444",
		AmountPaid:   &paid,
	}

	result, err := svc.Create(context.Background(), account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CreditID == clientID {
		t.Fatal("expected server-generated credit id, client id was kept")
	}
	if saved.AmountPaid != nil {
		t.Fatalf("expected simple credit field cleared on card variant, got %v", *saved.AmountPaid)
	}
	if saved.AvailableCredit == nil || *saved.AvailableCredit != 8000 {
		t.Fatalf("expected available credit defaulted, got %v", saved.AvailableCredit)
	}
}

func TestServiceUpdateNotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeCreditRepository{
		findByIDFn: func(ctx context.Context, creditID ulid.ULID) (*credit.CreditAccount, error) {
			return nil, errors.New("record not found")
		},
	}
	svc := newService(repo)

	_, err := svc.Update(context.Background(), ulid.Make(), &credit.CreditAccount{
		CustomerType: credit.CustomerPersonal,
		Type:         credit.TypeCreditCard,
		Amount:       1000,
	})
	if !errors.Is(err, appErrors.ErrCreditNotFound) {
		t.Fatalf("expected credit not found, got %v", err)
	}
}

func TestServiceUpdateReplacesWholeAccount(t *testing.T) {
	t.Parallel()

	creditID := ulid.Make()
	stored := &credit.CreditAccount{
		CreditID:     creditID,
		CustomerID:   "cust-1",
		CustomerType: credit.CustomerPersonal,
		Type:         credit.TypeSimpleCredit,
		Amount:       2000,
		AmountPaid:   ptr(500),
	}

	var saved *credit.CreditAccount
	repo := &fakeCreditRepository{
		findByIDFn: func(ctx context.Context, id ulid.ULID) (*credit.CreditAccount, error) {
			return stored, nil
		},
		saveFn: func(ctx context.Context, account *credit.CreditAccount) (*credit.CreditAccount, error) {
			saved = account
			return account, nil
		},
	}
	svc := newService(repo)

	_, err := svc.Update(context.Background(), creditID, &credit.CreditAccount{
		CustomerID:   "cust-1",
		CustomerType: credit.CustomerPersonal,
		Type:         credit.TypeSimpleCredit,
		Amount:       3000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.CreditID != creditID {
		t.Fatalf("expected path id to win, got %s", saved.CreditID)
	}
	if saved.Amount != 3000 {
		t.Fatalf("expected full replace, got amount %v", saved.Amount)
	}
	// Substituição integral: o AmountPaid armazenado não é preservado.
	if saved.AmountPaid != nil {
		t.Fatalf("expected amount paid from request (nil), got %v", *saved.AmountPaid)
	}
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		repo := &fakeCreditRepository{
			findByIDFn: func(ctx context.Context, id ulid.ULID) (*credit.CreditAccount, error) {
				return nil, errors.New("record not found")
			},
		}
		svc := newService(repo)

		err := svc.Delete(context.Background(), ulid.Make())
		if !errors.Is(err, appErrors.ErrCreditNotFound) {
			t.Fatalf("expected credit not found, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		deleted := false
		repo := &fakeCreditRepository{
			findByIDFn: func(ctx context.Context, id ulid.ULID) (*credit.CreditAccount, error) {
				return &credit.CreditAccount{CreditID: id}, nil
			},
			deleteByIDFn: func(ctx context.Context, id ulid.ULID) error {
				deleted = true
				return nil
			},
		}
		svc := newService(repo)

		if err := svc.Delete(context.Background(), ulid.Make()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted {
			t.Fatal("expected delete to reach repository")
		}
	})
}

func TestServiceHasCreditCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		accounts []*credit.CreditAccount
		want     bool
	}{
		{
			name: "customer with card",
			accounts: []*credit.CreditAccount{
				{Type: credit.TypeSimpleCredit},
				{Type: credit.TypeCreditCard},
			},
			want: true,
		},
		{
			name: "customer without card",
			accounts: []*credit.CreditAccount{
				{Type: credit.TypeSimpleCredit},
			},
			want: false,
		},
		{
			name: "customer without credits",
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeCreditRepository{
				findByCustomerIDFn: func(ctx context.Context, customerID string) ([]*credit.CreditAccount, error) {
					return tt.accounts, nil
				},
			}
			svc := newService(repo)

			got, err := svc.HasCreditCard(context.Background(), "cust-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
