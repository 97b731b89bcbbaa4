package transaction_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"Credify/internal/domain/credit"
	"Credify/internal/domain/transaction"
	appErrors "Credify/internal/errors"
	"Credify/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeCreditRepository struct {
	findByIDFn              func(ctx context.Context, creditID ulid.ULID) (*credit.CreditAccount, error)
	updateAvailableCreditFn func(ctx context.Context, creditID ulid.ULID, value float64) error
	updateAmountPaidFn      func(ctx context.Context, creditID ulid.ULID, value float64) error
}

func (f *fakeCreditRepository) Save(ctx context.Context, account *credit.CreditAccount) (*credit.CreditAccount, error) {
	return account, nil
}

func (f *fakeCreditRepository) FindByID(ctx context.Context, creditID ulid.ULID) (*credit.CreditAccount, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, creditID)
	}
	return nil, errors.New("not found")
}

func (f *fakeCreditRepository) FindAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*credit.CreditAccount, int64, error) {
	return nil, 0, nil
}

func (f *fakeCreditRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*credit.CreditAccount, error) {
	return nil, nil
}

func (f *fakeCreditRepository) DeleteByID(ctx context.Context, creditID ulid.ULID) error {
	return nil
}

func (f *fakeCreditRepository) UpdateAvailableCredit(ctx context.Context, creditID ulid.ULID, value float64) error {
	if f.updateAvailableCreditFn != nil {
		return f.updateAvailableCreditFn(ctx, creditID, value)
	}
	return nil
}

func (f *fakeCreditRepository) UpdateAmountPaid(ctx context.Context, creditID ulid.ULID, value float64) error {
	if f.updateAmountPaidFn != nil {
		return f.updateAmountPaidFn(ctx, creditID, value)
	}
	return nil
}

func ptr(v float64) *float64 { return &v }

func cardAccount(creditID ulid.ULID, amount, available float64) *credit.CreditAccount {
	return &credit.CreditAccount{
		CreditID:        creditID,
		CustomerID:      "cust-1",
		CustomerType:    credit.CustomerPersonal,
		Type:            credit.TypeCreditCard,
		Amount:          amount,
		AvailableCredit: ptr(available),
	}
}

func simpleAccount(creditID ulid.ULID, amount, paid float64) *credit.CreditAccount {
	return &credit.CreditAccount{
		CreditID:     creditID,
		CustomerID:   "cust-1",
		CustomerType: credit.CustomerPersonal,
		Type:         credit.TypeSimpleCredit,
		Amount:       amount,
		AmountPaid:   ptr(paid),
	}
}

func TestCardValidatorSpent(t *testing.T) {
	t.Parallel()

	creditID := ulid.Make()

	tests := []struct {
		name          string
		available     float64
		amount        float64
		wantErrCode   string
		wantAvailable float64
	}{
		{
			name:          "debits available credit",
			available:     1000,
			amount:        300,
			wantAvailable: 700,
		},
		{
			name:          "spends down to zero",
			available:     300,
			amount:        300,
			wantAvailable: 0,
		},
		{
			name:        "insufficient credit",
			available:   100,
			amount:      300,
			wantErrCode: appErrors.ErrInsufficientCredit.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var persisted *float64
			repo := &fakeCreditRepository{
				findByIDFn: func(ctx context.Context, id ulid.ULID) (*credit.CreditAccount, error) {
					return cardAccount(creditID, 1000, tt.available), nil
				},
				updateAvailableCreditFn: func(ctx context.Context, id ulid.ULID, value float64) error {
					persisted = &value
					return nil
				},
			}
			validator := &transaction.CardValidator{Credits: repo}

			_, err := validator.Validate(context.Background(), &transaction.Transaction{
				CreditID: creditID,
				Type:     transaction.TypeSpent,
				Amount:   tt.amount,
			})

			if tt.wantErrCode != "" {
				appErr, ok := appErrors.AsAppError(err)
				if !ok || appErr.Code != tt.wantErrCode {
					t.Fatalf("expected code %s, got %v", tt.wantErrCode, err)
				}
				if persisted != nil {
					t.Fatal("rejected transaction must not touch the balance")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if persisted == nil || *persisted != tt.wantAvailable {
				t.Fatalf("expected persisted available %v, got %v", tt.wantAvailable, persisted)
			}
		})
	}
}

func TestCardValidatorPayment(t *testing.T) {
	t.Parallel()

	creditID := ulid.Make()

	tests := []struct {
		name          string
		available     float64
		amount        float64
		wantErrCode   string
		wantAvailable float64
	}{
		{
			name:          "restores available credit",
			available:     700,
			amount:        200,
			wantAvailable: 900,
		},
		{
			name:          "payment up to the limit",
			available:     700,
			amount:        300,
			wantAvailable: 1000,
		},
		{
			name:        "payment exceeds limit",
			available:   900,
			amount:      200,
			wantErrCode: appErrors.ErrPaymentExceedsLimit.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var persisted *float64
			repo := &fakeCreditRepository{
				findByIDFn: func(ctx context.Context, id ulid.ULID) (*credit.CreditAccount, error) {
					return cardAccount(creditID, 1000, tt.available), nil
				},
				updateAvailableCreditFn: func(ctx context.Context, id ulid.ULID, value float64) error {
					persisted = &value
					return nil
				},
			}
			validator := &transaction.CardValidator{Credits: repo}

			_, err := validator.Validate(context.Background(), &transaction.Transaction{
				CreditID: creditID,
				Type:     transaction.TypePayment,
				Amount:   tt.amount,
			})

			if tt.wantErrCode != "" {
				appErr, ok := appErrors.AsAppError(err)
				if !ok || appErr.Code != tt.wantErrCode {
					t.Fatalf("expected code %s, got %v", tt.wantErrCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if persisted == nil || *persisted != tt.wantAvailable {
				t.Fatalf("expected persisted available %v, got %v", tt.wantAvailable, persisted)
			}
		})
	}
}

func TestCardValidatorRejectsUnknownType(t *testing.T) {
	t.Parallel()

	creditID := ulid.Make()
	repo := &fakeCreditRepository{
		findByIDFn: func(ctx context.Context, id ulid.ULID) (*credit.CreditAccount, error) {
			return cardAccount(creditID, 1000, 1000), nil
		},
	}
	validator := &transaction.CardValidator{Credits: repo}

	_, err := validator.Validate(context.Background(), &transaction.Transaction{
		CreditID: creditID,
		Type:     transaction.Type("REFUND"),
		Amount:   100,
	})
	if !errors.Is(err, appErrors.ErrInvalidTransactionType) {
		t.Fatalf("expected invalid transaction type, got %v", err)
	}
}

func TestSimpleValidator(t *testing.T) {
	t.Parallel()

	creditID := ulid.Make()

	tests := []struct {
		name        string
		txType      transaction.Type
		paid        float64
		amount      float64
		wantErrCode string
		wantPaid    float64
	}{
		{
			name:     "partial payment accumulates",
			txType:   transaction.TypePayment,
			paid:     500,
			amount:   300,
			wantPaid: 800,
		},
		{
			name:     "payment settles the credit",
			txType:   transaction.TypePayment,
			paid:     1500,
			amount:   500,
			wantPaid: 2000,
		},
		{
			name:        "spent not allowed",
			txType:      transaction.TypeSpent,
			paid:        0,
			amount:      100,
			wantErrCode: appErrors.ErrInvalidTransactionType.Code,
		},
		{
			name:        "payment exceeds total",
			txType:      transaction.TypePayment,
			paid:        1800,
			amount:      500,
			wantErrCode: appErrors.ErrPaymentExceedsTotal.Code,
		},
		{
			name:        "fully paid credit rejects payment",
			txType:      transaction.TypePayment,
			paid:        2000,
			amount:      100,
			wantErrCode: appErrors.ErrPaymentExceedsTotal.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var persisted *float64
			repo := &fakeCreditRepository{
				findByIDFn: func(ctx context.Context, id ulid.ULID) (*credit.CreditAccount, error) {
					return simpleAccount(creditID, 2000, tt.paid), nil
				},
				updateAmountPaidFn: func(ctx context.Context, id ulid.ULID, value float64) error {
					persisted = &value
					return nil
				},
			}
			validator := &transaction.SimpleValidator{Credits: repo}

			_, err := validator.Validate(context.Background(), &transaction.Transaction{
				CreditID: creditID,
				Type:     tt.txType,
				Amount:   tt.amount,
			})

			if tt.wantErrCode != "" {
				appErr, ok := appErrors.AsAppError(err)
				if !ok || appErr.Code != tt.wantErrCode {
					t.Fatalf("expected code %s, got %v", tt.wantErrCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if persisted == nil || *persisted != tt.wantPaid {
				t.Fatalf("expected persisted paid %v, got %v", tt.wantPaid, persisted)
			}
		})
	}
}

func TestSimpleValidatorRejectsNonSimpleAccount(t *testing.T) {
	t.Parallel()

	creditID := ulid.Make()
	repo := &fakeCreditRepository{
		findByIDFn: func(ctx context.Context, id ulid.ULID) (*credit.CreditAccount, error) {
			return cardAccount(creditID, 1000, 1000), nil
		},
	}
	validator := &transaction.SimpleValidator{Credits: repo}

	_, err := validator.Validate(context.Background(), &transaction.Transaction{
		CreditID: creditID,
		Type:     transaction.TypePayment,
		Amount:   100,
	})
	if !errors.Is(err, appErrors.ErrCreditNotFound) {
		t.Fatalf("expected credit not found, got %v", err)
	}
}

func TestSimpleValidatorStorageFailureBecomesValidationError(t *testing.T) {
	t.Parallel()

	creditID := ulid.Make()
	repo := &fakeCreditRepository{
		findByIDFn: func(ctx context.Context, id ulid.ULID) (*credit.CreditAccount, error) {
			return simpleAccount(creditID, 2000, 500), nil
		},
		updateAmountPaidFn: func(ctx context.Context, id ulid.ULID, value float64) error {
			return errors.New("conexão recusada")
		},
	}
	validator := &transaction.SimpleValidator{Credits: repo}

	_, err := validator.Validate(context.Background(), &transaction.Transaction{
		CreditID: creditID,
		Type:     transaction.TypePayment,
		Amount:   300,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "conexão recusada") {
		t.Fatalf("expected underlying message preserved, got %q", appErr.Message)
	}
}

func TestValidatorRegistry(t *testing.T) {
	t.Parallel()

	registry := transaction.NewValidatorRegistry(&fakeCreditRepository{})

	if _, err := registry.For(credit.TypeCreditCard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := registry.For(credit.TypeSimpleCredit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := registry.For(credit.Type("MORTGAGE")); !errors.Is(err, appErrors.ErrUnsupportedAccountType) {
		t.Fatalf("expected unsupported account type, got %v", err)
	}
}
