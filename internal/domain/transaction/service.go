package transaction

import (
	"context"
	"time"

	"Credify/internal/domain/credit"
	appErrors "Credify/internal/errors"
	"Credify/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
	Credits    credit.Repository
	Validators *ValidatorRegistry
}

// CreateTransaction liquida uma transação: carimba a data, valida contra o
// estado atual da conta (o validador grava o novo saldo) e persiste o fato.
//
// A sequência ler-saldo/gravar-saldo não é atômica: liquidações concorrentes
// sobre o mesmo crédito podem perder uma atualização.
func (s *Service) CreateTransaction(ctx context.Context, tx *Transaction) (*Transaction, error) {
	if tx.Amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "O valor deve ser maior que zero")
	}

	tx.Date = time.Now()

	account, err := s.Credits.FindByID(ctx, tx.CreditID)
	if err != nil {
		return nil, appErrors.ErrCreditNotFound.WithError(err)
	}

	validator, err := s.Validators.For(account.Type)
	if err != nil {
		return nil, err
	}

	if _, err := validator.Validate(ctx, tx); err != nil {
		return nil, err
	}

	tx.TransactionID = pkg.GenerateULIDObject()

	saved, err := s.Repository.Save(ctx, tx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return saved, nil
}

func (s *Service) GetAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	transactions, total, err := s.Repository.FindAll(ctx, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return transactions, total, nil
}

func (s *Service) GetByCreditID(ctx context.Context, creditID ulid.ULID) ([]*Transaction, error) {
	transactions, err := s.Repository.FindByCreditID(ctx, creditID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return transactions, nil
}
