package credit

import (
	"context"

	appErrors "Credify/internal/errors"
	"Credify/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
	Strategies *StrategyRegistry
}

// Create normaliza o crédito via estratégia do segmento e persiste.
// O CreditID é sempre gerado no servidor.
func (s *Service) Create(ctx context.Context, account *CreditAccount) (*CreditAccount, error) {
	if account.CustomerType == "" {
		return nil, appErrors.ErrMissingCustomerType
	}

	strategy, err := s.Strategies.CreationFor(account.CustomerType)
	if err != nil {
		return nil, err
	}

	normalized, err := strategy.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	normalized.CreditID = pkg.GenerateULIDObject()
	normalized.NormalizeVariant()

	saved, err := s.Repository.Save(ctx, normalized)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return saved, nil
}

// Update substitui integralmente o crédito armazenado pelo objeto recebido,
// após a normalização da estratégia do segmento. Não há merge campo a campo.
func (s *Service) Update(ctx context.Context, creditID ulid.ULID, account *CreditAccount) (*CreditAccount, error) {
	if account.CustomerType == "" {
		return nil, appErrors.ErrMissingCustomerType
	}

	if _, err := s.Repository.FindByID(ctx, creditID); err != nil {
		return nil, appErrors.ErrCreditNotFound.WithError(err)
	}

	strategy, err := s.Strategies.UpdateFor(account.CustomerType)
	if err != nil {
		return nil, err
	}

	normalized, err := strategy.Update(ctx, account)
	if err != nil {
		return nil, err
	}

	normalized.CreditID = creditID
	normalized.NormalizeVariant()

	saved, err := s.Repository.Save(ctx, normalized)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return saved, nil
}

func (s *Service) GetByID(ctx context.Context, creditID ulid.ULID) (*CreditAccount, error) {
	account, err := s.Repository.FindByID(ctx, creditID)
	if err != nil {
		return nil, appErrors.ErrCreditNotFound.WithError(err)
	}
	return account, nil
}

func (s *Service) GetAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*CreditAccount, int64, error) {
	accounts, total, err := s.Repository.FindAll(ctx, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return accounts, total, nil
}

func (s *Service) Delete(ctx context.Context, creditID ulid.ULID) error {
	if _, err := s.Repository.FindByID(ctx, creditID); err != nil {
		return appErrors.ErrCreditNotFound.WithError(err)
	}

	if err := s.Repository.DeleteByID(ctx, creditID); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

// HasCreditCard informa se o cliente possui ao menos um cartão de crédito.
func (s *Service) HasCreditCard(ctx context.Context, customerID string) (bool, error) {
	accounts, err := s.Repository.FindByCustomerID(ctx, customerID)
	if err != nil {
		return false, appErrors.NewDatabaseError(err)
	}

	for _, account := range accounts {
		if account.Type == TypeCreditCard {
			return true, nil
		}
	}
	return false, nil
}
