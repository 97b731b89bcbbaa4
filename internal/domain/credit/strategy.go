package credit

import (
	"context"

	appErrors "Credify/internal/errors"
)

// CreationStrategy normaliza e valida um crédito novo para um segmento de cliente.
type CreationStrategy interface {
	Create(ctx context.Context, account *CreditAccount) (*CreditAccount, error)
}

// UpdateStrategy normaliza um crédito existente antes da substituição completa.
type UpdateStrategy interface {
	Update(ctx context.Context, account *CreditAccount) (*CreditAccount, error)
}

type PersonalCreationStrategy struct {
	Repository Repository
}

func (s *PersonalCreationStrategy) Create(ctx context.Context, account *CreditAccount) (*CreditAccount, error) {
	if account.CustomerType != CustomerPersonal {
		return nil, appErrors.ErrInvalidSegment
	}

	switch account.Type {
	case TypeCreditCard:
		if account.AvailableCredit == nil {
			available := account.Amount
			account.AvailableCredit = &available
		}
		return account, nil

	case TypeSimpleCredit:
		if account.AmountPaid == nil {
			paid := 0.0
			account.AmountPaid = &paid
		}

		// Cliente pessoal só pode manter um crédito simples ativo por vez.
		existing, err := s.Repository.FindByCustomerID(ctx, account.CustomerID)
		if err != nil {
			return nil, appErrors.NewDatabaseError(err)
		}
		for _, other := range existing {
			if other.Type == TypeSimpleCredit {
				return nil, appErrors.ErrDuplicateActiveCredit
			}
		}
		return account, nil
	}

	return nil, appErrors.ErrUnsupportedCreditType
}

type BusinessCreationStrategy struct{}

func (s *BusinessCreationStrategy) Create(ctx context.Context, account *CreditAccount) (*CreditAccount, error) {
	if account.CustomerType != CustomerBusiness {
		return nil, appErrors.ErrInvalidSegment
	}

	switch account.Type {
	case TypeCreditCard:
		if account.AvailableCredit == nil {
			available := account.Amount
			account.AvailableCredit = &available
		}
	case TypeSimpleCredit:
		if account.AmountPaid == nil {
			paid := 0.0
			account.AmountPaid = &paid
		}
	}

	return account, nil
}

type PersonalUpdateStrategy struct{}

func (s *PersonalUpdateStrategy) Update(ctx context.Context, account *CreditAccount) (*CreditAccount, error) {
	if account.CustomerType != CustomerPersonal {
		return nil, appErrors.ErrInvalidSegment
	}

	switch account.Type {
	case TypeCreditCard:
		// Backfill apenas quando o saldo nunca foi inicializado.
		if account.AvailableCredit == nil {
			available := account.Amount
			account.AvailableCredit = &available
		}
		return account, nil

	case TypeSimpleCredit:
		// AmountPaid só muda via liquidação de transações, nunca por aqui.
		return account, nil
	}

	return nil, appErrors.ErrUnsupportedCreditType
}

type BusinessUpdateStrategy struct{}

func (s *BusinessUpdateStrategy) Update(ctx context.Context, account *CreditAccount) (*CreditAccount, error) {
	if account.CustomerType != CustomerBusiness {
		return nil, appErrors.ErrInvalidSegment
	}

	return account, nil
}
