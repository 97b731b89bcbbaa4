package transaction

import (
	"context"

	"Credify/internal/domain/credit"
	appErrors "Credify/internal/errors"
)

// Validator verifica uma transação candidata contra o estado atual da conta
// e, quando aceita, grava o novo saldo como efeito colateral da validação.
type Validator interface {
	Validate(ctx context.Context, tx *Transaction) (*Transaction, error)
}

// CardValidator liquida transações de cartão de crédito.
// SPENT debita o crédito disponível; PAYMENT devolve saldo até o limite.
type CardValidator struct {
	Credits credit.Repository
}

func (v *CardValidator) Validate(ctx context.Context, tx *Transaction) (*Transaction, error) {
	account, err := v.Credits.FindByID(ctx, tx.CreditID)
	if err != nil {
		return nil, appErrors.ErrCreditNotFound.WithError(err)
	}

	available := 0.0
	if account.AvailableCredit != nil {
		available = *account.AvailableCredit
	}

	switch tx.Type {
	case TypeSpent:
		newAvailable := available - tx.Amount
		if newAvailable < 0 {
			return nil, appErrors.ErrInsufficientCredit
		}
		if err := v.Credits.UpdateAvailableCredit(ctx, account.CreditID, newAvailable); err != nil {
			return nil, appErrors.NewDatabaseError(err)
		}
		return tx, nil

	case TypePayment:
		newAvailable := available + tx.Amount
		if newAvailable > account.Amount {
			return nil, appErrors.ErrPaymentExceedsLimit
		}
		if err := v.Credits.UpdateAvailableCredit(ctx, account.CreditID, newAvailable); err != nil {
			return nil, appErrors.NewDatabaseError(err)
		}
		return tx, nil
	}

	return nil, appErrors.ErrInvalidTransactionType
}

// SimpleValidator liquida pagamentos de crédito simples. Nenhum outro tipo
// de transação é aceito, e um crédito totalmente quitado rejeita novos
// pagamentos.
type SimpleValidator struct {
	Credits credit.Repository
}

func (v *SimpleValidator) Validate(ctx context.Context, tx *Transaction) (*Transaction, error) {
	if tx.Type != TypePayment {
		return nil, appErrors.ErrInvalidTransactionType.WithDetails(map[string]interface{}{
			"reason": "apenas transações de tipo PAYMENT são permitidas para um crédito simples",
		})
	}

	account, err := v.Credits.FindByID(ctx, tx.CreditID)
	if err != nil || account.Type != credit.TypeSimpleCredit {
		return nil, appErrors.ErrCreditNotFound.WithError(err)
	}

	paid := 0.0
	if account.AmountPaid != nil {
		paid = *account.AmountPaid
	}

	newPaid := paid + tx.Amount
	if newPaid > account.Amount {
		return nil, appErrors.ErrPaymentExceedsTotal
	}
	if paid == account.Amount {
		return nil, appErrors.ErrPaymentExceedsTotal.WithDetails(map[string]interface{}{
			"reason": "o crédito já está pago em sua totalidade",
		})
	}

	if err := v.Credits.UpdateAmountPaid(ctx, account.CreditID, newPaid); err != nil {
		// Falha de gravação é devolvida ao chamador como erro de validação,
		// carregando a mensagem original do banco.
		return nil, appErrors.NewValidationError("amountPaid", "Erro ao atualizar o crédito: "+err.Error())
	}

	return tx, nil
}

// ValidatorRegistry resolve o validador pelo tipo PERSISTIDO da conta,
// nunca pelo payload da transação.
type ValidatorRegistry struct {
	validators map[credit.Type]Validator
}

func NewValidatorRegistry(credits credit.Repository) *ValidatorRegistry {
	return &ValidatorRegistry{
		validators: map[credit.Type]Validator{
			credit.TypeCreditCard:   &CardValidator{Credits: credits},
			credit.TypeSimpleCredit: &SimpleValidator{Credits: credits},
		},
	}
}

func (r *ValidatorRegistry) For(accountType credit.Type) (Validator, error) {
	validator, ok := r.validators[accountType]
	if !ok {
		return nil, appErrors.ErrUnsupportedAccountType.WithDetails(map[string]interface{}{
			"type": string(accountType),
		})
	}
	return validator, nil
}
