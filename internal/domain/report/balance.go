package report

import (
	"Credify/internal/domain/transaction"
)

// DailyBalance aplica uma transação ao saldo corrente do dia.
// Um PAYMENT zera a contribuição do dia (amount - amount); um SPENT soma o
// valor ao saldo; qualquer outro caso mantém o saldo.
func DailyBalance(current float64, tx *transaction.Transaction) float64 {
	switch tx.Type {
	case transaction.TypePayment:
		return tx.Amount - tx.Amount
	case transaction.TypeSpent:
		return current + tx.Amount
	}
	return current
}
