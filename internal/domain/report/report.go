package report

import (
	"time"

	"Credify/internal/domain/credit"
	"Credify/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
)

// CreditResume resume o saldo médio diário de um crédito no período.
type CreditResume struct {
	CreditID       ulid.ULID   `json:"creditId"`
	Type           credit.Type `json:"type"`
	AverageBalance float64     `json:"averageBalance"`
}

// TransactionReport lista as últimas movimentações de um crédito.
type TransactionReport struct {
	CreditID         ulid.ULID                  `json:"creditId"`
	CardNumber       string                     `json:"cardNumber,omitempty"`
	Transactions     []*transaction.Transaction `json:"transactions"`
	TransactionCount int                        `json:"transactionCount"`
	GenerationDate   time.Time                  `json:"generationDate"`
}
