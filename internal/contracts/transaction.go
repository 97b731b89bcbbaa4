package contracts

import (
	"Credify/internal/domain/transaction"
)

type TransactionCreateRequest struct {
	CreditID string  `json:"creditId" binding:"required"`
	Type     string  `json:"type" binding:"required,oneof=SPENT PAYMENT"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

type TransactionCreateResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionListResponse struct {
	Transactions []*transaction.Transaction `json:"transactions"`
	Total        int                        `json:"total"`
}
