package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Type string

const (
	TypeSpent   Type = "SPENT"
	TypePayment Type = "PAYMENT"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeSpent, TypePayment:
		return true
	}
	return false
}

// Transaction é um fato imutável do razão: depois de criada nunca é
// alterada nem removida. A data é carimbada pelo servidor na liquidação.
type Transaction struct {
	TransactionID ulid.ULID `json:"transactionId"`
	CreditID      ulid.ULID `json:"creditId"`
	Type          Type      `json:"type"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
}
