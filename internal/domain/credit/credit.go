package credit

import (
	"github.com/oklog/ulid/v2"
)

type Type string

const (
	TypeCreditCard   Type = "CREDIT_CARD"
	TypeSimpleCredit Type = "SIMPLE_CREDIT"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeCreditCard, TypeSimpleCredit:
		return true
	}
	return false
}

type CustomerType string

const (
	CustomerPersonal CustomerType = "PERSONAL"
	CustomerBusiness CustomerType = "BUSINESS"
)

func (t CustomerType) IsValid() bool {
	switch t {
	case CustomerPersonal, CustomerBusiness:
		return true
	}
	return false
}

// CreditAccount é a união etiquetada dos dois produtos de crédito.
// O campo Type seleciona qual conjunto de campos variante é válido:
// CardNumber/AvailableCredit para CREDIT_CARD, AmountPaid para SIMPLE_CREDIT.
// AvailableCredit e AmountPaid são ponteiros para distinguir "não informado"
// de zero; as estratégias de criação aplicam os defaults documentados.
type CreditAccount struct {
	CreditID     ulid.ULID    `json:"creditId"`
	CustomerID   string       `json:"customerId"`
	CustomerType CustomerType `json:"customerType"`
	Type         Type         `json:"type"`
	Amount       float64      `json:"amount"`

	CardNumber      string   `json:"cardNumber,omitempty"`
	AvailableCredit *float64 `json:"availableCredit,omitempty"`
	AmountPaid      *float64 `json:"amountPaid,omitempty"`
}

// NormalizeVariant zera os campos da variante que não corresponde ao Type.
func (c *CreditAccount) NormalizeVariant() {
	switch c.Type {
	case TypeCreditCard:
		c.AmountPaid = nil
	case TypeSimpleCredit:
		c.CardNumber = ""
		c.AvailableCredit = nil
	}
}
