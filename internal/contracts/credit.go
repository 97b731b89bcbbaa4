package contracts

import (
	"Credify/internal/domain/credit"
)

type CreditCreateRequest struct {
	CustomerID      string   `json:"customerId" binding:"required"`
	CustomerType    string   `json:"customerType" binding:"required,oneof=PERSONAL BUSINESS"`
	Type            string   `json:"type" binding:"required,oneof=CREDIT_CARD SIMPLE_CREDIT"`
	Amount          float64  `json:"amount" binding:"required,gt=0"`
	CardNumber      string   `json:"cardNumber" binding:"omitempty,max=30"`
	AvailableCredit *float64 `json:"availableCredit" binding:"omitempty,gte=0"`
	AmountPaid      *float64 `json:"amountPaid" binding:"omitempty,gte=0"`
}

func (r *CreditCreateRequest) ToDomain() *credit.CreditAccount {
	return &credit.CreditAccount{
		CustomerID:      r.CustomerID,
		CustomerType:    credit.CustomerType(r.CustomerType),
		Type:            credit.Type(r.Type),
		Amount:          r.Amount,
		CardNumber:      r.CardNumber,
		AvailableCredit: r.AvailableCredit,
		AmountPaid:      r.AmountPaid,
	}
}

type CreditUpdateRequest struct {
	CustomerID      string   `json:"customerId" binding:"required"`
	CustomerType    string   `json:"customerType" binding:"required,oneof=PERSONAL BUSINESS"`
	Type            string   `json:"type" binding:"required,oneof=CREDIT_CARD SIMPLE_CREDIT"`
	Amount          float64  `json:"amount" binding:"required,gt=0"`
	CardNumber      string   `json:"cardNumber" binding:"omitempty,max=30"`
	AvailableCredit *float64 `json:"availableCredit" binding:"omitempty,gte=0"`
	AmountPaid      *float64 `json:"amountPaid" binding:"omitempty,gte=0"`
}

func (r *CreditUpdateRequest) ToDomain() *credit.CreditAccount {
	return &credit.CreditAccount{
		CustomerID:      r.CustomerID,
		CustomerType:    credit.CustomerType(r.CustomerType),
		Type:            credit.Type(r.Type),
		Amount:          r.Amount,
		CardNumber:      r.CardNumber,
		AvailableCredit: r.AvailableCredit,
		AmountPaid:      r.AmountPaid,
	}
}

type CreditCreateResponse struct {
	Message string                `json:"message"`
	Credit  *credit.CreditAccount `json:"credit"`
}

type CreditSingleResponse struct {
	Credit *credit.CreditAccount `json:"credit"`
}

type HasCreditCardResponse struct {
	CustomerID    string `json:"customerId"`
	HasCreditCard bool   `json:"hasCreditCard"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
