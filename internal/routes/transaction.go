package routes

import (
	"net/http"

	"Credify/internal/contracts"
	"Credify/internal/domain/transaction"
	appErrors "Credify/internal/errors"
	"Credify/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	var body contracts.TransactionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	creditID, err := pkg.ParseULID(body.CreditID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("creditId", "formato inválido"))
		return
	}

	tx := &transaction.Transaction{
		CreditID: creditID,
		Type:     transaction.Type(body.Type),
		Amount:   body.Amount,
	}

	ctx := c.Request.Context()
	saved, err := h.TransactionService.CreateTransaction(ctx, tx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Transação registrada com sucesso",
		Transaction: saved,
	})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.GetAll(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(transactions, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) ListTransactionsByCredit(c *gin.Context) {
	creditID, err := pkg.ParseULID(c.Param("creditId"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("creditId", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	transactions, err := h.TransactionService.GetByCreditID(ctx, creditID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
	})
}
