package routes

import (
	"net/http"

	"Credify/internal/contracts"
	appErrors "Credify/internal/errors"
	"Credify/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCredit(c *gin.Context) {
	var body contracts.CreditCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	account, err := h.CreditService.Create(ctx, body.ToDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CreditCreateResponse{
		Message: "Crédito criado com sucesso",
		Credit:  account,
	})
}

func (h *Handler) ListCredits(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	accounts, total, err := h.CreditService.GetAll(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(accounts, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetCredit(c *gin.Context) {
	creditID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	account, err := h.CreditService.GetByID(ctx, creditID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CreditSingleResponse{Credit: account})
}

func (h *Handler) UpdateCredit(c *gin.Context) {
	creditID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.CreditUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	account, err := h.CreditService.Update(ctx, creditID, body.ToDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CreditCreateResponse{
		Message: "Crédito atualizado com sucesso",
		Credit:  account,
	})
}

func (h *Handler) DeleteCredit(c *gin.Context) {
	creditID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.CreditService.Delete(ctx, creditID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Crédito removido com sucesso"})
}

func (h *Handler) HasCreditCard(c *gin.Context) {
	customerID := c.Param("customerId")
	if customerID == "" {
		h.respondError(c, appErrors.NewValidationError("customerId", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	hasCard, err := h.CreditService.HasCreditCard(ctx, customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.HasCreditCardResponse{
		CustomerID:    customerID,
		HasCreditCard: hasCard,
	})
}
