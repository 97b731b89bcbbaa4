package routes

import (
	"net/http"
	"time"

	"Credify/internal/contracts"
	appErrors "Credify/internal/errors"
	"Credify/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SalarySummary(c *gin.Context) {
	customerID := c.Param("customerId")
	if customerID == "" {
		h.respondError(c, appErrors.NewValidationError("customerId", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	resumes, err := h.ReportService.AverageBalanceForCustomer(ctx, customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resumes)
}

func (h *Handler) SalarySummaryPeriod(c *gin.Context) {
	var body contracts.SalarySummaryPeriodRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	creditID, err := pkg.ParseULID(body.CreditID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("creditId", "formato inválido"))
		return
	}

	start, err := time.Parse("2006-01-02", body.StartDate)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("startDate", "use o formato AAAA-MM-DD"))
		return
	}
	end, err := time.Parse("2006-01-02", body.EndDate)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("endDate", "use o formato AAAA-MM-DD"))
		return
	}

	ctx := c.Request.Context()
	resume, err := h.ReportService.AverageBalanceForPeriod(ctx, creditID, start, end)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *Handler) LastTransactionsReport(c *gin.Context) {
	creditID, err := pkg.ParseULID(c.Param("creditId"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("creditId", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	report, err := h.ReportService.LastTenTransactions(ctx, creditID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
