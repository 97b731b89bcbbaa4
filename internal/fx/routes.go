package fx

import (
	"time"

	"Credify/internal/domain/credit"
	"Credify/internal/domain/report"
	"Credify/internal/domain/transaction"
	"Credify/internal/middleware"
	"Credify/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece handlers e rate limiters
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(
	creditSvc *credit.Service,
	transactionSvc *transaction.Service,
	reportSvc *report.Service,
) *routes.Handler {
	return &routes.Handler{
		CreditService:      creditSvc,
		TransactionService: transactionSvc,
		ReportService:      reportSvc,
	}
}

func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
