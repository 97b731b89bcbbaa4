package fx

import (
	"Credify/internal/domain/credit"
	"Credify/internal/domain/report"
	"Credify/internal/domain/transaction"
	"Credify/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newStrategyRegistry,
		newValidatorRegistry,
		newCreditService,
		newTransactionService,
		newReportService,
	),
)

func newStrategyRegistry(repo *infrastructure.CreditRepository) *credit.StrategyRegistry {
	return credit.NewStrategyRegistry(repo)
}

func newValidatorRegistry(repo *infrastructure.CreditRepository) *transaction.ValidatorRegistry {
	return transaction.NewValidatorRegistry(repo)
}

func newCreditService(
	repo *infrastructure.CreditRepository,
	strategies *credit.StrategyRegistry,
) *credit.Service {
	return &credit.Service{
		Repository: repo,
		Strategies: strategies,
	}
}

func newTransactionService(
	repo *infrastructure.TransactionRepository,
	creditRepo *infrastructure.CreditRepository,
	validators *transaction.ValidatorRegistry,
) *transaction.Service {
	return &transaction.Service{
		Repository: repo,
		Credits:    creditRepo,
		Validators: validators,
	}
}

func newReportService(
	creditRepo *infrastructure.CreditRepository,
	transactionRepo *infrastructure.TransactionRepository,
) *report.Service {
	return &report.Service{
		Credits:      creditRepo,
		Transactions: transactionRepo,
	}
}
