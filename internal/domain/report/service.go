package report

import (
	"context"
	"math"
	"sort"
	"time"

	"Credify/internal/domain/credit"
	"Credify/internal/domain/transaction"
	appErrors "Credify/internal/errors"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Credits      credit.Repository
	Transactions transaction.Repository
}

// AverageBalanceForPeriod reexecuta o histórico dia a dia no intervalo
// fechado [start, end], partindo do valor nominal do crédito, e devolve a
// média dos saldos de fechamento arredondada a duas casas.
func (s *Service) AverageBalanceForPeriod(ctx context.Context, creditID ulid.ULID, start, end time.Time) (*CreditResume, error) {
	if end.Before(start) {
		return nil, appErrors.NewValidationError("endDate", "A data final deve ser posterior à data inicial")
	}

	account, err := s.Credits.FindByID(ctx, creditID)
	if err != nil {
		return nil, appErrors.ErrReportGeneration.WithError(appErrors.ErrCreditNotFound.WithError(err))
	}

	transactions, err := s.Transactions.FindByCreditIDAndDateBetween(ctx, creditID, start, end)
	if err != nil {
		return nil, appErrors.ErrReportGeneration.WithError(err)
	}

	return &CreditResume{
		CreditID:       account.CreditID,
		Type:           account.Type,
		AverageBalance: averageBalance(account.Amount, transactions, start, end),
	}, nil
}

// AverageBalanceForCustomer gera o resumo de saldo médio do mês corrente
// para cada crédito do cliente.
func (s *Service) AverageBalanceForCustomer(ctx context.Context, customerID string) ([]*CreditResume, error) {
	accounts, err := s.Credits.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, appErrors.ErrReportGeneration.WithError(err)
	}
	if len(accounts) == 0 {
		return nil, appErrors.ErrReportGeneration.WithError(appErrors.ErrCreditNotFound)
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)

	resumes := make([]*CreditResume, 0, len(accounts))
	for _, account := range accounts {
		transactions, err := s.Transactions.FindByCreditIDAndDateBetween(ctx, account.CreditID, start, end)
		if err != nil {
			return nil, appErrors.ErrReportGeneration.WithError(err)
		}

		resumes = append(resumes, &CreditResume{
			CreditID:       account.CreditID,
			Type:           account.Type,
			AverageBalance: averageBalance(account.Amount, transactions, start, end),
		})
	}

	return resumes, nil
}

// LastTenTransactions devolve as dez movimentações mais recentes do crédito,
// ordenadas por data decrescente.
func (s *Service) LastTenTransactions(ctx context.Context, creditID ulid.ULID) (*TransactionReport, error) {
	account, err := s.Credits.FindByID(ctx, creditID)
	if err != nil {
		return nil, appErrors.ErrCreditNotFound.WithError(err)
	}

	transactions, err := s.Transactions.FindByCreditID(ctx, creditID)
	if err != nil {
		return nil, appErrors.ErrReportGeneration.WithError(err)
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	if len(transactions) > 10 {
		transactions = transactions[:10]
	}

	return &TransactionReport{
		CreditID:         account.CreditID,
		CardNumber:       account.CardNumber,
		Transactions:     transactions,
		TransactionCount: len(transactions),
		GenerationDate:   time.Now(),
	}, nil
}

// averageBalance percorre cada dia do intervalo fechado, aplica as
// transações do dia sobre o saldo corrente e soma o saldo de fechamento.
func averageBalance(initialBalance float64, transactions []*transaction.Transaction, start, end time.Time) float64 {
	dailyBalance := initialBalance
	sumOfBalances := 0.0
	days := 0

	current := truncateToDay(start)
	last := truncateToDay(end)

	for !current.After(last) {
		for _, tx := range transactions {
			if sameDay(tx.Date, current) {
				dailyBalance = DailyBalance(dailyBalance, tx)
			}
		}
		sumOfBalances += dailyBalance
		days++
		current = current.AddDate(0, 0, 1)
	}

	return roundHalfUp(sumOfBalances / float64(days))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func roundHalfUp(value float64) float64 {
	return math.Floor(value*100+0.5) / 100
}
