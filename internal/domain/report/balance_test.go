package report_test

import (
	"testing"

	"Credify/internal/domain/report"
	"Credify/internal/domain/transaction"
)

func TestDailyBalance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current float64
		txType  transaction.Type
		amount  float64
		want    float64
	}{
		{
			name:    "spent adds to balance",
			current: 1000,
			txType:  transaction.TypeSpent,
			amount:  200,
			want:    1200,
		},
		{
			name:    "payment resets the day",
			current: 1200,
			txType:  transaction.TypePayment,
			amount:  300,
			want:    0,
		},
		{
			name:    "unknown type keeps balance",
			current: 1000,
			txType:  transaction.Type("REFUND"),
			amount:  50,
			want:    1000,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := report.DailyBalance(tt.current, &transaction.Transaction{
				Type:   tt.txType,
				Amount: tt.amount,
			})
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
