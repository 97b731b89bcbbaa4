package infrastructure

import (
	"context"
	"time"

	"Credify/internal/domain/transaction"
	"Credify/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

type transactionRow struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	CreditId  string    `gorm:"type:varchar(26);index;not null"`
	Type      string    `gorm:"type:varchar(20);not null"`
	Amount    float64   `gorm:"type:decimal(15,2);not null"`
	Date      time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (transactionRow) TableName() string {
	return "credit_transactions"
}

func toDomainTransaction(row *transactionRow) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(row.Id)
	if err != nil {
		return nil, err
	}
	creditID, err := pkg.ParseULID(row.CreditId)
	if err != nil {
		return nil, err
	}

	return &transaction.Transaction{
		TransactionID: id,
		CreditID:      creditID,
		Type:          transaction.Type(row.Type),
		Amount:        row.Amount,
		Date:          row.Date,
	}, nil
}

func toRowTransaction(tx *transaction.Transaction) *transactionRow {
	return &transactionRow{
		Id:       tx.TransactionID.String(),
		CreditId: tx.CreditID.String(),
		Type:     string(tx.Type),
		Amount:   tx.Amount,
		Date:     tx.Date,
	}
}

func (r *TransactionRepository) Save(ctx context.Context, tx *transaction.Transaction) (*transaction.Transaction, error) {
	row := toRowTransaction(tx)
	if err := r.DB.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return toDomainTransaction(row)
}

func (r *TransactionRepository) FindAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	query := r.DB.WithContext(ctx).Model(&transactionRow{})
	return pkg.Paginate(query, pagination, "date DESC", func(row *transactionRow) (*transaction.Transaction, error) {
		return toDomainTransaction(row)
	})
}

func (r *TransactionRepository) FindByCreditID(ctx context.Context, creditID ulid.ULID) ([]*transaction.Transaction, error) {
	var rows []transactionRow
	err := r.DB.WithContext(ctx).
		Where("credit_id = ?", creditID.String()).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransactions(rows)
}

func (r *TransactionRepository) FindByCreditIDAndDateBetween(ctx context.Context, creditID ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
	var rows []transactionRow
	err := r.DB.WithContext(ctx).
		Where("credit_id = ? AND date BETWEEN ? AND ?", creditID.String(), start, end).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransactions(rows)
}

func toDomainTransactions(rows []transactionRow) ([]*transaction.Transaction, error) {
	transactions := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		tx, err := toDomainTransaction(&rows[i])
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}
