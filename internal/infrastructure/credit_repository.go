package infrastructure

import (
	"context"
	"time"

	"Credify/internal/domain/credit"
	"Credify/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type CreditRepository struct {
	DB *gorm.DB
}

type creditRow struct {
	Id              string    `gorm:"type:varchar(26);primaryKey"`
	CustomerId      string    `gorm:"type:varchar(64);index;not null"`
	CustomerType    string    `gorm:"type:varchar(20);not null"`
	Type            string    `gorm:"type:varchar(20);not null"`
	Amount          float64   `gorm:"type:decimal(15,2);not null"`
	CardNumber      *string   `gorm:"type:varchar(30)"`
	AvailableCredit *float64  `gorm:"type:decimal(15,2)"`
	AmountPaid      *float64  `gorm:"type:decimal(15,2)"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

func (creditRow) TableName() string {
	return "credits"
}

func toDomainCredit(row *creditRow) (*credit.CreditAccount, error) {
	id, err := pkg.ParseULID(row.Id)
	if err != nil {
		return nil, err
	}

	account := &credit.CreditAccount{
		CreditID:        id,
		CustomerID:      row.CustomerId,
		CustomerType:    credit.CustomerType(row.CustomerType),
		Type:            credit.Type(row.Type),
		Amount:          row.Amount,
		AvailableCredit: row.AvailableCredit,
		AmountPaid:      row.AmountPaid,
	}
	if row.CardNumber != nil {
		account.CardNumber = *row.CardNumber
	}
	account.NormalizeVariant()
	return account, nil
}

func toRowCredit(account *credit.CreditAccount) *creditRow {
	row := &creditRow{
		Id:              account.CreditID.String(),
		CustomerId:      account.CustomerID,
		CustomerType:    string(account.CustomerType),
		Type:            string(account.Type),
		Amount:          account.Amount,
		AvailableCredit: account.AvailableCredit,
		AmountPaid:      account.AmountPaid,
	}
	if account.CardNumber != "" {
		cardNumber := account.CardNumber
		row.CardNumber = &cardNumber
	}
	return row
}

func (r *CreditRepository) Save(ctx context.Context, account *credit.CreditAccount) (*credit.CreditAccount, error) {
	row := toRowCredit(account)
	if err := r.DB.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return toDomainCredit(row)
}

func (r *CreditRepository) FindByID(ctx context.Context, creditID ulid.ULID) (*credit.CreditAccount, error) {
	var row creditRow
	err := r.DB.WithContext(ctx).Where("id = ?", creditID.String()).First(&row).Error
	if err != nil {
		return nil, err
	}
	return toDomainCredit(&row)
}

func (r *CreditRepository) FindAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*credit.CreditAccount, int64, error) {
	query := r.DB.WithContext(ctx).Model(&creditRow{})
	return pkg.Paginate(query, pagination, "created_at DESC", func(row *creditRow) (*credit.CreditAccount, error) {
		return toDomainCredit(row)
	})
}

func (r *CreditRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*credit.CreditAccount, error) {
	var rows []creditRow
	err := r.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	accounts := make([]*credit.CreditAccount, 0, len(rows))
	for i := range rows {
		account, err := toDomainCredit(&rows[i])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (r *CreditRepository) DeleteByID(ctx context.Context, creditID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ?", creditID.String()).Delete(&creditRow{}).Error
}

func (r *CreditRepository) UpdateAvailableCredit(ctx context.Context, creditID ulid.ULID, value float64) error {
	return r.DB.WithContext(ctx).Model(&creditRow{}).
		Where("id = ?", creditID.String()).
		Update("available_credit", value).Error
}

func (r *CreditRepository) UpdateAmountPaid(ctx context.Context, creditID ulid.ULID, value float64) error {
	return r.DB.WithContext(ctx).Model(&creditRow{}).
		Where("id = ?", creditID.String()).
		Update("amount_paid", value).Error
}
