package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	internal "github.com/tradingwalla/backend/internal"
	paymentmodel "github.com/tradingwalla/backend/internal/core/datamodel/payment"
	paymentpkg "github.com/tradingwalla/backend/internal/payment"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) paymentpkg.RepositoryAPI {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *paymentmodel.Payment) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrDuplicateTxnID
		}
		return err
	}
	return nil
}

func (r *PaymentRepository) GetByTxnID(ctx context.Context, txnid string) (*paymentmodel.Payment, error) {
	var p paymentmodel.Payment
	err := r.db.WithContext(ctx).Where("txnid = ?", txnid).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, txnid, status string, details json.RawMessage) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if details != nil {
		updates["payment_details"] = details
	}

	return r.db.WithContext(ctx).
		Model(&paymentmodel.Payment{}).
		Where("txnid = ?", txnid).
		Updates(updates).Error
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]*paymentmodel.Payment, error) {
	var payments []*paymentmodel.Payment
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&payments).Error
	return payments, err
}
