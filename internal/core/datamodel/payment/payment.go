package payment

import (
	"encoding/json"
	"time"
)

const (
	StatusPending   = "pending"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Payment is one payment attempt against the gateway, keyed by the
// caller-generated transaction id. Status only ever moves away from
// pending through a gateway callback.
type Payment struct {
	ID             int64           `gorm:"primaryKey"`
	TxnID          string          `gorm:"column:txnid;not null;uniqueIndex"`
	Name           string          `gorm:"column:name;not null"`
	Email          string          `gorm:"column:email;not null"`
	Phone          string          `gorm:"column:phone;not null"`
	Whatsapp       *string         `gorm:"column:whatsapp"`
	Amount         float64         `gorm:"column:amount;not null"`
	FormType       string          `gorm:"column:form_type;not null"`
	Status         string          `gorm:"column:status;default:pending"`
	PaymentDetails json.RawMessage `gorm:"column:payment_details;type:jsonb"`
	CreatedAt      time.Time       `gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;default:now()"`
}

func (p *Payment) IsTerminal() bool {
	return p.Status == StatusSucceeded || p.Status == StatusFailed
}
