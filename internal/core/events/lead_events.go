package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypePaymentCompleted = "payment.completed"
	EventTypePaymentFailed    = "payment.failed"
	EventTypeContactSubmitted = "contact.submitted"
)

type PaymentCompletedEvent struct {
	BaseEvent
	TxnID         string  `json:"txnid"`
	Amount        float64 `json:"amount"`
	Email         string  `json:"email"`
	FormType      string  `json:"form_type"`
	GatewayStatus string  `json:"gateway_status"`
}

func NewPaymentCompletedEvent(txnid string, amount float64, email, formType, gatewayStatus string) *PaymentCompletedEvent {
	return &PaymentCompletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePaymentCompleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"txnid":          txnid,
				"amount":         amount,
				"email":          email,
				"form_type":      formType,
				"gateway_status": gatewayStatus,
			},
		},
		TxnID:         txnid,
		Amount:        amount,
		Email:         email,
		FormType:      formType,
		GatewayStatus: gatewayStatus,
	}
}

type PaymentFailedEvent struct {
	BaseEvent
	TxnID         string  `json:"txnid"`
	Amount        float64 `json:"amount"`
	GatewayStatus string  `json:"gateway_status"`
	Reason        string  `json:"reason"`
}

func NewPaymentFailedEvent(txnid string, amount float64, gatewayStatus, reason string) *PaymentFailedEvent {
	return &PaymentFailedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePaymentFailed,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"txnid":          txnid,
				"amount":         amount,
				"gateway_status": gatewayStatus,
				"reason":         reason,
			},
		},
		TxnID:         txnid,
		Amount:        amount,
		GatewayStatus: gatewayStatus,
		Reason:        reason,
	}
}

type ContactSubmittedEvent struct {
	BaseEvent
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func NewContactSubmittedEvent(name, email, phone, subject, message string) *ContactSubmittedEvent {
	return &ContactSubmittedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeContactSubmitted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"name":    name,
				"email":   email,
				"phone":   phone,
				"subject": subject,
				"message": message,
			},
		},
		Name:    name,
		Email:   email,
		Phone:   phone,
		Subject: subject,
		Message: message,
	}
}
