package payment

import (
	"time"

	"github.com/tradingwalla/backend/internal/core/common/validation"
)

// CreateSessionRequest is the JSON body for creating a payment session.
type CreateSessionRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Whatsapp *string `json:"whatsapp,omitempty"`
	Amount   float64 `json:"amount"`
	FormType string  `json:"formType"`
}

func (r *CreateSessionRequest) Validate() error {
	validator := validation.NewValidator()

	validator.Field("name", r.Name).Required()
	validator.Field("email", r.Email).Required().Email()
	validator.Field("phone", r.Phone).Required()
	validator.Field("amount", r.Amount).Required().PositiveAmount()
	validator.Field("formType", r.FormType).Required()

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// SessionPayload is what the browser submits to the gateway. Field names
// follow the gateway's form contract. The merchant salt is deliberately
// absent.
type SessionPayload struct {
	Key         string `json:"key"`
	TxnID       string `json:"txnid"`
	Amount      string `json:"amount"`
	ProductInfo string `json:"productinfo"`
	FirstName   string `json:"firstname"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	SuccessURL  string `json:"surl"`
	FailureURL  string `json:"furl"`
	Hash        string `json:"hash"`
	GatewayURL  string `json:"payuUrl"`
}

// CallbackData carries the form-encoded fields the gateway posts back.
type CallbackData struct {
	TxnID       string
	Status      string
	Amount      string
	ProductInfo string
	FirstName   string
	Email       string
	Phone       string
	Key         string
	Hash        string
}

type StatusResponse struct {
	TxnID     string    `json:"txnid"`
	Status    string    `json:"status"`
	Amount    float64   `json:"amount"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	FormType  string    `json:"formType"`
	CreatedAt time.Time `json:"createdAt"`
}

// TestHashRequest feeds the debug hash endpoint; unlike the session
// endpoint it takes the salt from the caller.
type TestHashRequest struct {
	Key         string `json:"key"`
	TxnID       string `json:"txnid"`
	Amount      string `json:"amount"`
	ProductInfo string `json:"productinfo"`
	FirstName   string `json:"firstname"`
	Email       string `json:"email"`
	Salt        string `json:"salt"`
}

type TestHashResponse struct {
	Success    bool   `json:"success"`
	HashString string `json:"hashString"`
	Hash       string `json:"hash"`
}
