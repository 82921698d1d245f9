package forms

import (
	"time"

	"github.com/tradingwalla/backend/internal/core/common/validation"
)

type SubmitRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`
	FormType string `json:"formType"`
}

func (r *SubmitRequest) Validate() error {
	validator := validation.NewValidator()

	validator.Field("name", r.Name).Required()
	validator.Field("email", r.Email).Required().Email()
	validator.Field("phone", r.Phone).Required()
	validator.Field("formType", r.FormType).Required()

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type SubmitResponse struct {
	ID          int64     `json:"id"`
	FormType    string    `json:"formType"`
	SubmittedAt time.Time `json:"submittedAt"`
}
