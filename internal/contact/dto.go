package contact

import "github.com/tradingwalla/backend/internal/core/common/validation"

type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *SubmitRequest) Validate() error {
	validator := validation.NewValidator()

	validator.Field("name", r.Name).Required()
	validator.Field("email", r.Email).Required().Email()
	validator.Field("phone", r.Phone).Required()
	validator.Field("message", r.Message).Required()

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
