package brochure

import "github.com/tradingwalla/backend/internal/core/common/validation"

type SubmitRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
}

func (r *SubmitRequest) Validate() error {
	validator := validation.NewValidator()

	validator.Field("name", r.Name).Required()
	validator.Field("email", r.Email).Required().Email()
	validator.Field("phone", r.Phone).Required()
	validator.Field("interest", r.Interest).Required()

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
