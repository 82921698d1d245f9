package validation_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/tradingwalla/backend/internal"
	"github.com/tradingwalla/backend/internal/core/common/validation"
)

var _ = Describe("ValidationBuilder", func() {
	Describe("Required", func() {
		It("should pass for non-empty values", func() {
			v := validation.NewValidator()
			v.Field("name", "Asha").Required()
			v.Field("amount", float64(100)).Required()

			Expect(v.Validate()).To(BeNil())
		})

		It("should fail for an empty string", func() {
			v := validation.NewValidator()
			v.Field("name", "").Required()

			err := v.Validate()
			Expect(err).ToNot(BeNil())
			Expect(err.Code).To(Equal(internal.ErrCodeValidationFailed))
		})

		It("should fail for a nil string pointer", func() {
			v := validation.NewValidator()
			var whatsapp *string
			v.Field("whatsapp", whatsapp).Required()

			Expect(v.Validate()).ToNot(BeNil())
		})
	})

	Describe("Email", func() {
		It("should accept a well-formed address", func() {
			v := validation.NewValidator()
			v.Field("email", "asha@example.com").Required().Email()

			Expect(v.Validate()).To(BeNil())
		})

		It("should reject a malformed address", func() {
			v := validation.NewValidator()
			v.Field("email", "not-an-email").Required().Email()

			err := v.Validate()
			Expect(err).ToNot(BeNil())

			details, ok := err.Details.(internal.ValidationErrors)
			Expect(ok).To(BeTrue())
			Expect(details.Errors).To(HaveLen(1))
			Expect(details.Errors[0].Code).To(Equal(string(internal.ErrCodeInvalidEmail)))
		})

		It("should leave emptiness to Required", func() {
			v := validation.NewValidator()
			v.Field("email", "").Email()

			Expect(v.Validate()).To(BeNil())
		})
	})

	Describe("PositiveAmount", func() {
		It("should reject zero and negative amounts", func() {
			v := validation.NewValidator()
			v.Field("amount", float64(-5)).PositiveAmount()

			err := v.Validate()
			Expect(err).ToNot(BeNil())

			details := err.Details.(internal.ValidationErrors)
			Expect(details.Errors[0].Code).To(Equal(string(internal.ErrCodeInvalidAmount)))
		})

		It("should accept positive amounts", func() {
			v := validation.NewValidator()
			v.Field("amount", float64(0.5)).PositiveAmount()

			Expect(v.Validate()).To(BeNil())
		})
	})

	Describe("aggregation", func() {
		It("should collect every failing field", func() {
			v := validation.NewValidator()
			v.Field("name", "").Required()
			v.Field("email", "bad").Required().Email()
			v.Field("amount", float64(0)).Required()

			err := v.Validate()
			Expect(err).ToNot(BeNil())

			details := err.Details.(internal.ValidationErrors)
			Expect(details.Errors).To(HaveLen(3))
		})
	})
})
