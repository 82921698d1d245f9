package payu_test

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tradingwalla/backend/internal/payu"
)

var _ = Describe("RequestHash", func() {
	var fields payu.RequestFields

	BeforeEach(func() {
		fields = payu.RequestFields{
			Key:         "merchant-key",
			TxnID:       "TXN_1700000000000_abcd1234",
			Amount:      "1500.00",
			ProductInfo: "Stock Website Mentorship Payment",
			FirstName:   "Asha",
			Email:       "asha@example.com",
		}
	})

	It("should be deterministic for identical inputs", func() {
		first := payu.RequestHash(fields, "salt")
		second := payu.RequestHash(fields, "salt")

		Expect(first).To(Equal(second))
		Expect(first).To(HaveLen(128))
		Expect(first).To(Equal(strings.ToLower(first)))
	})

	It("should build the hash string with ten empty slots before the salt", func() {
		hashString := payu.RequestHashString(fields, "salt")

		expected := "merchant-key|TXN_1700000000000_abcd1234|1500.00|" +
			"Stock Website Mentorship Payment|Asha|asha@example.com" +
			strings.Repeat("|", 10) + "|salt"
		Expect(hashString).To(Equal(expected))
	})

	It("should hash the exact hash string", func() {
		sum := sha512.Sum512([]byte(payu.RequestHashString(fields, "salt")))

		Expect(payu.RequestHash(fields, "salt")).To(Equal(hex.EncodeToString(sum[:])))
	})

	It("should change when any field changes", func() {
		base := payu.RequestHash(fields, "salt")

		fields.Amount = "1500.01"
		Expect(payu.RequestHash(fields, "salt")).ToNot(Equal(base))
	})

	It("should change when the salt changes", func() {
		Expect(payu.RequestHash(fields, "salt-a")).ToNot(Equal(payu.RequestHash(fields, "salt-b")))
	})
})

var _ = Describe("CallbackHash", func() {
	var fields payu.CallbackFields

	BeforeEach(func() {
		fields = payu.CallbackFields{
			Status:      "success",
			Email:       "asha@example.com",
			FirstName:   "Asha",
			ProductInfo: "Stock Website Mentorship Payment",
			Amount:      "1500.00",
			TxnID:       "TXN_1700000000000_abcd1234",
			Key:         "merchant-key",
		}
	})

	It("should walk the fields in reverse with nine empty slots after status", func() {
		raw := "salt|success" + strings.Repeat("|", 9) +
			"|asha@example.com|Asha|Stock Website Mentorship Payment|1500.00|" +
			"TXN_1700000000000_abcd1234|merchant-key"
		sum := sha512.Sum512([]byte(raw))

		Expect(payu.CallbackHash(fields, "salt")).To(Equal(hex.EncodeToString(sum[:])))
	})

	Describe("VerifyCallback", func() {
		It("should accept the computed hash", func() {
			hash := payu.CallbackHash(fields, "salt")

			Expect(payu.VerifyCallback(fields, "salt", hash)).To(BeTrue())
		})

		It("should accept an uppercase received hash", func() {
			hash := strings.ToUpper(payu.CallbackHash(fields, "salt"))

			Expect(payu.VerifyCallback(fields, "salt", hash)).To(BeTrue())
		})

		It("should reject a single flipped character", func() {
			hash := payu.CallbackHash(fields, "salt")
			flipped := "0" + hash[1:]
			if hash[0] == '0' {
				flipped = "1" + hash[1:]
			}

			Expect(payu.VerifyCallback(fields, "salt", flipped)).To(BeFalse())
		})

		It("should reject a hash computed with the wrong salt", func() {
			hash := payu.CallbackHash(fields, "other-salt")

			Expect(payu.VerifyCallback(fields, "salt", hash)).To(BeFalse())
		})

		It("should reject when a signed field was tampered with", func() {
			hash := payu.CallbackHash(fields, "salt")
			fields.Amount = "9999.00"

			Expect(payu.VerifyCallback(fields, "salt", hash)).To(BeFalse())
		})
	})
})
