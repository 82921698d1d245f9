package payment_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/tradingwalla/backend/internal"
	paymentmodel "github.com/tradingwalla/backend/internal/core/datamodel/payment"
	paymentpkg "github.com/tradingwalla/backend/internal/payment"
	"github.com/tradingwalla/backend/internal/transport"
)

type mockPaymentService struct {
	createSessionError error
	processResult      string
	processError       error
	markFailedError    error
	getStatusError     error
	listError          error
	payload            *paymentpkg.SessionPayload
	statusResponse     *paymentpkg.StatusResponse
	markedFailed       *paymentmodel.Payment
	processedCallbacks []paymentpkg.CallbackData
	markFailedTxnIDs   []string
	listedPayments     []*paymentmodel.Payment
}

func (m *mockPaymentService) CreateSession(ctx context.Context, req *paymentpkg.CreateSessionRequest) (*paymentpkg.SessionPayload, error) {
	if m.createSessionError != nil {
		return nil, m.createSessionError
	}
	return m.payload, nil
}

func (m *mockPaymentService) ProcessSuccessCallback(ctx context.Context, cb paymentpkg.CallbackData, raw json.RawMessage) (string, error) {
	m.processedCallbacks = append(m.processedCallbacks, cb)
	if m.processError != nil {
		return "", m.processError
	}
	return m.processResult, nil
}

func (m *mockPaymentService) MarkFailed(ctx context.Context, txnid string, raw json.RawMessage) (*paymentmodel.Payment, error) {
	m.markFailedTxnIDs = append(m.markFailedTxnIDs, txnid)
	if m.markFailedError != nil {
		return nil, m.markFailedError
	}
	return m.markedFailed, nil
}

func (m *mockPaymentService) GetStatus(ctx context.Context, txnid string) (*paymentpkg.StatusResponse, error) {
	if m.getStatusError != nil {
		return nil, m.getStatusError
	}
	return m.statusResponse, nil
}

func (m *mockPaymentService) ListAll(ctx context.Context) ([]*paymentmodel.Payment, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.listedPayments, nil
}

var _ = Describe("WebhookHandler", func() {
	var (
		handler     *paymentpkg.WebhookHandler
		mockService *mockPaymentService
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		mockService = &mockPaymentService{processResult: paymentmodel.StatusSucceeded}
		handler = paymentpkg.NewWebhookHandler(
			transport.NewBaseHandler(logger), mockService, "https://tradingwalla.com")
		recorder = httptest.NewRecorder()
	})

	successForm := func(values url.Values) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/payment/success",
			strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req
	}

	Describe("HandleSuccess", func() {
		It("should redirect to the frontend after a verified callback", func() {
			req := successForm(url.Values{
				"txnid":  {"TXN_1_abc"},
				"status": {"success"},
				"hash":   {"somehash"},
			})

			handler.HandleSuccess(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusFound))
			location := recorder.Header().Get("Location")
			Expect(location).To(HavePrefix("https://tradingwalla.com?"))
			Expect(location).To(ContainSubstring("payment_status=succeeded"))
			Expect(location).To(ContainSubstring("txnid=TXN_1_abc"))
		})

		It("should still redirect when the callback is rejected", func() {
			mockService.processResult = paymentmodel.StatusFailed

			handler.HandleSuccess(recorder, successForm(url.Values{
				"txnid":  {"TXN_1_abc"},
				"status": {"success"},
				"hash":   {"tampered"},
			}))

			Expect(recorder.Code).To(Equal(http.StatusFound))
			Expect(recorder.Header().Get("Location")).To(ContainSubstring("payment_status=failed"))
		})

		It("should redirect without processing when txnid or hash is missing", func() {
			handler.HandleSuccess(recorder, successForm(url.Values{"status": {"success"}}))

			Expect(recorder.Code).To(Equal(http.StatusFound))
			Expect(mockService.processedCallbacks).To(BeEmpty())
		})

		It("should redirect when the transaction id is unknown", func() {
			mockService.processError = internal.ErrPaymentNotFound

			handler.HandleSuccess(recorder, successForm(url.Values{
				"txnid":  {"TXN_0_unknown"},
				"status": {"success"},
				"hash":   {"somehash"},
			}))

			Expect(recorder.Code).To(Equal(http.StatusFound))
			Expect(recorder.Header().Get("Location")).To(HavePrefix("https://tradingwalla.com?"))
		})
	})

	Describe("HandleFailure", func() {
		It("should redirect to the failure page for a form-encoded callback", func() {
			mockService.markedFailed = &paymentmodel.Payment{TxnID: "TXN_1_abc", Status: paymentmodel.StatusFailed}

			req := httptest.NewRequest(http.MethodPost, "/api/payment/failure",
				strings.NewReader(url.Values{"txnid": {"TXN_1_abc"}, "status": {"failure"}}.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			handler.HandleFailure(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusFound))
			Expect(recorder.Header().Get("Location")).To(
				HavePrefix("https://tradingwalla.com/payment/failure?"))
			Expect(mockService.markFailedTxnIDs).To(Equal([]string{"TXN_1_abc"}))
		})

		It("should acknowledge a JSON callback with a JSON body", func() {
			mockService.markedFailed = &paymentmodel.Payment{TxnID: "TXN_1_abc", Status: paymentmodel.StatusFailed}

			req := httptest.NewRequest(http.MethodPost, "/api/payment/failure",
				strings.NewReader(`{"txnid":"TXN_1_abc","status":"failure"}`))
			req.Header.Set("Content-Type", "application/json")

			handler.HandleFailure(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var body map[string]interface{}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body["success"]).To(BeTrue())
		})

		It("should answer 404 for an unknown transaction id", func() {
			mockService.markFailedError = internal.ErrPaymentNotFound

			req := httptest.NewRequest(http.MethodPost, "/api/payment/failure",
				strings.NewReader(`{"txnid":"TXN_0_unknown","status":"failure"}`))
			req.Header.Set("Content-Type", "application/json")

			handler.HandleFailure(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})
})
