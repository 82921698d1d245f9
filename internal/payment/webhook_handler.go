package payment

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	internal "github.com/tradingwalla/backend/internal"
	paymentmodel "github.com/tradingwalla/backend/internal/core/datamodel/payment"
	"github.com/tradingwalla/backend/internal/transport"
)

var callbackOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "payu_callbacks_total",
	Help: "Gateway callback outcomes by route and result.",
}, []string{"route", "outcome"})

// WebhookHandler receives the gateway's asynchronous callbacks. The
// success route must always answer with a redirect; the gateway's UX
// breaks on anything else.
type WebhookHandler struct {
	*transport.BaseHandler
	Service     ServiceAPI
	frontendURL string
}

func NewWebhookHandler(baseHandler *transport.BaseHandler, service ServiceAPI, frontendURL string) *WebhookHandler {
	return &WebhookHandler{
		BaseHandler: baseHandler,
		Service:     service,
		frontendURL: frontendURL,
	}
}

// HandleSuccess handles POST /api/payment/success, the gateway's signed
// form-encoded status callback.
func (h *WebhookHandler) HandleSuccess(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Error("success callback: unparseable form body", "error", err)
		callbackOutcomes.WithLabelValues("success", "invalid").Inc()
		http.Redirect(w, r, h.redirectURL(paymentmodel.StatusFailed, ""), http.StatusFound)
		return
	}

	cb := CallbackData{
		TxnID:       r.PostFormValue("txnid"),
		Status:      r.PostFormValue("status"),
		Amount:      r.PostFormValue("amount"),
		ProductInfo: r.PostFormValue("productinfo"),
		FirstName:   r.PostFormValue("firstname"),
		Email:       r.PostFormValue("email"),
		Phone:       r.PostFormValue("phone"),
		Key:         r.PostFormValue("key"),
		Hash:        r.PostFormValue("hash"),
	}

	h.Logger.Info("success callback received",
		"txnid", cb.TxnID,
		"gateway_status", cb.Status)

	if cb.TxnID == "" || cb.Hash == "" {
		h.Logger.Warn("success callback missing txnid or hash")
		callbackOutcomes.WithLabelValues("success", "invalid").Inc()
		http.Redirect(w, r, h.redirectURL(cb.Status, cb.TxnID), http.StatusFound)
		return
	}

	raw := rawFormPayload(r.PostForm)

	status, err := h.Service.ProcessSuccessCallback(r.Context(), cb, raw)
	switch {
	case errors.Is(err, internal.ErrPaymentNotFound):
		// unverifiable; redirect without having touched any state
		callbackOutcomes.WithLabelValues("success", "unknown_txnid").Inc()
		http.Redirect(w, r, h.redirectURL(cb.Status, cb.TxnID), http.StatusFound)
		return
	case err != nil:
		h.Logger.Error("success callback processing failed", "error", err, "txnid", cb.TxnID)
		callbackOutcomes.WithLabelValues("success", "error").Inc()
		http.Redirect(w, r, h.redirectURL(paymentmodel.StatusFailed, cb.TxnID), http.StatusFound)
		return
	}

	if status == paymentmodel.StatusSucceeded {
		callbackOutcomes.WithLabelValues("success", "verified").Inc()
	} else {
		callbackOutcomes.WithLabelValues("success", "rejected").Inc()
	}

	http.Redirect(w, r, h.redirectURL(status, cb.TxnID), http.StatusFound)
}

// HandleFailure handles POST /api/payment/failure. The gateway sends no
// hash on this route, so the transition to failed is authenticated only
// by knowledge of the transaction id.
func (h *WebhookHandler) HandleFailure(w http.ResponseWriter, r *http.Request) {
	isForm := strings.Contains(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")

	var txnid, status string
	var raw json.RawMessage

	if isForm {
		if err := r.ParseForm(); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid form body")
			return
		}
		txnid = r.PostFormValue("txnid")
		status = r.PostFormValue("status")
		raw = rawFormPayload(r.PostForm)
	} else {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		var req struct {
			TxnID  string `json:"txnid"`
			Status string `json:"status"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		txnid = req.TxnID
		status = req.Status
		raw = body
	}

	h.Logger.Info("failure callback received", "txnid", txnid, "gateway_status", status)

	record, err := h.Service.MarkFailed(r.Context(), txnid, raw)
	if err != nil {
		callbackOutcomes.WithLabelValues("failure", "unknown_txnid").Inc()
		h.HandleError(w, err)
		return
	}

	callbackOutcomes.WithLabelValues("failure", "marked_failed").Inc()

	if isForm {
		target := h.frontendURL + "/payment/failure?" + url.Values{
			"txnid":  {txnid},
			"status": {status},
		}.Encode()
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Payment marked as failed",
		"data":    record,
	})
}

func (h *WebhookHandler) redirectURL(status, txnid string) string {
	if status == "" {
		status = paymentmodel.StatusFailed
	}
	values := url.Values{"payment_status": {status}}
	if txnid != "" {
		values.Set("txnid", txnid)
	}
	return h.frontendURL + "?" + values.Encode()
}

// rawFormPayload flattens the form values into the JSON snapshot stored
// with the record for audit.
func rawFormPayload(form url.Values) json.RawMessage {
	flat := make(map[string]string, len(form))
	for key, values := range form {
		if len(values) > 0 {
			flat[key] = values[0]
		}
	}
	raw, _ := json.Marshal(flat)
	return raw
}
