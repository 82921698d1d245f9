package payment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	internal "github.com/tradingwalla/backend/internal"
	"github.com/tradingwalla/backend/internal/payu"
	"github.com/tradingwalla/backend/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// CreateSession handles POST /api/payment/create-payment-session
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("CreateSession: failed to parse request body", "error", err)
		h.HandleError(w, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed))
		return
	}

	payload, err := h.Service.CreateSession(r.Context(), &req)
	if err != nil {
		h.Logger.Error("CreateSession: service error", "error", err)
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    payload,
		"message": "Payment session created successfully",
	})
}

// GetStatus handles GET /api/payment/status/{txnid}
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	txnid := chi.URLParam(r, "txnid")
	if txnid == "" {
		h.HandleError(w, internal.NewValidationError("txnid is required", internal.ErrCodeValidationFailed))
		return
	}

	status, err := h.Service.GetStatus(r.Context(), txnid)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    status,
	})
}

// ListAll handles GET /api/payment/all, an administrative listing of all
// payment attempts, newest first.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Service.ListAll(r.Context())
	if err != nil {
		h.Logger.Error("ListAll: failed to fetch payments", "error", err)
		h.HandleError(w, internal.NewInternalError("Error fetching payments", err))
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    payments,
	})
}

// TestHash handles POST /api/payment/test-hash, a debugging aid that
// computes a request hash from caller-supplied fields, salt included.
func (h *Handler) TestHash(w http.ResponseWriter, r *http.Request) {
	var req TestHashRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleError(w, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed))
		return
	}

	fields := payu.RequestFields{
		Key:         req.Key,
		TxnID:       req.TxnID,
		Amount:      req.Amount,
		ProductInfo: req.ProductInfo,
		FirstName:   req.FirstName,
		Email:       req.Email,
	}

	h.WriteJSON(w, http.StatusOK, TestHashResponse{
		Success:    true,
		HashString: payu.RequestHashString(fields, req.Salt),
		Hash:       payu.RequestHash(fields, req.Salt),
	})
}
