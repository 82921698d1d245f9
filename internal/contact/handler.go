package contact

import (
	"context"
	"encoding/json"
	"net/http"

	internal "github.com/tradingwalla/backend/internal"
	contactmodel "github.com/tradingwalla/backend/internal/core/datamodel/contact"
	"github.com/tradingwalla/backend/internal/transport"
)

type ServiceAPI interface {
	Submit(ctx context.Context, req *SubmitRequest) (*contactmodel.Contact, error)
	ListAll(ctx context.Context) ([]*contactmodel.Contact, error)
}

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

// Submit handles POST /api/contact/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleError(w, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed))
		return
	}

	record, err := h.Service.Submit(r.Context(), &req)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Contact form submitted successfully",
		"data":    record,
	})
}

// ListAll handles GET /api/contact/all
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Service.ListAll(r.Context())
	if err != nil {
		h.Logger.Error("ListAll: failed to fetch contact messages", "error", err)
		h.HandleError(w, internal.NewInternalError("Error fetching contact messages", err))
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    contacts,
	})
}
