package brochure

import (
	"context"
	"encoding/json"
	"net/http"

	internal "github.com/tradingwalla/backend/internal"
	brochuremodel "github.com/tradingwalla/backend/internal/core/datamodel/brochure"
	"github.com/tradingwalla/backend/internal/transport"
)

type ServiceAPI interface {
	Submit(ctx context.Context, req *SubmitRequest) (*brochuremodel.Brochure, error)
	ListAll(ctx context.Context) ([]*brochuremodel.Brochure, error)
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

// Submit handles POST /api/brochure/submit
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
		"message": "Brochure request submitted successfully",
		"data":    record,
	})
}

// ListAll handles GET /api/brochure/all
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	brochures, err := h.Service.ListAll(r.Context())
	if err != nil {
		h.Logger.Error("ListAll: failed to fetch brochures", "error", err)
		h.HandleError(w, internal.NewInternalError("Error fetching brochure requests", err))
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    brochures,
	})
}
