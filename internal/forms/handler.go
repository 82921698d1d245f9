package forms

import (
	"context"
	"encoding/json"
	"net/http"

	internal "github.com/tradingwalla/backend/internal"
	formmodel "github.com/tradingwalla/backend/internal/core/datamodel/formsubmission"
	"github.com/tradingwalla/backend/internal/transport"
)

type ServiceAPI interface {
	Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, error)
	ListAll(ctx context.Context) ([]*formmodel.FormSubmission, error)
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

// Submit handles POST /api/forms/
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleError(w, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed))
		return
	}

	resp, err := h.Service.Submit(r.Context(), &req)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Form submitted successfully",
		"data":    resp,
	})
}

// ListAll handles GET /api/forms/all
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.Service.ListAll(r.Context())
	if err != nil {
		h.Logger.Error("ListAll: failed to fetch form submissions", "error", err)
		h.HandleError(w, internal.NewInternalError("Error fetching form submissions", err))
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    submissions,
	})
}
