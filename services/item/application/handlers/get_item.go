package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	appsvcs "github.com/ghuser/inventory/services/item/application/services"
)

// parseItemID extracts and parses the {itemID} URL parameter. A malformed
// identifier is a 422, written here; the caller just returns on !ok.
func parseItemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "itemID")
	id, err := uuid.Parse(raw)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "item_id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// GetItemHandler handles GET /v1/items/{itemID} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns the item with the given identifier, or 404 naming the id.
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newItemResponse(item))
}
