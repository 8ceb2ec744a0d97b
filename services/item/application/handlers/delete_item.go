package handlers

import (
	"net/http"

	"github.com/ghuser/inventory/pkg/errhttp"
	appsvcs "github.com/ghuser/inventory/services/item/application/services"
)

// DeleteItemHandler handles DELETE /v1/items/{itemID} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes the item with the given identifier. Responds 204 with an
// empty body on success, 404 when no document matched.
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
