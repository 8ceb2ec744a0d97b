package handlers

import (
	"net/http"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	appsvcs "github.com/ghuser/inventory/services/item/application/services"
)

// GetItemsHandler handles GET /v1/items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute returns every stored item in store iteration order.
// An empty collection is an empty list, never an error.
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.ReadAll(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newItemResponses(items))
}
