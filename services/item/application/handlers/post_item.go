package handlers

import (
	"net/http"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	pkgvalidator "github.com/ghuser/inventory/pkg/validator"
	appsvcs "github.com/ghuser/inventory/services/item/application/services"
)

// CreateItemRequest is the request body for POST /v1/items.
// Count and Price are pointers so a present zero is distinguishable from an
// absent field: count=0 is valid, a missing count is not.
type CreateItemRequest struct {
	Name     string   `json:"name"     validate:"required,min=1,max=8"              example:"Hammer"`
	Count    *int     `json:"count"    validate:"required,gte=0"                    example:"20"`
	Price    *float64 `json:"price"    validate:"required,gt=0"                     example:"9.99"`
	Category string   `json:"category" validate:"required,oneof=tools consumables"  example:"tools"`
}

// PostItemHandler handles POST /v1/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item with a server-generated identifier.
// Responds 201 with the created item, 422 on validation failure, and 400
// when the store does not acknowledge the insert.
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), req.Name, *req.Count, *req.Price, req.Category)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newItemResponse(item))
}
