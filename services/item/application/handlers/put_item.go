package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	appsvcs "github.com/ghuser/inventory/services/item/application/services"
	itemdomain "github.com/ghuser/inventory/services/item/domain"
)

// PutItemHandler handles PUT /v1/items/{itemID} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute updates an existing item from the name/count/price URL query
// parameters. Category is immutable and not accepted here. At least one
// parameter is required (400 otherwise, before any lookup); the merged
// record is validated against the same constraints as creation (422).
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	changes, err := parseUpdateArguments(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id, changes)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newItemResponse(item))
}

// parseUpdateArguments builds an UpdateItem from the request's URL query.
// Absent parameters stay nil; present ones must parse into their field type.
func parseUpdateArguments(r *http.Request) (appsvcs.UpdateItem, error) {
	var changes appsvcs.UpdateItem
	q := r.URL.Query()

	if q.Has("name") {
		name := q.Get("name")
		changes.Name = &name
	}
	if q.Has("count") {
		count, err := strconv.Atoi(q.Get("count"))
		if err != nil {
			return changes, fmt.Errorf("%w: count must be an integer", itemdomain.ErrInvalidItem)
		}
		changes.Count = &count
	}
	if q.Has("price") {
		price, err := strconv.ParseFloat(q.Get("price"), 64)
		if err != nil {
			return changes, fmt.Errorf("%w: price must be a number", itemdomain.ErrInvalidItem)
		}
		changes.Price = &price
	}

	return changes, nil
}
