package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	appsvcs "github.com/ghuser/inventory/services/item/application/services"
	itemdomain "github.com/ghuser/inventory/services/item/domain"
	"github.com/ghuser/inventory/services/item/domain/models"
)

// ItemArgumentResponse pairs the resolved query arguments with the matching
// items, in scan order.
type ItemArgumentResponse struct {
	Query     models.QueryArguments `json:"query"`
	Selection []ItemResponse        `json:"selection"`
}

// QueryItemsHandler handles GET /v1/items/ requests with filter parameters.
type QueryItemsHandler struct {
	svc *appsvcs.Services
}

// NewQueryItemsHandler returns a QueryItemsHandler backed by the given services.
func NewQueryItemsHandler(svc *appsvcs.Services) *QueryItemsHandler {
	return &QueryItemsHandler{svc: svc}
}

// Execute reads items matching the URL query parameters. This is a
// non-indexed search that traverses every item in the collection.
// A request with no parameters is rejected with 400 before any read;
// a malformed or unknown parameter value is a 422.
func (h *QueryItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	args, err := parseQueryArguments(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items, err := h.svc.Item.Query(r.Context(), args)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ItemArgumentResponse{
		Query:     args,
		Selection: newItemResponses(items),
	})
}

// parseQueryArguments builds a QueryArguments from the request's URL query.
// Absent parameters stay nil; present ones must parse into their field type.
func parseQueryArguments(r *http.Request) (models.QueryArguments, error) {
	var args models.QueryArguments
	q := r.URL.Query()

	if q.Has("name") {
		name := q.Get("name")
		args.Name = &name
	}
	if q.Has("count") {
		count, err := strconv.Atoi(q.Get("count"))
		if err != nil {
			return args, fmt.Errorf("%w: count must be an integer", itemdomain.ErrInvalidItem)
		}
		args.Count = &count
	}
	if q.Has("price") {
		price, err := strconv.ParseFloat(q.Get("price"), 64)
		if err != nil {
			return args, fmt.Errorf("%w: price must be a number", itemdomain.ErrInvalidItem)
		}
		args.Price = &price
	}
	if q.Has("category") {
		category, err := models.ParseCategory(q.Get("category"))
		if err != nil {
			return args, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
		}
		args.Category = &category
	}

	return args, nil
}

// HasQueryArguments reports whether the request carries at least one
// recognized filter parameter. Used by route dispatch to tell a filtered
// read apart from a plain list.
func HasQueryArguments(r *http.Request) bool {
	q := r.URL.Query()
	return q.Has("name") || q.Has("count") || q.Has("price") || q.Has("category")
}
