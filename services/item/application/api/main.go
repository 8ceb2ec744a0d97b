package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventory/pkg/app"
	"github.com/ghuser/inventory/pkg/auth"
	"github.com/ghuser/inventory/pkg/logger"
	"github.com/ghuser/inventory/services/item/application/handlers"
	appsvcs "github.com/ghuser/inventory/services/item/application/services"
)

// ItemRoutes registers the item endpoints on the provided chi router.
// Every route is behind the authentication gate.
func ItemRoutes(r chi.Router, a *app.Application) {
	mountItemRoutes(r, appsvcs.New(a), auth.Credentials{
		User:     a.Config.ServiceUser,
		Password: a.Config.ServicePassword,
		APIKey:   a.Config.APIKey,
	}, a.Logger)
}

// mountItemRoutes wires the handlers onto the router. Split from ItemRoutes
// so tests can mount against an in-memory repository.
//
// GET on the collection is dispatched by shape: a request carrying filter
// parameters is a query, a bare `/v1/items` is a list, and a bare
// `/v1/items/` (trailing slash, no parameters) is the filtered-read form
// with no arguments, which the query path rejects with 400.
func mountItemRoutes(r chi.Router, svcs *appsvcs.Services, creds auth.Credentials, log logger.Logger) {
	post := handlers.NewPostItemHandler(svcs)
	list := handlers.NewGetItemsHandler(svcs)
	query := handlers.NewQueryItemsHandler(svcs)
	get := handlers.NewGetItemHandler(svcs)
	put := handlers.NewPutItemHandler(svcs)
	del := handlers.NewDeleteItemHandler(svcs)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(creds, log))

		r.Route("/v1/items", func(r chi.Router) {
			r.Post("/", post.Execute)
			r.Get("/", func(w http.ResponseWriter, req *http.Request) {
				if handlers.HasQueryArguments(req) || strings.HasSuffix(req.URL.Path, "/") {
					query.Execute(w, req)
					return
				}
				list.Execute(w, req)
			})
			r.Get("/{itemID}", get.Execute)
			r.Put("/{itemID}", put.Execute)
			r.Delete("/{itemID}", del.Execute)
		})
	})
}
