package services

import (
	"github.com/ghuser/inventory/pkg/app"
	"github.com/ghuser/inventory/services/item/infrastructure/persistence/mongodb"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := mongodb.NewItemRepository(a.Db)
	return &Services{
		Item: NewItemService(repo, a.EventBus),
	}
}
