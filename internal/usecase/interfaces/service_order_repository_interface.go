package interfaces

import (
	"context"

	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
)

// IServiceOrderRepository abstracts persistence for the service_orders
// collection.
//
// Contract notes:
//   - Create allocates the next numeric id (max existing + 1), applies intake
//     defaults and persists before returning.
//   - GetByID/Replace return a zero-value ServiceOrder (ID == 0) when the id
//     is absent; callers translate that into their own not-found error.
//   - Replace runs the updater against the current record and persists the
//     result; an error from the updater aborts without persisting.
//   - Every mutating call writes the whole collection back to the store.

type IServiceOrderRepository interface {
	Create(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Replace(ctx context.Context, id int, update func(entities.ServiceOrder) (entities.ServiceOrder, error)) (entities.ServiceOrder, error)
	Clear(ctx context.Context) error
}
