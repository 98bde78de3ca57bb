package interfaces

import (
	"context"

	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
)

// ILaborHistoryRepository abstracts persistence for the hh_historicos
// collection. The collection is append-only: records are added (one at a
// time or in batch) and the only removal is the bulk reset.

type ILaborHistoryRepository interface {
	Add(ctx context.Context, rec entities.MonthlyLaborAggregate) (entities.MonthlyLaborAggregate, error)
	AddBatch(ctx context.Context, recs []entities.MonthlyLaborAggregate) ([]entities.MonthlyLaborAggregate, error)
	List(ctx context.Context) ([]entities.MonthlyLaborAggregate, error)
	Clear(ctx context.Context) error
}
