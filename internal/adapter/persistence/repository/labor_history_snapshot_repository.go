package repository

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/usecase/interfaces"
)

// LaborHistorySnapshotRepository owns the hh_historicos collection. Same
// load-once/full-rewrite cycle as the service_orders repository, without
// migrations: the records are append-only and schema-stable.

type LaborHistorySnapshotRepository struct {
	store ISnapshotStore

	mu     sync.Mutex
	loaded bool
	recs   []entities.MonthlyLaborAggregate
}

var _ interfaces.ILaborHistoryRepository = (*LaborHistorySnapshotRepository)(nil)

func NewLaborHistorySnapshotRepository(store ISnapshotStore) *LaborHistorySnapshotRepository {
	return &LaborHistorySnapshotRepository{store: store, recs: []entities.MonthlyLaborAggregate{}}
}

func (r *LaborHistorySnapshotRepository) Add(ctx context.Context, rec entities.MonthlyLaborAggregate) (entities.MonthlyLaborAggregate, error) {
	recs, err := r.AddBatch(ctx, []entities.MonthlyLaborAggregate{rec})
	if err != nil {
		return entities.MonthlyLaborAggregate{}, err
	}
	return recs[0], nil
}

func (r *LaborHistorySnapshotRepository) AddBatch(ctx context.Context, recs []entities.MonthlyLaborAggregate) ([]entities.MonthlyLaborAggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}

	previous := len(r.recs)
	r.recs = append(r.recs, recs...)
	if err := r.persistLocked(ctx); err != nil {
		r.recs = r.recs[:previous]
		return nil, err
	}
	return append([]entities.MonthlyLaborAggregate(nil), recs...), nil
}

func (r *LaborHistorySnapshotRepository) List(ctx context.Context) ([]entities.MonthlyLaborAggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}
	return append([]entities.MonthlyLaborAggregate(nil), r.recs...), nil
}

func (r *LaborHistorySnapshotRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = []entities.MonthlyLaborAggregate{}
	r.loaded = true
	return r.persistLocked(ctx)
}

func (r *LaborHistorySnapshotRepository) ensureLoadedLocked(ctx context.Context) error {
	if r.loaded {
		return nil
	}

	payload, found, err := r.store.Load(ctx, collectionLaborHistory)
	if err != nil {
		return err
	}

	recs := []entities.MonthlyLaborAggregate{}
	if found {
		if err := json.Unmarshal(payload, &recs); err != nil {
			log.Printf("[hh][repo] discarding corrupted %s snapshot err=%v", collectionLaborHistory, err)
			recs = []entities.MonthlyLaborAggregate{}
		}
	}

	r.recs = recs
	r.loaded = true
	log.Printf("[hh][repo] loaded %s count=%d", collectionLaborHistory, len(recs))
	return nil
}

func (r *LaborHistorySnapshotRepository) persistLocked(ctx context.Context) error {
	payload, err := json.Marshal(r.recs)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, collectionLaborHistory, payload)
}
