package repository

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/usecase/interfaces"
)

// ServiceOrderSnapshotRepository owns the in-memory service_orders collection
// and round-trips it through an ISnapshotStore.
//
// Semantics carried over from the persisted layout:
//   - the collection loads once, on first use;
//   - every mutating call rewrites the whole collection;
//   - a corrupted snapshot is discarded (logged) and the collection starts
//     empty rather than failing the process.
//
// The mutex enforces the single-writer assumption behind an HTTP listener
// and makes the max(id)+1 allocation race-free.

type ServiceOrderSnapshotRepository struct {
	store ISnapshotStore

	mu     sync.Mutex
	loaded bool
	orders []entities.ServiceOrder
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderSnapshotRepository)(nil)

func NewServiceOrderSnapshotRepository(store ISnapshotStore) *ServiceOrderSnapshotRepository {
	return &ServiceOrderSnapshotRepository{store: store, orders: []entities.ServiceOrder{}}
}

func (r *ServiceOrderSnapshotRepository) Create(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoadedLocked(ctx); err != nil {
		return entities.ServiceOrder{}, err
	}

	os := draft
	os.ID = r.nextIDLocked()
	os.Status = entities.OSStatusAberta
	os.SchemaVersion = currentSchemaVersion
	if os.DataAbertura.IsZero() {
		os.DataAbertura = time.Now().UTC()
	}

	// Intake starts from a clean slate: no committed execution dates, no
	// accumulated hours and no closing figures.
	os.DataAtendimento = time.Time{}
	os.DataEntregaReal = time.Time{}
	os.DataConclusao = time.Time{}
	os.HHAdicional = 0
	os.ValorOrcamento = 0
	os.ValorFinal = 0
	os.ValorSAO = 0
	os.ValorEngenharia = 0
	os.ValorSuprimentos = 0
	os.PercentualSaving = 0
	os.Competencia = ""
	os.JustificativaEngenharia = ""
	os.MotivoCancelamento = ""
	os.HistoricoReplanejamentos = nil

	r.orders = append(r.orders, os)
	if err := r.persistLocked(ctx); err != nil {
		r.orders = r.orders[:len(r.orders)-1]
		return entities.ServiceOrder{}, err
	}
	return cloneServiceOrder(os), nil
}

func (r *ServiceOrderSnapshotRepository) GetByID(ctx context.Context, id int) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoadedLocked(ctx); err != nil {
		return entities.ServiceOrder{}, err
	}
	for i := range r.orders {
		if r.orders[i].ID == id {
			return cloneServiceOrder(r.orders[i]), nil
		}
	}
	return entities.ServiceOrder{}, nil
}

func (r *ServiceOrderSnapshotRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}
	out := make([]entities.ServiceOrder, 0, len(r.orders))
	for i := range r.orders {
		out = append(out, cloneServiceOrder(r.orders[i]))
	}
	return out, nil
}

func (r *ServiceOrderSnapshotRepository) Replace(ctx context.Context, id int, update func(entities.ServiceOrder) (entities.ServiceOrder, error)) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoadedLocked(ctx); err != nil {
		return entities.ServiceOrder{}, err
	}

	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}
		updated, err := update(cloneServiceOrder(r.orders[i]))
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		// Identity is allocator-owned; an updater cannot reassign it.
		updated.ID = id

		previous := r.orders[i]
		r.orders[i] = updated
		if err := r.persistLocked(ctx); err != nil {
			r.orders[i] = previous
			return entities.ServiceOrder{}, err
		}
		return cloneServiceOrder(updated), nil
	}
	return entities.ServiceOrder{}, nil
}

func (r *ServiceOrderSnapshotRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = []entities.ServiceOrder{}
	r.loaded = true
	return r.persistLocked(ctx)
}

func (r *ServiceOrderSnapshotRepository) nextIDLocked() int {
	max := 0
	for i := range r.orders {
		if r.orders[i].ID > max {
			max = r.orders[i].ID
		}
	}
	return max + 1
}

func (r *ServiceOrderSnapshotRepository) ensureLoadedLocked(ctx context.Context) error {
	if r.loaded {
		return nil
	}

	payload, found, err := r.store.Load(ctx, collectionServiceOrders)
	if err != nil {
		return err
	}

	orders := []entities.ServiceOrder{}
	if found {
		if err := json.Unmarshal(payload, &orders); err != nil {
			log.Printf("[os][repo] discarding corrupted %s snapshot err=%v", collectionServiceOrders, err)
			orders = []entities.ServiceOrder{}
		}
	}

	migrated := 0
	cleared := 0
	for i := range orders {
		os, changed := migrateServiceOrder(orders[i])
		if changed {
			migrated++
		}
		// Only orders already in closing keep a budget value.
		if os.Status != entities.OSStatusConcluida && os.Status != entities.OSStatusAguardandoAceiteFechamento && os.ValorOrcamento != 0 {
			os.ValorOrcamento = 0
			cleared++
		}
		orders[i] = os
	}

	r.orders = orders
	r.loaded = true
	log.Printf("[os][repo] loaded %s count=%d migrated=%d budget_cleared=%d", collectionServiceOrders, len(orders), migrated, cleared)

	if migrated > 0 || cleared > 0 {
		return r.persistLocked(ctx)
	}
	return nil
}

func (r *ServiceOrderSnapshotRepository) persistLocked(ctx context.Context) error {
	payload, err := json.Marshal(r.orders)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, collectionServiceOrders, payload)
}

func cloneServiceOrder(os entities.ServiceOrder) entities.ServiceOrder {
	out := os
	if os.DisciplinasEnvolvidas != nil {
		out.DisciplinasEnvolvidas = append([]string(nil), os.DisciplinasEnvolvidas...)
	}
	if os.HistoricoReplanejamentos != nil {
		out.HistoricoReplanejamentos = append([]entities.ReplanRecord(nil), os.HistoricoReplanejamentos...)
	}
	return out
}
