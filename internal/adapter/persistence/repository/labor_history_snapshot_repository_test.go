package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
)

func TestLaborHistorySnapshotRepository_AddBatch(t *testing.T) {
	t.Run("appends to the persisted collection", func(t *testing.T) {
		store := newFakeSnapshotStore()
		seed, _ := json.Marshal([]entities.MonthlyLaborAggregate{{ID: "a", Mes: 1, CCA: "CCA-104", HHApropriado: 120}})
		store.payloads[collectionLaborHistory] = seed
		repo := NewLaborHistorySnapshotRepository(store)

		added, err := repo.AddBatch(context.Background(), []entities.MonthlyLaborAggregate{
			{ID: "b", Mes: 2, CCA: "CCA-104", HHApropriado: 95},
			{ID: "c", Mes: 3, CCA: "CCA-207", HHApropriado: 142.5},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(added) != 2 {
			t.Fatalf("expected 2 added records, got %d", len(added))
		}

		recs, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 3 {
			t.Fatalf("expected 3 records, got %d", len(recs))
		}

		var stored []entities.MonthlyLaborAggregate
		if err := json.Unmarshal(store.payloads[collectionLaborHistory], &stored); err != nil {
			t.Fatalf("stored payload: %v", err)
		}
		if len(stored) != 3 {
			t.Fatalf("expected 3 persisted records, got %d", len(stored))
		}
	})

	t.Run("save failure rolls the batch back", func(t *testing.T) {
		store := newFakeSnapshotStore()
		repo := NewLaborHistorySnapshotRepository(store)
		if _, err := repo.Add(context.Background(), entities.MonthlyLaborAggregate{ID: "a", Mes: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		store.saveErr = errors.New("dynamo down")
		if _, err := repo.AddBatch(context.Background(), []entities.MonthlyLaborAggregate{{ID: "b", Mes: 2}, {ID: "c", Mes: 3}}); err == nil {
			t.Fatalf("expected save error")
		}
		store.saveErr = nil

		recs, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 1 {
			t.Fatalf("expected rollback to 1 record, got %d", len(recs))
		}
	})
}

func TestLaborHistorySnapshotRepository_Load(t *testing.T) {
	t.Run("corrupted snapshot starts empty", func(t *testing.T) {
		store := newFakeSnapshotStore()
		store.payloads[collectionLaborHistory] = []byte("not json at all")
		repo := NewLaborHistorySnapshotRepository(store)

		recs, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 0 {
			t.Fatalf("expected empty collection, got %d", len(recs))
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		store := newFakeSnapshotStore()
		store.loadErr = errors.New("dynamo down")
		repo := NewLaborHistorySnapshotRepository(store)

		if _, err := repo.List(context.Background()); err == nil {
			t.Fatalf("expected load error")
		}
	})
}

func TestLaborHistorySnapshotRepository_Clear(t *testing.T) {
	store := newFakeSnapshotStore()
	seed, _ := json.Marshal([]entities.MonthlyLaborAggregate{{ID: "a", Mes: 1}})
	store.payloads[collectionLaborHistory] = seed
	repo := NewLaborHistorySnapshotRepository(store)

	if err := repo.Clear(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty collection, got %d", len(recs))
	}

	var stored []entities.MonthlyLaborAggregate
	if err := json.Unmarshal(store.payloads[collectionLaborHistory], &stored); err != nil {
		t.Fatalf("stored payload: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected empty persisted payload, got %+v", stored)
	}
}
