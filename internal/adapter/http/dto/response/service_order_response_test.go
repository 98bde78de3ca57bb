package response

import (
	"testing"
	"time"

	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
)

func TestFromServiceOrder(t *testing.T) {
	t.Run("zero dates render as absent", func(t *testing.T) {
		got := FromServiceOrder(entities.ServiceOrder{
			ID:           1,
			CCA:          "CCA-104",
			Cliente:      "Vale Norte",
			Status:       entities.OSStatusAberta,
			DataAbertura: time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
		})

		if got.DataConclusao != nil || got.DataInicioPrevista != nil || got.DataAtendimento != nil {
			t.Fatalf("zero dates must map to nil: %+v", got)
		}
		if got.Status != string(entities.OSStatusAberta) {
			t.Fatalf("unexpected status: %s", got.Status)
		}
		if got.HistoricoReplanejamentos == nil || len(got.HistoricoReplanejamentos) != 0 {
			t.Fatalf("history must render as an empty list: %+v", got.HistoricoReplanejamentos)
		}
	})

	t.Run("settlement and replan history carried over", func(t *testing.T) {
		inicio := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
		conclusao := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
		got := FromServiceOrder(entities.ServiceOrder{
			ID:               2,
			Status:           entities.OSStatusConcluida,
			DataConclusao:    conclusao,
			ValorOrcamento:   12000,
			ValorSuprimentos: 9600,
			PercentualSaving: 20,
			Competencia:      "07/2025",
			HistoricoReplanejamentos: []entities.ReplanRecord{
				{ID: "r1", HHAdicional: 8, NovaDataInicio: inicio, Motivo: "chuva no canteiro", Usuario: "joana.lima"},
			},
		})

		if got.DataConclusao == nil || !got.DataConclusao.Equal(conclusao) {
			t.Fatalf("unexpected conclusao: %v", got.DataConclusao)
		}
		if got.PercentualSaving != 20 || got.Competencia != "07/2025" {
			t.Fatalf("settlement fields dropped: %+v", got)
		}
		if len(got.HistoricoReplanejamentos) != 1 {
			t.Fatalf("expected 1 replan record, got %d", len(got.HistoricoReplanejamentos))
		}
		rec := got.HistoricoReplanejamentos[0]
		if rec.ID != "r1" || rec.HHAdicional != 8 || rec.Usuario != "joana.lima" {
			t.Fatalf("unexpected record: %+v", rec)
		}
		if rec.NovaDataInicio == nil || !rec.NovaDataInicio.Equal(inicio) {
			t.Fatalf("unexpected nova data inicio: %v", rec.NovaDataInicio)
		}
		if rec.NovaDataFim != nil {
			t.Fatalf("zero nova data fim must map to nil")
		}
	})
}

func TestFromServiceOrders(t *testing.T) {
	got := FromServiceOrders([]entities.ServiceOrder{{ID: 1}, {ID: 2}})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected list: %+v", got)
	}
}
