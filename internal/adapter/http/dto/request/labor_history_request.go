package request

import (
	"strings"

	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
)

// LaborHistoryRequest is one appropriated-hours record. The quota fields
// (metaMensal, percentualMeta, statusMeta) are derived server-side and not
// accepted from callers.
type LaborHistoryRequest struct {
	Mes          int     `json:"mes" binding:"required"`
	CCA          string  `json:"cca" binding:"required"`
	Cliente      string  `json:"cliente"`
	Disciplina   string  `json:"disciplina" binding:"required"`
	HHApropriado float64 `json:"hhApropriado"`
}

func (r LaborHistoryRequest) ToEntity() entities.MonthlyLaborAggregate {
	return entities.MonthlyLaborAggregate{
		Mes:          r.Mes,
		CCA:          strings.TrimSpace(r.CCA),
		Cliente:      strings.TrimSpace(r.Cliente),
		Disciplina:   strings.TrimSpace(r.Disciplina),
		HHApropriado: r.HHApropriado,
	}
}

// LaborHistoryBatchRequest is the bulk-ingestion payload.
type LaborHistoryBatchRequest struct {
	Registros []LaborHistoryRequest `json:"registros" binding:"required"`
}

func (r LaborHistoryBatchRequest) ToEntities() []entities.MonthlyLaborAggregate {
	out := make([]entities.MonthlyLaborAggregate, 0, len(r.Registros))
	for _, rec := range r.Registros {
		out = append(out, rec.ToEntity())
	}
	return out
}
