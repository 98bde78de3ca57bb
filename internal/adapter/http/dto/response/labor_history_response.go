package response

import "github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"

type LaborHistoryResponse struct {
	ID             string  `json:"id"`
	Mes            int     `json:"mes"`
	CCA            string  `json:"cca"`
	Cliente        string  `json:"cliente,omitempty"`
	Disciplina     string  `json:"disciplina"`
	HHApropriado   float64 `json:"hhApropriado"`
	MetaMensal     float64 `json:"metaMensal"`
	PercentualMeta float64 `json:"percentualMeta"`
	StatusMeta     string  `json:"statusMeta"`
}

func FromLaborAggregate(rec entities.MonthlyLaborAggregate) LaborHistoryResponse {
	return LaborHistoryResponse{
		ID:             rec.ID,
		Mes:            rec.Mes,
		CCA:            rec.CCA,
		Cliente:        rec.Cliente,
		Disciplina:     rec.Disciplina,
		HHApropriado:   rec.HHApropriado,
		MetaMensal:     rec.MetaMensal,
		PercentualMeta: rec.PercentualMeta,
		StatusMeta:     string(rec.StatusMeta),
	}
}

func FromLaborAggregates(recs []entities.MonthlyLaborAggregate) []LaborHistoryResponse {
	out := make([]LaborHistoryResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromLaborAggregate(rec))
	}
	return out
}
