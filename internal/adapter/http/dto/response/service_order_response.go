package response

import (
	"time"

	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
)

type ReplanRecordResponse struct {
	ID             string     `json:"id"`
	Data           time.Time  `json:"data"`
	HHAdicional    float64    `json:"hhAdicional"`
	NovaDataInicio *time.Time `json:"novaDataInicio,omitempty"`
	NovaDataFim    *time.Time `json:"novaDataFim,omitempty"`
	Motivo         string     `json:"motivo"`
	Usuario        string     `json:"usuario,omitempty"`
}

type ServiceOrderResponse struct {
	ID     int    `json:"id"`
	Numero string `json:"numero,omitempty"`

	CCA                   string   `json:"cca"`
	Cliente               string   `json:"cliente"`
	Disciplina            string   `json:"disciplina"`
	DisciplinasEnvolvidas []string `json:"disciplinasEnvolvidas,omitempty"`
	FamiliaSAO            string   `json:"familiaSAO,omitempty"`
	Descricao             string   `json:"descricao"`

	Status    string `json:"status"`
	SLAStatus string `json:"slaStatus,omitempty"`

	DataAbertura       time.Time  `json:"dataAbertura"`
	DataCompromissada  *time.Time `json:"dataCompromissada,omitempty"`
	DataInicioPrevista *time.Time `json:"dataInicioPrevista,omitempty"`
	DataFimPrevista    *time.Time `json:"dataFimPrevista,omitempty"`
	DataAtendimento    *time.Time `json:"dataAtendimento,omitempty"`
	DataEntregaReal    *time.Time `json:"dataEntregaReal,omitempty"`
	DataConclusao      *time.Time `json:"dataConclusao,omitempty"`

	HHPlanejado float64 `json:"hhPlanejado"`
	HHAdicional float64 `json:"hhAdicional"`
	ValorHoraHH float64 `json:"valorHoraHH"`

	ValorOrcamento          float64 `json:"valorOrcamento"`
	ValorFinal              float64 `json:"valorFinal"`
	ValorSAO                float64 `json:"valorSAO"`
	ValorEngenharia         float64 `json:"valorEngenharia"`
	ValorSuprimentos        float64 `json:"valorSuprimentos"`
	JustificativaEngenharia string  `json:"justificativaEngenharia,omitempty"`
	PercentualSaving        float64 `json:"percentualSaving"`
	Competencia             string  `json:"competencia,omitempty"`

	ResponsavelObra string `json:"responsavelObra,omitempty"`
	ResponsavelEM   string `json:"responsavelEM,omitempty"`
	NomeSolicitante string `json:"nomeSolicitante,omitempty"`

	MotivoCancelamento string `json:"motivoCancelamento,omitempty"`

	HistoricoReplanejamentos []ReplanRecordResponse `json:"historicoReplanejamentos"`
}

func FromServiceOrder(os entities.ServiceOrder) ServiceOrderResponse {
	history := make([]ReplanRecordResponse, 0, len(os.HistoricoReplanejamentos))
	for _, rec := range os.HistoricoReplanejamentos {
		history = append(history, ReplanRecordResponse{
			ID:             rec.ID,
			Data:           rec.Data,
			HHAdicional:    rec.HHAdicional,
			NovaDataInicio: optionalTime(rec.NovaDataInicio),
			NovaDataFim:    optionalTime(rec.NovaDataFim),
			Motivo:         rec.Motivo,
			Usuario:        rec.Usuario,
		})
	}

	return ServiceOrderResponse{
		ID:                       os.ID,
		Numero:                   os.Numero,
		CCA:                      os.CCA,
		Cliente:                  os.Cliente,
		Disciplina:               os.Disciplina,
		DisciplinasEnvolvidas:    os.DisciplinasEnvolvidas,
		FamiliaSAO:               os.FamiliaSAO,
		Descricao:                os.Descricao,
		Status:                   string(os.Status),
		SLAStatus:                os.SLAStatus,
		DataAbertura:             os.DataAbertura,
		DataCompromissada:        optionalTime(os.DataCompromissada),
		DataInicioPrevista:       optionalTime(os.DataInicioPrevista),
		DataFimPrevista:          optionalTime(os.DataFimPrevista),
		DataAtendimento:          optionalTime(os.DataAtendimento),
		DataEntregaReal:          optionalTime(os.DataEntregaReal),
		DataConclusao:            optionalTime(os.DataConclusao),
		HHPlanejado:              os.HHPlanejado,
		HHAdicional:              os.HHAdicional,
		ValorHoraHH:              os.ValorHoraHH,
		ValorOrcamento:           os.ValorOrcamento,
		ValorFinal:               os.ValorFinal,
		ValorSAO:                 os.ValorSAO,
		ValorEngenharia:          os.ValorEngenharia,
		ValorSuprimentos:         os.ValorSuprimentos,
		JustificativaEngenharia:  os.JustificativaEngenharia,
		PercentualSaving:         os.PercentualSaving,
		Competencia:              os.Competencia,
		ResponsavelObra:          os.ResponsavelObra,
		ResponsavelEM:            os.ResponsavelEM,
		NomeSolicitante:          os.NomeSolicitante,
		MotivoCancelamento:       os.MotivoCancelamento,
		HistoricoReplanejamentos: history,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, os := range orders {
		out = append(out, FromServiceOrder(os))
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
