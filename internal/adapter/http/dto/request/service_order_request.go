package request

import (
	"errors"
	"strings"
	"time"

	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
)

var ErrInvalidDate = errors.New("invalid date")

// Dates arrive from the UI either as plain dates or full timestamps.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate resolves a UI-supplied date string. Empty means "not informed"
// and maps to the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// CreateOSRequest is the intake payload. Lifecycle, effort accumulators and
// closing figures are engine-owned and not accepted here.
type CreateOSRequest struct {
	Numero                string   `json:"numero"`
	CCA                   string   `json:"cca" binding:"required"`
	Cliente               string   `json:"cliente" binding:"required"`
	Disciplina            string   `json:"disciplina" binding:"required"`
	DisciplinasEnvolvidas []string `json:"disciplinasEnvolvidas"`
	FamiliaSAO            string   `json:"familiaSAO"`
	Descricao             string   `json:"descricao" binding:"required"`
	SLAStatus             string   `json:"slaStatus"`
	DataCompromissada     string   `json:"dataCompromissada"`
	ValorHoraHH           float64  `json:"valorHoraHH"`
	ResponsavelObra       string   `json:"responsavelObra"`
	ResponsavelEM         string   `json:"responsavelEM"`
	NomeSolicitante       string   `json:"nomeSolicitante"`
}

func (r CreateOSRequest) ToEntity() (entities.ServiceOrder, error) {
	compromissada, err := ParseDate(r.DataCompromissada)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return entities.ServiceOrder{
		Numero:                strings.TrimSpace(r.Numero),
		CCA:                   strings.TrimSpace(r.CCA),
		Cliente:               strings.TrimSpace(r.Cliente),
		Disciplina:            strings.TrimSpace(r.Disciplina),
		DisciplinasEnvolvidas: r.DisciplinasEnvolvidas,
		FamiliaSAO:            strings.TrimSpace(r.FamiliaSAO),
		Descricao:             strings.TrimSpace(r.Descricao),
		SLAStatus:             strings.TrimSpace(r.SLAStatus),
		DataCompromissada:     compromissada,
		ValorHoraHH:           r.ValorHoraHH,
		ResponsavelObra:       strings.TrimSpace(r.ResponsavelObra),
		ResponsavelEM:         strings.TrimSpace(r.ResponsavelEM),
		NomeSolicitante:       strings.TrimSpace(r.NomeSolicitante),
	}, nil
}

// PlanejamentoRequest carries the planning step payload.
type PlanejamentoRequest struct {
	DataInicioPrevista string   `json:"dataInicioPrevista" binding:"required"`
	DataFimPrevista    string   `json:"dataFimPrevista" binding:"required"`
	HHPlanejado        float64  `json:"hhPlanejado" binding:"required"`
	HHAdicional        *float64 `json:"hhAdicional"`
	ValorOrcamento     *float64 `json:"valorOrcamento"`
}

// AvancarFaseRequest optionally carries a planning payload, matching the
// legacy avancarFase(id, {planejamento}) call.
type AvancarFaseRequest struct {
	Planejamento *PlanejamentoRequest `json:"planejamento"`
}

type UpdateStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	Observacao string `json:"observacao"`
}

type UpdateHHRequest struct {
	HHPlanejado float64 `json:"hhPlanejado" binding:"required"`
}

// ReplanejamentoRequest is the rework/extension payload. Usuario may come in
// the body; the X-Usuario header takes precedence.
type ReplanejamentoRequest struct {
	NovaDataInicio string  `json:"novaDataInicio" binding:"required"`
	NovaDataFim    string  `json:"novaDataFim" binding:"required"`
	HHAdicional    float64 `json:"hhAdicional"`
	Motivo         string  `json:"motivo" binding:"required"`
	Usuario        string  `json:"usuario"`
}

// FechamentoRequest carries the financial closing. Monetary values are
// strings on the wire, as sent by the legacy forms. Competencia is accepted
// for compatibility and ignored; the accounting period is always derived
// from the closing date.
type FechamentoRequest struct {
	ValorEngenharia         string `json:"valorEngenharia"`
	ValorSuprimentos        string `json:"valorSuprimentos"`
	DataConclusao           string `json:"dataConclusao"`
	Competencia             string `json:"competencia"`
	JustificativaEngenharia string `json:"justificativaEngenharia"`
}

type CancelarRequest struct {
	Motivo string `json:"motivo"`
}
