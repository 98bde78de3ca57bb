package entities

import "time"

// OSStatus represents the lifecycle phase of a service order (OS).
//
// Domain notes:
//   - The OS is a work order issued to an internal engineering group and
//     executed against a client facility (CCA).
//   - Phase transitions are owned by the usecase layer; nothing else writes
//     Status.
type OSStatus string

const (
	OSStatusAberta                     OSStatus = "aberta"
	OSStatusEmPlanejamento             OSStatus = "em-planejamento"
	OSStatusAguardandoAceite           OSStatus = "aguardando-aceite"
	OSStatusEmExecucao                 OSStatus = "em-execucao"
	OSStatusAguardandoAceiteFechamento OSStatus = "aguardando-aceite-fechamento"
	OSStatusConcluida                  OSStatus = "concluida"
	OSStatusCancelada                  OSStatus = "cancelada"
)

// Valid reports whether s is a member of the status enum.
func (s OSStatus) Valid() bool {
	switch s {
	case OSStatusAberta, OSStatusEmPlanejamento, OSStatusAguardandoAceite,
		OSStatusEmExecucao, OSStatusAguardandoAceiteFechamento,
		OSStatusConcluida, OSStatusCancelada:
		return true
	}
	return false
}

// Terminal reports whether s ends the lifecycle. No business transition
// leads out of a terminal status.
func (s OSStatus) Terminal() bool {
	return s == OSStatusConcluida || s == OSStatusCancelada
}

// ReplanRecord is one immutable entry of an order's replanning history.
//
// Records are append-only: once written they are never edited or removed,
// and HHAdicional accumulates onto the order rather than replacing it.
type ReplanRecord struct {
	ID             string    `json:"id"`
	Data           time.Time `json:"data"`
	HHAdicional    float64   `json:"hhAdicional"`
	NovaDataInicio time.Time `json:"novaDataInicio"`
	NovaDataFim    time.Time `json:"novaDataFim"`
	Motivo         string    `json:"motivo"`
	Usuario        string    `json:"usuario"`
}

// ServiceOrder is the OS entity persisted in the service_orders collection.
//
// Storage model (DynamoDB snapshot table):
//   - the whole collection is serialized as one JSON array per the persisted
//     layout; there is no per-order item.
//
// Invariants:
//   - ID is allocator-assigned once at creation and never reassigned.
//   - ValorOrcamento is zero unless Status is concluida or
//     aguardando-aceite-fechamento; the repository re-applies this rule on
//     every load.
//   - HistoricoReplanejamentos only grows.
//
type ServiceOrder struct {
	ID     int    `json:"id"`
	Numero string `json:"numero,omitempty"`

	CCA                   string   `json:"cca"`
	Cliente               string   `json:"cliente"`
	Disciplina            string   `json:"disciplina"`
	DisciplinasEnvolvidas []string `json:"disciplinasEnvolvidas,omitempty"`
	FamiliaSAO            string   `json:"familiaSAO,omitempty"`
	Descricao             string   `json:"descricao"`

	Status    OSStatus `json:"status"`
	SLAStatus string   `json:"slaStatus,omitempty"`

	DataAbertura       time.Time `json:"dataAbertura"`
	DataCompromissada  time.Time `json:"dataCompromissada,omitempty"`
	DataInicioPrevista time.Time `json:"dataInicioPrevista,omitempty"`
	DataFimPrevista    time.Time `json:"dataFimPrevista,omitempty"`
	DataAtendimento    time.Time `json:"dataAtendimento,omitempty"`
	DataEntregaReal    time.Time `json:"dataEntregaReal,omitempty"`
	DataConclusao      time.Time `json:"dataConclusao,omitempty"`

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

	HistoricoReplanejamentos []ReplanRecord `json:"historicoReplanejamentos,omitempty"`

	// SchemaVersion marks which load-time migrations already ran for this
	// record, so a step never reapplies.
	SchemaVersion int `json:"schemaVersion"`
}
