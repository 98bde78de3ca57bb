package entities

// MetaStatus is the monthly labor-hour quota verdict.

type MetaStatus string

const (
	MetaStatusAtingido    MetaStatus = "atingido"
	MetaStatusNaoAtingido MetaStatus = "nao-atingido"
)

// MonthlyLaborAggregate is one appropriated-hours record of the hh_historicos
// collection, keyed by cost-center/discipline/month and consumed by dashboards.
//
// MetaMensal, PercentualMeta and StatusMeta are derived at ingestion time from
// the fixed 190-hour monthly baseline; the collection is append-only (no
// update/delete path, only a bulk reset).
type MonthlyLaborAggregate struct {
	ID             string     `json:"id"`
	Mes            int        `json:"mes"`
	CCA            string     `json:"cca"`
	Cliente        string     `json:"cliente"`
	Disciplina     string     `json:"disciplina"`
	HHApropriado   float64    `json:"hhApropriado"`
	MetaMensal     float64    `json:"metaMensal"`
	PercentualMeta float64    `json:"percentualMeta"`
	StatusMeta     MetaStatus `json:"statusMeta"`
}
