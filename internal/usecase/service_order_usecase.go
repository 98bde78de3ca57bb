package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOSNotFound           = errors.New("service order not found")
	ErrInvalidOSID          = errors.New("invalid service order id")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrInvalidMonetaryValue = errors.New("invalid monetary value")
	ErrInvalidReplanHours   = errors.New("invalid replan hours")
)

// phaseSuccessor is the forward adjacency of the OS lifecycle. Every status
// change in the normal flow goes through this table; a status with no entry
// has no generic next phase.
var phaseSuccessor = map[entities.OSStatus]entities.OSStatus{
	entities.OSStatusAberta:                     entities.OSStatusEmPlanejamento,
	entities.OSStatusEmPlanejamento:             entities.OSStatusAguardandoAceite,
	entities.OSStatusAguardandoAceite:           entities.OSStatusEmExecucao,
	entities.OSStatusEmExecucao:                 entities.OSStatusAguardandoAceiteFechamento,
	entities.OSStatusAguardandoAceiteFechamento: entities.OSStatusConcluida,
}

// PlanningData is the optional payload of the em-planejamento ->
// aguardando-aceite step. HHAdicional and ValorOrcamento overwrite the order
// only when present.
type PlanningData struct {
	DataInicioPrevista time.Time
	DataFimPrevista    time.Time
	HHPlanejado        float64
	HHAdicional        *float64
	ValorOrcamento     *float64
}

// ReplanInput carries a replanning request. Usuario is the acting identity
// resolved by the caller (session/header); the engine does not look it up.
type ReplanInput struct {
	NovaDataInicio time.Time
	NovaDataFim    time.Time
	HHAdicional    float64
	Motivo         string
	Usuario        string
}

// SettlementInput carries the financial closing of an order. Monetary values
// arrive as strings from the UI layer; an empty string means zero and
// anything unparsable is rejected before the settlement runs.
type SettlementInput struct {
	ValorEngenharia         string
	ValorSuprimentos        string
	DataConclusao           *time.Time
	JustificativaEngenharia string
}

// IServiceOrderUseCase exposes the OS lifecycle engine.
//
// Operation mapping to the legacy surface:
//   - addOS => Create, avancarFase => Advance
//   - updateOSPlanejamento => UpdatePlanning, aprovarPlanejamento => ApprovePlanning
//   - replanejamentoOS => Replan, finalizarOS => Finalize
//   - concluirOS => Conclude, cancelarOS => Cancel
//   - aceitarFechamento/rejeitarFechamento => AcceptClosing/RejectClosing
//   - updateOSStatus => UpdateStatus, updateOSHH => UpdatePlannedHours
//   - clearAllOS => ClearAll

type IServiceOrderUseCase interface {
	Create(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Advance(ctx context.Context, id int, plan *PlanningData) (entities.ServiceOrder, error)
	UpdatePlanning(ctx context.Context, id int, plan PlanningData) (entities.ServiceOrder, error)
	ApprovePlanning(ctx context.Context, id int) (entities.ServiceOrder, error)
	UpdatePlannedHours(ctx context.Context, id int, hhPlanejado float64) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id int, status entities.OSStatus, observacao string) (entities.ServiceOrder, error)
	Replan(ctx context.Context, id int, in ReplanInput) (entities.ServiceOrder, error)
	Conclude(ctx context.Context, id int) (entities.ServiceOrder, error)
	Finalize(ctx context.Context, id int, in SettlementInput) (entities.ServiceOrder, error)
	AcceptClosing(ctx context.Context, id int) (entities.ServiceOrder, error)
	RejectClosing(ctx context.Context, id int) (entities.ServiceOrder, error)
	Cancel(ctx context.Context, id int, motivo string) (entities.ServiceOrder, error)
	ClearAll(ctx context.Context) error
}

type ServiceOrderUseCase struct {
	repo interfaces.IServiceOrderRepository
	now  func() time.Time
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error) {
	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[os][usecase] created os_id=%d cca=%s disciplina=%s", created.ID, created.CCA, created.Disciplina)
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id int) (entities.ServiceOrder, error) {
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidOSID
	}
	os, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if os.ID == 0 {
		return entities.ServiceOrder{}, ErrOSNotFound
	}
	return os, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx)
}

// Advance moves the order to its next lifecycle phase per the adjacency
// table. A status with no successor yields ErrInvalidTransition; the legacy
// silent no-op is gone.
//
// An optional planning payload is only meaningful on the em-planejamento ->
// aguardando-aceite step and is rejected elsewhere.
func (u *ServiceOrderUseCase) Advance(ctx context.Context, id int, plan *PlanningData) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, "advance", func(os entities.ServiceOrder) (entities.ServiceOrder, error) {
		next, ok := phaseSuccessor[os.Status]
		if !ok {
			return os, ErrInvalidTransition
		}
		if plan != nil && os.Status != entities.OSStatusEmPlanejamento {
			return os, ErrInvalidTransition
		}
		if plan != nil {
			applyPlanning(&os, *plan)
		}
		if next == entities.OSStatusAguardandoAceiteFechamento {
			os.DataConclusao = u.now()
		}
		os.Status = next
		return os, nil
	})
}

// UpdatePlanning fills the planning of an open plan and submits it for
// acceptance (avancarFase with a planejamento payload).
func (u *ServiceOrderUseCase) UpdatePlanning(ctx context.Context, id int, plan PlanningData) (entities.ServiceOrder, error) {
	return u.Advance(ctx, id, &plan)
}

// ApprovePlanning accepts the current plan as-is.
func (u *ServiceOrderUseCase) ApprovePlanning(ctx context.Context, id int) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, "approve-planning", func(os entities.ServiceOrder) (entities.ServiceOrder, error) {
		if os.Status != entities.OSStatusAguardandoAceite {
			return os, ErrInvalidTransition
		}
		os.Status = entities.OSStatusEmExecucao
		return os, nil
	})
}

func (u *ServiceOrderUseCase) UpdatePlannedHours(ctx context.Context, id int, hhPlanejado float64) (entities.ServiceOrder, error) {
	if hhPlanejado < 0 {
		return entities.ServiceOrder{}, ErrInvalidReplanHours
	}
	return u.mutate(ctx, id, "update-hh", func(os entities.ServiceOrder) (entities.ServiceOrder, error) {
		os.HHPlanejado = hhPlanejado
		return os, nil
	})
}

// UpdateStatus is the administrative override kept from the legacy surface.
// It validates the target against the enum and refuses to move terminal
// orders, but does not consult the adjacency table.
func (u *ServiceOrderUseCase) UpdateStatus(ctx context.Context, id int, status entities.OSStatus, observacao string) (entities.ServiceOrder, error) {
	if !status.Valid() {
		return entities.ServiceOrder{}, ErrInvalidStatus
	}
	return u.mutate(ctx, id, "update-status", func(os entities.ServiceOrder) (entities.ServiceOrder, error) {
		if os.Status.Terminal() {
			return os, ErrInvalidTransition
		}
		log.Printf("[os][usecase] status override os_id=%d from=%s to=%s observacao=%q", os.ID, os.Status, status, observacao)
		os.Status = status
		return os, nil
	})
}

// Replan records a mid-lifecycle extension: committed dates shift, approved
// hours accumulate, and the order re-enters acceptance. The previous
// commitment survives only in the appended history record.
func (u *ServiceOrderUseCase) Replan(ctx context.Context, id int, in ReplanInput) (entities.ServiceOrder, error) {
	if in.HHAdicional < 0 {
		return entities.ServiceOrder{}, ErrInvalidReplanHours
	}
	in.Motivo = strings.TrimSpace(in.Motivo)
	in.Usuario = strings.TrimSpace(in.Usuario)
	return u.mutate(ctx, id, "replan", func(os entities.ServiceOrder) (entities.ServiceOrder, error) {
		if os.Status.Terminal() {
			return os, ErrInvalidTransition
		}
		rec := entities.ReplanRecord{
			ID:             uuid.NewString(),
			Data:           u.now(),
			HHAdicional:    in.HHAdicional,
			NovaDataInicio: in.NovaDataInicio,
			NovaDataFim:    in.NovaDataFim,
			Motivo:         in.Motivo,
			Usuario:        in.Usuario,
		}
		os.HistoricoReplanejamentos = append(os.HistoricoReplanejamentos, rec)
		os.HHAdicional += in.HHAdicional
		os.DataInicioPrevista = in.NovaDataInicio
		os.DataFimPrevista = in.NovaDataFim
		os.Status = entities.OSStatusAguardandoAceite
		log.Printf("[os][usecase] replan os_id=%d record=%s hh_adicional=%.2f total=%.2f usuario=%s", os.ID, rec.ID, in.HHAdicional, os.HHAdicional, in.Usuario)
		return os, nil
	})
}

// Conclude sends the order into closing acceptance from any non-terminal
// phase (the emergency-override reading of the legacy behavior).
func (u *ServiceOrderUseCase) Conclude(ctx context.Context, id int) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, "conclude", func(os entities.ServiceOrder) (entities.ServiceOrder, error) {
		if os.Status.Terminal() {
			return os, ErrInvalidTransition
		}
		os.Status = entities.OSStatusAguardandoAceiteFechamento
		os.DataConclusao = u.now()
		return os, nil
	})
}

// Finalize runs the financial settlement and moves the order into closing
// acceptance.
//
// Derivations, in order:
//   - closing date: DataConclusao argument when given, else now
//   - Competencia: MM/YYYY of the closing date, always recomputed
//   - ValorSAO: unconditional carry-over of ValorOrcamento
//   - ValorFinal: the supplies cost
//   - PercentualSaving: signed; a cost overrun goes negative and is not
//     clamped
func (u *ServiceOrderUseCase) Finalize(ctx context.Context, id int, in SettlementInput) (entities.ServiceOrder, error) {
	valorEngenharia, err := parseMonetary(in.ValorEngenharia)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	valorSuprimentos, err := parseMonetary(in.ValorSuprimentos)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.mutate(ctx, id, "finalize", func(os entities.ServiceOrder) (entities.ServiceOrder, error) {
		if os.Status.Terminal() {
			return os, ErrInvalidTransition
		}
		closing := u.now()
		if in.DataConclusao != nil && !in.DataConclusao.IsZero() {
			closing = *in.DataConclusao
		}

		os.Status = entities.OSStatusAguardandoAceiteFechamento
		os.DataConclusao = closing
		os.DataEntregaReal = closing
		os.Competencia = fmt.Sprintf("%02d/%04d", closing.Month(), closing.Year())

		os.ValorSAO = os.ValorOrcamento
		os.ValorEngenharia = valorEngenharia
		os.ValorSuprimentos = valorSuprimentos
		os.ValorFinal = valorSuprimentos
		os.PercentualSaving = savingPercent(os.ValorOrcamento, valorSuprimentos)
		if in.JustificativaEngenharia != "" {
			os.JustificativaEngenharia = in.JustificativaEngenharia
		}
		log.Printf("[os][usecase] settlement os_id=%d competencia=%s valor_sao=%.2f valor_final=%.2f saving=%.2f%%", os.ID, os.Competencia, os.ValorSAO, os.ValorFinal, os.PercentualSaving)
		return os, nil
	})
}

// AcceptClosing confirms the settlement and concludes the order.
func (u *ServiceOrderUseCase) AcceptClosing(ctx context.Context, id int) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, "accept-closing", func(os entities.ServiceOrder) (entities.ServiceOrder, error) {
		if os.Status != entities.OSStatusAguardandoAceiteFechamento {
			return os, ErrInvalidTransition
		}
		os.Status = entities.OSStatusConcluida
		return os, nil
	})
}

// RejectClosing sends the order back to execution for rework. Valid for any
// path into closing acceptance, including a direct Conclude.
func (u *ServiceOrderUseCase) RejectClosing(ctx context.Context, id int) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, "reject-closing", func(os entities.ServiceOrder) (entities.ServiceOrder, error) {
		if os.Status != entities.OSStatusAguardandoAceiteFechamento {
			return os, ErrInvalidTransition
		}
		os.Status = entities.OSStatusEmExecucao
		return os, nil
	})
}

// Cancel terminates the order from any non-terminal phase and keeps the
// stated reason on the record.
func (u *ServiceOrderUseCase) Cancel(ctx context.Context, id int, motivo string) (entities.ServiceOrder, error) {
	motivo = strings.TrimSpace(motivo)
	return u.mutate(ctx, id, "cancel", func(os entities.ServiceOrder) (entities.ServiceOrder, error) {
		if os.Status.Terminal() {
			return os, ErrInvalidTransition
		}
		os.Status = entities.OSStatusCancelada
		os.MotivoCancelamento = motivo
		return os, nil
	})
}

func (u *ServiceOrderUseCase) ClearAll(ctx context.Context) error {
	log.Printf("[os][usecase] clearing service_orders collection")
	return u.repo.Clear(ctx)
}

// mutate funnels every single-order write through the repository's
// read-update-persist cycle, translating the absent-id case into
// ErrOSNotFound.
func (u *ServiceOrderUseCase) mutate(ctx context.Context, id int, op string, update func(entities.ServiceOrder) (entities.ServiceOrder, error)) (entities.ServiceOrder, error) {
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidOSID
	}
	var from entities.OSStatus
	updated, err := u.repo.Replace(ctx, id, func(os entities.ServiceOrder) (entities.ServiceOrder, error) {
		from = os.Status
		return update(os)
	})
	if err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			log.Printf("[os][usecase] %s rejected os_id=%d status=%s", op, id, from)
		}
		return entities.ServiceOrder{}, err
	}
	if updated.ID == 0 {
		return entities.ServiceOrder{}, ErrOSNotFound
	}
	if updated.Status != from {
		log.Printf("[os][usecase] %s os_id=%d from=%s to=%s", op, id, from, updated.Status)
	}
	return updated, nil
}

func applyPlanning(os *entities.ServiceOrder, plan PlanningData) {
	os.DataInicioPrevista = plan.DataInicioPrevista
	os.DataFimPrevista = plan.DataFimPrevista
	os.HHPlanejado = plan.HHPlanejado
	if plan.HHAdicional != nil {
		os.HHAdicional = *plan.HHAdicional
	}
	if plan.ValorOrcamento != nil {
		os.ValorOrcamento = *plan.ValorOrcamento
	}
}

func savingPercent(valorOrcamento, valorSuprimentos float64) float64 {
	if valorOrcamento <= 0 {
		return 0
	}
	return (valorOrcamento - valorSuprimentos) * 100 / valorOrcamento
}

// parseMonetary accepts UI-supplied numeric strings. Empty means zero (the
// legacy default); anything else must parse.
func parseMonetary(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, ErrInvalidMonetaryValue
	}
	return f, nil
}
