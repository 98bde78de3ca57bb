package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidMes          = errors.New("invalid mes")
	ErrInvalidHHApropriado = errors.New("invalid hhApropriado")
	ErrEmptyLaborBatch     = errors.New("empty labor history batch")
)

// Monthly labor-hour quota baseline: 190 appropriable hours per head per
// month, with a ramp-up target of 70% in Q1 and 80% afterwards.
const (
	monthlyBaselineHH = 190.0
	targetPctQ1       = 70.0
	targetPctRest     = 80.0
)

// ILaborHistoryUseCase ingests appropriated-hours records for the dashboard
// rollup. Records are append-only; the only removal is the bulk reset.
//
// Operation mapping to the legacy surface:
//   - addHHHistorico => Add
//   - addMultipleHHHistoricos => AddBatch
//   - clearHHHistoricos => ClearAll

type ILaborHistoryUseCase interface {
	Add(ctx context.Context, rec entities.MonthlyLaborAggregate) (entities.MonthlyLaborAggregate, error)
	AddBatch(ctx context.Context, recs []entities.MonthlyLaborAggregate) ([]entities.MonthlyLaborAggregate, error)
	List(ctx context.Context) ([]entities.MonthlyLaborAggregate, error)
	ClearAll(ctx context.Context) error
}

type LaborHistoryUseCase struct {
	repo interfaces.ILaborHistoryRepository
}

var _ ILaborHistoryUseCase = (*LaborHistoryUseCase)(nil)

func NewLaborHistoryUseCase(repo interfaces.ILaborHistoryRepository) *LaborHistoryUseCase {
	return &LaborHistoryUseCase{repo: repo}
}

func (u *LaborHistoryUseCase) Add(ctx context.Context, rec entities.MonthlyLaborAggregate) (entities.MonthlyLaborAggregate, error) {
	rec, err := prepareLaborRecord(rec)
	if err != nil {
		return entities.MonthlyLaborAggregate{}, err
	}
	created, err := u.repo.Add(ctx, rec)
	if err != nil {
		return entities.MonthlyLaborAggregate{}, err
	}
	log.Printf("[hh][usecase] appended mes=%d cca=%s disciplina=%s percentual=%.1f status=%s", created.Mes, created.CCA, created.Disciplina, created.PercentualMeta, created.StatusMeta)
	return created, nil
}

func (u *LaborHistoryUseCase) AddBatch(ctx context.Context, recs []entities.MonthlyLaborAggregate) ([]entities.MonthlyLaborAggregate, error) {
	if len(recs) == 0 {
		return nil, ErrEmptyLaborBatch
	}
	prepared := make([]entities.MonthlyLaborAggregate, 0, len(recs))
	for _, rec := range recs {
		p, err := prepareLaborRecord(rec)
		if err != nil {
			return nil, err
		}
		prepared = append(prepared, p)
	}
	created, err := u.repo.AddBatch(ctx, prepared)
	if err != nil {
		return nil, err
	}
	log.Printf("[hh][usecase] appended batch size=%d", len(created))
	return created, nil
}

func (u *LaborHistoryUseCase) List(ctx context.Context) ([]entities.MonthlyLaborAggregate, error) {
	return u.repo.List(ctx)
}

func (u *LaborHistoryUseCase) ClearAll(ctx context.Context) error {
	log.Printf("[hh][usecase] clearing hh_historicos collection")
	return u.repo.Clear(ctx)
}

// prepareLaborRecord validates the caller-supplied fields and recomputes the
// derived quota fields; stored values for them are ignored.
func prepareLaborRecord(rec entities.MonthlyLaborAggregate) (entities.MonthlyLaborAggregate, error) {
	if rec.Mes < 1 || rec.Mes > 12 {
		return entities.MonthlyLaborAggregate{}, ErrInvalidMes
	}
	if rec.HHApropriado < 0 {
		return entities.MonthlyLaborAggregate{}, ErrInvalidHHApropriado
	}
	rec.CCA = strings.TrimSpace(rec.CCA)
	rec.Cliente = strings.TrimSpace(rec.Cliente)
	rec.Disciplina = strings.TrimSpace(rec.Disciplina)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	targetPct := targetPctRest
	if rec.Mes <= 3 {
		targetPct = targetPctQ1
	}
	rec.MetaMensal = monthlyBaselineHH * targetPct / 100
	rec.PercentualMeta = rec.HHApropriado * 100 / monthlyBaselineHH
	if rec.PercentualMeta >= targetPct {
		rec.StatusMeta = entities.MetaStatusAtingido
	} else {
		rec.StatusMeta = entities.MetaStatusNaoAtingido
	}
	return rec, nil
}
