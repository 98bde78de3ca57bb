package repository

import (
	"strings"

	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
)

// A migration is an idempotent per-record fixup applied at load time. Each
// record carries the version of the last step applied to it, so a step never
// reapplies once the rewritten collection is persisted.
type migration struct {
	version int
	name    string
	apply   func(entities.ServiceOrder) entities.ServiceOrder
}

// serviceOrderMigrations must stay ordered by version, ascending.
var serviceOrderMigrations = []migration{
	{
		version: 1,
		name:    "mecanica-responsavel-em-handover",
		apply:   migrateMecanicaResponsavelEM,
	},
}

const currentSchemaVersion = 1

// Engineering ownership of the mechanical discipline changed hands; records
// written before the handover still carry the previous owners.
var supersededMecanicaOwners = []string{
	"Carlos Menezes",
	"Paulo Siqueira",
	"P. Siqueira",
}

const currentMecanicaOwner = "Ricardo Tavares"

func migrateMecanicaResponsavelEM(os entities.ServiceOrder) entities.ServiceOrder {
	if !strings.EqualFold(strings.TrimSpace(os.Disciplina), "mecanica") {
		return os
	}
	owner := strings.TrimSpace(os.ResponsavelEM)
	for _, superseded := range supersededMecanicaOwners {
		if strings.EqualFold(owner, superseded) {
			os.ResponsavelEM = currentMecanicaOwner
			return os
		}
	}
	return os
}

// migrateServiceOrder applies the pending migration steps and reports
// whether the record changed.
func migrateServiceOrder(os entities.ServiceOrder) (entities.ServiceOrder, bool) {
	changed := false
	for _, m := range serviceOrderMigrations {
		if os.SchemaVersion >= m.version {
			continue
		}
		os = m.apply(os)
		os.SchemaVersion = m.version
		changed = true
	}
	return os, changed
}
