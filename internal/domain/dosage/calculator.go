// Package dosage calcula a dosagem total de uma prescrição a partir do período
// de tratamento e da frequência de administração.
package dosage

import (
	"fmt"
	"time"

	"github.com/fatec/pi-back/internal/domain/entities"
	domainerrors "github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/domain/valueobjects"
)

const (
	hoursPerDay = 24
	daysPerWeek = 7
)

// Schedule descreve a janela de tratamento e a frequência de uma prescrição
// EndDate é inclusivo: o último dia de tratamento conta inteiro
type Schedule struct {
	StartDate      valueobjects.Date
	EndDate        valueobjects.Date
	FrequencyValue int
	FrequencyUnit  entities.FrequencyUnit
	Dosage         int
}

// ScheduleOf extrai o Schedule dos campos atuais de uma prescrição
func ScheduleOf(r *entities.RelationMP) Schedule {
	return Schedule{
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		FrequencyValue: r.FrequencyValue,
		FrequencyUnit:  r.FrequencyUnit,
		Dosage:         r.Dosage,
	}
}

// Calculate retorna a dosagem total: (span / frequência) * dose
// Datas invertidas produzem total negativo; não há validação de ordem.
func Calculate(s Schedule) (int, error) {
	if s.FrequencyValue <= 0 {
		return 0, fmt.Errorf("frequency value must be positive, got %d: %w", s.FrequencyValue, domainerrors.ErrInvalidArgument)
	}

	span, err := ElapsedUnits(s.StartDate, s.EndDate, s.FrequencyUnit)
	if err != nil {
		return 0, err
	}

	totalUnits := span / int64(s.FrequencyValue)
	return int(totalUnits) * s.Dosage, nil
}

// ElapsedUnits conta as unidades inteiras entre start e o dia seguinte a end
func ElapsedUnits(start, end valueobjects.Date, unit entities.FrequencyUnit) (int64, error) {
	endExclusive := end.AddDays(1)
	hours := int64(endExclusive.Midnight().Sub(start.Midnight()) / time.Hour)

	switch unit {
	case entities.FrequencyHours:
		return hours, nil
	case entities.FrequencyDays:
		return hours / hoursPerDay, nil
	case entities.FrequencyWeeks:
		return hours / hoursPerDay / daysPerWeek, nil
	default:
		return 0, fmt.Errorf("unknown frequency unit %q: %w", unit, domainerrors.ErrInvalidArgument)
	}
}

// Apply recalcula o TotalDosage da prescrição com os valores atuais
func Apply(r *entities.RelationMP) error {
	total, err := Calculate(ScheduleOf(r))
	if err != nil {
		return err
	}
	r.TotalDosage = total
	return nil
}
