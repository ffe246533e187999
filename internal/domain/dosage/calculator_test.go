package dosage

import (
	"errors"
	"testing"
	"time"

	"github.com/fatec/pi-back/internal/domain/entities"
	domainerrors "github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/domain/valueobjects"
)

func date(y int, m time.Month, d int) valueobjects.Date {
	return valueobjects.NewDate(y, m, d)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		want     int
	}{
		{
			name: "dias com intervalo inclusivo",
			schedule: Schedule{
				StartDate: date(2024, time.January, 1), EndDate: date(2024, time.January, 10),
				FrequencyValue: 2, FrequencyUnit: entities.FrequencyDays, Dosage: 5,
			},
			want: 25,
		},
		{
			name: "horas em um único dia",
			schedule: Schedule{
				StartDate: date(2024, time.January, 1), EndDate: date(2024, time.January, 1),
				FrequencyValue: 6, FrequencyUnit: entities.FrequencyHours, Dosage: 2,
			},
			want: 8,
		},
		{
			name: "semanas truncam dias restantes",
			schedule: Schedule{
				StartDate: date(2024, time.January, 1), EndDate: date(2024, time.January, 20),
				FrequencyValue: 1, FrequencyUnit: entities.FrequencyWeeks, Dosage: 3,
			},
			want: 6,
		},
		{
			name: "divisão inteira descarta a fração",
			schedule: Schedule{
				StartDate: date(2024, time.January, 1), EndDate: date(2024, time.January, 10),
				FrequencyValue: 3, FrequencyUnit: entities.FrequencyDays, Dosage: 1,
			},
			want: 3,
		},
		{
			name: "atravessa ano bissexto",
			schedule: Schedule{
				StartDate: date(2024, time.February, 28), EndDate: date(2024, time.March, 1),
				FrequencyValue: 12, FrequencyUnit: entities.FrequencyHours, Dosage: 1,
			},
			want: 6,
		},
		{
			name: "datas invertidas propagam total negativo",
			schedule: Schedule{
				StartDate: date(2024, time.January, 10), EndDate: date(2024, time.January, 1),
				FrequencyValue: 1, FrequencyUnit: entities.FrequencyDays, Dosage: 2,
			},
			want: -16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.schedule)
			if err != nil {
				t.Fatalf("esperava sucesso, obteve erro: %v", err)
			}
			if got != tt.want {
				t.Errorf("esperava %d, obteve %d", tt.want, got)
			}
		})
	}
}

func TestCalculate_InvalidArgument(t *testing.T) {
	t.Run("frequência zero é rejeitada", func(t *testing.T) {
		_, err := Calculate(Schedule{
			StartDate: date(2024, time.January, 1), EndDate: date(2024, time.January, 10),
			FrequencyValue: 0, FrequencyUnit: entities.FrequencyDays, Dosage: 5,
		})
		if !errors.Is(err, domainerrors.ErrInvalidArgument) {
			t.Errorf("esperava ErrInvalidArgument, obteve %v", err)
		}
	})

	t.Run("unidade desconhecida é rejeitada", func(t *testing.T) {
		_, err := Calculate(Schedule{
			StartDate: date(2024, time.January, 1), EndDate: date(2024, time.January, 10),
			FrequencyValue: 1, FrequencyUnit: entities.FrequencyUnit("MONTHS"), Dosage: 5,
		})
		if !errors.Is(err, domainerrors.ErrInvalidArgument) {
			t.Errorf("esperava ErrInvalidArgument, obteve %v", err)
		}
	})
}

func TestApply(t *testing.T) {
	r := &entities.RelationMP{
		StartDate:      date(2024, time.January, 1),
		EndDate:        date(2024, time.January, 10),
		FrequencyValue: 2,
		FrequencyUnit:  entities.FrequencyDays,
		Dosage:         5,
		TotalDosage:    999,
	}

	if err := Apply(r); err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}
	if r.TotalDosage != 25 {
		t.Errorf("esperava 25, obteve %d", r.TotalDosage)
	}
}
