package valueobjects

import (
	"bytes"
	"encoding/json"
	"time"
)

// DateLayout é o formato de datas de calendário na API (ISO-8601, sem horário)
const DateLayout = "2006-01-02"

// Date é uma data de calendário (sem horário nem fuso), armazenada à meia-noite UTC
type Date struct {
	t time.Time
}

// NewDate cria uma Date a partir de ano, mês e dia
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf descarta o horário de t mantendo o dia do calendário no fuso de t
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate interpreta "2006-01-02"
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// AddDays retorna a data deslocada em n dias
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Midnight retorna o instante de início do dia (UTC)
func (d Date) Midnight() time.Time {
	return d.t
}

// Before indica se d é anterior a other
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// IsZero indica se a data não foi informada
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
