package valueobjects

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	t.Run("serializa e interpreta no formato ISO", func(t *testing.T) {
		var payload struct {
			Start Date  `json:"start"`
			End   *Date `json:"end"`
		}

		if err := json.Unmarshal([]byte(`{"start":"2024-01-10","end":null}`), &payload); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if payload.Start != NewDate(2024, time.January, 10) {
			t.Errorf("esperava 2024-01-10, obteve %s", payload.Start)
		}
		if payload.End != nil {
			t.Errorf("esperava end nulo, obteve %v", payload.End)
		}

		out, err := json.Marshal(payload.Start)
		if err != nil {
			t.Fatalf("erro ao serializar: %v", err)
		}
		if string(out) != `"2024-01-10"` {
			t.Errorf("esperava \"2024-01-10\", obteve %s", out)
		}
	})

	t.Run("rejeita formato inválido", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"10/01/2024"`), &d); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("AddDays atravessa o fim do mês", func(t *testing.T) {
		d := NewDate(2024, time.January, 31).AddDays(1)
		if d.String() != "2024-02-01" {
			t.Errorf("esperava 2024-02-01, obteve %s", d)
		}
	})

	t.Run("DateOf descarta o horário", func(t *testing.T) {
		d := DateOf(time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC))
		if d != NewDate(2024, time.March, 5) {
			t.Errorf("esperava 2024-03-05, obteve %s", d)
		}
	})
}

func TestNewEmail(t *testing.T) {
	t.Run("normaliza caixa e espaços", func(t *testing.T) {
		email, err := NewEmail("  Maria@Example.COM ")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if email.String() != "maria@example.com" {
			t.Errorf("esperava 'maria@example.com', obteve '%s'", email.String())
		}
	})

	t.Run("rejeita email sem domínio", func(t *testing.T) {
		if _, err := NewEmail("maria@"); err != ErrInvalidEmail {
			t.Errorf("esperava ErrInvalidEmail, obteve %v", err)
		}
	})
}
