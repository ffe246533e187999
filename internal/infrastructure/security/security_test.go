package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/valueobjects"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func testUser(t *testing.T) *entities.User {
	t.Helper()
	email, err := valueobjects.NewEmail("ana@example.com")
	if err != nil {
		t.Fatalf("email inválido: %v", err)
	}
	return &entities.User{ID: 3, Email: email}
}

func TestTokenService(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: issuedAt}

	svc, err := NewTokenService("test-secret", "", 0, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}

	token, err := svc.Generate(testUser(t))
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	t.Run("válido antes de 2h", func(t *testing.T) {
		clock.t = issuedAt.Add(2*time.Hour - time.Minute)

		if got := svc.Validate(token); got != "ana@example.com" {
			t.Errorf("esperava subject 'ana@example.com', obteve '%s'", got)
		}

		claims, err := svc.Parse(token)
		if err != nil {
			t.Fatalf("erro ao interpretar token: %v", err)
		}
		if claims.UserID != 3 || claims.Issuer != "auth-api" {
			t.Errorf("claims inesperadas: %+v", claims)
		}
	})

	t.Run("subject vazio após 2h", func(t *testing.T) {
		clock.t = issuedAt.Add(2*time.Hour + time.Minute)

		if got := svc.Validate(token); got != "" {
			t.Errorf("esperava subject vazio, obteve '%s'", got)
		}
	})

	t.Run("rejeita outro emissor", func(t *testing.T) {
		clock.t = issuedAt

		other, _ := NewTokenService("test-secret", "other-api", 0, WithClock(clock.Now))
		foreign, _ := other.Generate(testUser(t))

		if got := svc.Validate(foreign); got != "" {
			t.Errorf("esperava subject vazio, obteve '%s'", got)
		}
	})

	t.Run("rejeita outra chave", func(t *testing.T) {
		clock.t = issuedAt

		other, _ := NewTokenService("another-secret", "", 0, WithClock(clock.Now))
		forged, _ := other.Generate(testUser(t))

		if got := svc.Validate(forged); got != "" {
			t.Errorf("esperava subject vazio, obteve '%s'", got)
		}
	})

	t.Run("rejeita token sem expiração", func(t *testing.T) {
		clock.t = issuedAt

		noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Issuer:  "auth-api",
			Subject: "ana@example.com",
		})
		raw, _ := noExp.SignedString([]byte("test-secret"))

		if got := svc.Validate(raw); got != "" {
			t.Errorf("esperava subject vazio, obteve '%s'", got)
		}
	})

	t.Run("rejeita lixo", func(t *testing.T) {
		if got := svc.Validate("not-a-token"); got != "" {
			t.Errorf("esperava subject vazio, obteve '%s'", got)
		}
	})
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	if _, err := NewTokenService("", "", 0); err != ErrEmptySecret {
		t.Errorf("esperava ErrEmptySecret, obteve %v", err)
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("segredo123")
	if err != nil {
		t.Fatalf("erro ao gerar hash: %v", err)
	}
	if hash == "segredo123" {
		t.Fatal("hash não pode ser igual à senha")
	}
	if !h.Compare(hash, "segredo123") {
		t.Error("esperava senha correta aceita")
	}
	if h.Compare(hash, "errada") {
		t.Error("esperava senha incorreta rejeitada")
	}
}
