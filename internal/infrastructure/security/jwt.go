package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/ports"
)

const (
	// DefaultIssuer é o emissor gravado e exigido nos tokens
	DefaultIssuer = "auth-api"
	// DefaultExpiry é a validade de um token de acesso
	DefaultExpiry = 2 * time.Hour
)

var ErrEmptySecret = errors.New("jwt secret must not be empty")

// Claims são as claims do token de acesso: subject = email, id = ID do usuário
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// TokenService emite e valida tokens HS256
type TokenService struct {
	secret []byte
	issuer string
	expiry time.Duration
	now    func() time.Time
}

// Option customiza o TokenService
type Option func(*TokenService)

// WithClock substitui o relógio (usado em testes)
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) {
		s.now = now
	}
}

// NewTokenService cria um TokenService; issuer vazio usa "auth-api" e expiry zero usa 2h
func NewTokenService(secret, issuer string, expiry time.Duration, opts ...Option) (*TokenService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if issuer == "" {
		issuer = DefaultIssuer
	}
	if expiry <= 0 {
		expiry = DefaultExpiry
	}

	s := &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		expiry: expiry,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

var _ ports.TokenIssuer = (*TokenService)(nil)

// Generate emite um token para o usuário
func (s *TokenService) Generate(user *entities.User) (string, error) {
	issuedAt := s.now()

	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.Email.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.expiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("error while generating token: %w", err)
	}
	return token, nil
}

// Validate verifica assinatura, algoritmo, emissor e expiração
// Retorna o email do subject, ou "" para qualquer token inválido
func (s *TokenService) Validate(token string) string {
	claims, err := s.Parse(token)
	if err != nil {
		return ""
	}
	return claims.Subject
}

// Parse retorna as claims de um token válido
func (s *TokenService) Parse(token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.ExpiresAt == nil {
		return nil, jwt.ErrTokenRequiredClaimMissing
	}

	return claims, nil
}
