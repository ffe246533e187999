package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/domain/ports"
	"github.com/fatec/pi-back/internal/services"
)

// PrincipalContextKey é a chave do usuário autenticado no contexto do Gin
const PrincipalContextKey = "principal"

// publicPaths não passam pela resolução de token
var publicPaths = map[string]bool{
	"/auth/login":    true,
	"/auth/register": true,
}

// Authenticator resolve um token de acesso em um Principal (nil = anônimo)
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*services.Principal, error)
}

// Authenticate lê o bearer token e anexa o Principal ao contexto
// Nunca aborta: token ausente, inválido ou expirado segue como anônimo
func Authenticate(auth Authenticator, logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if publicPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		principal, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Error("failed to resolve token", "error", err, "request_id", c.GetString(RequestIDContextKey))
		}
		if principal != nil {
			c.Set(PrincipalContextKey, principal)
		}
		c.Next()
	}
}

// RequireAuthentication bloqueia requisições anônimas
// unauthorized escreve a resposta de erro e deve abortar a cadeia
func RequireAuthentication(unauthorized gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := PrincipalFrom(c); !ok {
			unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// PrincipalFrom retorna o usuário autenticado da requisição
func PrincipalFrom(c *gin.Context) (*services.Principal, bool) {
	value, exists := c.Get(PrincipalContextKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*services.Principal)
	return principal, ok && principal != nil
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
