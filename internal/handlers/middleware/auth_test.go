package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/infrastructure/logging"
	"github.com/fatec/pi-back/internal/services"
)

type stubAuthenticator struct {
	tokens map[string]*services.Principal
	calls  int
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (*services.Principal, error) {
	s.calls++
	return s.tokens[token], nil
}

func newAuthRouter(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Authenticate(auth, logging.New(io.Discard, "error", "text")))

	router.POST("/auth/login", func(c *gin.Context) {
		_, ok := PrincipalFrom(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	protected := router.Group("/patient")
	protected.Use(RequireAuthentication(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusUnauthorized)
	}))
	protected.GET("", func(c *gin.Context) {
		principal, _ := PrincipalFrom(c)
		c.String(http.StatusOK, principal.Authority)
	})
	return router
}

func TestAuthenticate(t *testing.T) {
	auth := &stubAuthenticator{tokens: map[string]*services.Principal{
		"good": {UserID: 1, Email: "ana@example.com", Authority: "ROLE_ADMIN"},
	}}
	router := newAuthRouter(auth)

	tests := []struct {
		name     string
		header   string
		status   int
		expected string
	}{
		{"token válido", "Bearer good", http.StatusOK, "ROLE_ADMIN"},
		{"esquema case-insensitive", "bearer good", http.StatusOK, "ROLE_ADMIN"},
		{"token inválido vira anônimo", "Bearer bad", http.StatusUnauthorized, ""},
		{"sem header", "", http.StatusUnauthorized, ""},
		{"esquema errado", "Basic good", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/patient", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("esperava status %d, obteve %d", tt.status, w.Code)
			}
			if w.Body.String() != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, w.Body.String())
			}
		})
	}
}

func TestAuthenticate_SkipsPublicPaths(t *testing.T) {
	auth := &stubAuthenticator{tokens: map[string]*services.Principal{
		"good": {UserID: 1},
	}}
	router := newAuthRouter(auth)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("esperava status 200, obteve %d", w.Code)
	}
	if auth.calls != 0 {
		t.Errorf("login não deveria resolver tokens, houve %d chamadas", auth.calls)
	}
	if expected := `{"authenticated":false}`; w.Body.String() != expected {
		t.Errorf("esperava '%s', obteve '%s'", expected, w.Body.String())
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(logging.New(io.Discard, "debug", "json")))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDContextKey))
	})

	t.Run("gera um ID quando ausente", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		if id == "" || id != w.Body.String() {
			t.Errorf("esperava o mesmo ID no header e no contexto, obteve '%s' e '%s'", id, w.Body.String())
		}
	})

	t.Run("reaproveita um ID válido", func(t *testing.T) {
		const incoming = "6f1c2a7e-3b0d-4c55-9e8f-0a1b2c3d4e5f"
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, incoming)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != incoming {
			t.Errorf("esperava '%s', obteve '%s'", incoming, got)
		}
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS("http://localhost:3000, https://app.example.com"))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("esperava status 204 no preflight, obteve %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("origem inesperada: '%s'", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("esperava credenciais liberadas, obteve '%s'", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("esperava status 403 para origem não permitida, obteve %d", w.Code)
	}
}
