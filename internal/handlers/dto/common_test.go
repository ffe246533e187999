package dto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/fatec/pi-back/internal/domain/errors"
)

func TestErrorResponse_Render(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("escreve o problema com status, tipo e instância", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/patient/7", nil)
		c.Set(BaseURLContextKey, "http://api.test")

		NotFoundErrorResponseI18n(c, errors.ResourcePatient, 7).Render(c)

		if w.Code != http.StatusNotFound {
			t.Fatalf("esperava status 404, obteve %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != problems.ProblemMediaType {
			t.Errorf("content type inesperado: %s", ct)
		}

		var body problems.Problem
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("corpo inválido: %v", err)
		}
		if body.Type != "http://api.test"+errors.ProblemTypeNotFound {
			t.Errorf("tipo inesperado: %s", body.Type)
		}
		if body.Status != http.StatusNotFound || body.Instance != "/patient/7" {
			t.Errorf("problema inesperado: %+v", body)
		}
	})

	t.Run("erros de campo acompanham o problema", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", nil)

		ValidationErrorResponseI18n(c, http.StatusBadRequest, []ValidationError{{Field: "email", Tag: "required"}}).Render(c)

		var body ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("corpo inválido: %v", err)
		}
		if body.Status != http.StatusBadRequest || len(body.Errors) != 1 || body.Errors[0].Field != "email" {
			t.Errorf("resposta inesperada: %+v", body)
		}
		if body.Type != defaultBaseURL+errors.ProblemTypeValidation {
			t.Errorf("tipo inesperado: %s", body.Type)
		}
	})
}
