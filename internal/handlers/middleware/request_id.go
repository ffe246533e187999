package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fatec/pi-back/internal/domain/ports"
)

const (
	// RequestIDHeader é o header que propaga o ID da requisição
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey é a chave do ID da requisição no contexto do Gin
	RequestIDContextKey = "request_id"
)

// RequestID reaproveita o X-Request-ID recebido ou gera um novo UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger registra método, rota, status e duração de cada requisição
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := logger.With(
			"request_id", c.GetString(RequestIDContextKey),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("request failed", "errors", c.Errors.String())
		case status >= 400:
			log.Warn("request rejected")
		default:
			log.Info("request handled")
		}
	}
}
