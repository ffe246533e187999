package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/handlers/middleware"
)

// fallbackLanguage é usado quando o middleware de idioma não rodou
const fallbackLanguage = "pt-BR"

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "validation.min", map[string]interface{}{"Param": "6"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	service, ok := middleware.TranslatorFrom(c)
	if !ok {
		return key
	}
	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	if lang := middleware.LanguageFrom(c); lang != "" {
		return lang
	}
	return fallbackLanguage
}
