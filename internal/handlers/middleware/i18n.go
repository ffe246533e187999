package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// Language detecta o idioma da requisição e disponibiliza o serviço de tradução
// Prioridade:
// 1. Query parameter ?lang=pt-BR
// 2. Accept-Language, respeitando os pesos q
// 3. Idioma padrão
func Language(svc *i18n.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if !svc.IsLanguageSupported(lang) {
			lang = negotiateLanguage(svc, c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = svc.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, svc)
		c.Next()
	}
}

// LanguageFrom retorna o idioma detectado; vazio se o middleware não rodou
func LanguageFrom(c *gin.Context) string {
	return c.GetString(LanguageContextKey)
}

// TranslatorFrom retorna o serviço i18n da requisição, se houver
func TranslatorFrom(c *gin.Context) (*i18n.Service, bool) {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return nil, false
	}
	svc, ok := value.(*i18n.Service)
	return svc, ok
}

type weightedLanguage struct {
	tag    string
	weight float64
}

// negotiateLanguage escolhe o idioma suportado de maior peso
// Exemplo: "fr,pt-BR;q=0.9,en;q=0.8" -> "pt-BR"
func negotiateLanguage(svc *i18n.Service, header string) string {
	if header == "" {
		return ""
	}

	var candidates []weightedLanguage
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag == "" || tag == "*" {
			continue
		}
		weight := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(q, 64)
			if err != nil || parsed <= 0 {
				continue
			}
			weight = parsed
		}
		candidates = append(candidates, weightedLanguage{tag: tag, weight: weight})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	for _, candidate := range candidates {
		if svc.IsLanguageSupported(candidate.tag) {
			return candidate.tag
		}
		// pt-BR -> pt
		if base, _, found := strings.Cut(candidate.tag, "-"); found && svc.IsLanguageSupported(base) {
			return base
		}
	}
	return ""
}
