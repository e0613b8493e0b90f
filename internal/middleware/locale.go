package middleware

import (
	"github.com/SscSPs/portfolio_tracker/internal/i18n"
	"github.com/gin-gonic/gin"
)

// LocaleMiddleware stores the translator matching Accept-Language in the request context.
func LocaleMiddleware(catalog *i18n.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		trans := catalog.Translator(c.GetHeader("Accept-Language"))
		c.Header("Content-Language", trans.Locale())
		c.Request = c.Request.WithContext(i18n.WithTranslator(c.Request.Context(), trans))
		c.Next()
	}
}
