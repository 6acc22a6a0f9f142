package theme

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ClientHint is the request header browsers use to report the
// environment color scheme.
const ClientHint = "Sec-CH-Prefers-Color-Scheme"

const contextKey = "theme"

// Middleware creates a Context for every request, backed by the
// preference cookie and the color scheme client hint.
func Middleware(opts Options, log zerolog.Logger) gin.HandlerFunc {
	opts = opts.withDefaults()
	return func(c *gin.Context) {
		c.Header("Accept-CH", ClientHint)
		c.Header("Critical-CH", ClientHint)
		c.Writer.Header().Add("Vary", ClientHint)
		c.Writer.Header().Add("Vary", "Cookie")
		c.Header("Cache-Control", "private")

		system, _ := ParseScheme(c.GetHeader(ClientHint))
		store := NewCookieStore(opts.StorageKey, c.Writer, c.Request)
		c.Set(contextKey, New(opts, store, system, log))
		c.Next()
	}
}

// FromContext returns the request's theme Context. Without the
// middleware it returns a default in-memory Context.
func FromContext(c *gin.Context) *Context {
	if v, ok := c.Get(contextKey); ok {
		if tc, ok := v.(*Context); ok {
			return tc
		}
	}
	return New(DefaultOptions(), nil, "", zerolog.Nop())
}

// SetHandler sets the preference named by the :preference path
// parameter and sends the client back to the page. Unknown names leave
// the preference as it was.
func SetHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := ParsePreference(c.Param("preference"))
		if err != nil {
			log.Debug().Err(err).Msg("ignoring theme change")
		} else {
			FromContext(c).SetPreference(p)
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}
