// security.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/unrolled/secure"
)

// Security — заголовки безопасности и CSP для всех ответов
type Security struct {
	s *secure.Secure
}

// CSP: three.js грузится с jsDelivr, остальное только со своего домена.
var csp = strings.Join([]string{
	"default-src 'self'",
	"base-uri 'self'",
	"object-src 'none'",
	"img-src 'self' data:",
	"style-src 'self'",
	"script-src 'self' https://cdn.jsdelivr.net",
	"connect-src 'self'",
	"form-action 'self'",
	"frame-ancestors 'none'",
}, "; ")

// NewSecurity — HSTS только в prod (за HTTPS-прокси)
func NewSecurity(isProd bool) Security {
	return Security{s: secure.New(secure.Options{
		ContentSecurityPolicy: csp,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		PermissionsPolicy:     "camera=(), microphone=(), geolocation=(), payment=()",
		STSSeconds:            31536000,
		STSIncludeSubdomains:  true,
		STSPreload:            true,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:         !isProd,
	})}
}

func (s Security) Handler(next http.Handler) http.Handler {
	return s.s.Handler(next)
}
