package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// gatewayOrigins must always be allowed or the hosted checkout cannot
// post its callbacks back to us.
var gatewayOrigins = []string{
	"https://secure.payu.in",
	"https://test.payu.in",
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"https://tradingwalla.com",
	"https://www.tradingwalla.com",
}

// CORS builds the cross-origin policy from the configured origin list,
// falling back to the known frontend hosts when none is configured.
func CORS(allowedOrigins string) func(http.Handler) http.Handler {
	origins := defaultOrigins
	if allowedOrigins != "" {
		origins = nil
		for _, origin := range strings.Split(allowedOrigins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}
	origins = append(origins, gatewayOrigins...)

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
