package middleware

import (
	"net/http"
	"strings"
)

// CORSConfig содержит настройки CORS middleware
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// CORSMiddleware выставляет CORS заголовки и отвечает на preflight запросы
func CORSMiddleware(cfg CORSConfig) func(http.Handler) http.Handler {
	allowedOrigins := make(map[string]struct{})
	allowAll := false
	for _, origin := range cfg.AllowedOrigins {
		for _, o := range strings.Split(origin, ",") {
			o = strings.TrimSpace(o)
			if o == "*" {
				allowAll = true
			}
			if o != "" {
				allowedOrigins[o] = struct{}{}
			}
		}
	}

	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				_, ok := allowedOrigins[origin]
				if allowAll || ok {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Methods", methods)
					w.Header().Set("Access-Control-Allow-Headers", headers)
					w.Header().Set("Vary", "Origin")
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
