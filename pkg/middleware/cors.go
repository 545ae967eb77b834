package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Cors libera as origens configuradas. Lista vazia ou "*" libera qualquer origem.
func Cors(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           86400, // Cache do CORS por 24 horas
	})
}
