package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/vfg2006/growth-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/growth-dashboard-api/pkg/log"
	"github.com/vfg2006/growth-dashboard-api/pkg/metrics"
)

const slowRequestThreshold = 500 * time.Millisecond

// knownPaths são as rotas com rótulo próprio nas métricas
var knownPaths = map[string]bool{
	"/health":                 true,
	"/healthcheck":            true,
	"/metrics":                true,
	"/api/metrics":            true,
	"/api/metrics/cumulative": true,
	"/api/export/run":         true,
	"/api/export/status":      true,
}

// apiNotFoundPath agrupa os caminhos de /api sem rota registrada
const apiNotFoundPath = "api_not_found"

// LoggingMiddleware registra cada requisição HTTP e alimenta as métricas Prometheus
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(log.CorrelationIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(log.CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			metrics.ObserveHTTPRequest(r.Method, MetricsPath(r.URL.Path), lrw.statusCode, elapsed)

			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration":    formatDuration(elapsed),
			})
			if !log.IsDevelopment() {
				logger = logger.WithFields(log.Fields{
					"remote_addr": r.RemoteAddr,
					"query":       r.URL.RawQuery,
					"user_agent":  r.UserAgent(),
				})
			}

			switch {
			case lrw.statusCode >= 500:
				logger.Error("http: requisição finalizada com erro")
			case lrw.statusCode >= 400:
				logger.Warn("http: requisição finalizada com aviso")
			default:
				logger.Info("http: requisição finalizada")
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("http: requisição lenta (%dms)", elapsed.Milliseconds())
			}
		})
	}
}

// MetricsPath limita a cardinalidade do rótulo de rota: só as rotas conhecidas
// mantêm o caminho, o resto de /api vira "api_not_found" e o do frontend "spa"
func MetricsPath(path string) string {
	switch {
	case knownPaths[path]:
		return path
	case path == "/api" || strings.HasPrefix(path, "/api/"):
		return apiNotFoundPath
	default:
		return "spa"
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}

// loggingResponseWriter captura o status code da resposta
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	if !lrw.wroteHeader {
		lrw.statusCode = code
		lrw.wroteHeader = true
	}
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	lrw.wroteHeader = true
	return lrw.ResponseWriter.Write(b)
}

// LogPanicMiddleware recupera panics dos handlers e responde 500 em JSON
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)

					log.ForContext(r.Context()).WithFields(log.Fields{
						"panic_error": err,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(stack[:stackSize]),
					}).Error("http: panic não tratado")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
