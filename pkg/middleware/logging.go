package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vfg2006/customer-profile-api/pkg/apiErrors"
	"github.com/vfg2006/customer-profile-api/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o identificador usado nos logs da requisição
const CorrelationIDHeader = "X-Correlation-ID"

// Requisições acima deste tempo são registradas como lentas
const slowRequestThreshold = 500 * time.Millisecond

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "customer_profile_http_request_duration_seconds",
	Help:    "Duração das requisições HTTP por método e status",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "status"})

// LoggingMiddleware registra cada requisição HTTP e mede sua duração
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			lrw := newStatusRecorder(w)
			startedAt := time.Now()

			if log.IsDevelopment() {
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("→ Iniciando requisição")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startedAt)
			requestDuration.WithLabelValues(r.Method, strconv.Itoa(lrw.statusCode)).Observe(elapsed.Seconds())

			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status_code":    lrw.statusCode,
				"duration_ms":    elapsed.Milliseconds(),
			})

			message := "Requisição finalizada"
			if log.IsDevelopment() {
				message = fmt.Sprintf("Completada em %s", formatDuration(elapsed))
			}

			switch {
			case lrw.statusCode >= http.StatusInternalServerError:
				logger.Error(message)
			case lrw.statusCode >= http.StatusBadRequest:
				logger.Warn(message)
			default:
				logger.Info(message)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", formatDuration(elapsed))
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusRecorder guarda o status code escrito pelo handler
type statusRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.wroteHeader {
		return
	}
	sr.statusCode = code
	sr.wroteHeader = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.wroteHeader = true
	return sr.ResponseWriter.Write(b)
}

// LogPanicMiddleware recupera panics dos handlers e responde com erro interno
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				logger := log.L.WithFields(log.Fields{
					"correlation_id": log.GetCorrelationID(r.Context()),
					"panic_error":    recovered,
					"method":         r.Method,
					"path":           r.URL.Path,
				})

				if log.IsDevelopment() {
					logger.Error("❌ PANIC na aplicação")
					fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stack)
				} else {
					logger.WithField("stack_trace", string(stack)).Error("Erro não tratado na aplicação")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
