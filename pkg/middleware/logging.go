package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
	"github.com/casaalves/backoffice-api/pkg/apiErrors"
	"github.com/casaalves/backoffice-api/pkg/log"
)

const (
	slowRequestThreshold = 500 * time.Millisecond
	CorrelationIDHeader  = "X-Correlation-ID"
)

// LoggingMiddleware gera o ID de correlação, devolvido no cabeçalho para o
// front anexar a relatos de erro, e registra o fim de cada requisição
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rw, r)

			elapsed := time.Since(start)
			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":         r.Method,
				"path":           r.URL.Path,
				"query":          r.URL.RawQuery,
				"status_code":    rw.status,
				"duration_ms":    elapsed.Milliseconds(),
				"response_bytes": rw.written,
				"remote_addr":    r.RemoteAddr,
			})

			msg := "Requisição finalizada"
			if log.IsDevelopment() {
				msg = fmt.Sprintf("%s %s -> %d em %s", r.Method, r.URL.Path, rw.status, formatDuration(elapsed))
			}

			switch {
			case rw.status >= http.StatusInternalServerError:
				logger.Error(msg)
			case rw.status >= http.StatusBadRequest:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta (backend Casa Alves?): %s", formatDuration(elapsed))
			}
		})
	}
}

// NotificationsMiddleware abre o registro de toasts da requisição
func NotificationsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, rec := notifying.WithRecorder(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))

			if n := len(rec.Notifications()); n > 0 {
				log.ForContext(ctx).Debugf("%d notificação(ões) enviadas em %s", n, r.URL.Path)
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

// statusRecorder guarda o status e o tamanho do corpo enviado
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	sr.written += n
	return n, err
}

// LogPanicMiddleware converte panics em resposta 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackTrace := string(stack[:runtime.Stack(stack, false)])

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  err,
						"method": r.Method,
						"path":   r.URL.Path,
					})
					if log.IsDevelopment() {
						logger.Error("Panic na requisição")
						fmt.Fprintf(os.Stderr, "%s\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("Panic na requisição")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
