package middleware

import (
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
	"github.com/digisolai/digisol.ai-sub002/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

// quietPaths são logadas em debug para não poluir o log com probes
var quietPaths = map[string]struct{}{
	"/healthcheck": {},
}

// LoggingMiddleware registra cada requisição com correlation id, status, tamanho e duração.
// O correlation id recebido em X-Correlation-ID é reaproveitado e sempre devolvido.
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
			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"bytes":       lrw.written,
				"duration_ms": elapsed.Milliseconds(),
			})

			switch {
			case lrw.statusCode >= 500:
				logger.Error("http: request failed")
			case lrw.statusCode >= 400:
				logger.Warn("http: request rejected")
			case isQuiet(r.URL.Path):
				logger.Debug("http: request completed")
			default:
				logger.Info("http: request completed")
			}

			// streams (eventos do tema) ficam abertos por definição
			if elapsed > slowRequestThreshold && !isStream(lrw) {
				logger.Warnf("http: slow request (%s)", elapsed)
			}
		})
	}
}

func isQuiet(path string) bool {
	_, ok := quietPaths[path]
	return ok
}

func isStream(lrw *loggingResponseWriter) bool {
	return strings.HasPrefix(lrw.Header().Get("Content-Type"), "text/event-stream")
}

// loggingResponseWriter captura status e bytes escritos
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	written     int
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
	n, err := lrw.ResponseWriter.Write(b)
	lrw.written += n
	return n, err
}

// Flush mantém o suporte a streaming atrás do wrapper
func (lrw *loggingResponseWriter) Flush() {
	if flusher, ok := lrw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// LogPanicMiddleware converte panics em SRV_001 e registra o stack trace
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					stack := make([]byte, 4096)
					stack = stack[:runtime.Stack(stack, false)]

					log.ForContext(r.Context()).WithFields(log.Fields{
						"panic_error": err,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(stack),
					}).Error("http: panic recovered")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
