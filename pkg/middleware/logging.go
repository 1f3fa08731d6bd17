package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/roi-benchmark-api/pkg/apiErrors"
	"github.com/vfg2006/roi-benchmark-api/pkg/log"
)

// CorrelationIDHeader é aceito na requisição e devolvido na resposta
const CorrelationIDHeader = "X-Correlation-ID"

const (
	slowRequestThreshold = 500 * time.Millisecond
	unmatchedRoute       = "unmatched"
)

// Parâmetros de consulta do benchmark que vão para o log da requisição
var loggedQueryParams = []string{"business_type", "ad_method_id", "radius", "limit"}

// Parâmetros de caminho e o campo de log correspondente
var loggedPathParams = map[string]string{
	"id":   "business_id",
	"type": "cron_type",
}

type routeKey struct{}

// matchedRoute é preenchida por RecordRoute depois que o httprouter escolhe a rota
type matchedRoute struct {
	pattern string
	params  httprouter.Params
}

// RecordRoute anota o padrão da rota casada para o LoggingMiddleware.
// Deve envolver o handler registrado no httprouter, onde os parâmetros já estão no contexto.
func RecordRoute(pattern string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if route, ok := r.Context().Value(routeKey{}).(*matchedRoute); ok {
				route.pattern = pattern
				route.params = httprouter.ParamsFromContext(r.Context())
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LoggingMiddleware registra uma linha por requisição com a rota casada,
// os filtros do benchmark, o status e a duração
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(CorrelationIDHeader))
			route := &matchedRoute{}
			r = r.WithContext(context.WithValue(ctx, routeKey{}, route))

			w.Header().Set(CorrelationIDHeader, correlationID)
			recorder := newStatusRecorder(w)

			startTime := time.Now()
			next.ServeHTTP(recorder, r)
			elapsed := time.Since(startTime)

			fields := requestFields(r, route)
			fields[log.CorrelationIDField] = correlationID
			fields["status_code"] = recorder.statusCode
			fields["duration_ms"] = elapsed.Milliseconds()
			if elapsed > slowRequestThreshold {
				fields["slow"] = true
			}

			logger := log.L.WithFields(fields)
			switch {
			case recorder.statusCode >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case recorder.statusCode >= http.StatusBadRequest:
				logger.Warn("Requisição rejeitada")
			default:
				logger.Info("Requisição concluída")
			}
		})
	}
}

func requestFields(r *http.Request, route *matchedRoute) log.Fields {
	fields := log.Fields{"method": r.Method}

	if route.pattern == "" {
		fields["route"] = unmatchedRoute
		fields["path"] = r.URL.Path
	} else {
		fields["route"] = route.pattern
	}

	for _, param := range route.params {
		if field, ok := loggedPathParams[param.Key]; ok {
			fields[field] = param.Value
		}
	}

	query := r.URL.Query()
	for _, name := range loggedQueryParams {
		if value := query.Get(name); value != "" {
			fields[name] = value
		}
	}

	return fields
}

// statusRecorder guarda o status escrito pelo handler
type statusRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.wroteHeader {
		sr.statusCode = code
		sr.wroteHeader = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.wroteHeader = true
	return sr.ResponseWriter.Write(b)
}

// LogPanicMiddleware recupera panics dos handlers e responde SRV_001
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				stackTrace := string(debug.Stack())

				log.ForContext(r.Context()).WithFields(log.Fields{
					"error":       fmt.Sprint(rec),
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": stackTrace,
				}).Error("Panic ao processar requisição")

				// o filtro de desenvolvimento descarta stack_trace
				if log.IsDevelopment() {
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stackTrace)
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
