package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDHeader заголовок с ID запроса в ответе
const RequestIDHeader = "X-Request-ID"

type Logger interface {
	Info(format string, v ...interface{})
}

// requestID возвращает trace ID из OpenTelemetry контекста, если запрос
// пришел с валидным span. Иначе генерирует новый UUID.
func requestID(r *http.Request) string {
	if sc := trace.SpanContextFromContext(r.Context()); sc.IsValid() {
		return sc.TraceID().String()
	}
	return uuid.NewString()
}

// RequestLog пишет access-лог и проставляет X-Request-ID в ответ
func RequestLog(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := requestID(r)
			w.Header().Set(RequestIDHeader, reqID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			log.Info("access: method=%s path=%s status=%d request_id=%s latency=%s",
				r.Method, r.URL.Path, rec.status, reqID, time.Since(start))
		})
	}
}
