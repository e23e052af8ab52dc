package mw

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/marketmarket/internal/logger"
	"github.com/MrSnakeDoc/marketmarket/internal/utils"
)

// responseRecorder remembers what the handler sent.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *responseRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Log writes one access line per request. Server errors are logged at
// error level and client errors at warn, so rejected commands stand out.
// Session and listing ids are read from the matched route.
func Log(loggerClient logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			fields := append([]logger.Field{
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.Int("status", rec.status),
				logger.Int("bytes", rec.bytes),
				logger.Duration("duration", time.Since(start)),
				logger.String("remote_ip", utils.ParseHostNoPort(r.RemoteAddr)),
				logger.String("request_id", middleware.GetReqID(r.Context())),
			}, routeFields(r)...)

			switch {
			case rec.status >= http.StatusInternalServerError:
				loggerClient.Error("http_request", fields...)
			case rec.status >= http.StatusBadRequest:
				loggerClient.Warn("http_request", fields...)
			default:
				loggerClient.Info("http_request", fields...)
			}
		})
	}
}

// routeFields extracts the ids captured by the router. chi fills the route
// context while routing, so it is complete once the handler returned.
func routeFields(r *http.Request) []logger.Field {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}
	var fields []logger.Field
	if pattern := rctx.RoutePattern(); pattern != "" {
		fields = append(fields, logger.String("route", pattern))
	}
	if id := rctx.URLParam("id"); id != "" {
		fields = append(fields, logger.String("session_id", id))
	}
	if id := rctx.URLParam("listingID"); id != "" {
		fields = append(fields, logger.String("listing_id", id))
	}
	return fields
}
