package mw

import (
	"net/http"

	"github.com/MrSnakeDoc/marketmarket/internal/logger"
	"github.com/MrSnakeDoc/marketmarket/internal/utils"
)

const forbiddenBody = `{"error":"forbidden"}` + "\n"

// OperatorsOnly keeps the operational endpoints (readiness, infra, metrics)
// reachable from the configured networks only. An empty list disables the
// check, which is the default for local runs.
func OperatorsOnly(cidrs []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	m := utils.NewIPMatcher(cidrs)
	if m.IsEmpty() {
		log.Debug("operator endpoints open to every client")
		return func(next http.Handler) http.Handler { return next }
	}
	log.Info("operator endpoints restricted",
		logger.Int("rules", len(cidrs)),
		logger.Bool("trust_proxy", trustProxy))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, trustProxy)
			if m.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}
			log.Warn("operator endpoint refused",
				logger.String("path", r.URL.Path),
				logger.String("client_ip", ip))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(forbiddenBody))
		})
	}
}
