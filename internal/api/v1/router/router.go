package router

import (
	"net/http"

	"perfsmell/internal/api/v1/handler"
	"perfsmell/internal/api/v1/middleware"
	"perfsmell/internal/config"
	"perfsmell/internal/log"
	"perfsmell/pkg/response"
)

const (
	appName    = "perfsmell"
	apiVersion = "v1"
	BasePath   = "/" + appName + "/api/" + apiVersion
)

// New wires the API routes and middleware. mcpHandler may be nil, in which
// case the MCP endpoint is not mounted.
func New(cfg *config.Config, analyzer handler.PageAnalyzer, mcpHandler http.Handler) http.Handler {
	mux := http.NewServeMux()

	protect := func(h http.Handler) http.Handler { return h }
	if cfg.BasicAuthEnabled() {
		protect = middleware.BasicAuth(cfg.BasicAuthUser, cfg.BasicAuthPass)
	}

	var paths []string
	register := func(path string, h http.Handler) {
		paths = append(paths, BasePath+path)
		mux.Handle(BasePath+path, h)
	}

	register("/health", http.HandlerFunc(handler.HealthCheckHandler))
	register("/analyze", protect(handler.AnalyzePageHandler(analyzer)))
	if mcpHandler != nil {
		register("/mcp", protect(mcpHandler))
	}

	return middleware.RecoverPanic(
		log.Logger,
		func(w http.ResponseWriter, r *http.Request, err error) {
			response.Error(w, http.StatusInternalServerError, response.CodeInternal, "Internal Server Error")
		},
		middleware.SecureHeaders(
			middleware.Logging(
				middleware.Metrics(paths...)(
					middleware.CORS(
						middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)(mux),
					),
				),
			),
		),
	)
}

func NewMetricsRouter() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler.MetricsHandler())
	return mux
}
