package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"perfsmell/internal/log"
	"perfsmell/internal/model"
	"perfsmell/internal/service"
	"perfsmell/internal/util"
	"perfsmell/pkg/response"
)

const maxRequestBody = 64 << 10

// PageAnalyzer is the single operation the API needs from the service layer.
type PageAnalyzer interface {
	AnalyzePage(ctx context.Context, targetURL string) (*model.PerformanceAnalysis, error)
}

func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	response.Success(w, resp, "")
}

// AnalyzePageHandler accepts GET ?url=... or POST {"url": "..."}.
func AnalyzePageHandler(analyzer PageAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var targetURL string
		switch r.Method {
		case http.MethodGet:
			targetURL = r.URL.Query().Get("url")
		case http.MethodPost:
			var req model.AnalyzeRequest
			body := io.LimitReader(r.Body, maxRequestBody)
			if err := json.NewDecoder(body).Decode(&req); err != nil {
				response.Error(w, http.StatusBadRequest, response.CodeMalformedInput, "request body must be JSON like {\"url\": \"https://...\"}")
				return
			}
			targetURL = req.URL
		default:
			w.Header().Set("Allow", "GET, POST")
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		targetURL = strings.TrimSpace(targetURL)
		if targetURL == "" {
			response.Error(w, http.StatusBadRequest, response.CodeMalformedInput, "missing 'url'")
			return
		}

		if !util.IsValidURL(targetURL) {
			response.Error(w, http.StatusBadRequest, response.CodeMalformedInput, "invalid 'url' format, expected an absolute http(s) URL")
			return
		}

		result, err := analyzer.AnalyzePage(r.Context(), targetURL)
		if err != nil {
			statusCode, code := classifyError(err)
			if statusCode >= http.StatusInternalServerError {
				log.Logger.Warn("analysis failed",
					zap.String("url", targetURL),
					zap.Int("status_code", statusCode),
					zap.Error(err),
				)
			}
			response.Error(w, statusCode, code, fmt.Sprintf("failed to analyze page: %v", err))
			return
		}

		if result == nil {
			response.Error(w, http.StatusInternalServerError, response.CodeInternal, "failed to analyze page")
			return
		}

		response.Success(w, result, "")
	}
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrMalformedInput):
		return http.StatusBadRequest, response.CodeMalformedInput
	case service.IsTimeout(err):
		return http.StatusGatewayTimeout, response.CodeTimeout
	case errors.Is(err, service.ErrFetchFailure):
		return http.StatusBadGateway, response.CodeFetchFailure
	default:
		return http.StatusInternalServerError, response.CodeInternal
	}
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
