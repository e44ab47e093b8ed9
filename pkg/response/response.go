package response

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"perfsmell/internal/log"
)

// Error codes carried in Response.Code so callers can branch without parsing
// the message.
const (
	CodeMalformedInput = "malformed_input"
	CodeFetchFailure   = "fetch_failure"
	CodeTimeout        = "timeout"
	CodeInternal       = "internal_error"
)

type Response struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Data       any    `json:"data,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, res Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	res.Status = http.StatusText(statusCode)
	res.StatusCode = statusCode

	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

func Success(w http.ResponseWriter, data any, message string) {
	JSON(w, http.StatusOK, Response{Data: data, Message: message})
}

func Error(w http.ResponseWriter, statusCode int, code, message string) {
	JSON(w, statusCode, Response{Code: code, Message: message})
}
