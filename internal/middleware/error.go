package middleware

import (
	"encoding/json"
	"net/http"

	"products-api/internal/validation"

	"go.uber.org/zap"
)

// MsgInternalError is the body of every 500 response.
const MsgInternalError = "Error interno del servidor"

// DataResponse wraps every successful payload
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse carries a single error message
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries every failed validation rule
type ValidationErrorResponse struct {
	Errors validation.Errors `json:"errors"`
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// RespondWithData sends payload under the "data" key
func RespondWithData(w http.ResponseWriter, statusCode int, data interface{}) {
	RespondWithJSON(w, statusCode, DataResponse{Data: data})
}

// RespondWithError sends message under the "error" key
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// RespondWithValidationErrors sends a 400 with the accumulated rule failures
func RespondWithValidationErrors(w http.ResponseWriter, errors validation.Errors) {
	RespondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: errors})
}

// ErrorHandlingMiddleware catches panics and converts them to 500 errors
func ErrorHandlingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					logger.Error("Panic recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)

					RespondWithError(w, http.StatusInternalServerError, MsgInternalError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
