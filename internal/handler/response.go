package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/courseadmin/internal/settings"
)

// ErrorCode classifies error responses.
type ErrorCode string

const (
	ErrorNotFound         ErrorCode = "NOT_FOUND"
	ErrorInvalidCSV       ErrorCode = "INVALID_CSV"
	ErrorValidationFailed ErrorCode = "VALIDATION_FAILED"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// ValidationFailedResponse carries the per-field errors of a settings
// validation run.
type ValidationFailedResponse struct {
	Errors []settings.ValidationError `json:"errors"`
}

// ImportErrorsResponse carries the line-numbered errors of a rejected
// roster import.
type ImportErrorsResponse struct {
	Rows   int      `json:"rows"`
	Errors []string `json:"errors"`
}

// OverrideResponse is the result of an enrollment attribute override import.
type OverrideResponse struct {
	Message    string `json:"message"`
	Processed  int    `json:"processed"`
	Updated    int    `json:"updated"`
	ErrorLines []int  `json:"error_lines,omitempty"`
}

// OverrideFormResponse describes the csv upload the override endpoint expects.
type OverrideFormResponse struct {
	ExpectedColumns []string `json:"expected_columns"`
}

// TranscriptResponse is the result of a transcript credential update.
type TranscriptResponse struct {
	Updated bool           `json:"updated"`
	Error   map[string]any `json:"error,omitempty"`
}

// Error sends error response.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{
		Error: struct {
			Code    ErrorCode `json:"code"`
			Message string    `json:"message"`
		}{
			Code:    code,
			Message: message,
		},
	})
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, ErrorNotFound, message, http.StatusNotFound)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, "", message, http.StatusBadRequest)
}

// InternalError sends 500 error.
func InternalError(c *gin.Context, message string) {
	Error(c, "", message, http.StatusInternalServerError)
}

// isStaff reads the trusted staff bit from the request headers.
func isStaff(c *gin.Context) bool {
	return c.GetHeader(HeaderUserStaff) == "true"
}
