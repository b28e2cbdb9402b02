package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/courseadmin/internal/csvutil"
	"github.com/openlms/courseadmin/internal/service"
)

// OverrideHandler handles the admin enrollment attribute override endpoints.
type OverrideHandler struct {
	overrideService OverrideServiceInterface
}

// NewOverrideHandler creates a new override handler.
func NewOverrideHandler(overrideService OverrideServiceInterface) *OverrideHandler {
	return &OverrideHandler{overrideService: overrideService}
}

// GetForm handles GET /admin/enrollment-attributes/override.
// Returns the upload form metadata (the expected csv columns).
func (h *OverrideHandler) GetForm(c *gin.Context) {
	c.JSON(http.StatusOK, OverrideFormResponse{
		ExpectedColumns: service.OverrideColumns,
	})
}

// Upload handles POST /admin/enrollment-attributes/override.
// A header mismatch rejects the whole file; rows without a matching
// enrollment are reported by 1-based line number while the rest apply.
func (h *OverrideHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("csv_file")
	if err != nil {
		BadRequest(c, "CSV file is required.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		BadRequest(c, "failed to open uploaded file")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.overrideService.OverrideFromCSV(file)
	if err != nil {
		var headerErr *csvutil.HeaderError
		if errors.As(err, &headerErr) {
			Error(c, ErrorInvalidCSV, headerErr.Error(), http.StatusBadRequest)
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, OverrideResponse{
		Message:    result.Message(),
		Processed:  result.Processed,
		Updated:    result.Updated,
		ErrorLines: result.ErrorLines,
	})
}
