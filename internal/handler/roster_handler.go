package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/courseadmin/internal/csvutil"
	"github.com/openlms/courseadmin/internal/service"
)

// RosterHandler handles team membership csv HTTP requests.
type RosterHandler struct {
	rosterService RosterServiceInterface
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(rosterService RosterServiceInterface) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

// ExportCSV handles GET /courses/:courseID/teams/membership/csv.
func (h *RosterHandler) ExportCSV(c *gin.Context) {
	courseID := c.Param("courseID")

	// Render into a buffer so errors can still produce a JSON response.
	var buf bytes.Buffer
	if err := h.rosterService.ExportCSV(courseID, &buf); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			NotFound(c, "course not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	filename := fmt.Sprintf("%s_team_membership.csv", courseID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ImportCSV handles POST /courses/:courseID/teams/membership/csv.
// Accepts a multipart upload under "csv_file". Row errors reject the whole
// import and are reported with 1-based line numbers.
func (h *RosterHandler) ImportCSV(c *gin.Context) {
	courseID := c.Param("courseID")

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

	result, err := h.rosterService.ImportCSV(c.Request.Context(), courseID, file)
	if err != nil {
		var headerErr *csvutil.HeaderError
		switch {
		case errors.As(err, &headerErr):
			Error(c, ErrorInvalidCSV, headerErr.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCSV):
			Error(c, ErrorInvalidCSV, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrCourseNotFound):
			NotFound(c, "course not found")
		default:
			InternalError(c, err.Error())
		}
		return
	}

	if len(result.Errors) > 0 {
		c.JSON(http.StatusBadRequest, ImportErrorsResponse{
			Rows:   result.Rows,
			Errors: result.Errors,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
