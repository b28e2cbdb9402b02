package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/courseadmin/internal/service"
)

// SettingsHandler handles advanced settings HTTP requests.
type SettingsHandler struct {
	settingsService SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settingsService SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings handles GET /courses/:courseID/settings.
// With ?all=true the unfiltered registry view is returned.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	courseID := c.Param("courseID")

	if c.Query("all") == "true" {
		settingsMap, err := h.settingsService.FetchAll(courseID)
		if err != nil {
			h.settingsError(c, err)
			return
		}
		c.JSON(http.StatusOK, settingsMap)
		return
	}

	settingsMap, err := h.settingsService.Fetch(courseID, isStaff(c))
	if err != nil {
		h.settingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, settingsMap)
}

// UpdateSettings handles PUT /courses/:courseID/settings.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	courseID := c.Param("courseID")

	var payload map[string]json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	settingsMap, err := h.settingsService.Update(courseID, payload, isStaff(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidFieldValue) {
			BadRequest(c, err.Error())
			return
		}
		h.settingsError(c, err)
		return
	}

	c.JSON(http.StatusOK, settingsMap)
}

// ValidateSettings handles POST /courses/:courseID/settings/validate.
// All failing fields are reported together; only a fully valid payload is saved.
func (h *SettingsHandler) ValidateSettings(c *gin.Context) {
	courseID := c.Param("courseID")

	var payload map[string]json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	settingsMap, validationErrors, err := h.settingsService.ValidateAndUpdate(courseID, payload, isStaff(c))
	if err != nil {
		h.settingsError(c, err)
		return
	}

	if len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, ValidationFailedResponse{Errors: validationErrors})
		return
	}

	c.JSON(http.StatusOK, settingsMap)
}

func (h *SettingsHandler) settingsError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrCourseNotFound) {
		NotFound(c, "course not found")
		return
	}
	InternalError(c, err.Error())
}
