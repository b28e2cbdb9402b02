package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/courseadmin/internal/handler"
)

// SetupRoutes configures all API routes.
func SetupRoutes(
	settingsHandler *handler.SettingsHandler,
	rosterHandler *handler.RosterHandler,
	overrideHandler *handler.OverrideHandler,
	transcriptHandler *handler.TranscriptHandler,
) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Advanced settings endpoints
	r.GET("/courses/:courseID/settings", settingsHandler.GetSettings)
	r.PUT("/courses/:courseID/settings", settingsHandler.UpdateSettings)
	r.POST("/courses/:courseID/settings/validate", settingsHandler.ValidateSettings)

	// Team membership roster endpoints
	r.GET("/courses/:courseID/teams/membership/csv", rosterHandler.ExportCSV)
	r.POST("/courses/:courseID/teams/membership/csv", rosterHandler.ImportCSV)

	// Admin endpoints
	r.GET("/admin/enrollment-attributes/override", overrideHandler.GetForm)
	r.POST("/admin/enrollment-attributes/override", overrideHandler.Upload)
	r.POST("/admin/transcript-credentials", transcriptHandler.UpdateCredentials)

	return r
}
