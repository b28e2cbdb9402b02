package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/courseadmin/internal/service"
)

// TranscriptHandler handles transcript credential updates.
type TranscriptHandler struct {
	transcriptService TranscriptServiceInterface
}

// NewTranscriptHandler creates a new transcript handler.
func NewTranscriptHandler(transcriptService TranscriptServiceInterface) *TranscriptHandler {
	return &TranscriptHandler{transcriptService: transcriptService}
}

// UpdateCredentials handles POST /admin/transcript-credentials.
func (h *TranscriptHandler) UpdateCredentials(c *gin.Context) {
	var req TranscriptCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	errResp, updated := h.transcriptService.UpdateCredentials(c.Request.Context(), service.TranscriptCredentials{
		Org:       req.Org,
		Provider:  req.Provider,
		APIKey:    req.APIKey,
		APISecret: req.APISecret,
		Username:  req.Username,
	})

	if !updated {
		c.JSON(http.StatusBadRequest, TranscriptResponse{
			Updated: false,
			Error:   errResp,
		})
		return
	}

	c.JSON(http.StatusOK, TranscriptResponse{Updated: true})
}
