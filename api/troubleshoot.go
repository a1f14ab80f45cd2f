package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// troubleshoot forwards an appliance fault description to the backend's
// AI diagnosis service. The verdict is advisory; booking a technician
// from it goes through the normal request-creation flow with the
// description pre-filled client-side.
func (s *Server) troubleshoot(c *gin.Context) {
	session, ok := c.MustGet("session").(*Session)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var body struct {
		ApplianceType string `json:"appliance_type"`
		Description   string `json:"description"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if body.ApplianceType == "" || body.Description == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	diagnosis, err := s.backend.Diagnose(c.Request.Context(), session.Token, body.ApplianceType, body.Description)
	if err != nil {
		backendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"diagnosis": diagnosis})
}
