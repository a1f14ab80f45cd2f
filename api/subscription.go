package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) mySubscription(c *gin.Context) {
	session, ok := c.MustGet("session").(*Session)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	subscription, err := s.backend.MySubscription(c.Request.Context(), session.Token)
	if err != nil {
		backendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscription": subscription,
		"active":       subscription.Active(),
	})
}

func (s *Server) buySubscription(c *gin.Context) {
	session, ok := c.MustGet("session").(*Session)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var body struct {
		Plan string `json:"plan"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if body.Plan == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.backend.BuySubscription(c.Request.Context(), session.Token, body.Plan); err != nil {
		backendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
