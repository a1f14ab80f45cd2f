package api

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/electrocare/client-gateway/external/repairsvc"
	"github.com/electrocare/client-gateway/lifecycle"
	"github.com/electrocare/client-gateway/schema"
)

// actionGuard admits one in-flight call per (request, action) pair,
// mirroring the UI rule that a control stays disabled while its own call
// runs. A rejected duplicate is not an error state; the first call's
// outcome stands.
type actionGuard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func newActionGuard() *actionGuard {
	return &actionGuard{
		inflight: make(map[string]struct{}),
	}
}

func (g *actionGuard) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inflight[key]; busy {
		return false
	}
	g.inflight[key] = struct{}{}
	return true
}

func (g *actionGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, key)
}

type backendCall func(ctx context.Context, token, requestID string) error

// performAction runs one lifecycle action end to end: guard, fetch,
// availability check against the controller, backend call, re-fetch.
// The displayed status only ever changes through the final authoritative
// re-fetch; nothing is transitioned optimistically. failure overrides how
// a backend rejection is reported (nil means verbatim passthrough).
func (s *Server) performAction(c *gin.Context, action lifecycle.Action, call backendCall, failure func(*gin.Context, error)) (*requestView, bool) {
	session, ok := c.MustGet("session").(*Session)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return nil, false
	}

	requestID := c.Param("requestID")
	key := requestID + "/" + string(action)
	if !s.inflight.acquire(key) {
		abortWithEncoding(c, http.StatusConflict, errorActionInFlight)
		return nil, false
	}
	defer s.inflight.release(key)

	ctx := c.Request.Context()
	current, err := s.backend.Request(ctx, session.Token, requestID)
	if err != nil {
		backendError(c, err)
		return nil, false
	}

	if !lifecycle.ForRequest(*current, session.Role).Allows(action) {
		abortWithEncoding(c, http.StatusConflict, errorActionNotAllowed)
		return nil, false
	}

	if err := call(ctx, session.Token, requestID); err != nil {
		if failure != nil {
			failure(c, err)
		} else {
			backendError(c, err)
		}
		return nil, false
	}

	// The record may have changed under us; re-fetch rather than merging.
	updated, err := s.backend.Request(ctx, session.Token, requestID)
	if err != nil {
		backendError(c, err)
		return nil, false
	}

	view := newRequestView(c, *updated, session.Role)
	return &view, true
}

func (s *Server) acceptRequest(c *gin.Context) {
	session, ok := c.MustGet("session").(*Session)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}
	if session.Role == schema.RoleTechnician && session.VerificationStatus != schema.VerificationApproved {
		abortWithEncoding(c, http.StatusForbidden, errorTechnicianNotVerified)
		return
	}

	view, ok := s.performAction(c, lifecycle.ActionAccept, s.backend.Accept, nil)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": view})
}

func (s *Server) startTravel(c *gin.Context) {
	view, ok := s.performAction(c, lifecycle.ActionStartTravel, s.backend.MarkOnTheWay, nil)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": view})
}

func (s *Server) submitEstimate(c *gin.Context) {
	var body struct {
		EstimatedServiceCost float64 `json:"estimated_service_cost"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if body.EstimatedServiceCost <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	view, ok := s.performAction(c, lifecycle.ActionSubmitEstimate,
		func(ctx context.Context, token, requestID string) error {
			return s.backend.SubmitEstimate(ctx, token, requestID, body.EstimatedServiceCost)
		}, nil)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": view})
}

func (s *Server) approveEstimate(c *gin.Context) {
	view, ok := s.performAction(c, lifecycle.ActionApproveEstimate, s.backend.ApproveEstimate, nil)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": view})
}

func (s *Server) declineEstimate(c *gin.Context) {
	view, ok := s.performAction(c, lifecycle.ActionDeclineEstimate, s.backend.DeclineEstimate, nil)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": view})
}

func (s *Server) cancelRequest(c *gin.Context) {
	view, ok := s.performAction(c, lifecycle.ActionCancel, s.backend.Cancel, nil)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": view})
}

// completeJob asks the backend to issue the completion OTP. The response
// tells the technician to collect the code from the customer; feedback
// stays locked until the customer verifies it.
func (s *Server) completeJob(c *gin.Context) {
	view, ok := s.performAction(c, lifecycle.ActionCompleteJob, s.backend.Complete, nil)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"request": view,
		"message": localize(c, "OTPSent", nil),
	})
}

func (s *Server) verifyOTP(c *gin.Context) {
	var body struct {
		OTP string `json:"otp"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if body.OTP == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	// A code the backend rejects is a distinct verification failure, not
	// a generic action error. otp_verified stays false and the user may
	// retry. A transport failure is not a rejection and reports as any
	// other backend error.
	view, ok := s.performAction(c, lifecycle.ActionVerifyOTP,
		func(ctx context.Context, token, requestID string) error {
			return s.backend.VerifyOTP(ctx, token, requestID, body.OTP)
		},
		func(c *gin.Context, err error) {
			var apiErr *repairsvc.APIError
			if !errors.As(err, &apiErr) {
				backendError(c, err)
				return
			}
			abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
				Code:    errorOTPVerification.Code,
				Message: apiErr.Error(),
			}, err)
		})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": view})
}

func (s *Server) submitFeedback(c *gin.Context) {
	var body struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if body.Rating < 1 || body.Rating > 5 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidRating)
		return
	}

	view, ok := s.performAction(c, lifecycle.ActionSubmitFeedback,
		func(ctx context.Context, token, requestID string) error {
			return s.backend.SubmitFeedback(ctx, token, requestID, body.Rating, body.Comment)
		}, nil)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": view})
}
