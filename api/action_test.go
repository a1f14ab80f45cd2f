package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/electrocare/client-gateway/api/mocks"
	"github.com/electrocare/client-gateway/external/repairsvc"
	"github.com/electrocare/client-gateway/schema"
)

func TestAcceptRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	gomock.InOrder(
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{ID: "r1", Status: schema.StatusBroadcasted}, nil),
		b.EXPECT().Accept(gomock.Any(), "backend-token", "r1").Return(nil),
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{ID: "r1", Status: schema.StatusAccepted}, nil),
	)

	router := newTestRouter(technicianSession(schema.VerificationApproved), "POST", "/requests/:requestID/accept", s.acceptRequest)
	w := performJSON(router, "POST", "/requests/r1/accept", nil)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	request := resp["request"].(map[string]interface{})
	assert.Equal(t, "accepted", request["status"], "status comes from the re-fetch")
}

// An unverified technician is blocked before the request is even
// fetched.
func TestAcceptRequiresApprovedVerification(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	router := newTestRouter(technicianSession(schema.VerificationSubmitted), "POST", "/requests/:requestID/accept", s.acceptRequest)
	w := performJSON(router, "POST", "/requests/r1/accept", nil)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, float64(1101), resp["code"])
}

// Availability is re-checked against a fresh fetch, not trusted from the
// caller: cancelling a request that already completed is rejected.
func TestActionNotAvailableForStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
		&schema.ServiceRequest{ID: "r1", Status: schema.StatusCompleted}, nil).Times(1)

	router := newTestRouter(customerSession(), "POST", "/requests/:requestID/cancel", s.cancelRequest)
	w := performJSON(router, "POST", "/requests/r1/cancel", nil)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, float64(1201), resp["code"])
}

// A second identical action call while the first is still running gets a
// conflict; the first call's outcome stands.
func TestActionInFlight(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	assert.True(t, s.inflight.acquire("r1/cancel"))
	defer s.inflight.release("r1/cancel")

	router := newTestRouter(customerSession(), "POST", "/requests/:requestID/cancel", s.cancelRequest)
	w := performJSON(router, "POST", "/requests/r1/cancel", nil)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, float64(1202), resp["code"])
}

func TestSubmitEstimate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	cost := 1500.0
	gomock.InOrder(
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{ID: "r1", Status: schema.StatusOnTheWay}, nil),
		b.EXPECT().SubmitEstimate(gomock.Any(), "backend-token", "r1", cost).Return(nil),
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{ID: "r1", Status: schema.StatusAwaitingApproval, EstimatedServiceCost: &cost}, nil),
	)

	router := newTestRouter(technicianSession(schema.VerificationApproved), "POST", "/requests/:requestID/estimate", s.submitEstimate)
	w := performJSON(router, "POST", "/requests/r1/estimate", map[string]interface{}{
		"estimated_service_cost": cost,
	})

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	request := resp["request"].(map[string]interface{})
	assert.Equal(t, "awaiting_approval", request["status"])
	assert.Equal(t, cost, request["estimated_service_cost"])
}

func TestSubmitEstimateRejectsNonPositiveCost(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	router := newTestRouter(technicianSession(schema.VerificationApproved), "POST", "/requests/:requestID/estimate", s.submitEstimate)
	w := performJSON(router, "POST", "/requests/r1/estimate", map[string]interface{}{
		"estimated_service_cost": 0,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, float64(1010), resp["code"])
}

// Declining an estimate is its own operation even though the record ends
// up cancelled, same as an explicit cancel.
func TestDeclineEstimate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	gomock.InOrder(
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{ID: "r1", Status: schema.StatusAwaitingApproval}, nil),
		b.EXPECT().DeclineEstimate(gomock.Any(), "backend-token", "r1").Return(nil),
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{ID: "r1", Status: schema.StatusCancelled}, nil),
	)

	router := newTestRouter(customerSession(), "POST", "/requests/:requestID/decline", s.declineEstimate)
	w := performJSON(router, "POST", "/requests/r1/decline", nil)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	request := resp["request"].(map[string]interface{})
	lc := request["lifecycle"].(map[string]interface{})
	assert.Equal(t, true, lc["cancelled"])
	assert.Equal(t, float64(-1), lc["progress_index"])
}

// A rejected OTP is reported as a verification failure with the backend's
// message; the record is not re-fetched and nothing changes client-side.
func TestVerifyOTPRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	gomock.InOrder(
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{ID: "r1", Status: schema.StatusCompleted}, nil),
		b.EXPECT().VerifyOTP(gomock.Any(), "backend-token", "r1", "000000").Return(
			&repairsvc.APIError{StatusCode: http.StatusBadRequest, Message: "invalid OTP"}),
	)

	router := newTestRouter(customerSession(), "POST", "/requests/:requestID/verify-otp", s.verifyOTP)
	w := performJSON(router, "POST", "/requests/r1/verify-otp", map[string]string{"otp": "000000"})

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, float64(1203), resp["code"])
	assert.Equal(t, "invalid OTP", resp["message"])
}

// A backend that cannot be reached has not judged the code. The response
// must not look like a rejection the user could "fix" by retyping.
func TestVerifyOTPBackendDown(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	gomock.InOrder(
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{ID: "r1", Status: schema.StatusCompleted}, nil),
		b.EXPECT().VerifyOTP(gomock.Any(), "backend-token", "r1", "482913").Return(
			errors.New("dial tcp: connection refused")),
	)

	router := newTestRouter(customerSession(), "POST", "/requests/:requestID/verify-otp", s.verifyOTP)
	w := performJSON(router, "POST", "/requests/r1/verify-otp", map[string]string{"otp": "482913"})

	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, float64(999), resp["code"], "transport failure must not report as a rejected code")
}

func TestVerifyOTP(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	gomock.InOrder(
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{ID: "r1", Status: schema.StatusCompleted}, nil),
		b.EXPECT().VerifyOTP(gomock.Any(), "backend-token", "r1", "482913").Return(nil),
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{ID: "r1", Status: schema.StatusCompleted, OTPVerified: true}, nil),
	)

	router := newTestRouter(customerSession(), "POST", "/requests/:requestID/verify-otp", s.verifyOTP)
	w := performJSON(router, "POST", "/requests/r1/verify-otp", map[string]string{"otp": "482913"})

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	request := resp["request"].(map[string]interface{})
	lc := request["lifecycle"].(map[string]interface{})
	assert.Equal(t, []interface{}{"submit_feedback"}, lc["available_actions"], "verification unlocks feedback")
}

func TestSubmitFeedback(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	gomock.InOrder(
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{ID: "r1", Status: schema.StatusCompleted, OTPVerified: true}, nil),
		b.EXPECT().SubmitFeedback(gomock.Any(), "backend-token", "r1", 5, "fixed fast").Return(nil),
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{
				ID: "r1", Status: schema.StatusCompleted, OTPVerified: true,
				Feedback: &schema.Feedback{Rating: 5, Comment: "fixed fast"},
			}, nil),
	)

	router := newTestRouter(customerSession(), "POST", "/requests/:requestID/feedback", s.submitFeedback)
	w := performJSON(router, "POST", "/requests/r1/feedback", map[string]interface{}{
		"rating":  5,
		"comment": "fixed fast",
	})

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

// Feedback is locked until OTP verification and one-time after it.
func TestSubmitFeedbackGates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	// completed but not yet verified
	b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
		&schema.ServiceRequest{ID: "r1", Status: schema.StatusCompleted}, nil).Times(1)

	router := newTestRouter(customerSession(), "POST", "/requests/:requestID/feedback", s.submitFeedback)
	w := performJSON(router, "POST", "/requests/r1/feedback", map[string]interface{}{"rating": 4})
	assert.Equal(t, http.StatusConflict, w.Code, "feedback before verification")

	// already submitted once
	b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
		&schema.ServiceRequest{
			ID: "r1", Status: schema.StatusCompleted, OTPVerified: true,
			Feedback: &schema.Feedback{Rating: 5},
		}, nil).Times(1)

	w = performJSON(router, "POST", "/requests/r1/feedback", map[string]interface{}{"rating": 4})
	assert.Equal(t, http.StatusConflict, w.Code, "feedback twice")
}

func TestSubmitFeedbackRatingBounds(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	router := newTestRouter(customerSession(), "POST", "/requests/:requestID/feedback", s.submitFeedback)

	for _, rating := range []int{0, 6, -1} {
		w := performJSON(router, "POST", "/requests/r1/feedback", map[string]interface{}{"rating": rating})
		assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status for rating %d", rating)
		resp := decodeBody(t, w)
		assert.Equal(t, float64(1015), resp["code"])
	}
}

func TestCompleteJobSendsOTPMessage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	gomock.InOrder(
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{ID: "r1", Status: schema.StatusInProgress}, nil),
		b.EXPECT().Complete(gomock.Any(), "backend-token", "r1").Return(nil),
		b.EXPECT().Request(gomock.Any(), "backend-token", "r1").Return(
			&schema.ServiceRequest{ID: "r1", Status: schema.StatusCompleted}, nil),
	)

	router := newTestRouter(technicianSession(schema.VerificationApproved), "POST", "/requests/:requestID/complete", s.completeJob)
	w := performJSON(router, "POST", "/requests/r1/complete", nil)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	request := resp["request"].(map[string]interface{})
	assert.Equal(t, false, request["otp_verified"], "completion alone does not verify")
}
