package api

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/electrocare/client-gateway/api/mocks"
	"github.com/electrocare/client-gateway/external/repairsvc"
	"github.com/electrocare/client-gateway/schema"
)

func TestRegisterCustomer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	var gotParams repairsvc.RegisterParams
	b.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params repairsvc.RegisterParams) error {
			gotParams = params
			return nil
		}).Times(1)

	router := newTestRouter(nil, "POST", "/auth/register", s.register)
	w := performJSON(router, "POST", "/auth/register", map[string]interface{}{
		"name":     "Asha",
		"email":    "asha@example.com",
		"phone":    "9876543210",
		"password": "s3cret",
		"role":     "user",
	})

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Equal(t, "asha@example.com", gotParams.Email)
	assert.Equal(t, "user", gotParams.Role)

	resp := decodeBody(t, w)
	assert.Equal(t, "OK", resp["result"])
}

func TestRegisterMissingFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	router := newTestRouter(nil, "POST", "/auth/register", s.register)
	w := performJSON(router, "POST", "/auth/register", map[string]interface{}{
		"name":  "Asha",
		"email": "asha@example.com",
		"role":  "user",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, float64(1010), resp["code"])
}

// A technician signup must carry a fetched service-area position. The
// zero pair means the form's location step was skipped, so the signup is
// blocked before any backend call happens.
func TestRegisterTechnicianWithoutLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	router := newTestRouter(nil, "POST", "/auth/register", s.register)
	w := performJSON(router, "POST", "/auth/register", map[string]interface{}{
		"name":     "Ravi",
		"email":    "ravi@example.com",
		"phone":    "9876500000",
		"password": "s3cret",
		"role":     "technician",
		"skills":   []string{"Refrigerator", "AC"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, float64(1013), resp["code"])
}

func TestRegisterTechnician(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	var gotParams repairsvc.RegisterParams
	b.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params repairsvc.RegisterParams) error {
			gotParams = params
			return nil
		}).Times(1)

	router := newTestRouter(nil, "POST", "/auth/register", s.register)
	w := performJSON(router, "POST", "/auth/register", map[string]interface{}{
		"name":      "Ravi",
		"email":     "ravi@example.com",
		"phone":     "9876500000",
		"password":  "s3cret",
		"role":      "technician",
		"skills":    []string{"Refrigerator", "AC"},
		"latitude":  12.9716,
		"longitude": 77.5946,
	})

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Equal(t, []string{"Refrigerator", "AC"}, gotParams.Skills)
	assert.Equal(t, 12.9716, gotParams.Latitude)
}

// Verifying the signup OTP logs the new account in: the response is the
// same session payload a password login returns.
func TestVerifyEmail(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	viper.Set("jwt.expire", 24)
	defer viper.Set("jwt.expire", nil)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.Nil(t, err)

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)
	s.jwtPrivateKey = key

	b.EXPECT().VerifyEmail(gomock.Any(), "asha@example.com", "482913").Return(&repairsvc.LoginResult{
		Token: "backend-token",
		Account: schema.Account{
			ID:   "u1",
			Name: "Asha",
			Role: schema.RoleCustomer,
		},
	}, nil).Times(1)

	router := newTestRouter(nil, "POST", "/auth/verify-email", s.verifyEmail)
	w := performJSON(router, "POST", "/auth/verify-email", map[string]string{
		"email": "asha@example.com",
		"otp":   "482913",
	})

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.NotEmpty(t, resp["jwt_token"])
	assert.True(t, resp["expire_in"].(float64) > 0)
	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "Asha", user["name"])
}

func TestVerifyEmailRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	b.EXPECT().VerifyEmail(gomock.Any(), "asha@example.com", "000000").Return(
		nil, &repairsvc.APIError{StatusCode: http.StatusBadRequest, Message: "invalid or expired OTP"}).Times(1)

	router := newTestRouter(nil, "POST", "/auth/verify-email", s.verifyEmail)
	w := performJSON(router, "POST", "/auth/verify-email", map[string]string{
		"email": "asha@example.com",
		"otp":   "000000",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, float64(1500), resp["code"])
	assert.Equal(t, "invalid or expired OTP", resp["message"])
}

func TestResetPassword(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	b.EXPECT().ResetPassword(gomock.Any(), "9876543210", "482913", "n3wpass").Return(nil).Times(1)

	router := newTestRouter(nil, "POST", "/auth/reset-password", s.resetPassword)
	w := performJSON(router, "POST", "/auth/reset-password", map[string]string{
		"phone":       "9876543210",
		"otp":         "482913",
		"newPassword": "n3wpass",
	})

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, "OK", resp["result"])
}

func TestForgotPasswordMissingPhone(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	router := newTestRouter(nil, "POST", "/auth/forgot-password", s.forgotPassword)
	w := performJSON(router, "POST", "/auth/forgot-password", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, float64(1010), resp["code"])
}
