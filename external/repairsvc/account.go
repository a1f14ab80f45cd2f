package repairsvc

import (
	"context"
	"net/http"

	"github.com/electrocare/client-gateway/schema"
)

// RegisterParams is the signup payload. Technician signups additionally
// carry skills and a service-area position; the backend rejects a
// technician without one.
type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`

	Address string `json:"address,omitempty"`

	Skills    []string `json:"skills,omitempty"`
	Latitude  float64  `json:"latitude,omitempty"`
	Longitude float64  `json:"longitude,omitempty"`
}

// Register creates an account pending email verification. The backend
// mails an OTP to the given address.
func (c *client) Register(ctx context.Context, params RegisterParams) error {
	return c.do(ctx, "", http.MethodPost, "/auth/register", params, nil)
}

// VerifyEmail confirms a signup OTP. On success the backend logs the new
// account in, so the result carries a bearer token like Login. The
// account rides under "user" or "technician" depending on the role.
func (c *client) VerifyEmail(ctx context.Context, email, otp string) (*LoginResult, error) {
	var envelope struct {
		Token      string          `json:"token"`
		User       *schema.Account `json:"user"`
		Technician *schema.Account `json:"technician"`
	}
	if err := c.do(ctx, "", http.MethodPost, "/auth/verify-email", map[string]string{
		"email": email,
		"otp":   otp,
	}, &envelope); err != nil {
		return nil, err
	}

	account := envelope.User
	if account == nil {
		account = envelope.Technician
	}
	if account == nil {
		return nil, &APIError{StatusCode: http.StatusBadGateway, Message: "verification response carried no account"}
	}

	return &LoginResult{Token: envelope.Token, Account: *account}, nil
}

func (c *client) ResendVerification(ctx context.Context, email string) error {
	return c.do(ctx, "", http.MethodPost, "/auth/resend-verification", map[string]string{
		"email": email,
	}, nil)
}

// ForgotPassword asks the backend to text a reset OTP to the phone on
// file.
func (c *client) ForgotPassword(ctx context.Context, phone string) error {
	return c.do(ctx, "", http.MethodPost, "/auth/forgot-password", map[string]string{
		"phone": phone,
	}, nil)
}

func (c *client) ResetPassword(ctx context.Context, phone, otp, newPassword string) error {
	return c.do(ctx, "", http.MethodPost, "/auth/reset-password", map[string]string{
		"phone":       phone,
		"otp":         otp,
		"newPassword": newPassword,
	}, nil)
}

// Diagnosis is the AI troubleshooter's verdict for a described fault.
type Diagnosis struct {
	Severity           string `json:"severity"`
	IsSafeToUse        bool   `json:"is_safe_to_use"`
	LikelyCause        string `json:"likely_cause"`
	EstimatedCostRange string `json:"estimated_cost_range"`
	Advice             string `json:"advice"`
}

// Diagnose forwards an appliance fault description to the backend's AI
// diagnosis service.
func (c *client) Diagnose(ctx context.Context, token, applianceType, description string) (*Diagnosis, error) {
	var diagnosis Diagnosis
	if err := c.do(ctx, token, http.MethodPost, "/ai/diagnose", map[string]string{
		"applianceType": applianceType,
		"description":   description,
	}, &diagnosis); err != nil {
		return nil, err
	}
	return &diagnosis, nil
}
