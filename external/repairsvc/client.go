// Package repairsvc is the client for the marketplace backend REST API.
// Every mutation of a service request goes through here; the gateway
// keeps no authoritative state of its own.
package repairsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/electrocare/client-gateway/schema"
)

const logPrefix = "repairsvc"

// APIError carries the backend's error payload. The message is surfaced
// to the user verbatim.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend request failed with status %d", e.StatusCode)
}

// LoginResult is the backend session: its bearer token plus the account
// it belongs to.
type LoginResult struct {
	Token   string         `json:"token"`
	Account schema.Account `json:"user"`
}

// Client - interface for all backend operations the gateway performs
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, params RegisterParams) error
	VerifyEmail(ctx context.Context, email, otp string) (*LoginResult, error)
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, phone string) error
	ResetPassword(ctx context.Context, phone, otp, newPassword string) error

	CreateWithVisitFee(ctx context.Context, token string, params CreateParams) (*schema.ServiceRequest, error)
	CreateWithSubscription(ctx context.Context, token string, params CreateParams) (*schema.ServiceRequest, error)

	MyRequests(ctx context.Context, token string) ([]schema.ServiceRequest, error)
	TechnicianRequests(ctx context.Context, token string) ([]schema.ServiceRequest, error)
	Request(ctx context.Context, token, requestID string) (*schema.ServiceRequest, error)

	Accept(ctx context.Context, token, requestID string) error
	MarkOnTheWay(ctx context.Context, token, requestID string) error
	SubmitEstimate(ctx context.Context, token, requestID string, cost float64) error
	ApproveEstimate(ctx context.Context, token, requestID string) error
	DeclineEstimate(ctx context.Context, token, requestID string) error
	Cancel(ctx context.Context, token, requestID string) error
	Complete(ctx context.Context, token, requestID string) error
	VerifyOTP(ctx context.Context, token, requestID, otp string) error
	SubmitFeedback(ctx context.Context, token, requestID string, rating int, comment string) error

	Diagnose(ctx context.Context, token, applianceType, description string) (*Diagnosis, error)

	MyAppliances(ctx context.Context, token string) ([]schema.Appliance, error)
	MySubscription(ctx context.Context, token string) (*schema.Subscription, error)
	BuySubscription(ctx context.Context, token, plan string) error

	UpdateLocation(ctx context.Context, token string, lat, lng float64) error
	UploadDocuments(ctx context.Context, token string, docs []Document) error

	ListUsers(ctx context.Context, token string) ([]schema.Account, error)
	ListTechnicians(ctx context.Context, token string) ([]schema.Account, error)
	ListRequests(ctx context.Context, token string) ([]schema.ServiceRequest, error)
	SetVerification(ctx context.Context, token, technicianID, status, reason string) error
	ListAppliances(ctx context.Context, token string) ([]schema.Appliance, error)
	DeleteAppliance(ctx context.Context, token, applianceID string) error
}

type client struct {
	endpoint   string
	httpClient *http.Client
}

// New - a backend client against the given API endpoint
func New(endpoint string, httpClient *http.Client) Client {
	return &client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// do runs one JSON round trip. A non-2xx response is returned as an
// APIError with the backend's message decoded when present.
func (c *client) do(ctx context.Context, token, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil {
			log.WithField("prefix", logPrefix).WithError(err).Debug("undecodable error body")
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (c *client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	if err := c.do(ctx, "", http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) MyAppliances(ctx context.Context, token string) ([]schema.Appliance, error) {
	var envelope struct {
		Appliances []schema.Appliance `json:"appliances"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/appliances/my", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Appliances, nil
}

func (c *client) MySubscription(ctx context.Context, token string) (*schema.Subscription, error) {
	var envelope struct {
		Subscription *schema.Subscription `json:"subscription"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/subscriptions/my", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Subscription, nil
}

func (c *client) BuySubscription(ctx context.Context, token, plan string) error {
	return c.do(ctx, token, http.MethodPost, "/subscriptions/buy", map[string]string{
		"plan": plan,
	}, nil)
}

func (c *client) UpdateLocation(ctx context.Context, token string, lat, lng float64) error {
	return c.do(ctx, token, http.MethodPost, "/auth/update-location", map[string]float64{
		"latitude":  lat,
		"longitude": lng,
	}, nil)
}
