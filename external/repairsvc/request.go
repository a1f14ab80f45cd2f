package repairsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/electrocare/client-gateway/schema"
)

// Photo is one attachment of the multi-photo creation variant.
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateParams is the creation payload. Exactly one location mode is
// populated: a pinned coordinate pair, or AddressDetails with the
// geocoded (possibly sentinel) coordinates alongside.
type CreateParams struct {
	ApplianceID    string
	IssueDesc      string
	PreferredSlot  string
	ScheduledDate  string
	Latitude       float64
	Longitude      float64
	AddressDetails *schema.AddressDetails
	Method         string
	Photos         []Photo
}

func (p CreateParams) jsonBody() map[string]interface{} {
	body := map[string]interface{}{
		"appliance_id":   p.ApplianceID,
		"issue_desc":     p.IssueDesc,
		"preferred_slot": p.PreferredSlot,
		"scheduled_date": p.ScheduledDate,
		"latitude":       p.Latitude,
		"longitude":      p.Longitude,
	}
	if p.AddressDetails != nil {
		body["address_details"] = p.AddressDetails
	}
	if p.Method != "" {
		body["method"] = p.Method
	}
	return body
}

// CreateWithVisitFee creates a request together with its visit-fee
// payment. Initial status is the backend's choice of pending or
// broadcasted.
func (c *client) CreateWithVisitFee(ctx context.Context, token string, params CreateParams) (*schema.ServiceRequest, error) {
	return c.create(ctx, token, "/payments/visit-fee", params)
}

// CreateWithSubscription creates a request under an active subscription,
// waiving the visit fee.
func (c *client) CreateWithSubscription(ctx context.Context, token string, params CreateParams) (*schema.ServiceRequest, error) {
	return c.create(ctx, token, "/subscription-services/create", params)
}

func (c *client) create(ctx context.Context, token, path string, params CreateParams) (*schema.ServiceRequest, error) {
	var raw json.RawMessage
	if len(params.Photos) == 0 {
		if err := c.do(ctx, token, http.MethodPost, path, params.jsonBody(), &raw); err != nil {
			return nil, err
		}
	} else {
		if err := c.doMultipartCreate(ctx, token, path, params, &raw); err != nil {
			return nil, err
		}
	}
	return decodeRequest(raw)
}

// decodeRequest tolerates both a bare record and a {"request": {...}}
// envelope.
func decodeRequest(data []byte) (*schema.ServiceRequest, error) {
	var envelope struct {
		Request *schema.ServiceRequest `json:"request"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Request != nil && envelope.Request.ID != "" {
		return envelope.Request, nil
	}

	var request schema.ServiceRequest
	if err := json.Unmarshal(data, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *client) doMultipartCreate(ctx context.Context, token, path string, params CreateParams, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"appliance_id":   params.ApplianceID,
		"issue_desc":     params.IssueDesc,
		"preferred_slot": params.PreferredSlot,
		"scheduled_date": params.ScheduledDate,
		"latitude":       strconv.FormatFloat(params.Latitude, 'f', -1, 64),
		"longitude":      strconv.FormatFloat(params.Longitude, 'f', -1, 64),
	}
	if params.Method != "" {
		fields["method"] = params.Method
	}
	if params.AddressDetails != nil {
		details, err := json.Marshal(params.AddressDetails)
		if err != nil {
			return err
		}
		fields["address_details"] = string(details)
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return err
		}
	}

	for _, photo := range params.Photos {
		part, err := w.CreateFormFile("photos", photo.Filename)
		if err != nil {
			return err
		}
		if _, err := part.Write(photo.Data); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

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
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	return json.Unmarshal(data, out)
}

// decodeRequests tolerates both response shapes the backend has used:
// a bare array and a {"requests": [...]} envelope.
func decodeRequests(data []byte) ([]schema.ServiceRequest, error) {
	var envelope struct {
		Requests []schema.ServiceRequest `json:"requests"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Requests != nil {
		return envelope.Requests, nil
	}

	var requests []schema.ServiceRequest
	if err := json.Unmarshal(data, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *client) listRequests(ctx context.Context, token, path string) ([]schema.ServiceRequest, error) {
	var raw json.RawMessage
	if err := c.do(ctx, token, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return decodeRequests(raw)
}

func (c *client) MyRequests(ctx context.Context, token string) ([]schema.ServiceRequest, error) {
	return c.listRequests(ctx, token, "/service-requests/my")
}

func (c *client) TechnicianRequests(ctx context.Context, token string) ([]schema.ServiceRequest, error) {
	return c.listRequests(ctx, token, "/service-requests/technician")
}

func (c *client) Request(ctx context.Context, token, requestID string) (*schema.ServiceRequest, error) {
	var raw json.RawMessage
	if err := c.do(ctx, token, http.MethodGet, "/service-requests/"+requestID, nil, &raw); err != nil {
		return nil, err
	}

	request, err := decodeRequest(raw)
	if err != nil {
		return nil, err
	}
	if request.ID == "" {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("request %s not found", requestID)}
	}
	return request, nil
}

func (c *client) Accept(ctx context.Context, token, requestID string) error {
	return c.do(ctx, token, http.MethodPost, "/service-requests/"+requestID+"/accept", nil, nil)
}

func (c *client) MarkOnTheWay(ctx context.Context, token, requestID string) error {
	return c.do(ctx, token, http.MethodPost, "/service-requests/"+requestID+"/on-the-way", nil, nil)
}

func (c *client) SubmitEstimate(ctx context.Context, token, requestID string, cost float64) error {
	return c.do(ctx, token, http.MethodPost, "/service-requests/"+requestID+"/estimate", map[string]float64{
		"estimated_service_cost": cost,
	}, nil)
}

func (c *client) ApproveEstimate(ctx context.Context, token, requestID string) error {
	return c.do(ctx, token, http.MethodPost, "/service-requests/"+requestID+"/approve", nil, nil)
}

// DeclineEstimate terminates at cancelled like Cancel, but it is a
// distinct user intent and a distinct backend operation.
func (c *client) DeclineEstimate(ctx context.Context, token, requestID string) error {
	return c.do(ctx, token, http.MethodPost, "/service-requests/"+requestID+"/decline", nil, nil)
}

func (c *client) Cancel(ctx context.Context, token, requestID string) error {
	return c.do(ctx, token, http.MethodPost, "/service-requests/"+requestID+"/cancel", nil, nil)
}

// Complete triggers OTP issuance to the customer. The record may read
// completed afterwards while otp_verified is still false.
func (c *client) Complete(ctx context.Context, token, requestID string) error {
	return c.do(ctx, token, http.MethodPost, "/service-requests/"+requestID+"/complete", nil, nil)
}

func (c *client) VerifyOTP(ctx context.Context, token, requestID, otp string) error {
	return c.do(ctx, token, http.MethodPost, "/service-requests/"+requestID+"/verify-otp", map[string]string{
		"otp": otp,
	}, nil)
}

func (c *client) SubmitFeedback(ctx context.Context, token, requestID string, rating int, comment string) error {
	return c.do(ctx, token, http.MethodPost, "/service-requests/"+requestID+"/feedback", map[string]interface{}{
		"rating":  rating,
		"comment": comment,
	}, nil)
}
