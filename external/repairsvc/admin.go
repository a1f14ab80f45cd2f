package repairsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"mime/multipart"
	"net/http"

	"github.com/electrocare/client-gateway/schema"
)

// Document is a technician verification upload (id proof or
// certification).
type Document struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

func (c *client) UploadDocuments(ctx context.Context, token string, docs []Document) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, doc := range docs {
		part, err := w.CreateFormFile(doc.Field, doc.Filename)
		if err != nil {
			return err
		}
		if _, err := part.Write(doc.Data); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/technicians/documents", &buf)
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

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		data, _ := ioutil.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	return nil
}

func (c *client) listAccounts(ctx context.Context, token, path, key string) ([]schema.Account, error) {
	var raw map[string]json.RawMessage
	if err := c.do(ctx, token, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	var accounts []schema.Account
	if data, ok := raw[key]; ok {
		if err := json.Unmarshal(data, &accounts); err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

func (c *client) ListUsers(ctx context.Context, token string) ([]schema.Account, error) {
	return c.listAccounts(ctx, token, "/admin/users", "users")
}

func (c *client) ListTechnicians(ctx context.Context, token string) ([]schema.Account, error) {
	return c.listAccounts(ctx, token, "/admin/technicians", "technicians")
}

func (c *client) ListRequests(ctx context.Context, token string) ([]schema.ServiceRequest, error) {
	return c.listRequests(ctx, token, "/admin/service-requests")
}

// ListAppliances returns every registered appliance with its owner, for
// the management table.
func (c *client) ListAppliances(ctx context.Context, token string) ([]schema.Appliance, error) {
	var raw json.RawMessage
	if err := c.do(ctx, token, http.MethodGet, "/admin/appliances", nil, &raw); err != nil {
		return nil, err
	}

	var envelope struct {
		Appliances []schema.Appliance `json:"appliances"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Appliances != nil {
		return envelope.Appliances, nil
	}

	var appliances []schema.Appliance
	if err := json.Unmarshal(raw, &appliances); err != nil {
		return nil, err
	}
	return appliances, nil
}

func (c *client) DeleteAppliance(ctx context.Context, token, applianceID string) error {
	return c.do(ctx, token, http.MethodDelete, "/admin/appliances/"+applianceID, nil, nil)
}

func (c *client) SetVerification(ctx context.Context, token, technicianID, status, reason string) error {
	return c.do(ctx, token, http.MethodPatch, "/admin/technicians/"+technicianID+"/verification", map[string]string{
		"status": status,
		"reason": reason,
	}, nil)
}
