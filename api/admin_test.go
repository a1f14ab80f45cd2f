package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/electrocare/client-gateway/api/mocks"
	"github.com/electrocare/client-gateway/schema"
)

func adminSession() *Session {
	return &Session{
		AccountID: "admin1",
		Role:      schema.RoleAdmin,
		Token:     "backend-token",
	}
}

func TestAdminSetVerification(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	b.EXPECT().SetVerification(gomock.Any(), "backend-token", "tech1", "approved", "").Return(nil).Times(1)

	router := newTestRouter(adminSession(), "PATCH", "/admin/technicians/:technicianID/verification", s.adminSetVerification)
	w := performJSON(router, "PATCH", "/admin/technicians/tech1/verification", map[string]string{
		"status": "approved",
	})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	// only approved and rejected are decisions
	w = performJSON(router, "PATCH", "/admin/technicians/tech1/verification", map[string]string{
		"status": "submitted",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestAdminListAppliances(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	b.EXPECT().ListAppliances(gomock.Any(), "backend-token").Return([]schema.Appliance{
		{
			ID:           "a1",
			SerialNumber: "SN-1001",
			Model:        &schema.ApplianceModel{ID: "m1", Name: "CoolWave 260L"},
			Owner:        &schema.Account{ID: "u1", Name: "Asha"},
			PurchaseDate: "2025-11-02",
		},
	}, nil).Times(1)

	router := newTestRouter(adminSession(), "GET", "/admin/appliances", s.adminListAppliances)
	w := performJSON(router, "GET", "/admin/appliances", nil)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	appliances := resp["appliances"].([]interface{})
	assert.Len(t, appliances, 1)
	appliance := appliances[0].(map[string]interface{})
	assert.Equal(t, "SN-1001", appliance["serial_number"])
	owner := appliance["user"].(map[string]interface{})
	assert.Equal(t, "Asha", owner["name"])
}

func TestAdminDeleteAppliance(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	b.EXPECT().DeleteAppliance(gomock.Any(), "backend-token", "a1").Return(nil).Times(1)

	router := newTestRouter(adminSession(), "DELETE", "/admin/appliances/:applianceID", s.adminDeleteAppliance)
	w := performJSON(router, "DELETE", "/admin/appliances/a1", nil)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, "OK", resp["result"])
}

func TestExportUsersReport(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	b.EXPECT().ListUsers(gomock.Any(), "backend-token").Return([]schema.Account{
		{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: schema.RoleCustomer, LoyaltyPoints: 40, CreatedAt: time.Now()},
	}, nil).Times(1)

	router := newTestRouter(adminSession(), "GET", "/admin/reports/:reportType/export", s.exportReport)
	w := performJSON(router, "GET", "/admin/reports/users/export", nil)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "electrocare_users_report_")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	// xlsx is a zip container
	assert.Equal(t, []byte{'P', 'K'}, w.Body.Bytes()[:2])
}

func TestExportUnknownReportType(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	router := newTestRouter(adminSession(), "GET", "/admin/reports/:reportType/export", s.exportReport)
	w := performJSON(router, "GET", "/admin/reports/payments/export", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestMySubscription(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	b.EXPECT().MySubscription(gomock.Any(), "backend-token").Return(
		&schema.Subscription{ID: "s1", Plan: "annual", Status: schema.SubscriptionActive}, nil).Times(1)

	router := newTestRouter(customerSession(), "GET", "/subscriptions/my", s.mySubscription)
	w := performJSON(router, "GET", "/subscriptions/my", nil)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["active"])
}

func TestMySubscriptionNone(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockClient(ctl)
	s := newTestServer(b)

	b.EXPECT().MySubscription(gomock.Any(), "backend-token").Return(nil, nil).Times(1)

	router := newTestRouter(customerSession(), "GET", "/subscriptions/my", s.mySubscription)
	w := performJSON(router, "GET", "/subscriptions/my", nil)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["active"])
}
