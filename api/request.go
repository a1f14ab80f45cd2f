package api

import (
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/electrocare/client-gateway/consts"
	"github.com/electrocare/client-gateway/external/repairsvc"
	"github.com/electrocare/client-gateway/lifecycle"
	"github.com/electrocare/client-gateway/schema"
	"github.com/electrocare/client-gateway/utils"
)

// Location input modes. Exactly one mode's data ends up in the payload;
// switching modes discards the other mode's in-progress values.
const (
	locationModeGPS    = "gps"
	locationModeManual = "manual"
)

const defaultPaymentMethod = "UPI"

type createRequestParams struct {
	ApplianceID   string `json:"appliance_id" form:"appliance_id"`
	IssueDesc     string `json:"issue_desc" form:"issue_desc"`
	PreferredSlot string `json:"preferred_slot" form:"preferred_slot"`
	ScheduledDate string `json:"scheduled_date" form:"scheduled_date"`

	LocationMode string   `json:"location_mode" form:"location_mode"`
	Latitude     *float64 `json:"latitude" form:"latitude"`
	Longitude    *float64 `json:"longitude" form:"longitude"`
	Street       string   `json:"street" form:"street"`
	City         string   `json:"city" form:"city"`
	Pincode      string   `json:"pincode" form:"pincode"`

	UseSubscription bool   `json:"use_subscription" form:"use_subscription"`
	Method          string `json:"method" form:"method"`
}

// requestView decorates a backend record with the lifecycle controller's
// derived state, so no view re-interprets raw status strings.
type requestView struct {
	schema.ServiceRequest
	Lifecycle         lifecycle.Evaluation `json:"lifecycle"`
	CancelConfirmText string               `json:"cancel_confirm_text,omitempty"`
}

func newRequestView(c *gin.Context, req schema.ServiceRequest, role schema.Role) requestView {
	e := lifecycle.ForRequest(req, role)
	view := requestView{
		ServiceRequest: req,
		Lifecycle:      e,
	}

	switch e.CancelWarning {
	case lifecycle.CancelWarningPlain:
		view.CancelConfirmText = localize(c, "CancelConfirmPlain", nil)
	case lifecycle.CancelWarningPenalty:
		view.CancelConfirmText = localize(c, "CancelConfirmPenalty", map[string]interface{}{
			// Display copy only; the deduction itself is backend policy.
			"Points": viper.GetInt("loyalty.cancel_penalty_points"),
		})
	}

	return view
}

func (s *Server) createRequest(c *gin.Context) {
	session, ok := c.MustGet("session").(*Session)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var body createRequestParams
	var photos []repairsvc.Photo
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var err error
		if photos, err = parseCreateForm(c, &body); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
			return
		}
	} else if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if body.ApplianceID == "" || body.IssueDesc == "" || body.ScheduledDate == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if !consts.ValidSlot(body.PreferredSlot) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownSlot)
		return
	}

	params := repairsvc.CreateParams{
		ApplianceID:   body.ApplianceID,
		IssueDesc:     body.IssueDesc,
		PreferredSlot: body.PreferredSlot,
		ScheduledDate: body.ScheduledDate,
		Photos:        photos,
	}

	approximate := false
	switch body.LocationMode {
	case locationModeGPS:
		// The convenience recenter on device position never counts as a
		// pin; an explicit tap is required before submission.
		if body.Latitude == nil || body.Longitude == nil {
			abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
				Code:    errorPinRequired.Code,
				Message: localize(c, "PinRequired", nil),
			})
			return
		}
		params.Latitude = *body.Latitude
		params.Longitude = *body.Longitude

	case locationModeManual:
		if body.Street == "" || body.City == "" {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		if !utils.ValidPincode(body.Pincode) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidPincode)
			return
		}

		details := schema.AddressDetails{
			Street:  body.Street,
			City:    body.City,
			Pincode: body.Pincode,
			Manual:  true,
		}

		resolution := s.resolver.ResolveWithFallback(c.Request.Context(), details)
		params.Latitude = resolution.Location.Latitude
		params.Longitude = resolution.Location.Longitude
		params.AddressDetails = &details
		approximate = resolution.Approximate

	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var created *schema.ServiceRequest
	var err error
	if body.UseSubscription {
		created, err = s.backend.CreateWithSubscription(c.Request.Context(), session.Token, params)
	} else {
		params.Method = body.Method
		if params.Method == "" {
			params.Method = defaultPaymentMethod
		}
		created, err = s.backend.CreateWithVisitFee(c.Request.Context(), session.Token, params)
	}
	if err != nil {
		backendError(c, err)
		return
	}

	resp := gin.H{
		"request": newRequestView(c, *created, session.Role),
		"message": localize(c, "RequestCreated", nil),
	}
	if approximate {
		resp["approximate_matching"] = true
		resp["warning"] = localize(c, "GeocodeApproximate", nil)
	}
	c.JSON(http.StatusOK, resp)
}

// parseCreateForm reads the multipart creation variant: scalar fields
// plus any number of photo attachments.
func parseCreateForm(c *gin.Context, body *createRequestParams) ([]repairsvc.Photo, error) {
	if err := c.ShouldBind(body); err != nil {
		return nil, err
	}

	// gin's form binding does not populate the optional pointers
	if v := c.PostForm("latitude"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		body.Latitude = &lat
	}
	if v := c.PostForm("longitude"); v != "" {
		lng, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		body.Longitude = &lng
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	var photos []repairsvc.Photo
	for _, header := range form.File["photos"] {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := ioutil.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		photos = append(photos, repairsvc.Photo{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return photos, nil
}

func (s *Server) listRequests(c *gin.Context) {
	session, ok := c.MustGet("session").(*Session)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var requests []schema.ServiceRequest
	var err error
	switch session.Role {
	case schema.RoleTechnician:
		requests, err = s.backend.TechnicianRequests(c.Request.Context(), session.Token)
	default:
		requests, err = s.backend.MyRequests(c.Request.Context(), session.Token)
	}
	if err != nil {
		backendError(c, err)
		return
	}

	views := make([]requestView, 0, len(requests))
	for _, req := range requests {
		views = append(views, newRequestView(c, req, session.Role))
	}

	c.JSON(http.StatusOK, gin.H{"requests": views})
}

func (s *Server) requestDetail(c *gin.Context) {
	session, ok := c.MustGet("session").(*Session)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	request, err := s.backend.Request(c.Request.Context(), session.Token, c.Param("requestID"))
	if err != nil {
		backendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": newRequestView(c, *request, session.Role)})
}

func (s *Server) myAppliances(c *gin.Context) {
	session, ok := c.MustGet("session").(*Session)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	appliances, err := s.backend.MyAppliances(c.Request.Context(), session.Token)
	if err != nil {
		backendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appliances": appliances})
}
