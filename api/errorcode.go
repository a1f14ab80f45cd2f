package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/electrocare/client-gateway/external/repairsvc"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1005: "operation not allowed for this role",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "invalid pincode: exactly 6 digits required",
		1013: "location pin required",
		1014: "unknown visit slot",
		1015: "invalid rating: must be between 1 and 5",

		1100: "invalid credentials",
		1101: "technician verification is not approved yet",

		1200: "request not found",
		1201: "action is not available for the current request status",
		1202: "another action on this request is still in progress",
		1203: "OTP verification failed",

		1500: "backend request failed",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorForbiddenRole              = errorJSON(1005)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorInvalidPincode     = errorJSON(1012)
	errorPinRequired        = errorJSON(1013)
	errorUnknownSlot        = errorJSON(1014)
	errorInvalidRating      = errorJSON(1015)

	errorInvalidCredentials    = errorJSON(1100)
	errorTechnicianNotVerified = errorJSON(1101)

	errorRequestNotFound  = errorJSON(1200)
	errorActionNotAllowed = errorJSON(1201)
	errorActionInFlight   = errorJSON(1202)
	errorOTPVerification  = errorJSON(1203)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// backendError surfaces a backend failure. The backend's own message is
// passed through verbatim; the displayed status never changes on the
// strength of a failed call.
func backendError(c *gin.Context, err error) {
	var apiErr *repairsvc.APIError
	if errors.As(err, &apiErr) {
		abortWithEncoding(c, apiErr.StatusCode, ErrorResponse{
			Code:    1500,
			Message: apiErr.Error(),
		}, err)
		return
	}

	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
}
