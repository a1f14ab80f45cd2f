package schema

import (
	"time"
)

// Status is the lifecycle state of a service request. The backend is the
// single source of truth for the value; clients never derive it locally.
type Status string

const (
	StatusPending          Status = "pending"
	StatusBroadcasted      Status = "broadcasted"
	StatusAccepted         Status = "accepted"
	StatusOnTheWay         Status = "on_the_way"
	StatusAwaitingApproval Status = "awaiting_approval"
	StatusApproved         Status = "approved"
	StatusInProgress       Status = "in_progress"
	StatusCompleted        Status = "completed"

	// StatusCancelled is a terminal side branch. It is not part of
	// StatusFlow and has no progress index.
	StatusCancelled Status = "cancelled"
)

// StatusFlow is the ordered forward path of a request. The slice index is
// the 0-based progress position shown by the stepper.
var StatusFlow = []Status{
	StatusPending,
	StatusBroadcasted,
	StatusAccepted,
	StatusOnTheWay,
	StatusAwaitingApproval,
	StatusApproved,
	StatusInProgress,
	StatusCompleted,
}

// ServiceRequest is the backend-owned repair job record. Descriptive and
// scheduling fields are immutable after creation from the client's point
// of view.
type ServiceRequest struct {
	ID            string `json:"_id"`
	Status        Status `json:"status"`
	ApplianceID   string `json:"appliance_id"`
	IssueDesc     string `json:"issue_desc"`
	PreferredSlot string `json:"preferred_slot"`
	ScheduledDate string `json:"scheduled_date"`

	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	AddressDetails *AddressDetails `json:"address_details,omitempty"`

	// Technician is populated by the backend once a technician accepts;
	// nil while the request is pending or broadcasted.
	Technician *Technician `json:"technician_id,omitempty"`

	EstimatedServiceCost *float64 `json:"estimated_service_cost,omitempty"`

	VisitFeePaid     bool    `json:"visit_fee_paid"`
	VisitFeeAmount   float64 `json:"visit_fee_amount,omitempty"`
	UsedSubscription bool    `json:"used_subscription"`

	OTPVerified bool      `json:"otp_verified"`
	Feedback    *Feedback `json:"feedback,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Terminal reports whether the request can no longer change state.
func (r ServiceRequest) Terminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusCancelled
}

// Feedback is a one-time customer rating submitted after the completion
// OTP has been verified.
type Feedback struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Technician is the summary the backend attaches to an accepted request.
type Technician struct {
	ID            string  `json:"_id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Rating        float64 `json:"rating"`
	CompletedJobs int     `json:"completed_jobs"`
}
