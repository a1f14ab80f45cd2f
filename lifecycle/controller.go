// Package lifecycle decides, for a given request status and viewing role,
// the progress position to display and the set of actions the viewer may
// take. It is the only place raw status values are interpreted; views and
// handlers consume its output instead of comparing status strings.
package lifecycle

import (
	"github.com/electrocare/client-gateway/schema"
)

// Action is a client-visible operation on a service request. Every action
// maps to a distinct backend endpoint; in particular, declining an
// estimate and cancelling a request both end at cancelled but are
// different intents and different calls.
type Action string

const (
	ActionAccept          Action = "accept"
	ActionStartTravel     Action = "start_travel"
	ActionSubmitEstimate  Action = "submit_estimate"
	ActionApproveEstimate Action = "approve_estimate"
	ActionDeclineEstimate Action = "decline_estimate"
	ActionCompleteJob     Action = "complete_job"
	ActionVerifyOTP       Action = "verify_otp"
	ActionSubmitFeedback  Action = "submit_feedback"
	ActionCancel          Action = "cancel"
)

// CancelWarning selects the confirmation copy shown before a cancel call.
// Cancelling while the technician is already travelling costs the
// customer loyalty points, and the UI must say so first. The deduction
// itself is a backend decision.
type CancelWarning string

const (
	CancelWarningNone    CancelWarning = ""
	CancelWarningPlain   CancelWarning = "plain"
	CancelWarningPenalty CancelWarning = "loyalty_penalty"
)

// NoProgress is the progress index of the cancelled branch, which is
// rendered as a distinct terminal badge rather than a stepper position.
const NoProgress = -1

// Evaluation is the derived view state for one request and one viewer.
type Evaluation struct {
	ProgressIndex int           `json:"progress_index"`
	Cancelled     bool          `json:"cancelled"`
	Terminal      bool          `json:"terminal"`
	Actions       []Action      `json:"available_actions"`
	CancelWarning CancelWarning `json:"cancel_warning,omitempty"`
}

// Allows reports whether the evaluation enables the given action.
func (e Evaluation) Allows(a Action) bool {
	for _, enabled := range e.Actions {
		if enabled == a {
			return true
		}
	}
	return false
}

// ProgressIndex returns the 0-based stepper position of a status, or
// NoProgress for cancelled and for values outside the known flow.
func ProgressIndex(s schema.Status) int {
	for i, step := range schema.StatusFlow {
		if step == s {
			return i
		}
	}
	return NoProgress
}

// Evaluate computes the view state for a request. It is a pure function
// of (status, otpVerified, role): the session is passed in explicitly and
// no request mutation ever happens here. Callers act on the backend and
// re-fetch; they never transition status locally.
//
// A request may read completed while otpVerified is still false: the
// technician's Complete Job call only triggers OTP issuance. Feedback is
// therefore gated strictly on otpVerified, never on status alone.
func Evaluate(status schema.Status, otpVerified bool, role schema.Role) Evaluation {
	e := Evaluation{
		ProgressIndex: ProgressIndex(status),
		Cancelled:     status == schema.StatusCancelled,
		Terminal:      status == schema.StatusCompleted || status == schema.StatusCancelled,
	}

	switch role {
	case schema.RoleTechnician:
		switch status {
		case schema.StatusPending, schema.StatusBroadcasted:
			e.Actions = []Action{ActionAccept}
		case schema.StatusAccepted:
			e.Actions = []Action{ActionStartTravel}
		case schema.StatusOnTheWay:
			e.Actions = []Action{ActionSubmitEstimate}
		case schema.StatusApproved, schema.StatusInProgress:
			e.Actions = []Action{ActionCompleteJob}
		}

	case schema.RoleCustomer:
		switch status {
		case schema.StatusPending, schema.StatusBroadcasted, schema.StatusAccepted:
			e.Actions = []Action{ActionCancel}
			e.CancelWarning = CancelWarningPlain
		case schema.StatusOnTheWay:
			e.Actions = []Action{ActionCancel}
			e.CancelWarning = CancelWarningPenalty
		case schema.StatusAwaitingApproval:
			e.Actions = []Action{ActionApproveEstimate, ActionDeclineEstimate}
		case schema.StatusCompleted:
			if otpVerified {
				e.Actions = []Action{ActionSubmitFeedback}
			} else {
				e.Actions = []Action{ActionVerifyOTP}
			}
		}
	}

	return e
}

// ForRequest evaluates a fetched record for a viewer. On top of Evaluate
// it enforces the one-time feedback rule: once the record carries a
// feedback entry the action is gone for good.
func ForRequest(req schema.ServiceRequest, role schema.Role) Evaluation {
	e := Evaluate(req.Status, req.OTPVerified, role)
	if req.Feedback == nil {
		return e
	}

	actions := e.Actions[:0]
	for _, a := range e.Actions {
		if a != ActionSubmitFeedback {
			actions = append(actions, a)
		}
	}
	e.Actions = actions
	return e
}

// CanTransition reports whether a backend-confirmed move from one status
// to another is consistent with the lifecycle: strictly forward along the
// flow, or onto the cancelled branch from any non-terminal state. It is
// used to sanity-check refreshed records, not to drive transitions.
func CanTransition(from, to schema.Status) bool {
	if from == schema.StatusCompleted || from == schema.StatusCancelled {
		return false
	}
	if to == schema.StatusCancelled {
		return true
	}

	fromIdx := ProgressIndex(from)
	toIdx := ProgressIndex(to)
	if fromIdx == NoProgress || toIdx == NoProgress {
		return false
	}
	return toIdx > fromIdx
}
