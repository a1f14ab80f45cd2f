package schema

import (
	"time"
)

// Role determines which lifecycle actions an account may take. It is a
// closed set; the lifecycle controller is the only interpreter.
type Role string

const (
	RoleCustomer   Role = "user"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

// Technician verification states. A technician may only act on requests
// once approved.
const (
	VerificationPending   = "pending"
	VerificationSubmitted = "submitted"
	VerificationApproved  = "approved"
	VerificationRejected  = "rejected"
)

type Account struct {
	ID                 string    `json:"_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Role               Role      `json:"role"`
	Address            string    `json:"address,omitempty"`
	LoyaltyPoints      int       `json:"loyalty_points"`
	VerificationStatus string    `json:"verificationStatus,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}
