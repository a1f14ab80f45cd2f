package schema

import (
	"time"
)

const SubscriptionActive = "active"

// Subscription waives the visit fee at request creation while active.
type Subscription struct {
	ID        string    `json:"_id"`
	Plan      string    `json:"plan"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Subscription) Active() bool {
	return s != nil && s.Status == SubscriptionActive
}
