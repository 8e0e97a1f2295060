package board

import (
	"time"
)

type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// Status is the transient message shown after a registration attempt.
type Status struct {
	Message   string
	Kind      StatusKind
	ExpiresAt time.Time
}

func (s *Status) Visible(now time.Time) bool {
	return s != nil && now.Before(s.ExpiresAt)
}
