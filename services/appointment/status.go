package appointment

import (
	"errors"
	"fmt"
)

// Status is an appointment lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCompleted Status = "completed"
)

// ErrUnknownStatus is returned when a caller submits a status outside the enumeration.
var ErrUnknownStatus = errors.New("unknown appointment status")

// transitions is the admissible state machine. declined and completed are
// terminal; same-state updates are allowed as no-ops so a repeated accept
// stays idempotent.
var transitions = map[Status][]Status{
	StatusPending:   {StatusAccepted, StatusDeclined},
	StatusAccepted:  {StatusCompleted},
	StatusDeclined:  {},
	StatusCompleted: {},
}

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if _, ok := transitions[s]; !ok {
		return "", ErrUnknownStatus
	}
	return s, nil
}

// Terminal reports whether no further transition leaves this state.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether moving to next is admissible.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InvalidTransitionError reports an inadmissible status change, such as
// reopening a declined or completed appointment.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}
