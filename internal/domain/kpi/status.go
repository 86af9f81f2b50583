package kpi

// Status enum
type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// validTransitions is the single authority on config review flow. Every caller
// (service, handlers) goes through Transition so "only approved counts for
// payout" cannot drift between call sites.
var validTransitions = map[Status][]Status{
	StatusDraft:    {StatusPending},
	StatusPending:  {StatusApproved, StatusRejected},
	StatusRejected: {StatusPending},
	StatusApproved: {},
}

// CanTransition reports whether moving from one status to another is allowed.
func CanTransition(from, to Status) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition returns the target status or ErrInvalidStatusTransition.
func (s Status) Transition(to Status) (Status, error) {
	if !CanTransition(s, to) {
		return s, ErrInvalidStatusTransition
	}
	return to, nil
}

// CountsForPayout reports whether a config in this status participates in the
// incentive payout.
func (s Status) CountsForPayout() bool {
	return s == StatusApproved
}

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
