package appointment

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// statusRank orders the happy path. Cancellation sits outside the ranking
// and is handled separately in CanTransitionTo.
var statusRank = map[Status]int{
	StatusPending:    1,
	StatusConfirmed:  2,
	StatusInProgress: 3,
	StatusCompleted:  4,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the appointment occupies its slot.
func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo enforces the forward-only lifecycle: the ranked path may
// only advance one step at a time, and cancellation is reachable from any
// non-terminal state. Terminal states allow nothing.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	cur, ok := statusRank[s]
	if !ok {
		return false
	}
	nxt, ok := statusRank[next]
	if !ok {
		return false
	}
	return nxt == cur+1
}

// ActiveStatuses lists the statuses that block a slot, in the order the
// storage layer uses for its partial unique index.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusInProgress}
}
