package issue

// Status is the triage state of an issue.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Order returns the declaration order of the status, used for status sorting.
func (s Status) Order() int {
	switch s {
	case StatusOpen:
		return 1
	case StatusInProgress:
		return 2
	case StatusResolved:
		return 3
	case StatusClosed:
		return 4
	}
	return 0
}

// Priority is the severity of an issue.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// Severity returns the severity rank (low < medium < high < critical), used
// for priority sorting.
func (p Priority) Severity() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityCritical:
		return 4
	}
	return 0
}
