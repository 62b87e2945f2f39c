package lifecycle

// Status is the state of one lifecycle operation.
//
//	Idle -> Validating -> Submitting -> Succeeded | PartiallySucceeded | Failed
type Status int

const (
	StatusIdle Status = iota
	StatusValidating
	StatusSubmitting
	StatusSucceeded
	// StatusPartiallySucceeded means the group write went through but at
	// least one invitation notification did not.
	StatusPartiallySucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusValidating:
		return "validating"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusPartiallySucceeded:
		return "partially_succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
