package model

// Status is the aggregated availability signal for one polling cycle.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

// PollResult is the outcome of one polling cycle. A fresh value is built
// every cycle and never mutated after it is handed to the consumer.
type PollResult struct {
	Status  Status
	Details []string // reserved for per-slot information
}

// Equal reports whether two results carry the same status and details.
// Comparison is field-by-field; each cycle builds a brand-new value, so
// identity is meaningless here.
func (r PollResult) Equal(other PollResult) bool {
	if r.Status != other.Status {
		return false
	}
	if len(r.Details) != len(other.Details) {
		return false
	}
	for i := range r.Details {
		if r.Details[i] != other.Details[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy, so stored state never aliases a value
// that belongs to a finished cycle.
func (r PollResult) Clone() PollResult {
	cp := PollResult{Status: r.Status}
	if r.Details != nil {
		cp.Details = append([]string(nil), r.Details...)
	}
	return cp
}

// PageCheckOutcome is the per-page result of one fetch+extract attempt.
type PageCheckOutcome struct {
	Page      string
	Available bool
	Err       error
}
