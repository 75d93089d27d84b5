package entity

import "time"

type QuoteStatus string

const (
	QuoteReceived QuoteStatus = "RECEIVED"
	QuoteQuoted   QuoteStatus = "QUOTED"
	QuoteAccepted QuoteStatus = "ACCEPTED"
	QuoteDeclined QuoteStatus = "DECLINED"
)

// quoteTransitions is the allowed status graph for quote submissions.
// ACCEPTED and DECLINED are terminal.
var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteReceived: {QuoteQuoted, QuoteDeclined},
	QuoteQuoted:   {QuoteAccepted, QuoteDeclined},
	QuoteAccepted: {},
	QuoteDeclined: {},
}

// ValidQuoteStatus reports whether s is a member of the status enum.
func ValidQuoteStatus(s QuoteStatus) bool {
	_, ok := quoteTransitions[s]
	return ok
}

// CanTransitionQuote reports whether a quote may move between statuses.
// Same-status updates are allowed as no-ops.
func CanTransitionQuote(from, to QuoteStatus) bool {
	if from == to {
		return true
	}
	for _, next := range quoteTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TrackingStep maps a quote status onto the 0-2 tracking timeline,
// independently of the order mapping. Declined quotes return -1.
func (s QuoteStatus) TrackingStep() int {
	switch s {
	case QuoteReceived:
		return 0
	case QuoteQuoted:
		return 1
	case QuoteAccepted:
		return 2
	}
	return -1
}

// Submission is a quote request submitted from the storefront. It is
// tracked with the same reference+email pair as orders.
type Submission struct {
	ID        string      `json:"id"`
	Reference string      `json:"reference"`
	Email     string      `json:"email"`
	Company   string      `json:"company,omitempty"`
	Items     []OrderItem `json:"items"`
	Message   string      `json:"message,omitempty"`
	Status    QuoteStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
