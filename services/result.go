package services

// Violation describes one failed validation rule on a named field.
// A request reports every violation found in a single pass, never just
// the first.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Outcome tags the result of a lifecycle operation. Infrastructure
// failures (unreachable store, failed write) are returned as ordinary
// errors alongside the result, never folded into an outcome.
type Outcome string

const (
	OutcomeCreated           Outcome = "CREATED"
	OutcomeUpdated           Outcome = "UPDATED"
	OutcomeAlreadyExists     Outcome = "ALREADY_EXISTS"
	OutcomeNotFound          Outcome = "NOT_FOUND"
	OutcomeValidationFailed  Outcome = "VALIDATION_FAILED"
	OutcomeNoEffectiveChange Outcome = "NO_EFFECTIVE_CHANGE"
	// OutcomeFound tags successful read-path fetches
	OutcomeFound Outcome = "FOUND"
)

// Result is the tagged outcome handed to the transport layer, which is
// solely responsible for mapping it to status codes and response bodies.
type Result struct {
	Outcome    Outcome     `json:"outcome"`
	Violations []Violation `json:"violations,omitempty"`
	Record     interface{} `json:"record,omitempty"`
}

func failedValidation(violations []Violation) *Result {
	return &Result{Outcome: OutcomeValidationFailed, Violations: violations}
}

func notFound() *Result {
	return &Result{Outcome: OutcomeNotFound}
}

func noEffectiveChange() *Result {
	return &Result{Outcome: OutcomeNoEffectiveChange}
}
