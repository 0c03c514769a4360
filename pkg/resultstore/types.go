package resultstore

import "time"

// Kind distinguishes the two computations the store records.
type Kind string

const (
	// KindElement is a Cauchy computation (element of prime order).
	KindElement Kind = "element"

	// KindSubgroup is a Sylow computation (subgroup of prime-power order).
	KindSubgroup Kind = "subgroup"
)

// Status represents the outcome of a computation.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Computation is one recorded invocation of the element or subgroup
// entry point.
type Computation struct {
	// ID is a UUID assigned by the store.
	ID string `json:"id"`

	// Kind is the computation kind.
	Kind Kind `json:"kind"`

	// GroupName and GroupOrder identify the input group.
	GroupName  string `json:"group_name"`
	GroupOrder int    `json:"group_order"`

	// Prime and Exponent are the requested p and n. Exponent is 1 for
	// element computations.
	Prime    int `json:"prime"`
	Exponent int `json:"exponent"`

	// Result holds the element label or the subgroup's element labels as
	// a JSON blob; empty on failure.
	Result string `json:"result,omitempty"`

	// Status is the outcome.
	Status Status `json:"status"`

	// Error holds the failure message, if any.
	Error *string `json:"error,omitempty"`

	// Duration is the wall-clock computation time.
	Duration time.Duration `json:"duration"`

	// CreatedAt is when the record was written.
	CreatedAt time.Time `json:"created_at"`
}
