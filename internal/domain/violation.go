package domain

import "fmt"

// ViolationKind identifies which rule a test name broke
type ViolationKind string

const (
	MalformedName        ViolationKind = "malformed_name"
	DuplicateName        ViolationKind = "duplicate_name"
	NonMonotonicSequence ViolationKind = "non_monotonic_sequence"
	RatioViolation       ViolationKind = "ratio_violation"
)

// ViolationKinds lists every kind in reporting order
var ViolationKinds = []ViolationKind{
	MalformedName,
	DuplicateName,
	NonMonotonicSequence,
	RatioViolation,
}

// Title returns a human-readable label for the kind
func (k ViolationKind) Title() string {
	switch k {
	case MalformedName:
		return "Malformed name"
	case DuplicateName:
		return "Duplicate name"
	case NonMonotonicSequence:
		return "Non-monotonic sequence"
	case RatioViolation:
		return "Ratio violation"
	}
	return string(k)
}

// Bounds are the positive/negative counts of a group against what the 1:5 policy allows
type Bounds struct {
	Size         int `json:"size"`
	Positives    int `json:"positives"`
	Negatives    int `json:"negatives"`
	MinPositives int `json:"min_positives"`
	MaxPositives int `json:"max_positives"`
	MinNegatives int `json:"min_negatives"`
}

// Satisfied reports whether the actual counts fall inside the allowed bounds
func (b Bounds) Satisfied() bool {
	return b.Positives+b.Negatives == b.Size &&
		b.Positives >= b.MinPositives &&
		b.Positives <= b.MaxPositives &&
		b.Negatives >= b.MinNegatives
}

// Violation is one broken rule. Ratio violations refer to a whole group and carry
// Bounds; the others refer to a single identifier.
type Violation struct {
	Kind       ViolationKind `json:"kind"`
	Identifier Identifier    `json:"identifier"`
	Message    string        `json:"message"`
	Bounds     *Bounds       `json:"bounds,omitempty"`
	Resolved   bool          `json:"resolved,omitempty"` // Marked fixed in the viewer
}

// String renders the violation on a single line
func (v Violation) String() string {
	if v.Kind == RatioViolation {
		return fmt.Sprintf("[%s] %s: %s", v.Kind, v.Identifier.Function, v.Message)
	}
	return fmt.Sprintf("[%s] %s %s %q: %s", v.Kind, v.Identifier.Location(), v.Identifier.Function, v.Identifier.Name, v.Message)
}
