package domain

import "fmt"

// Kind classifies a test case as exercising the success path or a failure path
type Kind int

const (
	// Positive tests exercise the canonical success path of a function
	Positive Kind = iota
	// Negative tests exercise a failure, boundary or error path
	Negative
)

// String returns the lowercase word used as the name suffix
func (k Kind) String() string {
	switch k {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a lowercase name suffix back into a Kind
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "positive":
		return Positive, true
	case "negative":
		return Negative, true
	}
	return 0, false
}

// MarshalText encodes the kind as its lowercase word
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a lowercase word into a Kind
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown test kind %q", string(text))
	}
	*k = parsed
	return nil
}

// Identifier is a proposed test name tagged with the function it covers.
// The function is supplied by the caller; the name does not encode it.
type Identifier struct {
	Function string `json:"function"`
	Name     string `json:"name"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Position int    `json:"position"` // Index in the input sequence
}

// Location renders file:line when known, the input position otherwise
func (id Identifier) Location() string {
	switch {
	case id.File != "" && id.Line > 0:
		return fmt.Sprintf("%s:%d", id.File, id.Line)
	case id.File != "":
		return id.File
	case id.Line > 0:
		return fmt.Sprintf("line %d", id.Line)
	default:
		return fmt.Sprintf("#%d", id.Position+1)
	}
}

// TestCase is a well-formed identifier decoded into its sequence number and kind
type TestCase struct {
	Identifier
	Sequence int  `json:"sequence"`
	Kind     Kind `json:"kind"`
}

// FunctionGroup holds the test cases of one function in numbering order
type FunctionGroup struct {
	Function string
	Cases    []TestCase
}

// Counts returns the number of positive and negative cases in the group
func (g *FunctionGroup) Counts() (positives, negatives int) {
	for _, tc := range g.Cases {
		if tc.Kind == Positive {
			positives++
		} else {
			negatives++
		}
	}
	return positives, negatives
}
