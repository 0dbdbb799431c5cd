package domain

import "fmt"

// GroupReport summarises one function's test cases
type GroupReport struct {
	Function string `json:"function"`
	Bounds   Bounds `json:"bounds"`
	Ratio    string `json:"ratio"` // positives:negatives
	Passed   bool   `json:"passed"`
}

// NewGroupReport builds the summary line for a group from its bounds
func NewGroupReport(function string, b Bounds) GroupReport {
	return GroupReport{
		Function: function,
		Bounds:   b,
		Ratio:    fmt.Sprintf("%d:%d", b.Positives, b.Negatives),
		Passed:   b.Satisfied(),
	}
}

// ReportMeta describes how a report was produced
type ReportMeta struct {
	Source         string `json:"source"`
	NumberingScope string `json:"numbering_scope"`
	ZeroPadding    bool   `json:"zero_padding"`
	PadWidth       int    `json:"pad_width,omitempty"`
	Identifiers    int    `json:"identifiers"`
	Files          int    `json:"files,omitempty"`
	Duration       string `json:"duration,omitempty"`
	Timestamp      string `json:"timestamp,omitempty"`
}

// ValidationReport is the outcome of one validation pass
type ValidationReport struct {
	Meta       ReportMeta    `json:"meta"`
	Groups     []GroupReport `json:"groups"`
	Violations []Violation   `json:"violations"`
}

// Passed reports whether no rule was broken
func (r *ValidationReport) Passed() bool {
	return len(r.Violations) == 0
}

// CountByKind returns how many violations of each kind the report holds
func (r *ValidationReport) CountByKind() map[ViolationKind]int {
	counts := make(map[ViolationKind]int, len(ViolationKinds))
	for _, v := range r.Violations {
		counts[v.Kind]++
	}
	return counts
}

// Group returns the summary for a function, if present
func (r *ValidationReport) Group(function string) (GroupReport, bool) {
	for _, g := range r.Groups {
		if g.Function == function {
			return g, true
		}
	}
	return GroupReport{}, false
}
