package domain

// Scope is the range within which test numbers must be unique and increasing
type Scope string

const (
	// PerFile restarts numbering in every file
	PerFile Scope = "per_file"
	// PerSuite numbers every test of the suite in one sequence
	PerSuite Scope = "per_suite"
)

// Valid reports whether s is a known scope
func (s Scope) Valid() bool {
	return s == PerFile || s == PerSuite
}
