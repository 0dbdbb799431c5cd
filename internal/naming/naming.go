// Package naming implements the "{sequence}_{kind}" test name convention.
package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"trv/internal/domain"
)

// DefaultWidth is the digit count used when zero padding is required without an explicit width
const DefaultWidth = 3

// ErrMalformedName is returned for names outside the convention
var ErrMalformedName = errors.New("malformed test name")

// Rules select the accepted shape of the leading number
type Rules struct {
	ZeroPadding bool
	Width       int
}

// Matcher parses names against a compiled pattern
type Matcher struct {
	pattern *regexp.Regexp
}

// NewMatcher compiles the name pattern for the given rules
func NewMatcher(rules Rules) *Matcher {
	if rules.ZeroPadding && rules.Width <= 0 {
		rules.Width = DefaultWidth
	}
	digits := `\d+`
	if rules.ZeroPadding {
		digits = fmt.Sprintf(`\d{%d}`, rules.Width)
	}
	return &Matcher{
		pattern: regexp.MustCompile(`^(` + digits + `)_(positive|negative)$`),
	}
}

// Pattern returns the regular expression names must match
func (m *Matcher) Pattern() string {
	return m.pattern.String()
}

// Parse decodes an identifier's name into a test case
func (m *Matcher) Parse(id domain.Identifier) (domain.TestCase, error) {
	match := m.pattern.FindStringSubmatch(id.Name)
	if match == nil {
		return domain.TestCase{}, fmt.Errorf("%w: %q does not match %s", ErrMalformedName, id.Name, m.pattern)
	}

	seq, err := strconv.Atoi(match[1])
	if err != nil {
		return domain.TestCase{}, fmt.Errorf("%w: sequence number %s out of range", ErrMalformedName, match[1])
	}
	kind, _ := domain.ParseKind(match[2])

	return domain.TestCase{Identifier: id, Sequence: seq, Kind: kind}, nil
}

// Format builds a name, zero-padded to width digits when width > 0
func Format(seq int, kind domain.Kind, width int) string {
	if width > 0 {
		return fmt.Sprintf("%0*d_%s", width, seq, kind)
	}
	return fmt.Sprintf("%d_%s", seq, kind)
}

// FunctionUnderTest derives the covered function from a Go test function name:
// TestParse and Test_parse cover Parse and parse.
func FunctionUnderTest(testName string) string {
	name := strings.TrimPrefix(testName, "Test")
	name = strings.TrimPrefix(name, "_")
	if name == "" {
		return testName
	}
	return name
}
