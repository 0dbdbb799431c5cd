package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"trv/internal/domain"
	"trv/internal/naming"
)

// go test output lines that carry no test name
var ignoredPrefixes = []string{
	"=== PAUSE", "=== CONT", "=== NAME", "--- ", "PASS", "FAIL", "ok ", "ok\t", "? ", "?\t", "coverage:",
	"goos:", "goarch:", "pkg:", "cpu:", "exit status", "panic:",
}

var (
	// t.Log output: "    parse_test.go:12: got value 42"
	logLinePattern = regexp.MustCompile(`^\s+\S+\.go:\d+:`)
	// go test suffix for repeated subtest names: "002_negative#01"
	repeatSuffixPattern = regexp.MustCompile(`#\d+$`)
)

// ListParser reads identifiers one per line. Accepted shapes:
//
//	function name
//	file function name
//	TestFunction/name
//	=== RUN   TestFunction/name
//
// Blank lines and # comments are skipped. Once a "=== RUN" line is seen the
// input is treated as go test -v output and every other line is skipped.
// Otherwise lines of any other shape are kept whole as a name without a
// function, so validation reports them.
type ListParser struct{}

// NewListParser creates a new ListParser
func NewListParser() *ListParser {
	return &ListParser{}
}

// Parse reads identifiers from r in order
func (p *ListParser) Parse(r io.Reader) ([]domain.Identifier, error) {
	var ids []domain.Identifier

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	goTest := false
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "=== RUN") {
			goTest = true
		} else if goTest {
			continue
		}

		id, ok := p.ParseLine(line)
		if !ok {
			continue
		}
		id.Line = lineNo
		id.Position = len(ids)
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read identifiers: %w", err)
	}
	return ids, nil
}

// ParseLine decodes a single line; ok is false for lines that hold no identifier
func (p *ListParser) ParseLine(line string) (id domain.Identifier, ok bool) {
	if logLinePattern.MatchString(line) {
		return id, false
	}
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return id, false
	}

	if rest, found := strings.CutPrefix(line, "=== RUN"); found {
		path := strings.TrimSpace(rest)
		if !strings.Contains(path, "/") {
			// top-level test, not a case
			return id, false
		}
		return fromTestPath(path), true
	}
	for _, prefix := range ignoredPrefixes {
		if strings.HasPrefix(line, prefix) {
			return id, false
		}
	}

	fields := strings.Fields(line)
	switch {
	case len(fields) == 3:
		return domain.Identifier{File: fields[0], Function: fields[1], Name: fields[2]}, true
	case len(fields) == 2:
		return domain.Identifier{Function: fields[0], Name: fields[1]}, true
	case len(fields) == 1 && strings.Contains(line, "/"):
		return fromTestPath(line), true
	}
	return domain.Identifier{Name: line}, true
}

func fromTestPath(path string) domain.Identifier {
	function, name, _ := strings.Cut(path, "/")
	name = repeatSuffixPattern.ReplaceAllString(name, "")
	return domain.Identifier{Function: naming.FunctionUnderTest(function), Name: name}
}
