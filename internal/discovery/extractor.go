package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"

	"trv/internal/domain"
	"trv/internal/naming"
)

var (
	// func TestXxx(t *testing.T)
	testFuncPattern = regexp.MustCompile(`(?m)^func\s+(Test\w*)\s*\(\s*\w+\s+\*testing\.T\s*\)`)
	// Any top-level func ends the previous body
	topLevelFuncPattern = regexp.MustCompile(`(?m)^func\s`)
	// t.Run("001_positive", ...)
	runPattern = regexp.MustCompile(`\.Run\(\s*"((?:[^"\\\n]|\\.)*)"`)
	// {name: "001_positive", ...} in table-driven tests
	tableNamePattern = regexp.MustCompile(`\b(?:name|Name)\s*:\s*"((?:[^"\\\n]|\\.)*)"`)
)

// Extractor pulls subtest names out of Go test files
type Extractor struct{}

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads a test file and returns its subtest names in source order,
// each tagged with the function under test
func (e *Extractor) Extract(filePath string) ([]domain.Identifier, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	return e.ExtractSource(filePath, string(content)), nil
}

// ExtractSource is Extract over already loaded file content
func (e *Extractor) ExtractSource(filePath, src string) []domain.Identifier {
	lines := lineStarts(src)
	boundaries := topLevelFuncPattern.FindAllStringIndex(src, -1)

	var ids []domain.Identifier
	for _, fn := range testFuncPattern.FindAllStringSubmatchIndex(src, -1) {
		testName := src[fn[2]:fn[3]]
		body := src[fn[1]:bodyEnd(boundaries, fn[1], len(src))]
		offset := fn[1]

		type found struct {
			at   int
			name string
		}
		var names []found
		for _, re := range []*regexp.Regexp{runPattern, tableNamePattern} {
			for _, m := range re.FindAllStringSubmatchIndex(body, -1) {
				names = append(names, found{at: offset + m[2], name: unquote(body[m[2]:m[3]])})
			}
		}
		sort.Slice(names, func(i, j int) bool { return names[i].at < names[j].at })

		function := naming.FunctionUnderTest(testName)
		for _, n := range names {
			ids = append(ids, domain.Identifier{
				Function: function,
				Name:     n.name,
				File:     filePath,
				Line:     lineOf(lines, n.at),
			})
		}
	}
	return ids
}

func bodyEnd(boundaries [][]int, start, limit int) int {
	for _, b := range boundaries {
		if b[0] >= start {
			return b[0]
		}
	}
	return limit
}

func unquote(s string) string {
	if u, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return u
	}
	return s
}

func lineStarts(src string) []int {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func lineOf(starts []int, offset int) int {
	return sort.Search(len(starts), func(i int) bool { return starts[i] > offset })
}
