package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"trv/internal/config"
	"trv/internal/domain"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	return &Formatter{config: cfg, out: out}
}

// PrintJSON writes the report as indented JSON
func (f *Formatter) PrintJSON(report *domain.ValidationReport) error {
	enc := json.NewEncoder(f.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// PrintWarning prints a yellow notice line
func (f *Formatter) PrintWarning(format string, args ...any) {
	yellow.Fprintf(f.out, format+"\n", args...)
}

// PrintReport prints per-function ratios, every violation and a summary line
func (f *Formatter) PrintReport(report *domain.ValidationReport) {
	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                  Test Naming & Ratio Report                   ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	meta := report.Meta
	fmt.Fprintf(f.out, "Scope: %s | Zero padding: %t | Names: %d | Functions: %d\n\n",
		meta.NumberingScope, meta.ZeroPadding, meta.Identifiers, len(report.Groups))

	if len(report.Groups) > 0 {
		f.printGroups(report.Groups)
	}

	if len(report.Violations) > 0 {
		f.printViolations(report.Violations)
	}

	fmt.Fprintln(f.out)
	if report.Passed() {
		green.Fprintln(f.out, "✓ All test names follow the convention!")
		return
	}

	counts := report.CountByKind()
	var parts []string
	for _, kind := range domain.ViolationKinds {
		if counts[kind] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[kind], strings.ToLower(kind.Title())))
		}
	}
	red.Fprintf(f.out, "✗ %d violation(s): %s\n", len(report.Violations), strings.Join(parts, ", "))
}

func (f *Formatter) printGroups(groups []domain.GroupReport) {
	width := len("Function")
	for _, g := range groups {
		if len(g.Function) > width {
			width = len(g.Function)
		}
	}

	fmt.Fprintf(f.out, "  %-*s  %5s  %7s  %-9s  %s\n", width, "Function", "Tests", "Ratio", "Positives", "Status")
	fmt.Fprintf(f.out, "  %s\n", strings.Repeat("─", width+42))
	for _, g := range groups {
		b := g.Bounds
		allowed := fmt.Sprintf("%d..%d", b.MinPositives, b.MaxPositives)
		fmt.Fprintf(f.out, "  %-*s  %5d  %7s  %-9s  ", width, g.Function, b.Size, g.Ratio, allowed)
		if g.Passed {
			green.Fprintln(f.out, "ok")
		} else {
			red.Fprintln(f.out, "FAIL")
		}
	}
	fmt.Fprintln(f.out)
}

func (f *Formatter) printViolations(violations []domain.Violation) {
	byKind := make(map[domain.ViolationKind][]domain.Violation)
	for _, v := range violations {
		byKind[v.Kind] = append(byKind[v.Kind], v)
	}

	for _, kind := range domain.ViolationKinds {
		list := byKind[kind]
		if len(list) == 0 {
			continue
		}
		yellow.Fprintf(f.out, "%s (%d)\n", kind.Title(), len(list))
		for i, v := range list {
			connector := "├──"
			if i == len(list)-1 {
				connector = "└──"
			}
			if kind == domain.RatioViolation {
				fmt.Fprintf(f.out, "%s %s: %s\n", connector, cyan.Sprint(v.Identifier.Function), v.Message)
				continue
			}
			fmt.Fprintf(f.out, "%s %s %s %s: %s\n",
				connector,
				white.Sprint(f.location(v.Identifier)),
				cyan.Sprint(displayFunction(v.Identifier.Function)),
				red.Sprintf("%q", v.Identifier.Name),
				v.Message)
		}
		fmt.Fprintln(f.out)
	}
}

// PrintIdentifiers lists discovered names, either by file or as a tree per function
func (f *Formatter) PrintIdentifiers(ids []domain.Identifier, byFunction bool) {
	if len(ids) == 0 {
		yellow.Fprintln(f.out, "No test names found")
		return
	}

	green.Fprintf(f.out, "Found %d test name(s):\n\n", len(ids))
	if !byFunction {
		for _, id := range ids {
			fmt.Fprintf(f.out, "%s  %s  %s\n", white.Sprint(f.location(id)), cyan.Sprint(displayFunction(id.Function)), id.Name)
		}
		return
	}

	var order []string
	grouped := make(map[string][]domain.Identifier)
	for _, id := range ids {
		if _, ok := grouped[id.Function]; !ok {
			order = append(order, id.Function)
		}
		grouped[id.Function] = append(grouped[id.Function], id)
	}

	for i, fn := range order {
		isLastFunc := i == len(order)-1
		if isLastFunc {
			cyan.Fprintf(f.out, "└── %s\n", displayFunction(fn))
		} else {
			cyan.Fprintf(f.out, "├── %s\n", displayFunction(fn))
		}
		cases := grouped[fn]
		for j, id := range cases {
			prefix := "│   "
			if isLastFunc {
				prefix = "    "
			}
			if j == len(cases)-1 {
				prefix += "└── "
			} else {
				prefix += "├── "
			}
			fmt.Fprintf(f.out, "%s%s\n", prefix, yellow.Sprint(id.Name))
		}
	}
}

// PrintPlan prints planned names for a function, one per line
func (f *Formatter) PrintPlan(function string, cases []domain.TestCase) {
	positives := 0
	for _, tc := range cases {
		if tc.Kind == domain.Positive {
			positives++
		}
	}
	cyan.Fprintf(f.out, "%s: %d test(s), %d positive / %d negative\n", function, len(cases), positives, len(cases)-positives)
	for _, tc := range cases {
		if tc.Kind == domain.Positive {
			green.Fprintln(f.out, tc.Name)
		} else {
			fmt.Fprintln(f.out, tc.Name)
		}
	}
}

// location shows file paths relative to the project
func (f *Formatter) location(id domain.Identifier) string {
	if id.File != "" && f.config != nil {
		if rel, err := filepath.Rel(f.config.ProjectPath, id.File); err == nil && !strings.HasPrefix(rel, "..") {
			id.File = rel
		}
	}
	return id.Location()
}

func displayFunction(fn string) string {
	if fn == "" {
		return "(no function)"
	}
	return fn
}
