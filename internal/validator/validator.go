// Package validator checks proposed test names against the naming and 1:5 ratio policy.
package validator

import (
	"fmt"

	"go.uber.org/zap"

	"trv/internal/domain"
	"trv/internal/naming"
)

// Options configure a Validator
type Options struct {
	Scope       domain.Scope
	ZeroPadding bool
	PadWidth    int
}

// Validator validates identifier sequences. It holds no mutable state and is
// safe for concurrent use.
type Validator struct {
	opts    Options
	matcher *naming.Matcher
	logger  *zap.Logger
}

// New creates a Validator. An unknown scope falls back to per-file numbering.
func New(opts Options, logger *zap.Logger) *Validator {
	if !opts.Scope.Valid() {
		opts.Scope = domain.PerFile
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{
		opts:    opts,
		matcher: naming.NewMatcher(naming.Rules{ZeroPadding: opts.ZeroPadding, Width: opts.PadWidth}),
		logger:  logger,
	}
}

// Pattern returns the regular expression names are checked against
func (v *Validator) Pattern() string {
	return v.matcher.Pattern()
}

type scopeState struct {
	seen    map[string]bool
	last    int
	started bool
}

// Validate checks ids in order and returns every violation found. Malformed,
// duplicate and out-of-order names are reported and left out of the ratio
// counts; validation never stops early. A name is a duplicate when it was
// already seen in its numbering scope or in its function group.
func (v *Validator) Validate(ids []domain.Identifier) *domain.ValidationReport {
	report := &domain.ValidationReport{
		Meta: domain.ReportMeta{
			NumberingScope: string(v.opts.Scope),
			ZeroPadding:    v.opts.ZeroPadding,
			PadWidth:       v.opts.PadWidth,
			Identifiers:    len(ids),
		},
		Groups:     []domain.GroupReport{},
		Violations: []domain.Violation{},
	}

	scopes := make(map[string]*scopeState)
	// names per function, across scopes
	used := make(map[string]map[string]bool)
	groups := make(map[string]*domain.FunctionGroup)
	var order []string

	for i, id := range ids {
		id.Position = i

		tc, err := v.matcher.Parse(id)
		if err != nil {
			report.Violations = append(report.Violations, domain.Violation{
				Kind:       domain.MalformedName,
				Identifier: id,
				Message:    fmt.Sprintf("name must match %s", v.matcher.Pattern()),
			})
			continue
		}

		st := scopes[v.scopeKey(id)]
		if st == nil {
			st = &scopeState{seen: make(map[string]bool)}
			scopes[v.scopeKey(id)] = st
		}

		names := used[id.Function]
		if names == nil {
			names = make(map[string]bool)
			used[id.Function] = names
		}

		rejected := false
		switch {
		case st.seen[id.Name]:
			report.Violations = append(report.Violations, domain.Violation{
				Kind:       domain.DuplicateName,
				Identifier: id,
				Message:    fmt.Sprintf("%s is already used in this %s", id.Name, v.scopeLabel()),
			})
			rejected = true
		case names[id.Name]:
			report.Violations = append(report.Violations, domain.Violation{
				Kind:       domain.DuplicateName,
				Identifier: id,
				Message:    fmt.Sprintf("%s is already used by %s", id.Name, displayFunction(id.Function)),
			})
			rejected = true
		}
		st.seen[id.Name] = true
		names[id.Name] = true

		if st.started && tc.Sequence <= st.last {
			report.Violations = append(report.Violations, domain.Violation{
				Kind:       domain.NonMonotonicSequence,
				Identifier: id,
				Message:    fmt.Sprintf("sequence %d must be greater than %d", tc.Sequence, st.last),
			})
			rejected = true
		}
		if rejected {
			continue
		}
		st.last = tc.Sequence
		st.started = true

		g := groups[id.Function]
		if g == nil {
			g = &domain.FunctionGroup{Function: id.Function}
			groups[id.Function] = g
			order = append(order, id.Function)
		}
		g.Cases = append(g.Cases, tc)
	}

	for _, fn := range order {
		g := groups[fn]
		b := CheckGroup(g)
		gr := domain.NewGroupReport(fn, b)
		report.Groups = append(report.Groups, gr)
		if gr.Passed {
			continue
		}
		report.Violations = append(report.Violations, domain.Violation{
			Kind:       domain.RatioViolation,
			Identifier: g.Cases[0].Identifier,
			Message:    ratioMessage(b),
			Bounds:     &b,
		})
	}

	v.logger.Debug("validation finished",
		zap.Int("identifiers", len(ids)),
		zap.Int("groups", len(report.Groups)),
		zap.Int("violations", len(report.Violations)),
		zap.String("scope", string(v.opts.Scope)),
	)

	return report
}

func (v *Validator) scopeKey(id domain.Identifier) string {
	if v.opts.Scope == domain.PerSuite {
		return ""
	}
	return id.File
}

func (v *Validator) scopeLabel() string {
	if v.opts.Scope == domain.PerSuite {
		return "suite"
	}
	return "file"
}

func displayFunction(fn string) string {
	if fn == "" {
		return "(no function)"
	}
	return fn
}

func ratioMessage(b domain.Bounds) string {
	positives := fmt.Sprintf("%d", b.MaxPositives)
	if b.MinPositives != b.MaxPositives {
		positives = fmt.Sprintf("%d..%d", b.MinPositives, b.MaxPositives)
	}
	return fmt.Sprintf("%d positive / %d negative for %d test(s); allowed %s positive and at least %d negative",
		b.Positives, b.Negatives, b.Size, positives, b.MinNegatives)
}
