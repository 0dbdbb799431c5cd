package validator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trv/internal/domain"
)

func ids(function string, names ...string) []domain.Identifier {
	out := make([]domain.Identifier, 0, len(names))
	for _, n := range names {
		out = append(out, domain.Identifier{Function: function, Name: n})
	}
	return out
}

func kinds(r *domain.ValidationReport) []domain.ViolationKind {
	var out []domain.ViolationKind
	for _, v := range r.Violations {
		out = append(out, v.Kind)
	}
	return out
}

func TestValidate_EmptyInput(t *testing.T) {
	r := New(Options{}, nil).Validate(nil)

	assert.True(t, r.Passed())
	assert.Empty(t, r.Groups)
	assert.Empty(t, r.Violations)
}

func TestValidate_Ratio(t *testing.T) {
	tests := []struct {
		name      string
		names     []string
		wantRatio bool
	}{
		{
			name:  "single positive",
			names: []string{"001_positive"},
		},
		{
			name:      "single negative",
			names:     []string{"001_negative"},
			wantRatio: true,
		},
		{
			name:  "exact block",
			names: []string{"001_positive", "002_negative", "003_negative", "004_negative", "005_negative", "006_negative"},
		},
		{
			name:      "block without positive",
			names:     []string{"001_negative", "002_negative", "003_negative", "004_negative", "005_negative", "006_negative"},
			wantRatio: true,
		},
		{
			name:      "block with two positives",
			names:     []string{"001_positive", "002_positive", "003_negative", "004_negative", "005_negative", "006_negative"},
			wantRatio: true,
		},
		{
			name:  "seven with two positives",
			names: []string{"001_positive", "002_positive", "003_negative", "004_negative", "005_negative", "006_negative", "007_negative"},
		},
		{
			name:  "seven with one positive",
			names: []string{"001_positive", "002_negative", "003_negative", "004_negative", "005_negative", "006_negative", "007_negative"},
		},
		{
			name:      "seven with three positives",
			names:     []string{"001_positive", "002_positive", "003_positive", "004_negative", "005_negative", "006_negative", "007_negative"},
			wantRatio: true,
		},
		{
			name:  "positive in the middle of a block",
			names: []string{"001_negative", "002_negative", "003_positive", "004_negative", "005_negative", "006_negative"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(Options{}, nil).Validate(ids("foo", tt.names...))
			require.Len(t, r.Groups, 1)
			if tt.wantRatio {
				assert.Equal(t, []domain.ViolationKind{domain.RatioViolation}, kinds(r))
				require.NotNil(t, r.Violations[0].Bounds)
				assert.Equal(t, "foo", r.Violations[0].Identifier.Function)
				assert.False(t, r.Groups[0].Passed)
			} else {
				assert.True(t, r.Passed(), "unexpected violations: %v", r.Violations)
				assert.True(t, r.Groups[0].Passed)
			}
		})
	}
}

func TestValidate_SevenCaseBounds(t *testing.T) {
	r := New(Options{}, nil).Validate(ids("foo",
		"001_positive", "002_positive", "003_positive", "004_negative", "005_negative", "006_negative", "007_negative"))

	require.Len(t, r.Violations, 1)
	b := r.Violations[0].Bounds
	require.NotNil(t, b)
	assert.Equal(t, 7, b.Size)
	assert.Equal(t, 3, b.Positives)
	assert.Equal(t, 4, b.Negatives)
	assert.Equal(t, 2, b.MaxPositives)
	assert.Equal(t, 5, b.MinNegatives)
	assert.Equal(t, "3:4", r.Groups[0].Ratio)
}

func TestValidate_WholeBlocksInAnyOrder(t *testing.T) {
	for _, blocks := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("%d blocks", blocks), func(t *testing.T) {
			var in []domain.Identifier
			seq := 1
			for _, fn := range []string{"alpha", "beta"} {
				for i := 0; i < blocks*6; i++ {
					kind := domain.Negative
					// spread the positives to the end of each block
					if i%6 == 5 {
						kind = domain.Positive
					}
					in = append(in, domain.Identifier{Function: fn, Name: fmt.Sprintf("%03d_%s", seq, kind)})
					seq++
				}
			}

			r := New(Options{}, nil).Validate(in)
			assert.True(t, r.Passed(), "unexpected violations: %v", r.Violations)
			require.Len(t, r.Groups, 2)
			assert.Equal(t, blocks, r.Groups[0].Bounds.Positives)
			assert.Equal(t, 5*blocks, r.Groups[1].Bounds.Negatives)
		})
	}
}

func TestValidate_Malformed(t *testing.T) {
	in := ids("foo", "001_positive", "creates a user", "002_Negative", "003_negative")

	r := New(Options{}, nil).Validate(in)

	counts := r.CountByKind()
	assert.Equal(t, 2, counts[domain.MalformedName])
	assert.Equal(t, "creates a user", r.Violations[0].Identifier.Name)
	assert.Equal(t, 1, r.Violations[0].Identifier.Position)
	assert.Equal(t, 2, r.Violations[1].Identifier.Position)

	g, ok := r.Group("foo")
	require.True(t, ok)
	assert.Equal(t, 2, g.Bounds.Size, "malformed names are not counted")
}

func TestValidate_ZeroPadding(t *testing.T) {
	in := ids("foo", "001_positive", "2_negative")

	loose := New(Options{}, nil).Validate(in)
	strict := New(Options{ZeroPadding: true, PadWidth: 3}, nil).Validate(in)

	assert.Zero(t, loose.CountByKind()[domain.MalformedName])
	assert.Equal(t, 1, strict.CountByKind()[domain.MalformedName])
}

func TestValidate_Duplicate(t *testing.T) {
	r := New(Options{}, nil).Validate(ids("foo", "001_positive", "002_negative", "003_negative", "003_negative"))

	counts := r.CountByKind()
	assert.Equal(t, 1, counts[domain.DuplicateName])
	assert.Equal(t, 1, counts[domain.NonMonotonicSequence])
	assert.Equal(t, 3, r.Groups[0].Bounds.Size)
}

func TestValidate_RepeatedSequence(t *testing.T) {
	r := New(Options{}, nil).Validate(ids("foo", "001_positive", "002_negative", "002_negative"))

	assert.ElementsMatch(t,
		[]domain.ViolationKind{domain.DuplicateName, domain.NonMonotonicSequence},
		kinds(r))
}

func TestValidate_NonMonotonic(t *testing.T) {
	r := New(Options{}, nil).Validate(ids("foo", "001_positive", "005_negative", "003_negative", "006_negative"))

	require.Equal(t, []domain.ViolationKind{domain.NonMonotonicSequence}, kinds(r))
	assert.Equal(t, "003_negative", r.Violations[0].Identifier.Name)
	assert.Contains(t, r.Violations[0].Message, "greater than 5")
}

func TestValidate_DuplicateAcrossFiles(t *testing.T) {
	in := []domain.Identifier{
		{Function: "foo", Name: "001_positive", File: "a_test.go"},
		{Function: "foo", Name: "003_negative", File: "a_test.go"},
		{Function: "foo", Name: "003_negative", File: "b_test.go"},
		{Function: "bar", Name: "003_negative", File: "b_test.go"},
	}

	r := New(Options{Scope: domain.PerFile}, nil).Validate(in)

	dups := 0
	for _, v := range r.Violations {
		if v.Kind == domain.DuplicateName {
			dups++
			assert.Equal(t, "foo", v.Identifier.Function)
			assert.Equal(t, "b_test.go", v.Identifier.File)
			assert.Contains(t, v.Message, "already used by foo")
		}
	}
	assert.Equal(t, 1, dups, "violations: %v", r.Violations)

	g, ok := r.Group("foo")
	require.True(t, ok)
	assert.Equal(t, 2, g.Bounds.Size, "the repeat is left out of the group")
}

func TestValidate_Scope(t *testing.T) {
	in := []domain.Identifier{
		{Function: "foo", Name: "001_positive", File: "a_test.go"},
		{Function: "bar", Name: "001_positive", File: "b_test.go"},
	}

	t.Run("per file restarts numbering", func(t *testing.T) {
		r := New(Options{Scope: domain.PerFile}, nil).Validate(in)
		assert.True(t, r.Passed(), "unexpected violations: %v", r.Violations)
	})

	t.Run("per suite numbers continuously", func(t *testing.T) {
		r := New(Options{Scope: domain.PerSuite}, nil).Validate(in)
		assert.ElementsMatch(t,
			[]domain.ViolationKind{domain.DuplicateName, domain.NonMonotonicSequence},
			kinds(r))
		assert.Equal(t, "b_test.go", r.Violations[0].Identifier.File)
	})

	t.Run("unknown scope behaves as per file", func(t *testing.T) {
		r := New(Options{Scope: "per_module"}, nil).Validate(in)
		assert.True(t, r.Passed())
		assert.Equal(t, string(domain.PerFile), r.Meta.NumberingScope)
	})
}

func TestValidate_GroupOrder(t *testing.T) {
	in := []domain.Identifier{
		{Function: "zeta", Name: "001_positive"},
		{Function: "alpha", Name: "002_positive"},
		{Function: "zeta", Name: "003_negative"},
	}

	r := New(Options{}, nil).Validate(in)

	require.Len(t, r.Groups, 2)
	assert.Equal(t, "zeta", r.Groups[0].Function)
	assert.Equal(t, "alpha", r.Groups[1].Function)
}

func TestRatioBounds(t *testing.T) {
	tests := []struct {
		n                      int
		minPos, maxPos, minNeg int
	}{
		{n: 1, minPos: 1, maxPos: 1, minNeg: 0},
		{n: 5, minPos: 1, maxPos: 1, minNeg: 4},
		{n: 6, minPos: 1, maxPos: 1, minNeg: 5},
		{n: 7, minPos: 1, maxPos: 2, minNeg: 5},
		{n: 12, minPos: 2, maxPos: 2, minNeg: 10},
		{n: 13, minPos: 2, maxPos: 3, minNeg: 10},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("size %d", tt.n), func(t *testing.T) {
			b := RatioBounds(tt.n)
			assert.Equal(t, tt.minPos, b.MinPositives)
			assert.Equal(t, tt.maxPos, b.MaxPositives)
			assert.Equal(t, tt.minNeg, b.MinNegatives)
		})
	}
}
