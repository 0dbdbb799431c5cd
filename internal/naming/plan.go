package naming

import "trv/internal/domain"

// BlockSize is the number of tests in one ratio block: 1 positive, 5 negative
const BlockSize = 6

// Plan lays out total test names for a function in ratio blocks, numbered
// continuously from start. Every block, including a trailing partial one,
// opens with its positive case.
func Plan(function string, total, start, width int) []domain.TestCase {
	if total <= 0 {
		return nil
	}
	if start < 0 {
		start = 0
	}

	cases := make([]domain.TestCase, 0, total)
	for i := 0; i < total; i++ {
		kind := domain.Negative
		if i%BlockSize == 0 {
			kind = domain.Positive
		}
		seq := start + i
		cases = append(cases, domain.TestCase{
			Identifier: domain.Identifier{
				Function: function,
				Name:     Format(seq, kind, width),
				Position: i,
			},
			Sequence: seq,
			Kind:     kind,
		})
	}
	return cases
}
