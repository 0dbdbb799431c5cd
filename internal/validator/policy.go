package validator

import "trv/internal/domain"

// RatioBounds returns what the 1:5 policy allows for a group of n tests.
//
// positives <= ceil(n/6) and negatives >= floor(5n/6) are the stated bounds.
// Positives are additionally held at max(1, floor(n/6)) or more, so a single
// test must be the positive one and whole ratio blocks are exact.
func RatioBounds(n int) domain.Bounds {
	if n <= 0 {
		return domain.Bounds{}
	}
	minPositives := n / 6
	if minPositives < 1 {
		minPositives = 1
	}
	return domain.Bounds{
		Size:         n,
		MinPositives: minPositives,
		MaxPositives: (n + 5) / 6,
		MinNegatives: 5 * n / 6,
	}
}

// CheckGroup fills the actual counts of a group into its allowed bounds
func CheckGroup(g *domain.FunctionGroup) domain.Bounds {
	b := RatioBounds(len(g.Cases))
	b.Positives, b.Negatives = g.Counts()
	return b
}
