package diff

import "slices"

// longestCommonSubsequence returns the longest common subsequence of x and y
// using exact string equality. This is the classic O(m·n) dynamic programming
// formulation: dp[i][j] holds the length of the longest common subsequence of
// x[:i] and y[:j], extended diagonally on a match and carried over from the
// larger neighbor otherwise. Table values never exceed min(m, n).
//
// The backtrack resolves ties by preferring to consume x. Any tie-break
// produces a valid result of the same length, but the choice changes how
// adjacent changes interleave in the final diff, so it has to stay fixed.
func longestCommonSubsequence(x, y []string) []string {
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return nil
	}

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if x[i-1] == y[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	if dp[m][n] == 0 {
		return nil
	}

	lcs := make([]string, 0, dp[m][n])
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case x[i-1] == y[j-1]:
			lcs = append(lcs, x[i-1])
			i--
			j--
		case dp[i-1][j] >= dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	slices.Reverse(lcs)
	return lcs
}
