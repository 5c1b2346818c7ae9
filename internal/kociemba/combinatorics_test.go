package kociemba

import "testing"

func TestNChooseK(t *testing.T) {
	cases := []struct{ n, k, want int }{
		{12, 4, 495},
		{8, 0, 1},
		{8, 8, 1},
		{5, 2, 10},
		{0, 0, 1},
		{3, 5, 0},
		{3, -1, 0},
	}
	for _, c := range cases {
		if got := nChooseK(c.n, c.k); got != c.want {
			t.Errorf("nChooseK(%d,%d) = %d, want %d", c.n, c.k, got, c.want)
		}
	}
}

// TestPermutationOrdinalRoundTrip exhaustively checks that
// ordinalToPermutation inverts permutationToOrdinal for every ordinal of a
// few small n, per spec.md 4.1's "must be exact inverses for all valid
// inputs".
func TestPermutationOrdinalRoundTrip(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 6} {
		fact := factorial(n)
		for ord := 0; ord < fact; ord++ {
			var v [12]int
			ordinalToPermutation(ord, v[:n], n, 0)

			seen := map[int]bool{}
			for i := 0; i < n; i++ {
				if v[i] < 0 || v[i] >= n || seen[v[i]] {
					t.Fatalf("n=%d ord=%d produced non-permutation %v", n, ord, v[:n])
				}
				seen[v[i]] = true
			}

			got := permutationToOrdinal(v[:n], n)
			if got != ord {
				t.Fatalf("n=%d: ordinalToPermutation(%d) -> %v -> permutationToOrdinal = %d, want %d", n, ord, v[:n], got, ord)
			}
		}
	}
}

func TestOrdinalToPermutationOffset(t *testing.T) {
	var v [4]int
	ordinalToPermutation(0, v[:], 4, 8)
	for i, x := range v {
		if x < 8 || x > 11 {
			t.Fatalf("offset permutation entry %d = %d, want in [8,12)", i, x)
		}
	}
}
