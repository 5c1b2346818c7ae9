package kociemba

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the three data-model invariants from spec.md
// 3.1: corner orientation sum 0 mod 3, edge orientation sum 0 mod 2, and
// matching permutation parity.
func checkInvariants(t *testing.T, cc *CubieCube) {
	t.Helper()
	coSum := 0
	for _, x := range cc.co {
		coSum += x
	}
	if coSum%3 != 0 {
		t.Errorf("corner orientation sum %d not 0 mod 3", coSum)
	}
	eoSum := 0
	for _, x := range cc.eo {
		eoSum += x
	}
	if eoSum%2 != 0 {
		t.Errorf("edge orientation sum %d not 0 mod 2", eoSum)
	}
	if permutationParity(cc.cp[:]) != permutationParity(cc.ep[:]) {
		t.Errorf("corner parity %d != edge parity %d", permutationParity(cc.cp[:]), permutationParity(cc.ep[:]))
	}
}

// TestMoveInverse is spec.md 8's property 1: apply(m); apply(inverse(m))
// restores the original state, for every move 0..17.
func TestMoveInverse(t *testing.T) {
	for m := 0; m < 18; m++ {
		var cc CubieCube
		cc.Home()
		// Scramble a bit first so the property isn't trivially true from home.
		for _, s := range []int{MoveR, MoveU2, MoveFi} {
			cc.ApplyMove(s)
		}
		before := cc.Clone()
		cc.ApplyMove(m)
		cc.ApplyMove(InverseOfMove(m))
		if diff := cmp.Diff(before, cc, cmp.AllowUnexported(CubieCube{})); diff != "" {
			t.Errorf("move %s: apply then inverse did not restore state (-want +got):\n%s", NameOfMove(m), diff)
		}
	}
}

// TestHalfTurnIsDoubleQuarter is spec.md 8's property 2.
func TestHalfTurnIsDoubleQuarter(t *testing.T) {
	bases := []int{MoveR, MoveL, MoveU, MoveD, MoveF, MoveB}
	for _, face := range bases {
		var direct, doubled CubieCube
		direct.Home()
		doubled.Home()

		direct.ApplyMove(QuarterToHalfTurn(face))
		doubled.ApplyMove(face)
		doubled.ApplyMove(face)

		if diff := cmp.Diff(direct, doubled, cmp.AllowUnexported(CubieCube{})); diff != "" {
			t.Errorf("half turn of %s != two quarter turns (-direct +doubled):\n%s", NameOfMove(face), diff)
		}
	}
}

// TestQuarterTurnPreservesInvariants exercises every move from a few
// different starting states and checks spec.md 8's property 7.
func TestQuarterTurnPreservesInvariants(t *testing.T) {
	var cc CubieCube
	cc.Home()
	checkInvariants(t, &cc)

	seq := []int{MoveR, MoveU, MoveRi, MoveUi, MoveF2, MoveL, MoveBi}
	for _, m := range seq {
		cc.ApplyMove(m)
		checkInvariants(t, &cc)
	}
}

// TestDisallowedMoveFilter is spec.md 8's concrete "disallowed-move filter"
// scenario: no consecutive same-face moves, and no F-after-B, R-after-L,
// U-after-D in raw search output.
func TestDisallowedMoveFilter(t *testing.T) {
	cases := []struct {
		move    int
		history []int
		depth   int
		want    bool
	}{
		{MoveR, []int{MoveR}, 1, true},
		{MoveF, []int{MoveB}, 1, true},
		{MoveB, []int{MoveF}, 1, false}, // only F-after-B is filtered, not the reverse
		{MoveR, []int{MoveL}, 1, true},
		{MoveU, []int{MoveD}, 1, true},
		{MoveL, []int{MoveR}, 1, false},
		{MoveU, []int{MoveL, MoveF}, 2, false},
	}
	for i, c := range cases {
		hist := make([]int, maxSearchDepth)
		copy(hist, c.history)
		got := disallowed(c.move, hist, c.depth)
		require.Equalf(t, c.want, got, "case %d: disallowed(%s, %v, %d)", i, NameOfMove(c.move), c.history, c.depth)
	}

	// X Y X pattern on an opposing-face pair not already covered by the
	// simple same-axis rules above (B after F, with a prior B): B F B.
	hist := make([]int, maxSearchDepth)
	hist[0] = MoveB
	hist[1] = MoveF
	require.True(t, disallowed(MoveB, hist, 2), "B F B (B opposing F) should be disallowed at depth 2")
}
