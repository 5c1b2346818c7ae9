package kociemba

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetStateRejectsBadCornerPermutation(t *testing.T) {
	var cc CubieCube
	cp := [8]int{0, 0, 2, 3, 4, 5, 6, 7}
	co := [8]int{0, 0, 0, 0, 0, 0, 0, 0}
	ep := [12]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	eo := [12]int{}
	err := cc.SetState(cp, co, ep, eo)
	require.Error(t, err, "expected error for non-bijective corner permutation")
	require.IsType(t, &IllegalStateError{}, err)
}

func TestSetStateRejectsBadOrientationParity(t *testing.T) {
	var cc CubieCube
	cp := [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	co := [8]int{1, 0, 0, 0, 0, 0, 0, 0}
	ep := [12]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	eo := [12]int{}
	require.Error(t, cc.SetState(cp, co, ep, eo), "expected error for corner orientation sum not 0 mod 3")
}

func TestSetStateRejectsMismatchedPermutationParity(t *testing.T) {
	var cc CubieCube
	// Swap two corners (odd permutation) but leave edges even.
	cp := [8]int{1, 0, 2, 3, 4, 5, 6, 7}
	co := [8]int{0, 0, 0, 0, 0, 0, 0, 0}
	ep := [12]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	eo := [12]int{}
	require.Error(t, cc.SetState(cp, co, ep, eo), "expected error for mismatched corner/edge permutation parity")
}

func TestSetStateAcceptsLegalState(t *testing.T) {
	var cc CubieCube
	cp := [8]int{1, 0, 3, 2, 4, 5, 6, 7} // two independent swaps: even permutation
	co := [8]int{0, 0, 0, 0, 0, 0, 0, 0}
	ep := [12]int{1, 0, 3, 2, 4, 5, 6, 7, 8, 9, 10, 11}
	eo := [12]int{}
	require.NoError(t, cc.SetState(cp, co, ep, eo))
}

func TestCloneIsIndependent(t *testing.T) {
	var cc CubieCube
	cc.Home()
	clone := cc.Clone()
	cc.ApplyMove(MoveR)
	require.False(t, cc.Equals(&clone), "mutating the original should not affect the clone")
}
