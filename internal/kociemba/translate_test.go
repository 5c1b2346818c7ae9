package kociemba

import (
	"strings"
	"testing"
)

func TestTranslateMovePhase1(t *testing.T) {
	cases := []struct {
		face, power int
		want        int
	}{
		{MoveR, 1, MoveR},
		{MoveR, 2, MoveR2},
		{MoveR, 3, MoveRi},
		{MoveU, 2, MoveU2},
	}
	for _, c := range cases {
		if got := translateMove(c.face, c.power, false); got != c.want {
			t.Errorf("translateMove(%d,%d,false) = %d, want %d", c.face, c.power, got, c.want)
		}
	}
}

// TestTranslateMovePhase2ForcesHalfTurn is spec.md 4.7's rule: a Phase-2
// R/L/F/B step always emits the half-turn variant regardless of the
// recorded power.
func TestTranslateMovePhase2ForcesHalfTurn(t *testing.T) {
	for _, face := range []int{MoveR, MoveL, MoveF, MoveB} {
		if got := translateMove(face, 1, true); got != QuarterToHalfTurn(face) {
			t.Errorf("phase2 translateMove(%s, 1) = %s, want half turn", NameOfMove(face), NameOfMove(got))
		}
	}
	// U and D keep their recorded power in Phase 2.
	if got := translateMove(MoveU, 3, true); got != MoveUi {
		t.Errorf("phase2 translateMove(U, 3) = %s, want U'", NameOfMove(got))
	}
}

func TestFormatSolution(t *testing.T) {
	got := formatSolution([]int{MoveR, MoveU}, []int{MoveF2})
	if !strings.Contains(got, " . ") {
		t.Errorf("formatSolution() = %q, missing phase separator", got)
	}
	if !strings.HasSuffix(got, "(3)") {
		t.Errorf("formatSolution() = %q, want suffix (3)", got)
	}
	if want := "R U . F2 (3)"; got != want {
		t.Errorf("formatSolution() = %q, want %q", got, want)
	}
}

func TestNameAndParseMoveRoundTrip(t *testing.T) {
	for m := 0; m < 18; m++ {
		name := NameOfMove(m)
		got, ok := MoveNameToMove(name)
		if !ok || got != m {
			t.Errorf("move %d: name %q did not parse back to the same move (got %d, ok=%v)", m, name, got, ok)
		}
	}
	if _, ok := MoveNameToMove("Q"); ok {
		t.Error("expected MoveNameToMove to reject an unknown move name")
	}
}
