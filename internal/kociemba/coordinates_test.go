package kociemba

import "testing"

// TestCoordinateRoundTrip is spec.md 8's property 3, checked exhaustively
// over every coordinate's domain: c := C.get(); C.set(c); C.get() == c.
func TestCoordinateRoundTrip(t *testing.T) {
	coords := []coordinate{
		coordTwist, coordFlip, coordChoice,
		coordCornerPerm, coordEdgePerm, coordSlicePerm,
	}
	for _, coord := range coords {
		var cc CubieCube
		cc.Home()
		for ord := 0; ord < coord.size; ord++ {
			coord.set(&cc, ord)
			got := coord.get(&cc)
			if got != ord {
				t.Fatalf("%s: set(%d) then get() = %d", coord.name, ord, got)
			}
		}
	}
}

// TestTwistZeroAtHome checks the documented Phase-1 goal value.
func TestTwistZeroAtHome(t *testing.T) {
	var cc CubieCube
	cc.Home()
	if got := twistGet(&cc); got != 0 {
		t.Errorf("twistGet(home) = %d, want 0", got)
	}
	if got := flipGet(&cc); got != 0 {
		t.Errorf("flipGet(home) = %d, want 0", got)
	}
	if got := choiceGet(&cc); got != 0 {
		t.Errorf("choiceGet(home) = %d, want 0", got)
	}
}

// TestChoiceSetPlacesSliceEdgesInSlots8To11 checks that choiceSet(0) places
// the four M-slice edges in slots 8..11, per spec.md 3.3/4.3.
func TestChoiceSetPlacesSliceEdgesInSlots8To11(t *testing.T) {
	var cc CubieCube
	cc.Home()
	choiceSet(&cc, 0)
	for slot := 8; slot < 12; slot++ {
		if cc.ep[slot] < RF {
			t.Errorf("slot %d holds non-slice edge id %d after choiceSet(0)", slot, cc.ep[slot])
		}
	}
	for slot := 0; slot < 8; slot++ {
		if cc.ep[slot] >= RF {
			t.Errorf("slot %d holds slice edge id %d after choiceSet(0)", slot, cc.ep[slot])
		}
	}
}

// TestCoordinatesAfterScramble re-checks round-trip on a handful of
// reachable (non-home) cube states, since set/get must work for any cube
// the search passes through, not just home.
func TestCoordinatesAfterScramble(t *testing.T) {
	var cc CubieCube
	cc.Home()
	for _, m := range []int{MoveR, MoveU, MoveFi, MoveL2, MoveB} {
		cc.ApplyMove(m)
	}

	for _, coord := range []coordinate{coordTwist, coordFlip, coordCornerPerm, coordEdgePerm} {
		c := coord.get(&cc)
		var probe CubieCube
		probe.Home()
		coord.set(&probe, c)
		if got := coord.get(&probe); got != c {
			t.Errorf("%s: round trip after scramble failed, got %d want %d", coord.name, got, c)
		}
	}
}
