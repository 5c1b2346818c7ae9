package kociemba

import (
	"os"
	"testing"
)

// TestMoveTableConsistency is spec.md 8's property 4: for every coordinate,
// every ordinal, and every base move, applying the move to a cube with that
// coordinate value yields MT[coord][move].
func TestMoveTableConsistency(t *testing.T) {
	for _, coord := range []coordinate{coordTwist, coordFlip, coordChoice} {
		mt := buildMoveTable(coord, false)
		var cc CubieCube
		cc.Home()
		for ord := 0; ord < coord.size; ord++ {
			coord.set(&cc, ord)
			for face := 0; face < 6; face++ {
				cc.ApplyMove(face)
				want := coord.get(&cc)
				cc.ApplyMove(InverseOfMove(face))

				if got := mt.Next(ord, face); got != want {
					t.Fatalf("%s move table: Next(%d, %s) = %d, want %d", coord.name, ord, NameOfMove(face), got, want)
				}
			}
		}
	}
}

// TestMoveTablePhase2UsesHalfTurns checks that a Phase-2 table for R/L/F/B
// records the effect of the half turn, not the quarter turn, per spec.md
// 4.4's build contract.
func TestMoveTablePhase2UsesHalfTurns(t *testing.T) {
	mt := buildMoveTable(coordCornerPerm, true)

	var quarter, half CubieCube
	quarter.Home()
	half.Home()
	quarter.ApplyMove(MoveR)
	half.ApplyMove(MoveR2)

	gotQuarterAsOrdinal := cornerPermGet(&quarter)
	wantHalf := cornerPermGet(&half)

	next := mt.Next(0, MoveR)
	if next != wantHalf {
		t.Errorf("phase-2 cornerPerm table Next(0, R) = %d, want half-turn result %d", next, wantHalf)
	}
	if next == gotQuarterAsOrdinal && gotQuarterAsOrdinal != wantHalf {
		t.Errorf("phase-2 table appears to have recorded the quarter turn instead of the half turn")
	}
}

// TestMoveTableUDUnaffectedByPhase2 checks that U/D columns are identical
// between phase-1 and phase-2 tables for a Phase-2-relevant coordinate,
// since Phase 2 only promotes R,L,F,B to half turns.
func TestMoveTableUDUnaffectedByPhase2(t *testing.T) {
	phase1 := buildMoveTable(coordSlicePerm, false)
	phase2 := buildMoveTable(coordSlicePerm, true)

	for ord := 0; ord < coordSlicePerm.size; ord++ {
		for _, face := range []int{MoveU, MoveD} {
			if a, b := phase1.Next(ord, face), phase2.Next(ord, face); a != b {
				t.Errorf("sliceperm ord=%d face=%s: phase1=%d phase2=%d, want equal", ord, NameOfMove(face), a, b)
			}
		}
	}
}

// TestMoveTableSaveLoadRoundTrip checks the persisted byte layout matches
// spec.md 6.2: size*6*4 little-endian int32 entries, no header.
func TestMoveTableSaveLoadRoundTrip(t *testing.T) {
	mt := buildMoveTable(coordChoice, false)

	dir := t.TempDir()
	path := dir + "/Choice.mtb"
	if err := mt.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if want := coordChoice.size * 6 * 4; len(data) != want {
		t.Fatalf("saved file is %d bytes, want %d", len(data), want)
	}

	loaded := loadMoveTable(data, coordChoice.size)
	for ord := 0; ord < coordChoice.size; ord++ {
		for face := 0; face < 6; face++ {
			if a, b := mt.Next(ord, face), loaded.Next(ord, face); a != b {
				t.Fatalf("loaded table mismatch at ord=%d face=%d: %d != %d", ord, face, a, b)
			}
		}
	}
}
