package kociemba

import "testing"

// TestPruningTableGoalIsZero checks that the BFS root (both coordinates at
// their goal value, index 0) has distance 0.
func TestPruningTableGoalIsZero(t *testing.T) {
	mtTwist := buildMoveTable(coordTwist, false)
	mtFlip := buildMoveTable(coordFlip, false)
	pt := buildPruningTable(mtTwist, mtFlip, false)

	if got := pt.Get(0); got != 0 {
		t.Errorf("pruning table at goal index = %d, want 0", got)
	}
}

// TestPruningTableAdmissibleOneMove is spec.md 8's property 5, spot-checked
// for a single quarter turn away from the goal: that state's pruning value
// must be at most 1 (one move suffices, so the BFS distance can't exceed
// it) and nonzero (it isn't already the goal).
func TestPruningTableAdmissibleOneMove(t *testing.T) {
	mtCorner := buildMoveTable(coordCornerPerm, true)
	mtSlice := buildMoveTable(coordSlicePerm, true)
	pt := buildPruningTable(mtCorner, mtSlice, true)

	corner1 := mtCorner.Next(0, MoveU)
	slice1 := mtSlice.Next(0, MoveU)
	idx := corner1*mtSlice.size + slice1

	d := pt.Get(idx)
	if d == 0 {
		t.Fatalf("one U turn from goal should not itself be the goal (corner=%d slice=%d)", corner1, slice1)
	}
	if d > 1 {
		t.Errorf("one U turn from goal has pruning value %d, want <= 1", d)
	}
}

// TestPruningTableBFSIsMonotonic checks that every pruning-table distance
// reachable within one extra generator step from an already-visited index
// differs by at most 1, the defining property of a BFS layering.
func TestPruningTableBFSIsMonotonic(t *testing.T) {
	mtTwist := buildMoveTable(coordTwist, false)
	mtFlip := buildMoveTable(coordFlip, false)
	pt := buildPruningTable(mtTwist, mtFlip, false)

	gens := phase1Generators()
	sampleTwists := []int{0, 1, 17, 100, 2186}
	sampleFlips := []int{0, 5, 2047}

	for _, t1 := range sampleTwists {
		for _, f1 := range sampleFlips {
			d1 := pt.Get(t1*mtFlip.size + f1)
			for _, g := range gens {
				t2, f2 := step(mtTwist, mtFlip, t1, f1, g)
				d2 := pt.Get(t2*mtFlip.size + f2)
				diff := d2 - d1
				if diff < 0 {
					diff = -diff
				}
				if diff > 1 {
					t.Errorf("twist=%d flip=%d dist=%d -> twist=%d flip=%d dist=%d differ by %d, want <=1", t1, f1, d1, t2, f2, d2, diff)
				}
			}
		}
	}
}

func TestPruningTableByteLen(t *testing.T) {
	if got, want := pruningTableByteLen(3, 3), 5; got != want {
		t.Errorf("pruningTableByteLen(3,3) = %d, want %d", got, want)
	}
	if got, want := pruningTableByteLen(4, 4), 8; got != want {
		t.Errorf("pruningTableByteLen(4,4) = %d, want %d", got, want)
	}
}

func TestNibblePacking(t *testing.T) {
	data := make([]byte, 4)
	setNibble(data, 0, 5)
	setNibble(data, 1, 9)
	setNibble(data, 2, 15)
	if getNibble(data, 0) != 5 || getNibble(data, 1) != 9 || getNibble(data, 2) != 15 {
		t.Fatalf("nibble round trip failed: %v", data)
	}
}
