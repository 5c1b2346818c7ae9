package kociemba

// The six Kociemba coordinates. Each has a Get that reads the coordinate
// out of a CubieCube and a Set that installs a state with that coordinate
// value, leaving components outside the coordinate's scope alone (or, for
// the coordinate's own parity-completing component, set to whatever value
// keeps the whole cube's invariants satisfiable).

const (
	twistSize      = 2187 // 3^7
	flipSize       = 2048 // 2^11
	choiceSize     = 495  // C(12,4)
	cornerPermSize = 40320 // 8!
	edgePermSize   = 40320 // 8!
	slicePermSize  = 24    // 4!
)

// Twist is the corner-orientation coordinate: co[0..6] read as a base-3
// number, most significant digit first. co[7] is the parity-completing
// digit, chosen so the total sum is 0 mod 3.
func twistGet(cc *CubieCube) int {
	t := 0
	for i := 0; i < 7; i++ {
		t = t*3 + cc.co[i]
	}
	return t
}

func twistSet(cc *CubieCube, v int) {
	sum := 0
	for i := 6; i >= 0; i-- {
		cc.co[i] = v % 3
		sum += cc.co[i]
		v /= 3
	}
	cc.co[7] = (3 - sum%3) % 3
}

// Flip is the edge-orientation coordinate: eo[0..10] read as a base-2
// number, most significant digit first. eo[11] completes the parity.
func flipGet(cc *CubieCube) int {
	f := 0
	for i := 0; i < 11; i++ {
		f = f*2 + cc.eo[i]
	}
	return f
}

func flipSet(cc *CubieCube, v int) {
	sum := 0
	for i := 10; i >= 0; i-- {
		cc.eo[i] = v % 2
		sum += cc.eo[i]
		v /= 2
	}
	cc.eo[11] = (2 - sum%2) % 2
}

// Choice is the M-slice-edge location coordinate: the combinatorial rank,
// among all 12-choose-4 placements, of which four slots currently hold the
// M-slice edges (ids RF, FL, LB, BR). Slots are scanned from 11 down to 0
// so that rank 0 is the placement with all four slice edges already in
// slots 8..11 — the Phase-1 goal — rather than slots 0..3.
func choiceGet(cc *CubieCube) int {
	rank := 0
	found := 0
	for slot := 11; slot >= 0; slot-- {
		if cc.ep[slot] >= RF {
			found++
			rank += nChooseK(11-slot, found)
		}
	}
	return rank
}

func choiceSet(cc *CubieCube, ord int) {
	sliceIDs := [4]int{RF, FL, LB, BR}
	nonSliceIDs := [8]int{UF, UL, UB, UR, DF, DL, DB, DR}

	var ep [12]int
	for i := range ep {
		ep[i] = -1
	}

	remaining := ord
	need := 4
	for slot := 0; slot < 12 && need > 0; slot++ {
		if c := nChooseK(11-slot, need); remaining-c >= 0 {
			ep[slot] = sliceIDs[4-need]
			remaining -= c
			need--
		}
	}

	ni := 0
	for slot := 0; slot < 12; slot++ {
		if ep[slot] == -1 {
			ep[slot] = nonSliceIDs[ni]
			ni++
		}
	}
	cc.ep = ep
}

// CornerPermutation is the Lehmer ordinal of the full 8-corner permutation.
func cornerPermGet(cc *CubieCube) int {
	return permutationToOrdinal(cc.cp[:], 8)
}

func cornerPermSet(cc *CubieCube, ord int) {
	var v [8]int
	ordinalToPermutation(ord, v[:], 8, 0)
	cc.cp = v
}

// EdgePermutation is the Lehmer ordinal of the 8 non-M-slice edges, valid
// once Choice==0 has confined the M-slice edges to slots 8..11.
func edgePermGet(cc *CubieCube) int {
	return permutationToOrdinal(cc.ep[:8], 8)
}

func edgePermSet(cc *CubieCube, ord int) {
	var v [8]int
	ordinalToPermutation(ord, v[:], 8, 0)
	copy(cc.ep[:8], v[:])
}

// SlicePermutation is the Lehmer ordinal of the permutation within the
// four M-slice slots (8..11), valid once Choice==0.
func slicePermGet(cc *CubieCube) int {
	var norm [4]int
	for i := 0; i < 4; i++ {
		norm[i] = cc.ep[8+i] - RF
	}
	return permutationToOrdinal(norm[:], 4)
}

func slicePermSet(cc *CubieCube, ord int) {
	var v [4]int
	ordinalToPermutation(ord, v[:], 4, RF)
	copy(cc.ep[8:12], v[:])
}
