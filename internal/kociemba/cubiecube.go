package kociemba

// Corner and edge slot/cubie identities. A corner or edge id and the slot
// it lives in share the same numbering: in the solved cube, cp[i]==i and
// ep[i]==i for every slot i.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

const (
	UF = iota
	UL
	UB
	UR
	DF
	DL
	DB
	DR
	RF
	FL
	LB
	BR
)

// CubieCube is the cubie-level representation of a 3x3x3 Rubik's Cube:
// a corner permutation/orientation pair and an edge permutation/orientation
// pair. cp[slot] and ep[slot] hold the id of the cubie currently occupying
// that slot; co[slot]/eo[slot] hold that cubie's orientation relative to
// its home slot (corners mod 3, edges mod 2).
type CubieCube struct {
	cp [8]int
	co [8]int
	ep [12]int
	eo [12]int
}

// Home resets cc to the solved state.
func (cc *CubieCube) Home() {
	for i := 0; i < 8; i++ {
		cc.cp[i] = i
		cc.co[i] = 0
	}
	for i := 0; i < 12; i++ {
		cc.ep[i] = i
		cc.eo[i] = 0
	}
}

// SetState installs a corner/edge permutation and orientation, validating
// the invariants from the data model: both permutations must be bijections
// on their value sets, corner orientations must sum to 0 mod 3, edge
// orientations to 0 mod 2, and the two permutations must share the same
// parity.
func (cc *CubieCube) SetState(cp, co [8]int, ep, eo [12]int) error {
	if !isPermutation(cp[:], 8) {
		return &IllegalStateError{Reason: "corner permutation is not a bijection on {0..7}"}
	}
	if !isPermutation(ep[:], 12) {
		return &IllegalStateError{Reason: "edge permutation is not a bijection on {0..11}"}
	}

	coSum := 0
	for _, t := range co {
		if t < 0 || t > 2 {
			return &IllegalStateError{Reason: "corner orientation out of range 0..2"}
		}
		coSum += t
	}
	if coSum%3 != 0 {
		return &IllegalStateError{Reason: "corner orientations do not sum to 0 mod 3"}
	}

	eoSum := 0
	for _, t := range eo {
		if t < 0 || t > 1 {
			return &IllegalStateError{Reason: "edge orientation out of range 0..1"}
		}
		eoSum += t
	}
	if eoSum%2 != 0 {
		return &IllegalStateError{Reason: "edge orientations do not sum to 0 mod 2"}
	}

	if permutationParity(cp[:]) != permutationParity(ep[:]) {
		return &IllegalStateError{Reason: "corner and edge permutations have mismatched parity"}
	}

	cc.cp = cp
	cc.co = co
	cc.ep = ep
	cc.eo = eo
	return nil
}

// Equals reports whether two cubie cubes represent the identical state.
func (cc *CubieCube) Equals(other *CubieCube) bool {
	return cc.cp == other.cp && cc.co == other.co && cc.ep == other.ep && cc.eo == other.eo
}

// Clone returns an independent copy of cc.
func (cc *CubieCube) Clone() CubieCube {
	return *cc
}

func isPermutation(v []int, n int) bool {
	if len(v) != n {
		return false
	}
	var seen [12]bool
	for _, x := range v {
		if x < 0 || x >= n || seen[x] {
			return false
		}
		seen[x] = true
	}
	return true
}

// permutationParity returns 0 for an even permutation, 1 for odd, counting
// transpositions via cycle decomposition.
func permutationParity(v []int) int {
	n := len(v)
	visited := make([]bool, n)
	parity := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycleLen := 0
		j := i
		for !visited[j] {
			visited[j] = true
			j = v[j]
			cycleLen++
		}
		if cycleLen > 0 {
			parity += cycleLen - 1
		}
	}
	return parity % 2
}
