package kociemba

import (
	"os"

	"github.com/bits-and-blooms/bitset"
)

// pruningTable is a nibble-packed admissible lower bound on the number of
// moves needed to bring a pair of coordinates to 0, indexed by
// c1*size2+c2. Values are stored modulo 16 in 4 bits; the deepest BFS layer
// of the five tables built here is 14, so no entry wraps.
type pruningTable struct {
	size1, size2 int
	data         []byte
}

// generator is one move a phase's search is allowed to apply; power is how
// many times the base face's move-table column is followed.
type generator struct {
	face  int
	power int
}

func phase1Generators() []generator {
	gens := make([]generator, 0, 18)
	for face := 0; face < 6; face++ {
		for power := 1; power <= 3; power++ {
			gens = append(gens, generator{face, power})
		}
	}
	return gens
}

// phase2Generators returns the 10 generators of the Phase-2 subgroup: U and
// D at any power, and a single application of R, L, F, B (whose move
// tables already encode the half turn in Phase-2 mode).
func phase2Generators() []generator {
	gens := make([]generator, 0, 10)
	for _, face := range []int{MoveU, MoveD} {
		for power := 1; power <= 3; power++ {
			gens = append(gens, generator{face, power})
		}
	}
	for _, face := range []int{MoveR, MoveL, MoveF, MoveB} {
		gens = append(gens, generator{face, 1})
	}
	return gens
}

// step applies a generator to a coordinate pair using the two move tables.
func step(mt1, mt2 *moveTable, c1, c2 int, g generator) (int, int) {
	for i := 0; i < g.power; i++ {
		c1 = mt1.Next(c1, g.face)
		c2 = mt2.Next(c2, g.face)
	}
	return c1, c2
}

// buildPruningTable runs a breadth-first search outward from the goal
// state (both coordinates 0) over the product space mt1.size x mt2.size,
// recording at each reachable index the BFS depth at which it was first
// visited. Because every phase's generator set is closed under inverses,
// this is exactly the minimum number of moves from that index back to the
// goal.
func buildPruningTable(mt1, mt2 *moveTable, phase2 bool) *pruningTable {
	n := mt1.size * mt2.size
	pt := &pruningTable{size1: mt1.size, size2: mt2.size, data: make([]byte, (n+1)/2)}
	for i := range pt.data {
		pt.data[i] = 0xFF
	}

	gens := phase1Generators()
	if phase2 {
		gens = phase2Generators()
	}

	visited := bitset.New(uint(n))
	visited.Set(0)
	setNibble(pt.data, 0, 0)

	frontier := []int{0}
	depth := byte(0)
	for len(frontier) > 0 {
		depth++
		var next []int
		for _, idx := range frontier {
			c1 := idx / mt2.size
			c2 := idx % mt2.size
			for _, g := range gens {
				nc1, nc2 := step(mt1, mt2, c1, c2, g)
				nidx := nc1*mt2.size + nc2
				if visited.Test(uint(nidx)) {
					continue
				}
				visited.Set(uint(nidx))
				setNibble(pt.data, nidx, depth&0x0F)
				next = append(next, nidx)
			}
		}
		frontier = next
	}

	return pt
}

// Get returns the pruning value at index.
func (pt *pruningTable) Get(index int) int {
	return int(getNibble(pt.data, index))
}

// Save persists the packed nibble table as-is.
func (pt *pruningTable) Save(path string) error {
	return os.WriteFile(path, pt.data, 0o644)
}

func loadPruningTable(data []byte, size1, size2 int) *pruningTable {
	return &pruningTable{size1: size1, size2: size2, data: data}
}

func pruningTableByteLen(size1, size2 int) int {
	n := size1 * size2
	return (n + 1) / 2
}

func getNibble(data []byte, idx int) byte {
	b := data[idx/2]
	if idx%2 == 0 {
		return b & 0x0F
	}
	return (b >> 4) & 0x0F
}

func setNibble(data []byte, idx int, v byte) {
	i := idx / 2
	if idx%2 == 0 {
		data[i] = (data[i] & 0xF0) | (v & 0x0F)
	} else {
		data[i] = (data[i] & 0x0F) | ((v & 0x0F) << 4)
	}
}
