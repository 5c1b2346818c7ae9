package kociemba

import (
	"encoding/binary"
	"os"
)

// coordinate bundles a coordinate's size with the getter/setter pair that
// reads or installs it on a CubieCube. Parametrising MoveTable by this
// struct (rather than one subclass per coordinate, as the original C++
// hierarchy did) is what lets a single Go type serve all six coordinates.
type coordinate struct {
	name string
	size int
	get  func(cc *CubieCube) int
	set  func(cc *CubieCube, v int)
}

var (
	coordTwist      = coordinate{"twist", twistSize, twistGet, twistSet}
	coordFlip       = coordinate{"flip", flipSize, flipGet, flipSet}
	coordChoice     = coordinate{"choice", choiceSize, choiceGet, choiceSet}
	coordCornerPerm = coordinate{"cornerperm", cornerPermSize, cornerPermGet, cornerPermSet}
	coordEdgePerm   = coordinate{"edgeperm", edgePermSize, edgePermGet, edgePermSet}
	coordSlicePerm  = coordinate{"sliceperm", slicePermSize, slicePermGet, slicePermSet}
)

// moveTable is the next(ordinal, move) -> ordinal transition table for one
// coordinate: size rows of 6 columns (one per base face R,L,U,D,F,B).
// Phase-1 tables store the effect of the plain quarter turn; Phase-2
// tables store the effect of the half turn for every face except U and D,
// since Phase 2 search only ever applies R, L, F, B as R2/L2/F2/B2.
type moveTable struct {
	size    int
	phase2  bool
	entries []int32
}

// buildMoveTable generates a move table from scratch by walking every
// ordinal of coord, installing it on a home cube, applying each of the six
// moves, reading the resulting coordinate value, then undoing the move.
func buildMoveTable(coord coordinate, phase2 bool) *moveTable {
	mt := &moveTable{size: coord.size, phase2: phase2, entries: make([]int32, coord.size*6)}

	var cc CubieCube
	cc.Home()

	for ord := 0; ord < coord.size; ord++ {
		coord.set(&cc, ord)
		for face := 0; face < 6; face++ {
			m := face
			if phase2 && face != MoveU && face != MoveD {
				m = QuarterToHalfTurn(face)
			}
			cc.ApplyMove(m)
			mt.entries[ord*6+face] = int32(coord.get(&cc))
			cc.ApplyMove(InverseOfMove(m))
		}
	}
	return mt
}

// Next returns the coordinate ordinal reached by applying base face move
// (0..5) from ordinal.
func (mt *moveTable) Next(ordinal, move int) int {
	return int(mt.entries[ordinal*6+move])
}

// Save persists the table as raw little-endian int32 rows, no header.
func (mt *moveTable) Save(path string) error {
	buf := make([]byte, len(mt.entries)*4)
	for i, v := range mt.entries {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	return os.WriteFile(path, buf, 0o644)
}

// loadMoveTable reads a table previously written by Save. The caller is
// responsible for checking the file size matches the expected coordinate
// size before calling this.
func loadMoveTable(data []byte, size int) *moveTable {
	mt := &moveTable{size: size, entries: make([]int32, size*6)}
	for i := range mt.entries {
		mt.entries[i] = int32(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return mt
}
