package cube

import "kocicube/internal/kociemba"

// kociemba_adapter.go bridges the sticker-level Cube this package already
// models to the cubie-level CubieCube the Kociemba solver needs. It reuses
// the same piece-position geometry piece_mapping.go already carries
// (Get3x3CornerMappings/Get3x3EdgeMappings) and identifies each physical
// piece by matching sticker color sets against a freshly solved reference
// cube, rather than reimplementing any solving logic.

// cornerMappingSlot maps Get3x3CornerMappings()'s entry order (UBL, UBR,
// UFL, UFR, DFL, DFR, DBL, DBR) to the corresponding kociemba corner slot.
var cornerMappingSlot = [8]int{
	kociemba.ULB, kociemba.UBR, kociemba.UFL, kociemba.URF,
	kociemba.DLF, kociemba.DFR, kociemba.DBL, kociemba.DRB,
}

// edgeMappingSlot maps Get3x3EdgeMappings()'s entry order (UB, UL, UR, UF,
// FL, FR, BR, BL, DF, DL, DR, DB) to the corresponding kociemba edge slot.
var edgeMappingSlot = [12]int{
	kociemba.UB, kociemba.UL, kociemba.UR, kociemba.UF,
	kociemba.FL, kociemba.RF, kociemba.BR, kociemba.LB,
	kociemba.DF, kociemba.DL, kociemba.DR, kociemba.DB,
}

// cornerMappingCounterclockwise marks the corner mappings whose second and
// third faces are listed counterclockwise around the corner; for those the
// tuple index of the reference color is the inverse of the clockwise twist.
var cornerMappingCounterclockwise = [8]bool{true, false, false, true, true, false, false, true}

// ToCubieCube converts a solved-scheme 3x3x3 sticker Cube into a
// kociemba.CubieCube. Every corner mapping's and edge mapping's first
// listed face is always the piece's Up/Down (or, for the four slice
// edges, Front/Back) facelet, so that facelet's color is always the
// orientation reference: 0 if it matches the piece's home reference color,
// otherwise the number of clockwise twists (corners) or simply "flipped"
// (edges) away from it.
func (c *Cube) ToCubieCube() (kociemba.CubieCube, error) {
	var cc kociemba.CubieCube
	if c.Size != 3 {
		return cc, &kociemba.IllegalStateError{Reason: "kociemba solving only supports 3x3x3 cubes"}
	}

	home := NewCube(3)

	cornerMappings := Get3x3CornerMappings()
	homeCornerColors := make([][3]Color, 8)
	for i, m := range cornerMappings {
		homeCornerColors[cornerMappingSlot[i]] = [3]Color{
			home.Faces[m.Face1][m.Row1][m.Col1],
			home.Faces[m.Face2][m.Row2][m.Col2],
			home.Faces[m.Face3][m.Row3][m.Col3],
		}
	}

	edgeMappings := Get3x3EdgeMappings()
	homeEdgeColors := make([][2]Color, 12)
	for i, m := range edgeMappings {
		homeEdgeColors[edgeMappingSlot[i]] = [2]Color{
			home.Faces[m.Face1][m.Row1][m.Col1],
			home.Faces[m.Face2][m.Row2][m.Col2],
		}
	}

	var cp, co [8]int
	for i, m := range cornerMappings {
		slot := cornerMappingSlot[i]
		tuple := [3]Color{
			c.Faces[m.Face1][m.Row1][m.Col1],
			c.Faces[m.Face2][m.Row2][m.Col2],
			c.Faces[m.Face3][m.Row3][m.Col3],
		}
		id, twist, ok := identifyCorner(tuple, homeCornerColors)
		if !ok {
			return cc, &kociemba.IllegalStateError{Reason: "corner at an unrecognized color combination"}
		}
		if cornerMappingCounterclockwise[i] {
			twist = (3 - twist) % 3
		}
		cp[slot] = id
		co[slot] = twist
	}

	var ep, eo [12]int
	for i, m := range edgeMappings {
		slot := edgeMappingSlot[i]
		tuple := [2]Color{
			c.Faces[m.Face1][m.Row1][m.Col1],
			c.Faces[m.Face2][m.Row2][m.Col2],
		}
		id, flip, ok := identifyEdge(tuple, homeEdgeColors)
		if !ok {
			return cc, &kociemba.IllegalStateError{Reason: "edge at an unrecognized color combination"}
		}
		ep[slot] = id
		eo[slot] = flip
	}

	if err := cc.SetState(cp, co, ep, eo); err != nil {
		return kociemba.CubieCube{}, err
	}
	return cc, nil
}

func identifyCorner(tuple [3]Color, home [][3]Color) (id, twist int, ok bool) {
	for candidate, h := range home {
		if !sameColorSet3(tuple, h) {
			continue
		}
		for k := 0; k < 3; k++ {
			if tuple[k] == h[0] {
				return candidate, k, true
			}
		}
	}
	return 0, 0, false
}

func identifyEdge(tuple [2]Color, home [][2]Color) (id, flip int, ok bool) {
	for candidate, h := range home {
		if !sameColorSet2(tuple, h) {
			continue
		}
		if tuple[0] == h[0] {
			return candidate, 0, true
		}
		return candidate, 1, true
	}
	return 0, 0, false
}

func sameColorSet3(a, b [3]Color) bool {
	used := [3]bool{}
	for _, x := range a {
		found := false
		for i, y := range b {
			if !used[i] && x == y {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sameColorSet2(a, b [2]Color) bool {
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}
