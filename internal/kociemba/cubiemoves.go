package kociemba

// Move indices, matching the data model's 18-move layout: six quarter
// turns, their six inverses, then their six half turns, each group in
// R, L, U, D, F, B order.
const (
	MoveR = iota
	MoveL
	MoveU
	MoveD
	MoveF
	MoveB
	MoveRi
	MoveLi
	MoveUi
	MoveDi
	MoveFi
	MoveBi
	MoveR2
	MoveL2
	MoveU2
	MoveD2
	MoveF2
	MoveB2
)

var moveNames = [18]string{
	"R", "L", "U", "D", "F", "B",
	"R'", "L'", "U'", "D'", "F'", "B'",
	"R2", "L2", "U2", "D2", "F2", "B2",
}

// opposingFaces maps a base face (R,L,U,D,F,B) to the face on the other
// side of the cube.
var opposingFaces = [6]int{MoveL, MoveR, MoveD, MoveU, MoveB, MoveF}

// quarterTurnsPerGroup says how many quarter turns of the base face a move
// in group 0 (quarter), 1 (inverse) or 2 (half) is built from.
var quarterTurnsPerGroup = [3]int{1, 3, 2}

// faceMoveDef describes how one base-face quarter turn permutes and
// reorients the corners and edges it touches. Corners/Edges list the four
// affected slots in the order the turn cycles their occupants through
// (slot[i]'s occupant moves into slot[i+1 mod 4]). Twist[i] is the
// orientation delta (mod 3) added to the occupant as it moves from
// Corners[i] into Corners[i+1 mod 4]; Flip, if true, adds 1 mod 2 to every
// edge occupant moving through the cycle.
type faceMoveDef struct {
	Corners [4]int
	Twist   [4]int
	Edges   [4]int
	Flip    bool
}

// moveDefs holds the six base-face definitions, derived directly from the
// geometry of each quarter turn (not composed from any other face's
// definition — each face twists and cycles its own corners and edges).
var moveDefs = [6]faceMoveDef{
	MoveR: {Corners: [4]int{URF, UBR, DRB, DFR}, Twist: [4]int{1, 2, 1, 2}, Edges: [4]int{UR, BR, DR, RF}},
	MoveL: {Corners: [4]int{DLF, DBL, ULB, UFL}, Twist: [4]int{1, 2, 1, 2}, Edges: [4]int{UL, FL, DL, LB}},
	MoveU: {Corners: [4]int{URF, UFL, ULB, UBR}, Edges: [4]int{UF, UL, UB, UR}},
	MoveD: {Corners: [4]int{DFR, DRB, DBL, DLF}, Edges: [4]int{DF, DR, DB, DL}},
	MoveF: {Corners: [4]int{UFL, URF, DFR, DLF}, Twist: [4]int{1, 2, 1, 2}, Edges: [4]int{UF, RF, DF, FL}, Flip: true},
	MoveB: {Corners: [4]int{UBR, ULB, DBL, DRB}, Twist: [4]int{1, 2, 1, 2}, Edges: [4]int{UB, LB, DB, BR}, Flip: true},
}

// quarterTurn applies one clockwise quarter turn of the given base face
// (0..5: R,L,U,D,F,B) to cc.
func (cc *CubieCube) quarterTurn(face int) {
	def := &moveDefs[face]

	var savedCP, savedCO [4]int
	for i, slot := range def.Corners {
		savedCP[i] = cc.cp[slot]
		savedCO[i] = cc.co[slot]
	}
	for i := 0; i < 4; i++ {
		to := (i + 1) % 4
		cc.cp[def.Corners[to]] = savedCP[i]
		cc.co[def.Corners[to]] = (savedCO[i] + def.Twist[i]) % 3
	}

	var savedEP, savedEO [4]int
	for i, slot := range def.Edges {
		savedEP[i] = cc.ep[slot]
		savedEO[i] = cc.eo[slot]
	}
	flipDelta := 0
	if def.Flip {
		flipDelta = 1
	}
	for i := 0; i < 4; i++ {
		to := (i + 1) % 4
		cc.ep[def.Edges[to]] = savedEP[i]
		cc.eo[def.Edges[to]] = (savedEO[i] + flipDelta) % 2
	}
}

// ApplyMove applies one of the 18 moves (quarter turn, inverse, or half
// turn) to cc. A half turn is two applications of the quarter turn; an
// inverse is three, per the data model.
func (cc *CubieCube) ApplyMove(move int) {
	face := move % 6
	group := move / 6
	for i := 0; i < quarterTurnsPerGroup[group]; i++ {
		cc.quarterTurn(face)
	}
}

// InverseOfMove returns the move that undoes move.
func InverseOfMove(move int) int {
	face := move % 6
	group := move / 6
	inverseGroup := [3]int{1, 0, 2}[group]
	return face + inverseGroup*6
}

// QuarterToHalfTurn returns the half-turn move of the same base face as
// move (used when Phase 2 collapses R, L, F, B into their squares).
func QuarterToHalfTurn(move int) int {
	return move%6 + 12
}

// OpposingFace returns the base face (0..5) on the opposite side of the
// cube from move's base face.
func OpposingFace(move int) int {
	return opposingFaces[move%6]
}

// NameOfMove returns the standard notation for a move index 0..17.
func NameOfMove(move int) string {
	return moveNames[move]
}

// MoveNameToMove parses standard notation (e.g. "R", "R'", "R2") back into
// a move index, returning false if name isn't recognized.
func MoveNameToMove(name string) (int, bool) {
	for i, n := range moveNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
