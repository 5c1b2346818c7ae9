package kociemba

// Search status codes, mirroring the original driver's three-way result:
// a plain Phase-2 solution at a Phase-1 node (found), a proof that no
// shorter overall solution exists (optimum), and an abandoned branch
// (abort) that just means "keep deepening".
const (
	statusNotFound = iota
	statusFound
	statusOptimum
	statusAbort
	statusBest
)

const hugeCost = 1 << 30

// maxSearchDepth bounds the transient move-history arrays; 30 is generous
// for any scramble the table-driven heuristics will encounter.
const maxSearchDepth = 30

// disallowed is the move-redundancy filter shared by both phases: it
// rejects a candidate move that would repeat the previous face, undo it
// immediately via the canonical opposite-face ordering, or produce an
// X Y X pattern across two opposing faces.
func disallowed(move int, history []int, depth int) bool {
	if depth == 0 {
		return false
	}
	prev := history[depth-1]
	if prev == move {
		return true
	}
	if move == MoveF && prev == MoveB {
		return true
	}
	if move == MoveR && prev == MoveL {
		return true
	}
	if move == MoveU && prev == MoveD {
		return true
	}
	if depth > 1 && history[depth-2] == move && prev == OpposingFace(move) {
		return true
	}
	return false
}

// searchState carries everything one Solve call's IDA* search needs:
// table references, the move/power history of each phase, and the
// bookkeeping the original driver used to track the best solution found so
// far across iterative-deepening rounds.
type searchState struct {
	mtTwist, mtFlip, mtChoice          *moveTable
	mtCornerPerm, mtEdgePerm, mtSlice  *moveTable
	ptTwistFlip, ptTwistChoice         *pruningTable
	ptFlipChoice                       *pruningTable
	ptCornerSlice, ptEdgeSlice         *pruningTable

	solutionMoves1  [maxSearchDepth]int
	solutionPowers1 [maxSearchDepth]int
	solutionMoves2  [maxSearchDepth]int
	solutionPowers2 [maxSearchDepth]int

	solutionLength1   int
	solutionLength2   int
	minSolutionLength int

	threshold1, newThreshold1 int
	threshold2, newThreshold2 int

	nodes1, nodes2 int

	bestPhase1, bestPhase2 []int
	bestFound              bool

	deadlineExceeded func() bool
}

func (s *searchState) phase1Cost(twist, flip, choice int) int {
	cost := s.ptTwistFlip.Get(twist*s.mtFlip.size + flip)
	if c := s.ptTwistChoice.Get(twist*s.mtChoice.size + choice); c > cost {
		cost = c
	}
	if c := s.ptFlipChoice.Get(flip*s.mtChoice.size + choice); c > cost {
		cost = c
	}
	return cost
}

func (s *searchState) phase2Cost(corner, edge, slice int) int {
	cost := s.ptCornerSlice.Get(corner*s.mtSlice.size + slice)
	if c := s.ptEdgeSlice.Get(edge*s.mtSlice.size + slice); c > cost {
		cost = c
	}
	return cost
}

// recordSolution saves the current Phase-1/Phase-2 move histories as the
// best solution found so far, translating stored (face, power) pairs into
// reportable move indices.
func (s *searchState) recordSolution() {
	phase1 := make([]int, s.solutionLength1)
	for i := 0; i < s.solutionLength1; i++ {
		phase1[i] = translateMove(s.solutionMoves1[i], s.solutionPowers1[i], false)
	}
	phase2 := make([]int, s.solutionLength2)
	for i := 0; i < s.solutionLength2; i++ {
		phase2[i] = translateMove(s.solutionMoves2[i], s.solutionPowers2[i], true)
	}
	s.bestPhase1 = phase1
	s.bestPhase2 = phase2
	s.bestFound = true
}

// search2 is the Phase-2 IDA* recursion over (cornerPerm, edgePerm, slice).
func (s *searchState) search2(corner, edge, slice, depth int) int {
	cost := s.phase2Cost(corner, edge, slice)
	if cost == 0 {
		s.solutionLength2 = depth
		total := s.solutionLength1 + s.solutionLength2
		if total < s.minSolutionLength {
			s.minSolutionLength = total
			s.recordSolution()
		}
		return statusFound
	}

	totalCost := depth + cost
	if totalCost <= s.threshold2 {
		if s.solutionLength1+depth >= s.minSolutionLength-1 {
			return statusAbort
		}
		for face := 0; face < 6; face++ {
			if disallowed(face, s.solutionMoves2[:], depth) {
				continue
			}
			corner2, edge2, slice2 := corner, edge, slice
			s.solutionMoves2[depth] = face
			powerLimit := 4
			if face != MoveU && face != MoveD {
				powerLimit = 2
			}
			for power := 1; power < powerLimit; power++ {
				s.solutionPowers2[depth] = power
				corner2 = s.mtCornerPerm.Next(corner2, face)
				edge2 = s.mtEdgePerm.Next(edge2, face)
				slice2 = s.mtSlice.Next(slice2, face)
				s.nodes2++
				if result := s.search2(corner2, edge2, slice2, depth+1); result != statusNotFound {
					return result
				}
			}
		}
	} else if totalCost < s.newThreshold2 {
		s.newThreshold2 = totalCost
	}
	return statusNotFound
}

// solve2 runs Phase-2 IDA* to completion (or abort) on the cube reached at
// the end of a candidate Phase-1 solution.
func (s *searchState) solve2(cc *CubieCube) int {
	corner := coordCornerPerm.get(cc)
	edge := coordEdgePerm.get(cc)
	slice := coordSlicePerm.get(cc)

	s.threshold2 = s.phase2Cost(corner, edge, slice)
	s.nodes2 = 1
	s.solutionLength2 = 0

	result := statusNotFound
	for result == statusNotFound {
		s.newThreshold2 = hugeCost
		result = s.search2(corner, edge, slice, 0)
		if s.newThreshold2 >= hugeCost {
			break
		}
		s.threshold2 = s.newThreshold2
	}
	return result
}

// search1 is the Phase-1 IDA* recursion over (twist, flip, choice). On
// reaching a Phase-1 goal (cost 0) it replays the stored moves onto a copy
// of the scrambled cube and recurses into Phase 2, then keeps exploring in
// case a shorter overall solution exists.
func (s *searchState) search1(scrambled *CubieCube, twist, flip, choice, depth int) int {
	cost := s.phase1Cost(twist, flip, choice)
	if cost == 0 {
		s.solutionLength1 = depth
		phase2Cube := *scrambled
		for i := 0; i < s.solutionLength1; i++ {
			move := translateMove(s.solutionMoves1[i], s.solutionPowers1[i], false)
			phase2Cube.ApplyMove(move)
		}
		if result := s.solve2(&phase2Cube); result == statusFound {
			// Keep deepening Phase 1 in search of a shorter overall solution.
		}
	}

	totalCost := depth + cost
	if totalCost <= s.threshold1 {
		if depth >= s.minSolutionLength {
			return statusOptimum
		}
		if s.deadlineExceeded != nil && s.deadlineExceeded() {
			return statusBest
		}
		for face := 0; face < 6; face++ {
			if disallowed(face, s.solutionMoves1[:], depth) {
				continue
			}
			twist2, flip2, choice2 := twist, flip, choice
			s.solutionMoves1[depth] = face
			for power := 1; power < 4; power++ {
				s.solutionPowers1[depth] = power
				twist2 = s.mtTwist.Next(twist2, face)
				flip2 = s.mtFlip.Next(flip2, face)
				choice2 = s.mtChoice.Next(choice2, face)
				s.nodes1++
				if result := s.search1(scrambled, twist2, flip2, choice2, depth+1); result != statusNotFound {
					return result
				}
			}
		}
	} else if totalCost < s.newThreshold1 {
		s.newThreshold1 = totalCost
	}
	return statusNotFound
}

// solve runs the full Phase-1/Phase-2 IDA* search on cc and returns the
// terminal status (found, optimum, or best-within-budget if the deadline
// or iteration cap cuts the search short). A cut that comes before any
// solution is recorded yields not-found or best with bestFound unset,
// which Solve reports as ErrSearchExhausted.
func (s *searchState) solve(cc CubieCube, maxIterations int) int {
	twist := coordTwist.get(&cc)
	flip := coordFlip.get(&cc)
	choice := coordChoice.get(&cc)

	s.minSolutionLength = hugeCost
	s.threshold1 = s.phase1Cost(twist, flip, choice)
	s.nodes1 = 1
	s.solutionLength1 = 0

	iterations := 0
	result := statusNotFound
	cutShort := false
	for result == statusNotFound {
		if s.deadlineExceeded != nil && s.deadlineExceeded() {
			cutShort = true
			break
		}
		if maxIterations > 0 && iterations >= maxIterations {
			cutShort = true
			break
		}
		s.newThreshold1 = hugeCost
		result = s.search1(&cc, twist, flip, choice, 0)
		if s.newThreshold1 >= hugeCost && result == statusNotFound {
			// The whole Phase-1 space at this threshold is exhausted with
			// nothing left to deepen into; whatever was found (if
			// anything) is as good as this method can do.
			break
		}
		s.threshold1 = s.newThreshold1
		iterations++
	}
	if result == statusNotFound && s.bestFound {
		if cutShort {
			return statusBest
		}
		return statusFound
	}
	return result
}
