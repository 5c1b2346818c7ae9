package kociemba

import (
	"strconv"
	"strings"
)

// translateMove turns a (base face, power) pair recorded during search
// into the move index the solution should report. Phase-2 search only
// ever records power 1 for R, L, F, B (its move table already encodes the
// half turn for those faces), so the translation forces power 2 for them
// regardless of what was stored.
func translateMove(face, power int, phase2 bool) int {
	if phase2 && face != MoveU && face != MoveD {
		power = 2
	}
	switch power {
	case 2:
		return QuarterToHalfTurn(face)
	case 3:
		return InverseOfMove(face)
	default:
		return face
	}
}

// formatSolution renders the two move-index slices as the documented
// "<phase1> . <phase2> (N)" solution string.
func formatSolution(phase1, phase2 []int) string {
	var sb strings.Builder
	for i, m := range phase1 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(NameOfMove(m))
	}
	sb.WriteString(" . ")
	for i, m := range phase2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(NameOfMove(m))
	}
	sb.WriteString(" (")
	sb.WriteString(strconv.Itoa(len(phase1) + len(phase2)))
	sb.WriteByte(')')
	return sb.String()
}
