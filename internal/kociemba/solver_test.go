package kociemba

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildTestSolver constructs a Solver backed by a throwaway table directory
// and forces its tables to build once, shared by every subtest so table
// construction (the expensive part) only happens a single time per test
// binary run.
func buildTestSolver(t *testing.T) *Solver {
	t.Helper()
	s := NewSolver(t.TempDir())
	if err := s.InitializeTables(context.Background()); err != nil {
		t.Fatalf("InitializeTables: %v", err)
	}
	return s
}

var sharedTestSolver *Solver

func testSolver(t *testing.T) *Solver {
	t.Helper()
	if sharedTestSolver == nil {
		sharedTestSolver = buildTestSolver(t)
	}
	return sharedTestSolver
}

// applyMoves replays a move-index sequence onto cc.
func applyMoves(cc *CubieCube, moves []int) {
	for _, m := range moves {
		cc.ApplyMove(m)
	}
}

// TestSolveSolvedCube is spec.md 8's "solved cube" scenario: an identity
// input must produce an empty Phase-1 and Phase-2 block.
func TestSolveSolvedCube(t *testing.T) {
	s := testSolver(t)

	var cc CubieCube
	cc.Home()

	result, err := s.Solve(context.Background(), cc, SolveOptions{})
	require.NoError(t, err)
	require.Empty(t, result.Phase1)
	require.Empty(t, result.Phase2)
	require.True(t, strings.HasSuffix(result.String(), "(0)"), "String() = %q", result.String())
}

// TestSolveSingleR is spec.md 8's "single R" scenario: the solution must
// have length 1 and, applied to the scrambled cube, return it to home.
func TestSolveSingleR(t *testing.T) {
	s := testSolver(t)

	var cc CubieCube
	cc.Home()
	cc.ApplyMove(MoveR)

	result, err := s.Solve(context.Background(), cc, SolveOptions{})
	require.NoError(t, err)
	moves := result.Moves()
	require.Lenf(t, moves, 1, "single R scramble solution %v", moves)

	applyMoves(&cc, moves)
	var home CubieCube
	home.Home()
	require.True(t, cc.Equals(&home), "applying the single-move solution did not return the cube to home")
}

// TestSolveRURprimeUprime is spec.md 8's "R U R' U'" scenario: the
// solution must fully solve the cube, and its applied inverse check
// (property 6) must hold.
func TestSolveRURprimeUprime(t *testing.T) {
	s := testSolver(t)

	var cc CubieCube
	cc.Home()
	applyMoves(&cc, []int{MoveR, MoveU, MoveRi, MoveUi})

	result, err := s.Solve(context.Background(), cc, SolveOptions{})
	require.NoError(t, err)

	scrambled := cc
	applyMoves(&scrambled, result.Moves())
	var home CubieCube
	home.Home()
	require.True(t, scrambled.Equals(&home), "R U R' U' solution did not return the cube to home")
}

// TestSolveCanonicalScramble is spec.md 8's "canonical scramble" scenario:
// a nontrivial scramble's solution must be <= 25 moves and correct.
func TestSolveCanonicalScramble(t *testing.T) {
	s := testSolver(t)

	var cc CubieCube
	cc.Home()
	scramble := []int{
		MoveR, MoveU2, MoveFi, MoveL, MoveD, MoveB2, MoveRi, MoveU,
		MoveF, MoveL2, MoveDi, MoveB, MoveR2, MoveU,
	}
	applyMoves(&cc, scramble)

	result, err := s.Solve(context.Background(), cc, SolveOptions{})
	require.NoError(t, err)
	moves := result.Moves()
	require.LessOrEqualf(t, len(moves), 25, "canonical scramble solution %v", moves)

	solved := cc
	applyMoves(&solved, moves)
	var home CubieCube
	home.Home()
	require.True(t, solved.Equals(&home), "canonical scramble solution did not return the cube to home")
}

// TestSolvePhase1GoalAtDepthZero covers spec.md 8's "Phase-1 parity edge
// case": a scramble confined to the Phase-2 subgroup reaches the Phase-1
// goal with an empty Phase-1 block, and Phase 2 must still engage and
// solve the rest.
func TestSolvePhase1GoalAtDepthZero(t *testing.T) {
	s := testSolver(t)

	var cc CubieCube
	cc.Home()
	applyMoves(&cc, []int{MoveU, MoveD2, MoveR2, MoveF2})

	result, err := s.Solve(context.Background(), cc, SolveOptions{})
	require.NoError(t, err)
	require.Empty(t, result.Phase1, "expected empty Phase-1 block")
	require.NotEmpty(t, result.Phase2, "expected a nonempty Phase-2 block")

	solved := cc
	applyMoves(&solved, result.Moves())
	var home CubieCube
	home.Home()
	require.True(t, solved.Equals(&home), "phase-1-trivial scramble solution did not return the cube to home")
}
