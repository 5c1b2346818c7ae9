package cube

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kocicube/internal/kociemba"
)

// SolverResult represents the result of a solve attempt
type SolverResult struct {
	Solution []Move
	Steps    int
	Duration time.Duration

	// Status, Phase1Nodes, and Phase2Nodes are only populated by
	// KociembaSolver; other solvers leave Status empty and the node
	// counts at zero.
	Status      string
	Phase1Nodes int
	Phase2Nodes int
}

// Solver interface for different solving algorithms
type Solver interface {
	Solve(cube *Cube) (*SolverResult, error)
	Name() string
}

// BeginnerSolver implements a basic layer-by-layer method
type BeginnerSolver struct{}

func (s *BeginnerSolver) Name() string {
	return "Beginner"
}

func (s *BeginnerSolver) Solve(cube *Cube) (*SolverResult, error) {
	start := time.Now()
	
	// This is a placeholder implementation
	// A real beginner solver would implement:
	// 1. White cross
	// 2. White corners (first layer)
	// 3. Middle layer edges
	// 4. Yellow cross
	// 5. Yellow face
	// 6. Permute last layer
	
	solution := []Move{
		{Face: Right, Clockwise: true},
		{Face: Up, Clockwise: true},
		{Face: Right, Clockwise: false},
		{Face: Up, Clockwise: false},
	}
	
	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// CFOPSolver implements the CFOP method
type CFOPSolver struct{}

func (s *CFOPSolver) Name() string {
	return "CFOP"
}

func (s *CFOPSolver) Solve(cube *Cube) (*SolverResult, error) {
	start := time.Now()
	
	// Placeholder CFOP implementation
	// Real CFOP would implement:
	// 1. Cross
	// 2. F2L (First Two Layers)
	// 3. OLL (Orient Last Layer)
	// 4. PLL (Permute Last Layer)
	
	solution := []Move{
		{Face: Front, Clockwise: true},
		{Face: Right, Clockwise: true},
		{Face: Up, Clockwise: true},
		{Face: Right, Clockwise: false},
		{Face: Up, Clockwise: false},
		{Face: Front, Clockwise: false},
	}
	
	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// DefaultKociembaTableDir is where move/pruning tables are built or loaded
// from when a KociembaSolver doesn't set TableDir explicitly.
const DefaultKociembaTableDir = ".cubetables"

// kociembaMoveFace maps a kociemba base-face move index (0..5: R,L,U,D,F,B)
// to this package's Face enum.
var kociembaMoveFace = [6]Face{Right, Left, Up, Down, Front, Back}

var (
	sharedKociemba      *kociemba.Solver
	sharedKociembaDir   string
	sharedKociembaMutex sync.Mutex
)

// kociembaSolverFor returns a process-wide Solver for tableDir, building or
// loading its tables at most once per directory since InitializeTables is
// itself idempotent but the BFS table builds are too costly to repeat per
// Solve call.
func kociembaSolverFor(tableDir string) *kociemba.Solver {
	sharedKociembaMutex.Lock()
	defer sharedKociembaMutex.Unlock()
	if sharedKociemba == nil || sharedKociembaDir != tableDir {
		sharedKociemba = kociemba.NewSolver(tableDir)
		sharedKociembaDir = tableDir
	}
	return sharedKociemba
}

// KociembaSolver implements Kociemba's two-phase algorithm, bridging this
// package's sticker-level Cube to internal/kociemba's cubie-level solver
// via ToCubieCube.
type KociembaSolver struct {
	// TableDir holds the eleven move/pruning table files; defaults to
	// DefaultKociembaTableDir when empty.
	TableDir string
	// MaxTime, if nonzero, bounds the search's wall-clock budget.
	MaxTime time.Duration
	// MaxIterations, if nonzero, caps the Phase-1 iterative-deepening
	// rounds.
	MaxIterations int
}

func (s *KociembaSolver) Name() string {
	return "Kociemba"
}

func (s *KociembaSolver) Solve(cube *Cube) (*SolverResult, error) {
	if cube.Size != 3 {
		return nil, fmt.Errorf("Kociemba algorithm only supports 3x3x3 cubes")
	}

	start := time.Now()

	cc, err := cube.ToCubieCube()
	if err != nil {
		return nil, fmt.Errorf("converting cube to cubie state: %w", err)
	}

	tableDir := s.TableDir
	if tableDir == "" {
		tableDir = DefaultKociembaTableDir
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if s.MaxTime > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.MaxTime)
		defer cancel()
	}

	result, err := kociembaSolverFor(tableDir).Solve(ctx, cc, kociemba.SolveOptions{
		MaxTime:       s.MaxTime,
		MaxIterations: s.MaxIterations,
	})
	if err != nil {
		return nil, fmt.Errorf("kociemba solve: %w", err)
	}

	moves := make([]Move, 0, len(result.Phase1)+len(result.Phase2))
	for _, m := range result.Moves() {
		moves = append(moves, kociembaMoveToMove(m))
	}

	return &SolverResult{
		Solution:    moves,
		Steps:       len(moves),
		Duration:    time.Since(start),
		Status:      result.Status.String(),
		Phase1Nodes: result.Phase1Nodes,
		Phase2Nodes: result.Phase2Nodes,
	}, nil
}

// kociembaMoveToMove converts a kociemba move index (0..17: quarter turns,
// then their inverses, then their half turns, each group in R,L,U,D,F,B
// order) into this package's Move representation.
func kociembaMoveToMove(m int) Move {
	face := kociembaMoveFace[m%6]
	switch m / 6 {
	case 1: // inverse
		return Move{Face: face, Clockwise: false}
	case 2: // half turn
		return Move{Face: face, Clockwise: true, Double: true}
	default: // quarter turn
		return Move{Face: face, Clockwise: true}
	}
}

// GetSolver returns a solver by name
func GetSolver(name string) (Solver, error) {
	switch name {
	case "beginner":
		return &BeginnerSolver{}, nil
	case "cfop":
		return &CFOPSolver{}, nil
	case "kociemba":
		return &KociembaSolver{}, nil
	default:
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
}