package cube

import "testing"

func TestGetSolver(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		wantName  string
		wantErr   bool
	}{
		{"Beginner solver", "beginner", "Beginner", false},
		{"CFOP solver", "cfop", "CFOP", false},
		{"Kociemba solver", "kociemba", "Kociemba", false},
		{"Invalid solver", "invalid", "", true},
		{"Empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solver, err := GetSolver(tt.algorithm)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetSolver(%q) error = %v, wantErr %v", tt.algorithm, err, tt.wantErr)
				return
			}
			if !tt.wantErr && solver.Name() != tt.wantName {
				t.Errorf("GetSolver(%q).Name() = %q, want %q", tt.algorithm, solver.Name(), tt.wantName)
			}
		})
	}
}

func TestSolverResultConsistency(t *testing.T) {
	solvers := []string{"beginner", "cfop"}

	for _, algorithm := range solvers {
		t.Run(algorithm, func(t *testing.T) {
			cube := NewCube(3)

			moves, err := ParseScramble("R U R' U'")
			if err != nil {
				t.Fatalf("Failed to parse scramble: %v", err)
			}
			cube.ApplyMoves(moves)

			solver, err := GetSolver(algorithm)
			if err != nil {
				t.Fatalf("Failed to get solver %s: %v", algorithm, err)
			}

			result, err := solver.Solve(cube)
			if err != nil {
				t.Fatalf("%s solver error: %v", algorithm, err)
			}

			if result.Steps != len(result.Solution) {
				t.Errorf("%s: Steps (%d) != Solution length (%d)", algorithm, result.Steps, len(result.Solution))
			}
			if result.Duration < 0 {
				t.Errorf("%s: Duration should not be negative", algorithm)
			}
		})
	}
}

func TestKociembaSolver4x4Rejection(t *testing.T) {
	cube := NewCube(4)
	solver := &KociembaSolver{}

	_, err := solver.Solve(cube)
	if err == nil {
		t.Error("KociembaSolver should reject 4x4x4 cubes")
	}
}

func TestKociembaSolverSolvesScramble(t *testing.T) {
	c := NewCube(3)
	moves, err := ParseScramble("R U R' U'")
	if err != nil {
		t.Fatalf("Failed to parse scramble: %v", err)
	}
	c.ApplyMoves(moves)

	solver := &KociembaSolver{TableDir: t.TempDir()}
	result, err := solver.Solve(c)
	if err != nil {
		t.Fatalf("KociembaSolver.Solve() error = %v", err)
	}
	if result.Steps != len(result.Solution) {
		t.Errorf("Steps (%d) != Solution length (%d)", result.Steps, len(result.Solution))
	}

	c.ApplyMoves(result.Solution)
	if !c.IsSolved() {
		t.Error("applying the kociemba solution did not solve the cube")
	}
}

func TestKociembaSolverOnAlreadySolvedCube(t *testing.T) {
	c := NewCube(3)
	solver := &KociembaSolver{TableDir: t.TempDir()}

	result, err := solver.Solve(c)
	if err != nil {
		t.Fatalf("KociembaSolver.Solve() error = %v", err)
	}
	if len(result.Solution) != 0 {
		t.Errorf("solved cube should need 0 moves, got %d", len(result.Solution))
	}
}
