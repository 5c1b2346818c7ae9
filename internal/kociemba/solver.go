package kociemba

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Status reports how a Solve call's search terminated.
type Status int

const (
	// StatusFound means Phase 2 produced a solution and the search ended on
	// its own (Phase 1 had no deeper threshold left to try) without proving
	// that no shorter overall solution exists.
	StatusFound Status = iota + 1
	// StatusOptimum means the search proved the returned solution is the
	// shortest this two-phase method can find for the given cube.
	StatusOptimum
	// StatusBest means the search ran out of time or iterations and is
	// returning the best solution found so far.
	StatusBest
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusOptimum:
		return "optimum"
	case StatusBest:
		return "best"
	default:
		return "unknown"
	}
}

// Result is the outcome of a Solve call.
type Result struct {
	Phase1 []int
	Phase2 []int
	Status Status

	Phase1Nodes int
	Phase2Nodes int
}

// Moves returns the full move sequence, Phase 1 followed by Phase 2.
func (r Result) Moves() []int {
	moves := make([]int, 0, len(r.Phase1)+len(r.Phase2))
	moves = append(moves, r.Phase1...)
	moves = append(moves, r.Phase2...)
	return moves
}

// String renders the result as "<phase1> . <phase2> (N)".
func (r Result) String() string {
	return formatSolution(r.Phase1, r.Phase2)
}

// SolveOptions bounds a single Solve call. A zero value means "search
// until Phase 1 proves optimality", which is always finite but can be slow
// on adversarial scrambles.
type SolveOptions struct {
	// MaxTime, if nonzero, stops the search (returning the best solution
	// found so far) once this much wall-clock time has elapsed.
	MaxTime time.Duration
	// MaxIterations, if nonzero, caps the number of Phase-1
	// iterative-deepening rounds.
	MaxIterations int
}

const tableFileMode = 0o755

var tableFiles = struct {
	twist, flip, choice       string
	cornerPerm, edgePerm, slice string
	twistFlip, twistChoice, flipChoice string
	cornerSlice, edgeSlice string
}{
	twist: "Twist.mtb", flip: "Flip.mtb", choice: "Choice.mtb",
	cornerPerm: "CrnrPerm.mtb", edgePerm: "EdgePerm.mtb", slice: "SlicPerm.mtb",
	twistFlip: "TwstFlip.ptb", twistChoice: "TwstChce.ptb", flipChoice: "FlipChce.ptb",
	cornerSlice: "CrnrSlic.ptb", edgeSlice: "EdgeSlic.ptb",
}

// Solver owns the eleven move/pruning tables a solve needs and is safe for
// concurrent Solve calls once InitializeTables has returned.
type Solver struct {
	tableDir string
	log      zerolog.Logger

	mtTwist, mtFlip, mtChoice         *moveTable
	mtCornerPerm, mtEdgePerm, mtSlice *moveTable

	ptTwistFlip, ptTwistChoice, ptFlipChoice *pruningTable
	ptCornerSlice, ptEdgeSlice               *pruningTable
}

// NewSolver creates a Solver that stores/loads its tables under tableDir.
func NewSolver(tableDir string) *Solver {
	return &Solver{tableDir: tableDir, log: zerolog.Nop()}
}

// SetLogger attaches a structured logger for table build and search
// progress; the zero Solver logs nothing.
func (s *Solver) SetLogger(log zerolog.Logger) {
	s.log = log
}

// InitializeTables builds or loads all eleven tables. It is idempotent:
// calling it again after success is a no-op. Table generation is
// CPU-bound and independent per table, so the eleven build-or-load calls
// fan out across goroutines bounded by errgroup; each call owns its own
// CubieCube during generation.
func (s *Solver) InitializeTables(ctx context.Context) error {
	if s.mtTwist != nil {
		return nil
	}
	if err := os.MkdirAll(s.tableDir, tableFileMode); err != nil {
		return &TableIOError{Path: s.tableDir, Err: err}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		mt, err := s.loadOrBuildMoveTable(ctx, tableFiles.twist, coordTwist, false)
		s.mtTwist = mt
		return err
	})
	g.Go(func() error {
		mt, err := s.loadOrBuildMoveTable(ctx, tableFiles.flip, coordFlip, false)
		s.mtFlip = mt
		return err
	})
	g.Go(func() error {
		mt, err := s.loadOrBuildMoveTable(ctx, tableFiles.choice, coordChoice, false)
		s.mtChoice = mt
		return err
	})
	g.Go(func() error {
		mt, err := s.loadOrBuildMoveTable(ctx, tableFiles.cornerPerm, coordCornerPerm, true)
		s.mtCornerPerm = mt
		return err
	})
	g.Go(func() error {
		mt, err := s.loadOrBuildMoveTable(ctx, tableFiles.edgePerm, coordEdgePerm, true)
		s.mtEdgePerm = mt
		return err
	})
	g.Go(func() error {
		mt, err := s.loadOrBuildMoveTable(ctx, tableFiles.slice, coordSlicePerm, true)
		s.mtSlice = mt
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	g2, _ := errgroup.WithContext(ctx)
	g2.Go(func() error {
		pt, err := s.loadOrBuildPruningTable(tableFiles.twistFlip, s.mtTwist, s.mtFlip, false)
		s.ptTwistFlip = pt
		return err
	})
	g2.Go(func() error {
		pt, err := s.loadOrBuildPruningTable(tableFiles.twistChoice, s.mtTwist, s.mtChoice, false)
		s.ptTwistChoice = pt
		return err
	})
	g2.Go(func() error {
		pt, err := s.loadOrBuildPruningTable(tableFiles.flipChoice, s.mtFlip, s.mtChoice, false)
		s.ptFlipChoice = pt
		return err
	})
	g2.Go(func() error {
		pt, err := s.loadOrBuildPruningTable(tableFiles.cornerSlice, s.mtCornerPerm, s.mtSlice, true)
		s.ptCornerSlice = pt
		return err
	})
	g2.Go(func() error {
		pt, err := s.loadOrBuildPruningTable(tableFiles.edgeSlice, s.mtEdgePerm, s.mtSlice, true)
		s.ptEdgeSlice = pt
		return err
	})
	return g2.Wait()
}

func (s *Solver) loadOrBuildMoveTable(_ context.Context, name string, coord coordinate, phase2 bool) (*moveTable, error) {
	path := filepath.Join(s.tableDir, name)
	want := int64(coord.size * 6 * 4)

	data, err := os.ReadFile(path)
	switch {
	case err == nil && int64(len(data)) == want:
		s.log.Debug().Str("table", name).Msg("loaded move table")
		return loadMoveTable(data, coord.size), nil
	case err == nil:
		s.log.Debug().Str("table", name).Int64("want", want).Int64("got", int64(len(data))).Msg("move table size mismatch, regenerating")
	case !os.IsNotExist(err):
		s.log.Debug().Str("table", name).Str("error", err.Error()).Msg("move table unreadable, regenerating")
	}

	s.log.Info().Str("table", name).Msg("building move table")
	mt := buildMoveTable(coord, phase2)
	if err := mt.Save(path); err != nil {
		return nil, &TableIOError{Path: path, Err: err}
	}
	return mt, nil
}

func (s *Solver) loadOrBuildPruningTable(name string, mt1, mt2 *moveTable, phase2 bool) (*pruningTable, error) {
	path := filepath.Join(s.tableDir, name)
	want := int64(pruningTableByteLen(mt1.size, mt2.size))

	data, err := os.ReadFile(path)
	switch {
	case err == nil && int64(len(data)) == want:
		s.log.Debug().Str("table", name).Msg("loaded pruning table")
		return loadPruningTable(data, mt1.size, mt2.size), nil
	case err == nil:
		s.log.Debug().Str("table", name).Int64("want", want).Int64("got", int64(len(data))).Msg("pruning table size mismatch, regenerating")
	case !os.IsNotExist(err):
		s.log.Debug().Str("table", name).Str("error", err.Error()).Msg("pruning table unreadable, regenerating")
	}

	s.log.Info().Str("table", name).Msg("building pruning table")
	pt := buildPruningTable(mt1, mt2, phase2)
	if err := pt.Save(path); err != nil {
		return nil, &TableIOError{Path: path, Err: err}
	}
	return pt, nil
}

// Solve runs the two-phase search on cc and returns the shortest solution
// it can find within opts' budget.
func (s *Solver) Solve(ctx context.Context, cc CubieCube, opts SolveOptions) (Result, error) {
	if err := s.InitializeTables(ctx); err != nil {
		return Result{}, err
	}

	st := &searchState{
		mtTwist: s.mtTwist, mtFlip: s.mtFlip, mtChoice: s.mtChoice,
		mtCornerPerm: s.mtCornerPerm, mtEdgePerm: s.mtEdgePerm, mtSlice: s.mtSlice,
		ptTwistFlip: s.ptTwistFlip, ptTwistChoice: s.ptTwistChoice, ptFlipChoice: s.ptFlipChoice,
		ptCornerSlice: s.ptCornerSlice, ptEdgeSlice: s.ptEdgeSlice,
	}

	if opts.MaxTime > 0 {
		deadline := time.Now().Add(opts.MaxTime)
		st.deadlineExceeded = func() bool { return time.Now().After(deadline) }
	}
	if ctx != nil {
		prev := st.deadlineExceeded
		st.deadlineExceeded = func() bool {
			if ctx.Err() != nil {
				return true
			}
			return prev != nil && prev()
		}
	}

	code := st.solve(cc, opts.MaxIterations)

	result := Result{
		Phase1Nodes: st.nodes1,
		Phase2Nodes: st.nodes2,
	}
	switch code {
	case statusOptimum:
		result.Status = StatusOptimum
	case statusBest, statusFound:
		if !st.bestFound {
			return Result{}, ErrSearchExhausted
		}
		result.Status = StatusBest
		if code == statusFound {
			result.Status = StatusFound
		}
	default:
		if st.bestFound {
			result.Status = StatusBest
		} else {
			return Result{}, ErrSearchExhausted
		}
	}
	result.Phase1 = st.bestPhase1
	result.Phase2 = st.bestPhase2

	s.log.Info().
		Str("status", result.Status.String()).
		Int("phase1_nodes", result.Phase1Nodes).
		Int("phase2_nodes", result.Phase2Nodes).
		Int("move_count", len(result.Phase1)+len(result.Phase2)).
		Msg("solve complete")

	return result, nil
}
