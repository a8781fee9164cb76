package dive_test

import (
	"sync"

	"github.com/katalvlaran/mipdive/relax"
)

// solveFn scripts a relaxation: given the current bounds it returns the
// column solution and whether it is optimal.
type solveFn func(lower, upper []float64) ([]float64, bool)

// fakeStats is shared by an oracle and all of its clones.
type fakeStats struct {
	mu       sync.Mutex
	clones   int
	releases int
	resolves int
	bounds   [][2]float64 // bounds snapshot of column `watch` at each resolve
	watch    int
}

func (s *fakeStats) snapshot() (clones, releases, resolves int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clones, s.releases, s.resolves
}

// fakeLP is a scripted relax.Oracle for deterministic controller tests.
type fakeLP struct {
	rowLo, rowUp []float64
	obj          []float64
	offset       float64
	sense        relax.Sense
	primalTol    float64

	lower, upper, x []float64
	optimal         bool
	released        bool

	solve solveFn
	stats *fakeStats
}

var _ relax.Oracle = (*fakeLP)(nil)

func newFakeLP(lower, upper, x, obj, rowLo, rowUp []float64, solve solveFn) *fakeLP {
	return &fakeLP{
		rowLo: rowLo, rowUp: rowUp, obj: obj,
		primalTol: relax.DefaultPrimalTolerance,
		lower:     append([]float64(nil), lower...),
		upper:     append([]float64(nil), upper...),
		x:         append([]float64(nil), x...),
		optimal:   true,
		solve:     solve,
		stats:     &fakeStats{watch: -1},
	}
}

func (f *fakeLP) Clone() (relax.Oracle, error) {
	f.stats.mu.Lock()
	f.stats.clones++
	f.stats.mu.Unlock()
	c := *f
	c.lower = append([]float64(nil), f.lower...)
	c.upper = append([]float64(nil), f.upper...)
	c.x = append([]float64(nil), f.x...)
	c.released = false

	return &c, nil
}

func (f *fakeLP) Release() {
	if f.released {
		return
	}
	f.released = true
	f.stats.mu.Lock()
	f.stats.releases++
	f.stats.mu.Unlock()
}

func (f *fakeLP) NumRows() int                 { return len(f.rowLo) }
func (f *fakeLP) NumCols() int                 { return len(f.x) }
func (f *fakeLP) ColLower() []float64          { return f.lower }
func (f *fakeLP) ColUpper() []float64          { return f.upper }
func (f *fakeLP) SetColLower(j int, v float64) { f.lower[j] = v }
func (f *fakeLP) SetColUpper(j int, v float64) { f.upper[j] = v }
func (f *fakeLP) ColSolution() []float64       { return f.x }
func (f *fakeLP) ObjCoefficients() []float64   { return f.obj }
func (f *fakeLP) ObjOffset() float64           { return f.offset }
func (f *fakeLP) ObjSense() relax.Sense        { return f.sense }
func (f *fakeLP) IsProvenOptimal() bool        { return f.optimal }
func (f *fakeLP) RowLower() []float64          { return f.rowLo }
func (f *fakeLP) RowUpper() []float64          { return f.rowUp }
func (f *fakeLP) PrimalTolerance() float64     { return f.primalTol }

func (f *fakeLP) Resolve() {
	f.stats.mu.Lock()
	f.stats.resolves++
	if w := f.stats.watch; w >= 0 {
		f.stats.bounds = append(f.stats.bounds, [2]float64{f.lower[w], f.upper[w]})
	}
	f.stats.mu.Unlock()

	if f.solve == nil {
		f.optimal = false

		return
	}
	x, ok := f.solve(f.lower, f.upper)
	f.optimal = ok
	if ok {
		copy(f.x, x)
	}
}
