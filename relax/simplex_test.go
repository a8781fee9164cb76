package relax_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mipdive/relax"
	"github.com/katalvlaran/mipdive/sparse"
)

const tolLP = 1e-7

// mkCover builds  min 2x + 3y  s.t.  x + y ≥ 2,  0 ≤ x,y ≤ 5.
// The unique optimum is x=2, y=0 with value 4.
func mkCover(t require.TestingT) *relax.Problem {
	m, err := sparse.FromDense([][]float64{{1, 1}})
	require.NoError(t, err)

	return &relax.Problem{
		Matrix:    m,
		ColLower:  []float64{0, 0},
		ColUpper:  []float64{5, 5},
		RowLower:  []float64{2},
		RowUpper:  []float64{math.Inf(1)},
		Objective: []float64{2, 3},
	}
}

// SimplexSuite exercises the gonum-backed oracle.
type SimplexSuite struct {
	suite.Suite
}

func (s *SimplexSuite) TestMinimizeCover() {
	o, err := relax.NewSimplex(mkCover(s.T()))
	s.Require().NoError(err)
	s.Require().Equal(relax.StatusUnsolved, o.Status())
	s.Require().False(o.IsProvenOptimal())

	o.Resolve()
	s.Require().True(o.IsProvenOptimal())
	x := o.ColSolution()
	s.Require().InDelta(2.0, x[0], tolLP)
	s.Require().InDelta(0.0, x[1], tolLP)
	s.Require().InDelta(4.0, o.ObjValue(), tolLP)
}

func (s *SimplexSuite) TestMaximizeWithRowUpper() {
	// max x + y  s.t.  x + y ≤ 1.5,  0 ≤ x,y ≤ 1.
	m, err := sparse.FromDense([][]float64{{1, 1}})
	s.Require().NoError(err)
	p := &relax.Problem{
		Matrix:    m,
		ColLower:  []float64{0, 0},
		ColUpper:  []float64{1, 1},
		RowLower:  []float64{math.Inf(-1)},
		RowUpper:  []float64{1.5},
		Objective: []float64{1, 1},
		Sense:     relax.Maximize,
	}
	o, err := relax.NewSimplex(p)
	s.Require().NoError(err)
	o.Resolve()
	s.Require().True(o.IsProvenOptimal())
	s.Require().InDelta(1.5, o.ObjValue(), tolLP)
}

func (s *SimplexSuite) TestShiftedLowerBounds() {
	// min x  s.t.  x ≥ -3 (column), no rows beyond a free row.
	m, err := sparse.NewColMatrix(1, 1, []sparse.Entry{{Row: 0, Col: 0, Value: 1}})
	s.Require().NoError(err)
	p := &relax.Problem{
		Matrix:    m,
		ColLower:  []float64{-3},
		ColUpper:  []float64{math.Inf(1)},
		RowLower:  []float64{-10},
		RowUpper:  []float64{10},
		Objective: []float64{1},
	}
	o, err := relax.NewSimplex(p)
	s.Require().NoError(err)
	o.Resolve()
	s.Require().True(o.IsProvenOptimal())
	s.Require().InDelta(-3.0, o.ColSolution()[0], tolLP)
}

func (s *SimplexSuite) TestInfeasibleRow() {
	p := mkCover(s.T())
	p.ColUpper = []float64{0.5, 0.5}
	o, err := relax.NewSimplex(p)
	s.Require().NoError(err)
	o.Resolve()
	s.Require().False(o.IsProvenOptimal())
	s.Require().Equal(relax.StatusInfeasible, o.Status())
}

func (s *SimplexSuite) TestCrossedBoundsAreInfeasible() {
	o, err := relax.NewSimplex(mkCover(s.T()))
	s.Require().NoError(err)
	o.SetColLower(0, 3)
	o.SetColUpper(0, 2)
	o.Resolve()
	s.Require().Equal(relax.StatusInfeasible, o.Status())
}

func (s *SimplexSuite) TestTightenedBoundMovesOptimum() {
	o, err := relax.NewSimplex(mkCover(s.T()))
	s.Require().NoError(err)
	o.SetColUpper(0, 1) // x ≤ 1 forces y ≥ 1
	o.Resolve()
	s.Require().True(o.IsProvenOptimal())
	s.Require().InDelta(1.0, o.ColSolution()[0], tolLP)
	s.Require().InDelta(1.0, o.ColSolution()[1], tolLP)
}

func (s *SimplexSuite) TestCloneIsIndependent() {
	o, err := relax.NewSimplex(mkCover(s.T()))
	s.Require().NoError(err)
	o.Resolve()

	c, err := o.Clone()
	s.Require().NoError(err)
	c.SetColUpper(0, 0)
	c.Resolve()
	s.Require().True(c.IsProvenOptimal())

	s.Require().Equal(5.0, o.ColUpper()[0], "parent bounds untouched")
	s.Require().InDelta(2.0, o.ColSolution()[0], tolLP, "parent solution untouched")
	s.Require().InDelta(2.0, c.ColSolution()[1], tolLP)

	c.Release()
	c.Release() // idempotent
	s.Require().True(c.(*relax.Simplex).Released())
	_, err = c.Clone()
	s.Require().ErrorIs(err, relax.ErrReleased)
}

func (s *SimplexSuite) TestNewSimplexRejectsFreeColumns() {
	p := mkCover(s.T())
	p.ColLower = []float64{math.Inf(-1), 0}
	_, err := relax.NewSimplex(p)
	s.Require().ErrorIs(err, relax.ErrUnboundedBelow)
}

func (s *SimplexSuite) TestTolerances() {
	o, err := relax.NewSimplex(mkCover(s.T()), relax.WithPrimalTolerance(1e-6))
	s.Require().NoError(err)
	s.Require().Equal(1e-6, o.PrimalTolerance())
	s.Require().Panics(func() { relax.WithPrimalTolerance(-1) })
	s.Require().Panics(func() { relax.WithPivotTolerance(math.NaN()) })
}

func TestSimplexSuite(t *testing.T) {
	suite.Run(t, new(SimplexSuite))
}
