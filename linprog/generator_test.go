package linprog_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/opgen/linprog"
)

// GenerateSuite exercises the LP generator: shape, boundedness structure,
// the feasibility witness and integer mode.
type GenerateSuite struct {
	suite.Suite
}

// TestClassroomScenario covers the canonical 2-variable, 3-constraint
// integer instance.
func (s *GenerateSuite) TestClassroomScenario() {
	in, err := linprog.Generate(linprog.DefaultParams(), linprog.WithSeed(7))
	require.NoError(s.T(), err)
	require.NoError(s.T(), in.Validate())

	require.Len(s.T(), in.C, 2)
	require.Len(s.T(), in.A, 3)
	for _, row := range in.A {
		require.Len(s.T(), row, 2)
	}
	require.Len(s.T(), in.B, 3)
	require.Equal(s.T(), 2, in.NumVariables)
	require.Equal(s.T(), 3, in.NumConstraints)
	require.True(s.T(), in.Maximize)

	// The retained witness must satisfy every row.
	require.NotNil(s.T(), in.Witness)
	require.True(s.T(), in.SatisfiedBy(in.Witness))
}

// TestWitnessHoldsAcrossSeeds checks the feasibility guarantee over many
// seeds and shapes instead of one lucky draw.
func (s *GenerateSuite) TestWitnessHoldsAcrossSeeds() {
	shapes := []struct{ n, m int }{{1, 1}, {2, 3}, {4, 2}, {5, 8}}
	for _, shape := range shapes {
		p := linprog.DefaultParams()
		p.NumVariables, p.NumConstraints = shape.n, shape.m
		for seed := int64(0); seed < 25; seed++ {
			in, err := linprog.Generate(p, linprog.WithSeed(seed))
			require.NoError(s.T(), err, "shape %dx%d seed %d", shape.m, shape.n, seed)
			require.NoError(s.T(), in.Validate(), "shape %dx%d seed %d", shape.m, shape.n, seed)
			require.True(s.T(), in.SatisfiedBy(in.Witness), "shape %dx%d seed %d", shape.m, shape.n, seed)
		}
	}
}

// TestBoundednessStructure verifies the shape guarantees directly: no
// all-zero row, and each variable positively constrained somewhere.
func (s *GenerateSuite) TestBoundednessStructure() {
	p := linprog.DefaultParams()
	p.NumVariables, p.NumConstraints = 3, 5
	for seed := int64(0); seed < 50; seed++ {
		in, err := linprog.Generate(p, linprog.WithSeed(seed))
		require.NoError(s.T(), err, "seed %d", seed)

		covered := make([]bool, in.NumVariables)
		for i, row := range in.A {
			positive := false
			for j, a := range row {
				require.GreaterOrEqual(s.T(), a, 0.0, "seed %d A[%d][%d]", seed, i, j)
				if a > 0 {
					positive = true
					covered[j] = true
				}
			}
			require.True(s.T(), positive, "seed %d: row %d is all-zero", seed, i)
		}
		for j, ok := range covered {
			require.True(s.T(), ok, "seed %d: variable x%d unconstrained", seed, j+1)
		}
	}
}

// TestIntegerMode verifies that every numeric field is integral when
// IntegerCoefficients is set.
func (s *GenerateSuite) TestIntegerMode() {
	for seed := int64(0); seed < 20; seed++ {
		in, err := linprog.Generate(linprog.DefaultParams(), linprog.WithSeed(seed))
		require.NoError(s.T(), err)
		for _, v := range in.C {
			require.Equal(s.T(), math.Trunc(v), v, "seed %d: c entry %g not integral", seed, v)
		}
		for _, row := range in.A {
			for _, v := range row {
				require.Equal(s.T(), math.Trunc(v), v, "seed %d: A entry %g not integral", seed, v)
			}
		}
		for _, v := range in.B {
			require.Equal(s.T(), math.Trunc(v), v, "seed %d: b entry %g not integral", seed, v)
		}
	}
}

// TestRealMode verifies the float path generates valid instances too.
func (s *GenerateSuite) TestRealMode() {
	p := linprog.DefaultParams()
	p.IntegerCoefficients = false
	p.Maximize = false
	for seed := int64(0); seed < 20; seed++ {
		in, err := linprog.Generate(p, linprog.WithSeed(seed))
		require.NoError(s.T(), err)
		require.NoError(s.T(), in.Validate())
		require.False(s.T(), in.Maximize)
	}
}

// TestParameterValidation walks every rejection branch.
func (s *GenerateSuite) TestParameterValidation() {
	cases := []struct {
		name   string
		mutate func(*linprog.Params)
	}{
		{"zero variables", func(p *linprog.Params) { p.NumVariables = 0 }},
		{"zero constraints", func(p *linprog.Params) { p.NumConstraints = 0 }},
		{"inverted objective range", func(p *linprog.Params) { p.ObjMin = 5; p.ObjMax = -5 }},
		{"degenerate coefficient bound", func(p *linprog.Params) { p.CoefMax = 0 }},
		{"negative slack bound", func(p *linprog.Params) { p.SlackMax = -1 }},
		{"degenerate witness bound", func(p *linprog.Params) { p.WitnessMax = 0 }},
	}
	for _, tc := range cases {
		p := linprog.DefaultParams()
		tc.mutate(&p)
		_, err := linprog.Generate(p, linprog.WithSeed(1))
		require.ErrorIs(s.T(), err, linprog.ErrInvalidParameter, tc.name)
	}
}

// TestSeedDeterminism: one seed, one instance.
func (s *GenerateSuite) TestSeedDeterminism() {
	a, err := linprog.Generate(linprog.DefaultParams(), linprog.WithSeed(321))
	require.NoError(s.T(), err)
	b, err := linprog.Generate(linprog.DefaultParams(), linprog.WithSeed(321))
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, b)
}

func TestGenerateSuite(t *testing.T) {
	suite.Run(t, new(GenerateSuite))
}
