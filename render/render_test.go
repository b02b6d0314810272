package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opgen/linprog"
	"github.com/katalvlaran/opgen/render"
	"github.com/katalvlaran/opgen/transport"
	"github.com/katalvlaran/opgen/variants"
)

// fixedTransport builds a hand-written 2×2 instance for exact assertions.
func fixedTransport(t *testing.T) *transport.Instance {
	t.Helper()
	suppliers := transport.NewLedger()
	suppliers.Set("A1", 30)
	suppliers.Set("A2", 20)
	consumers := transport.NewLedger()
	consumers.Set("B1", 35)
	consumers.Set("B2", 15)
	costs := transport.NewCostTable()
	costs.Set("A1", "B1", 4)
	costs.Set("A1", "B2", 7)
	costs.Set("A2", "B1", 2)
	costs.Set("A2", "B2", 9)
	in := &transport.Instance{
		Suppliers: suppliers, Consumers: consumers, Costs: costs,
		TotalSupply: 50, TotalDemand: 50,
	}
	require.NoError(t, in.Validate())
	return in
}

// TestTransportGrid checks row structure: header, supplier rows, demand row.
func TestTransportGrid(t *testing.T) {
	t.Parallel()

	out := render.Transport(fixedTransport(t))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	require.Equal(t, []string{"B1", "B2", "Supply"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"A1", "4", "7", "30"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"A2", "2", "9", "20"}, strings.Fields(lines[2]))
	require.Equal(t, []string{"Demand", "35", "15", "50"}, strings.Fields(lines[3]))
}

// TestLPStatement checks sign handling, zero skipping and the direction.
func TestLPStatement(t *testing.T) {
	t.Parallel()

	in := &linprog.Instance{
		Type:           linprog.TypeName,
		C:              []float64{3, -2},
		A:              [][]float64{{2, 5}, {1, 0}, {0, 4}},
		B:              []float64{30, 6, 20},
		Maximize:       true,
		NumVariables:   2,
		NumConstraints: 3,
	}
	require.NoError(t, in.Validate())

	out := render.LP(in)
	require.Contains(t, out, "f(x) = 3x1 - 2x2 -> max")
	require.Contains(t, out, "2x1 + 5x2 <= 30")
	require.Contains(t, out, "1x1 <= 6")
	require.Contains(t, out, "4x2 <= 20")
	require.Contains(t, out, "x1 >= 0, x2 >= 0")
}

// TestLPMinimize renders the min suffix.
func TestLPMinimize(t *testing.T) {
	t.Parallel()

	p := linprog.DefaultParams()
	p.Maximize = false
	in, err := linprog.Generate(p, linprog.WithSeed(3))
	require.NoError(t, err)
	require.Contains(t, render.LP(in), "-> min")
}

// TestTaskDispatch covers the union dispatch and the empty-task error.
func TestTaskDispatch(t *testing.T) {
	t.Parallel()

	lp, err := linprog.Generate(linprog.DefaultParams(), linprog.WithSeed(1))
	require.NoError(t, err)

	body, err := render.Task(variants.Task{Number: 2, LP: lp})
	require.NoError(t, err)
	require.Contains(t, body, "f(x)")

	body, err = render.Task(variants.Task{Number: 1, Transport: fixedTransport(t)})
	require.NoError(t, err)
	require.Contains(t, body, "Demand")

	_, err = render.Task(variants.Task{Number: 3})
	require.ErrorIs(t, err, variants.ErrUnknownTaskType)
}
