// SPDX-License-Identifier: MIT
// Package: opgen/render
//
// render.go — plain-text statements for the two task kinds.
//
// Formatting rules (kept from the visual originals):
//   • Zero coefficients are skipped; an all-zero expression renders as "0".
//   • The leading term carries its own sign, later terms join with " + " /
//     " - " and an absolute coefficient.
//   • Integral values print without decimals, reals with minimal digits.

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/opgen/linprog"
	"github.com/katalvlaran/opgen/transport"
	"github.com/katalvlaran/opgen/variants"
)

const (
	cellPad        = 2
	supplyHeading  = "Supply"
	demandHeading  = "Demand"
	maximizeSuffix = "max"
	minimizeSuffix = "min"
)

// Task renders the populated side of the union.
func Task(t variants.Task) (string, error) {
	switch {
	case t.Transport != nil:
		return Transport(t.Transport), nil
	case t.LP != nil:
		return LP(t.LP), nil
	default:
		return "", fmt.Errorf("render: task %d: %w", t.Number, variants.ErrUnknownTaskType)
	}
}

// Transport renders the cost grid: consumer columns, supplier rows with the
// supply column on the right, and the demand row underneath.
func Transport(in *transport.Instance) string {
	suppliers := in.Suppliers.Labels()
	consumers := in.Consumers.Labels()

	// Column width: the widest label or number in the grid, plus padding.
	width := len(supplyHeading)
	note := func(s string) {
		if len(s) > width {
			width = len(s)
		}
	}
	note(demandHeading)
	for _, s := range suppliers {
		note(s)
		supply, _ := in.Suppliers.Get(s)
		note(strconv.Itoa(supply))
	}
	for _, c := range consumers {
		note(c)
		demand, _ := in.Consumers.Get(c)
		note(strconv.Itoa(demand))
	}
	width += cellPad

	var b strings.Builder
	cell := func(s string) { fmt.Fprintf(&b, "%*s", width, s) }

	// Header row.
	cell("")
	for _, c := range consumers {
		cell(c)
	}
	cell(supplyHeading)
	b.WriteByte('\n')

	// Supplier rows.
	for _, s := range suppliers {
		cell(s)
		for _, c := range consumers {
			cost, _ := in.Costs.Cost(s, c)
			cell(strconv.Itoa(cost))
		}
		supply, _ := in.Suppliers.Get(s)
		cell(strconv.Itoa(supply))
		b.WriteByte('\n')
	}

	// Demand row with the shared total in the corner.
	cell(demandHeading)
	for _, c := range consumers {
		demand, _ := in.Consumers.Get(c)
		cell(strconv.Itoa(demand))
	}
	cell(strconv.Itoa(in.TotalDemand))
	b.WriteByte('\n')

	return b.String()
}

// LP renders the objective, the constraint block and the nonnegativity line.
func LP(in *linprog.Instance) string {
	var b strings.Builder

	direction := maximizeSuffix
	if !in.Maximize {
		direction = minimizeSuffix
	}
	fmt.Fprintf(&b, "f(x) = %s -> %s\n\n", linearExpr(in.C), direction)

	for i, row := range in.A {
		fmt.Fprintf(&b, "%s <= %s\n", linearExpr(row), formatNumber(in.B[i]))
	}

	vars := make([]string, in.NumVariables)
	for j := range vars {
		vars[j] = fmt.Sprintf("x%d >= 0", j+1)
	}
	b.WriteString(strings.Join(vars, ", "))
	b.WriteByte('\n')

	return b.String()
}

// linearExpr renders c1·x1 + ... skipping zero terms; all-zero renders "0".
func linearExpr(coefs []float64) string {
	var terms []string
	for j, c := range coefs {
		if c == 0 {
			continue
		}
		switch {
		case len(terms) == 0:
			terms = append(terms, fmt.Sprintf("%sx%d", formatNumber(c), j+1))
		case c > 0:
			terms = append(terms, fmt.Sprintf("+ %sx%d", formatNumber(c), j+1))
		default:
			terms = append(terms, fmt.Sprintf("- %sx%d", formatNumber(-c), j+1))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " ")
}

// formatNumber prints integral values without decimals and reals with the
// shortest exact representation.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
