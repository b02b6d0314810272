// SPDX-License-Identifier: MIT
// Package: opgen/document
//
// pdf.go — per-variant PDF assembly on top of gofpdf.

package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/katalvlaran/opgen/render"
	"github.com/katalvlaran/opgen/variants"
)

const (
	pageOrientation = "P"
	pageUnit        = "mm"
	pageSize        = "A4"

	headerFont = "Helvetica"
	bodyFont   = "Courier"

	headerSize  = 16.0
	headingSize = 12.0
	bodySize    = 10.0

	headerHeight = 10.0
	lineHeight   = 5.0

	dirMode = 0o755
)

// Build writes one PDF per variant into dir, creating it when needed.
// The set must already be validated; Build fails fast on the first
// rendering or filesystem error.
func Build(set *variants.Set, dir string) error {
	if set == nil {
		return fmt.Errorf("document: nil set")
	}
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("document: mkdir %s: %w", dir, err)
	}
	for _, v := range set.Variants {
		path := filepath.Join(dir, fmt.Sprintf("variant_%d.pdf", v.Number))
		if err := buildVariant(v, path); err != nil {
			return fmt.Errorf("document: variant %d: %w", v.Number, err)
		}
	}
	return nil
}

// buildVariant lays out one variant page and writes it to path.
func buildVariant(v variants.Variant, path string) error {
	pdf := gofpdf.New(pageOrientation, pageUnit, pageSize, "")
	pdf.AddPage()

	pdf.SetFont(headerFont, "B", headerSize)
	pdf.CellFormat(0, headerHeight, fmt.Sprintf("Variant %d", v.Number), "", 1, "C", false, 0, "")
	pdf.Ln(lineHeight)

	for _, task := range v.Tasks {
		body, err := render.Task(task)
		if err != nil {
			return err
		}
		pdf.SetFont(headerFont, "B", headingSize)
		pdf.CellFormat(0, headerHeight, fmt.Sprintf("Task %d", task.Number), "", 1, "L", false, 0, "")
		pdf.SetFont(bodyFont, "", bodySize)
		pdf.MultiCell(0, lineHeight, body, "", "L", false)
		pdf.Ln(lineHeight)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
