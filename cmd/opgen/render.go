// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/opgen/document"
	"github.com/katalvlaran/opgen/persist"
)

var (
	renderJSON string
	renderDir  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render PDFs from an existing variants JSON document",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := persist.ReadSet(renderJSON)
		if err != nil {
			return err
		}
		logger.Info("variant set loaded",
			zap.String("path", renderJSON),
			zap.Int("count", set.Count))

		if err := document.Build(set, renderDir); err != nil {
			return err
		}
		logger.Info("pdf files written", zap.String("dir", renderDir), zap.Int("count", set.Count))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderJSON, "json", "variants.json", "input JSON file")
	renderCmd.Flags().StringVar(&renderDir, "output-dir", "variants_pdf", "output directory for PDFs")
	rootCmd.AddCommand(renderCmd)
}
