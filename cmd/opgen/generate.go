// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/opgen/document"
	"github.com/katalvlaran/opgen/linprog"
	"github.com/katalvlaran/opgen/persist"
	"github.com/katalvlaran/opgen/transport"
	"github.com/katalvlaran/opgen/variants"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a variant set, write JSON and optionally PDFs",
	RunE: func(cmd *cobra.Command, args []string) error {
		tp := transport.Params{
			SupplierCount: viper.GetInt("suppliers"),
			ConsumerCount: viper.GetInt("consumers"),
			MinSupply:     viper.GetInt("min-supply"),
			MaxSupply:     viper.GetInt("max-supply"),
			MinCost:       viper.GetInt("min-cost"),
			MaxCost:       viper.GetInt("max-cost"),
		}
		lp := linprog.DefaultParams()
		lp.NumVariables = viper.GetInt("variables")
		lp.NumConstraints = viper.GetInt("constraints")
		lp.IntegerCoefficients = viper.GetBool("integer")

		count := viper.GetInt("variants")
		logger.Info("generating variant set",
			zap.Int("variants", count),
			zap.Int("suppliers", tp.SupplierCount),
			zap.Int("consumers", tp.ConsumerCount),
			zap.Int("variables", lp.NumVariables),
			zap.Int("constraints", lp.NumConstraints))

		var opts []variants.Option
		if seed := viper.GetInt64("seed"); seed != 0 {
			opts = append(opts, variants.WithSeed(seed))
			logger.Debug("using fixed seed", zap.Int64("seed", seed))
		}
		set, err := variants.BuildSet(count, tp, lp, opts...)
		if err != nil {
			return err
		}

		jsonPath := viper.GetString("json")
		if err := persist.WriteSet(jsonPath, set); err != nil {
			return err
		}
		logger.Info("variant set written", zap.String("path", jsonPath))

		if viper.GetBool("pdf") {
			dir := viper.GetString("output-dir")
			if err := document.Build(set, dir); err != nil {
				return err
			}
			logger.Info("pdf files written", zap.String("dir", dir), zap.Int("count", set.Count))
		}
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.IntP("variants", "n", 10, "number of variants")
	f.IntP("suppliers", "s", 3, "transport: supplier count")
	f.IntP("consumers", "c", 4, "transport: consumer count")
	f.Int("min-supply", 10, "transport: minimum supply")
	f.Int("max-supply", 50, "transport: maximum supply")
	f.Int("min-cost", 1, "transport: minimum unit cost")
	f.Int("max-cost", 10, "transport: maximum unit cost")
	f.Int("variables", 2, "lp: number of variables")
	f.IntP("constraints", "k", 3, "lp: number of constraints")
	f.Bool("integer", true, "lp: integer coefficients")
	f.Int64("seed", 0, "random seed (0 = non-deterministic)")
	f.StringP("json", "j", "variants.json", "output JSON file")
	f.StringP("output-dir", "o", "variants_pdf", "output directory for PDFs")
	f.Bool("pdf", true, "assemble per-variant PDFs")

	if err := viper.BindPFlags(f); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(generateCmd)
}
