// SPDX-License-Identifier: MIT

// Command opgen generates exercise variant sets (one transportation task and
// one LP task per variant), persists them as JSON and assembles per-variant
// PDF files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	cfgFile string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "opgen",
	Short: "opgen - randomized OR exercise variant generator",
	Long: `opgen generates randomized, internally-consistent exercise variants:
each variant pairs a closed-type transportation problem (total supply equals
total demand by construction) with a linear program guaranteed feasible and
bounded. Variants are persisted as JSON and rendered into per-variant PDFs.

opgen generates problems; it never solves them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		if logger, err = config.Build(); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("read config %s: %w", cfgFile, err)
			}
			logger.Debug("config loaded", zap.String("file", viper.ConfigFileUsed()))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
