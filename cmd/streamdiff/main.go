// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command streamdiff applies streamed SEARCH/REPLACE diffs to files.
// Implements: prd008-cli R1.1-R1.6;
//
//	docs/ARCHITECTURE § Project Structure.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/streamdiff/internal/checkpoint"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "streamdiff",
		Short: "Streaming SEARCH/REPLACE diff applicator",
		Long:  "streamdiff reads SEARCH/REPLACE edit blocks from a stream and rewrites the target file, matching each search body exactly, by trimmed lines, or by block anchors.",
	}

	// Global flags.
	rootCmd.PersistentFlags().String("workdir", ".", "Repository root directory")
	rootCmd.PersistentFlags().Bool("checkpoint", false, "Commit a git checkpoint before writing")
	rootCmd.PersistentFlags().Int("chunk-size", 4096, "Stream read size in bytes")

	// Bind flags to viper.
	viper.BindPFlag("workdir", rootCmd.PersistentFlags().Lookup("workdir"))
	viper.BindPFlag("checkpoint", rootCmd.PersistentFlags().Lookup("checkpoint"))
	viper.BindPFlag("chunk-size", rootCmd.PersistentFlags().Lookup("chunk-size"))

	// Env vars: STREAMDIFF_CHECKPOINT, STREAMDIFF_CHUNK_SIZE, etc.
	viper.SetEnvPrefix("STREAMDIFF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".streamdiff")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print streamdiff version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("streamdiff %s\n", version)
		},
	}
}

// newUndoCmd creates the "undo" command.
func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Revert the last streamdiff checkpoint",
		Long:  "Undo performs a soft reset of the last commit if it is a streamdiff checkpoint.",
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir := viper.GetString("workdir")

			cp, err := checkpoint.Open(checkpoint.Config{WorkDir: workDir})
			if err != nil {
				return fmt.Errorf("opening repository: %w", err)
			}

			if err := cp.Undo(); err != nil {
				return fmt.Errorf("undo failed: %w", err)
			}

			fmt.Println("Reverted last streamdiff checkpoint.")
			return nil
		},
	}
}
