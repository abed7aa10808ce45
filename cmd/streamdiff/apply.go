// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd008-cli R2.1-R2.7.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/streamdiff/internal/checkpoint"
	"github.com/petar-djukic/streamdiff/internal/editor"
	"github.com/petar-djukic/streamdiff/internal/feedback"
	"github.com/petar-djukic/streamdiff/pkg/streamdiff"
	"github.com/petar-djukic/streamdiff/pkg/types"
)

// newApplyCmd creates the "apply" command.
func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a SEARCH/REPLACE diff stream to a file",
		Long:  "Apply reads edit blocks from stdin in chunks, reconstructs the file contents, and rewrites the target atomically.",
		RunE:  runApply,
	}

	cmd.Flags().StringP("file", "f", "", "Target file path (required)")
	cmd.MarkFlagRequired("file")
	cmd.Flags().Bool("dry-run", false, "Print the result to stdout instead of writing")
	cmd.Flags().Bool("regions", false, "Print the change regions as JSON to stdout")

	return cmd
}

// runApply streams stdin through a diff session and writes the result.
func runApply(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("file")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	showRegions, _ := cmd.Flags().GetBool("regions")

	original, err := os.ReadFile(target)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", target, err)
	}

	result, err := stream(cmd.InOrStdin(), string(original), viper.GetInt("chunk-size"))
	if err != nil {
		var noMatch *types.NoMatchError
		if errors.As(err, &noMatch) {
			d := feedback.Diagnose(string(original), noMatch.SearchContent)
			fmt.Fprint(os.Stderr, feedback.Format(d, target))
		}
		return fmt.Errorf("applying diff to %s: %w", target, err)
	}

	if dryRun {
		fmt.Print(result.Content)
	} else {
		if viper.GetBool("checkpoint") {
			if err := saveCheckpoint(target); err != nil {
				return err
			}
		}
		if err := editor.WriteFileAtomic(target, []byte(result.Content)); err != nil {
			return err
		}
	}

	if showRegions {
		out, err := json.MarshalIndent(result.ChangedRegions, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling regions: %w", err)
		}
		fmt.Println(string(out))
	}

	return nil
}

// stream feeds fixed-size reads from r into a diff session, so partial
// markers and blocks split across reads exercise the same path the
// assistant's streaming responses do.
func stream(r io.Reader, original string, chunkSize int) (*types.FileChangeResult, error) {
	if chunkSize <= 0 {
		chunkSize = 4096
	}

	session := streamdiff.NewSession(original)
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if err == io.EOF {
			return session.Feed(string(buf[:n]), true)
		}
		if err != nil {
			return nil, fmt.Errorf("reading diff stream: %w", err)
		}
		if _, err := session.Feed(string(buf[:n]), false); err != nil {
			return nil, err
		}
	}
}

// saveCheckpoint commits the target's current state before it is rewritten.
func saveCheckpoint(target string) error {
	workDir := viper.GetString("workdir")

	cp, err := checkpoint.Open(checkpoint.Config{WorkDir: workDir})
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}

	rel, err := filepath.Rel(workDir, target)
	if err != nil {
		rel = target
	}

	if err := cp.Save([]string{rel}, "apply "+rel); err != nil {
		return fmt.Errorf("saving checkpoint: %w", err)
	}
	return nil
}
