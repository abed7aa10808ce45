// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package checkpoint snapshots target files in git before a streamed edit
// is written back, so a bad apply can be rolled back with a soft reset.
// Implements: prd007-checkpoints R1, R2, R3;
//
//	docs/ARCHITECTURE § Checkpoints.
package checkpoint

import (
	"errors"
	"fmt"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	trailer     = "Checkpointed-By: streamdiff"
	authorName  = "streamdiff"
	authorEmail = "noreply@streamdiff"
)

// ErrNoGit is returned when the working directory is not a git repository.
var ErrNoGit = errors.New("not a git repository")

// ErrNotCheckpoint is returned when undo targets a commit that streamdiff
// did not create.
var ErrNotCheckpoint = errors.New("HEAD is not a streamdiff checkpoint")

// Config configures checkpoint behavior.
type Config struct {
	WorkDir string // Repository working directory
}

// Checkpointer wraps a go-git repository for the operations we need.
type Checkpointer struct {
	repo *gogit.Repository
	cfg  Config
}

// Open opens the git repository at the configured work directory.
// Returns ErrNoGit if the directory is not a repository.
func Open(cfg Config) (*Checkpointer, error) {
	r, err := gogit.PlainOpen(cfg.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}
	return &Checkpointer{repo: r, cfg: cfg}, nil
}

// Save stages the given files and commits them as a checkpoint, labelled
// with the reason for the snapshot. Returns without committing when none
// of the files has pending changes.
func (c *Checkpointer) Save(files []string, label string) error {
	wt, err := c.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("getting status: %w", err)
	}

	staged := 0
	for _, f := range files {
		if st, ok := status[f]; !ok || (st.Worktree == gogit.Unmodified && st.Staging == gogit.Unmodified) {
			continue
		}
		if _, err := wt.Add(f); err != nil {
			return fmt.Errorf("staging %s: %w", f, err)
		}
		staged++
	}
	if staged == 0 {
		return nil
	}

	msg := fmt.Sprintf("streamdiff: checkpoint before %s\n\n%s", label, trailer)
	_, err = wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("committing checkpoint: %w", err)
	}

	return nil
}

// IsCheckpoint reports whether the HEAD commit is a streamdiff
// checkpoint, identified by its trailer.
func (c *Checkpointer) IsCheckpoint() (bool, error) {
	head, err := c.repo.Head()
	if err != nil {
		return false, fmt.Errorf("getting HEAD: %w", err)
	}

	commit, err := c.repo.CommitObject(head.Hash())
	if err != nil {
		return false, fmt.Errorf("getting commit: %w", err)
	}

	return strings.Contains(commit.Message, trailer), nil
}

// Undo soft-resets the last checkpoint commit, leaving its changes staged
// in the working tree. Refuses to touch commits streamdiff did not make.
func (c *Checkpointer) Undo() error {
	isOurs, err := c.IsCheckpoint()
	if err != nil {
		return err
	}
	if !isOurs {
		return ErrNotCheckpoint
	}

	head, err := c.repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD: %w", err)
	}

	commit, err := c.repo.CommitObject(head.Hash())
	if err != nil {
		return fmt.Errorf("getting commit: %w", err)
	}

	if commit.NumParents() == 0 {
		return fmt.Errorf("cannot undo: HEAD is the initial commit")
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return fmt.Errorf("getting parent commit: %w", err)
	}

	wt, err := c.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	err = wt.Reset(&gogit.ResetOptions{
		Commit: parent.Hash,
		Mode:   gogit.SoftReset,
	})
	if err != nil {
		return fmt.Errorf("resetting to parent: %w", err)
	}

	return nil
}
