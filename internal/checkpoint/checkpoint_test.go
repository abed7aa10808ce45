// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package checkpoint

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTestRepo creates a repository with one committed file and returns
// its directory.
func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "target.txt"), []byte("original\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("target.txt")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

func TestOpen_NotARepo(t *testing.T) {
	_, err := Open(Config{WorkDir: t.TempDir()})
	assert.ErrorIs(t, err, ErrNoGit)
}

func TestSave_CommitsModifiedFile(t *testing.T) {
	dir := initTestRepo(t)
	cp, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "target.txt"), []byte("modified\n"), 0o644))

	require.NoError(t, cp.Save([]string{"target.txt"}, "apply target.txt"))

	isCp, err := cp.IsCheckpoint()
	require.NoError(t, err)
	assert.True(t, isCp)
}

func TestSave_CleanFileCommitsNothing(t *testing.T) {
	dir := initTestRepo(t)
	cp, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	require.NoError(t, cp.Save([]string{"target.txt"}, "apply target.txt"))

	isCp, err := cp.IsCheckpoint()
	require.NoError(t, err)
	assert.False(t, isCp, "HEAD should still be the initial commit")
}

func TestUndo_RevertsCheckpoint(t *testing.T) {
	dir := initTestRepo(t)
	cp, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "target.txt"), []byte("modified\n"), 0o644))
	require.NoError(t, cp.Save([]string{"target.txt"}, "apply target.txt"))

	require.NoError(t, cp.Undo())

	isCp, err := cp.IsCheckpoint()
	require.NoError(t, err)
	assert.False(t, isCp)

	// The file's contents stay as checkpointed; only HEAD moved back.
	data, err := os.ReadFile(filepath.Join(dir, "target.txt"))
	require.NoError(t, err)
	assert.Equal(t, "modified\n", string(data))
}

func TestUndo_RefusesForeignCommit(t *testing.T) {
	dir := initTestRepo(t)
	cp, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	err = cp.Undo()
	assert.ErrorIs(t, err, ErrNotCheckpoint)
}
