// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package streamdiff is the public interface to the streaming
// SEARCH/REPLACE diff engine: it reconstructs a file's new contents from
// edit blocks emitted incrementally by a language model.
// Implements: prd001-apply-interface R1, R4;
//
//	docs/ARCHITECTURE § Apply Interface.
package streamdiff

import (
	"errors"
	"strings"

	"github.com/petar-djukic/streamdiff/internal/editor"
	"github.com/petar-djukic/streamdiff/pkg/types"
)

// ErrSessionClosed is returned when feeding a Session after its final chunk.
var ErrSessionClosed = errors.New("session already received its final chunk")

// Apply reconstructs the new contents of a file from diff, the full
// SEARCH/REPLACE text accumulated so far, against original. The call is
// a pure computation: the engine carries no state between calls, so a
// streaming caller passes the growing accumulation on every call and
// sets isFinal on the last one. With isFinal set, original content after
// the last applied block is appended to the result.
//
// A partial trailing marker line in diff is tolerated; a search body that
// none of the matching stages can locate fails the call with a
// *types.NoMatchError.
func Apply(diff, original string, isFinal bool) (*types.FileChangeResult, error) {
	return editor.Apply(diff, original, isFinal)
}

// Session accumulates streamed diff chunks for a single file edit and
// re-applies the accumulation on every Feed. Chunks may split anywhere,
// including inside a marker line: the in-flight marker is deferred until
// the chunk that completes it. A Session is not safe for concurrent use.
type Session struct {
	original string
	diff     strings.Builder
	closed   bool
}

// NewSession starts a streaming edit session against original.
func NewSession(original string) *Session {
	return &Session{original: original}
}

// Feed appends chunk to the accumulated diff and applies the
// accumulation. The returned result is a valid prefix view of the
// eventual final contents; only the isFinal call yields the completed
// file.
func (s *Session) Feed(chunk string, isFinal bool) (*types.FileChangeResult, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	s.diff.WriteString(chunk)
	if isFinal {
		s.closed = true
	}
	return editor.Apply(s.diff.String(), s.original, isFinal)
}
