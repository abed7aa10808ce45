// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package editor reconstructs a file's new contents from streamed
// SEARCH/REPLACE diff text. Each Apply call is a pure computation over
// the accumulated diff so far: the parser walks the block structure, the
// matchers locate each search body at or after the cursor, and the
// result builder receives untouched original spans and replacement lines
// as they are recognised.
// Implements: prd005-stream-processor R1, R2, R3, R4;
//
//	docs/ARCHITECTURE § Stream Processor.
package editor

import (
	"bytes"
	"strings"

	"github.com/petar-djukic/streamdiff/internal/editformat"
	"github.com/petar-djukic/streamdiff/internal/lineindex"
	"github.com/petar-djukic/streamdiff/internal/matcher"
	"github.com/petar-djukic/streamdiff/pkg/types"
)

// LargeFileThreshold is the original size above which a line index is
// built to accelerate the line-based matching stages.
const LargeFileThreshold = 1 << 20

// Apply reconstructs the new file contents from diff, the accumulated
// SEARCH/REPLACE text received so far, against original. isFinal signals
// that no further diff text follows, so trailing original content must
// be appended. On success the result holds the (possibly still partial)
// new contents and the change regions committed by closed blocks.
//
// Implements: prd005-stream-processor R1.1-R1.6.
func Apply(diff, original string, isFinal bool) (*types.FileChangeResult, error) {
	a := &applier{original: original, isFinal: isFinal}
	return a.run(diff)
}

// applier holds the per-call processor state.
type applier struct {
	original string
	isFinal  bool

	cursor      int          // Byte offset just past the last applied match
	out         bytes.Buffer // Result builder
	outNewlines int          // Newlines written to out so far
	regions     []types.ChangeRegion
	idx         *lineindex.Index
	idxBuilt    bool

	// Current block, valid while matched is true.
	matched       bool
	matchEnd      int
	replStart     int // Result offset where the replacement begins
	replStartLine int // Newlines before replStart
}

func (a *applier) run(diff string) (*types.FileChangeResult, error) {
	// A final chunk with no block at all passes the original through
	// untouched without scanning.
	if a.isFinal && !strings.Contains(diff, editformat.MarkerSearch) {
		a.emit(a.original[a.cursor:])
		return a.result(), nil
	}

	diff = editformat.StripPartialMarker(diff)

	var p editformat.Parser
	sc := editformat.NewScanner(diff)
	for {
		line, ok := sc.Next()
		if !ok {
			break
		}
		switch ev := p.Feed(line); ev.Kind {
		case editformat.EventSearchReady:
			if err := a.locate(p.SearchContent()); err != nil {
				return nil, err
			}
		case editformat.EventReplaceLine:
			if a.matched {
				a.emit(ev.Line)
				a.emit("\n")
			}
		case editformat.EventBlockClosed:
			a.closeBlock()
		case editformat.EventBlockOpened, editformat.EventBlockAbandoned:
			// An abandoned block keeps whatever it already wrote to the
			// result; the cursor has not advanced, so nothing is lost
			// from the original.
			a.matched = false
		}
	}

	if a.isFinal {
		a.emit(a.original[a.cursor:])
	}

	return a.result(), nil
}

// locate resolves a finalized search body to a byte range of the
// original, emits the untouched span before it, and opens the
// replacement. An empty search body means whole-file replacement, or
// pure insertion when the original is empty.
//
// Implements: prd005-stream-processor R2.1-R2.5.
func (a *applier) locate(search string) error {
	var start, end int
	switch {
	case search == "" && len(a.original) == 0:
		start, end = 0, 0
	case search == "":
		start, end = 0, len(a.original)
	default:
		s, e, _, ok := matcher.Find(a.original, search, a.cursor, a.index())
		if !ok {
			return &types.NoMatchError{SearchContent: strings.TrimSuffix(search, "\n")}
		}
		start, end = s, e
	}

	if start > a.cursor {
		a.emit(a.original[a.cursor:start])
	}

	a.matched = true
	a.matchEnd = end
	a.replStart = a.out.Len()
	a.replStartLine = a.outNewlines
	return nil
}

// closeBlock commits the finished block: records its change region in
// result coordinates and advances the cursor past the matched span.
//
// Implements: prd005-stream-processor R3.1-R3.3.
func (a *applier) closeBlock() {
	if !a.matched {
		return
	}

	a.regions = append(a.regions, types.ChangeRegion{
		StartLine:   a.replStartLine,
		EndLine:     a.outNewlines,
		StartOffset: a.replStart,
		EndOffset:   a.out.Len(),
	})

	if a.matchEnd > a.cursor {
		a.cursor = a.matchEnd
	}
	a.matched = false
}

// emit appends s to the result builder, tracking the newline count for
// change-region line numbers.
func (a *applier) emit(s string) {
	a.out.WriteString(s)
	a.outNewlines += strings.Count(s, "\n")
}

// index lazily builds the line index, only above the large-file
// threshold. Smaller originals use direct scans in the matchers.
func (a *applier) index() *lineindex.Index {
	if !a.idxBuilt {
		a.idxBuilt = true
		if len(a.original) > LargeFileThreshold {
			a.idx = lineindex.New(a.original)
		}
	}
	return a.idx
}

func (a *applier) result() *types.FileChangeResult {
	return &types.FileChangeResult{
		Content:        a.out.String(),
		ChangedRegions: a.regions,
	}
}
