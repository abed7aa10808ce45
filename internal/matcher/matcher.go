// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package matcher locates SEARCH block content in an original text.
// Three strategies are tried in a fixed order: exact byte match,
// whitespace-trimmed line match, and first/last line anchor match.
// Implements: prd003-matchers R1, R2, R3, R4.
package matcher

import (
	"sort"
	"strings"

	"github.com/petar-djukic/streamdiff/internal/lineindex"
	"github.com/petar-djukic/streamdiff/pkg/types"
)

// lineSource provides line-level access to an original text. Satisfied by
// *lineindex.Index for large files and by scannedText for direct scans.
type lineSource interface {
	LineCount() int
	LineAt(i int) string
	OffsetOfLine(i int) int
}

// Find runs the matching stages in precedence order against original,
// starting at cursor, and returns the half-open byte range of the first
// match together with the stage that produced it. ix may be nil; it is
// consulted only by the line-based stages.
func Find(original, search string, cursor int, ix *lineindex.Index) (start, end int, stage types.MatchStage, ok bool) {
	if s, e, ok := Exact(original, search, cursor); ok {
		return s, e, types.StageExact, true
	}
	if s, e, ok := LineTrimmed(original, search, cursor, ix); ok {
		return s, e, types.StageLineTrimmed, true
	}
	if s, e, ok := BlockAnchor(original, search, cursor, ix); ok {
		return s, e, types.StageBlockAnchor, true
	}
	return 0, 0, types.StageNone, false
}

// splitSearchLines splits search content into lines, dropping a trailing
// empty line. The processor always appends a newline to the search body,
// so the split otherwise ends with a spurious empty element.
func splitSearchLines(search string) []string {
	lines := strings.Split(search, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// scannedText is the direct-scan lineSource used below the large-file
// threshold, built in one pass without the content lookup map.
type scannedText struct {
	lines   []string
	offsets []int // len(lines)+1 entries; offsets[n] = len(text)
}

func scanLines(text string) *scannedText {
	st := &scannedText{offsets: []int{0}}
	off := 0
	for off < len(text) {
		var line string
		if nl := strings.IndexByte(text[off:], '\n'); nl < 0 {
			line = text[off:]
			off = len(text)
		} else {
			line = text[off : off+nl]
			off += nl + 1
		}
		st.lines = append(st.lines, line)
		st.offsets = append(st.offsets, off)
	}
	return st
}

func (st *scannedText) LineCount() int         { return len(st.lines) }
func (st *scannedText) LineAt(i int) string    { return st.lines[i] }
func (st *scannedText) OffsetOfLine(i int) int { return st.offsets[i] }

// source returns the line view for original: the index when one was built,
// a transient scan otherwise.
func source(original string, ix *lineindex.Index) lineSource {
	if ix != nil {
		return ix
	}
	return scanLines(original)
}

// lineForOffset returns the index of the first line whose start offset is
// at or after off.
func lineForOffset(src lineSource, off int) int {
	return sort.Search(src.LineCount()+1, func(i int) bool {
		return src.OffsetOfLine(i) >= off
	})
}
