// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lineindex builds per-line offset tables and a trimmed-content
// lookup for an original text, accelerating candidate discovery when
// matching against large files.
// Implements: prd002-line-index R1, R2.
package lineindex

import (
	"sort"
	"strings"
)

// asciiSpace is the cutset for line trimming: spaces, tabs, CR, LF, FF, VT.
const asciiSpace = " \t\r\n\f\v"

// TrimLine strips leading and trailing ASCII whitespace from a line.
func TrimLine(s string) string {
	return strings.Trim(s, asciiSpace)
}

// Index holds the derived line structure of an original text. Lines are
// demarcated by single newline bytes; the final line has no trailing
// newline unless the text ends with one.
type Index struct {
	lines       []string         // Raw line contents, no trailing newline
	lineOffsets []int            // lineOffsets[i] = offset of line i's first byte; lineOffsets[n] = len
	positions   map[string][]int // Trimmed line content -> ascending line indices
}

// New builds an Index in a single pass over text.
func New(text string) *Index {
	ix := &Index{
		lineOffsets: []int{0},
		positions:   make(map[string][]int),
	}

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
		ix.lines = append(ix.lines, line)
		ix.lineOffsets = append(ix.lineOffsets, off)

		key := TrimLine(line)
		ix.positions[key] = append(ix.positions[key], len(ix.lines)-1)
	}

	return ix
}

// LineCount returns the number of lines in the indexed text.
func (ix *Index) LineCount() int {
	return len(ix.lines)
}

// LineAt returns the raw content of line i, without its trailing newline.
func (ix *Index) LineAt(i int) string {
	return ix.lines[i]
}

// OffsetOfLine returns the byte offset of line i's first byte. i may be
// LineCount(), in which case the text length is returned.
func (ix *Index) OffsetOfLine(i int) int {
	return ix.lineOffsets[i]
}

// PositionsOf returns the ascending line indices whose trimmed content
// equals trimmed. The returned slice must not be mutated.
func (ix *Index) PositionsOf(trimmed string) []int {
	return ix.positions[trimmed]
}

// LineForOffset returns the index of the first line whose start offset is
// at or after off.
func (ix *Index) LineForOffset(off int) int {
	return sort.SearchInts(ix.lineOffsets, off)
}

// PotentialStarts returns candidate start lines p >= minLine where the
// trimmed first search line matches line p and, for multi-line searches,
// the trimmed last search line matches line p+k-1. Candidates are in
// ascending order.
func (ix *Index) PotentialStarts(searchLines []string, minLine int) []int {
	if len(searchLines) == 0 {
		return nil
	}

	k := len(searchLines)
	first := TrimLine(searchLines[0])
	var last string
	if k >= 2 {
		last = TrimLine(searchLines[k-1])
	}

	var starts []int
	for _, p := range ix.positions[first] {
		if p < minLine {
			continue
		}
		if k >= 2 {
			if p+k-1 >= len(ix.lines) {
				continue
			}
			if TrimLine(ix.lines[p+k-1]) != last {
				continue
			}
		}
		starts = append(starts, p)
	}

	return starts
}
