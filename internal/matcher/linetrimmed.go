// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-matchers R2 (line-trimmed stage).
package matcher

import "github.com/petar-djukic/streamdiff/internal/lineindex"

// LineTrimmed locates search in original comparing lines after stripping
// leading and trailing ASCII whitespace. It tolerates indentation and
// trailing-space drift in model output while requiring every line's
// content to match. Returns the byte range covering the matched lines,
// including the final line's newline when present.
func LineTrimmed(original, search string, cursor int, ix *lineindex.Index) (start, end int, ok bool) {
	searchLines := splitSearchLines(search)
	k := len(searchLines)
	if k == 0 {
		return 0, 0, false
	}

	src := source(original, ix)
	n := src.LineCount()
	startLine := lineForOffset(src, cursor)
	if startLine+k > n {
		return 0, 0, false
	}

	var candidates []int
	if ix != nil {
		candidates = ix.PotentialStarts(searchLines, startLine)
	} else {
		candidates = directCandidates(src, searchLines, startLine)
	}
	if len(candidates) == 0 {
		return 0, 0, false
	}

	for _, p := range candidates {
		if p+k > n {
			continue
		}
		if matchAt(src, searchLines, p) {
			return src.OffsetOfLine(p), src.OffsetOfLine(p + k), true
		}
	}

	return 0, 0, false
}

// directCandidates finds candidate start lines without an index: the
// trimmed first search line must match, and for multi-line searches the
// trimmed last line must match at the candidate's far end. The last-line
// check prunes candidates cheaply before full verification.
func directCandidates(src lineSource, searchLines []string, startLine int) []int {
	k := len(searchLines)
	n := src.LineCount()
	first := lineindex.TrimLine(searchLines[0])
	var last string
	if k >= 2 {
		last = lineindex.TrimLine(searchLines[k-1])
	}

	var candidates []int
	for p := startLine; p <= n-k; p++ {
		if lineindex.TrimLine(src.LineAt(p)) != first {
			continue
		}
		if k >= 2 && lineindex.TrimLine(src.LineAt(p+k-1)) != last {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates
}

// matchAt verifies that every search line matches, trimmed, starting at
// line p.
func matchAt(src lineSource, searchLines []string, p int) bool {
	for j, sl := range searchLines {
		if lineindex.TrimLine(src.LineAt(p+j)) != lineindex.TrimLine(sl) {
			return false
		}
	}
	return true
}
