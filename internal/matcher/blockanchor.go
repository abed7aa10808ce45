// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-matchers R3 (block-anchor stage).
package matcher

import "github.com/petar-djukic/streamdiff/internal/lineindex"

// blockAnchorMinLines is the minimum search length for anchor matching.
const blockAnchorMinLines = 3

// BlockAnchor locates search in original using only its first and last
// lines as anchors, deliberately ignoring interior content drift. It
// applies only to searches of at least three lines and returns the byte
// range spanning the anchored block.
func BlockAnchor(original, search string, cursor int, ix *lineindex.Index) (start, end int, ok bool) {
	searchLines := splitSearchLines(search)
	k := len(searchLines)
	if k < blockAnchorMinLines {
		return 0, 0, false
	}

	anchorFirst := lineindex.TrimLine(searchLines[0])
	anchorLast := lineindex.TrimLine(searchLines[k-1])

	src := source(original, ix)
	n := src.LineCount()
	startLine := lineForOffset(src, cursor)

	if ix != nil {
		for _, p := range ix.PositionsOf(anchorFirst) {
			if p < startLine || p+k > n {
				continue
			}
			if lineindex.TrimLine(src.LineAt(p+k-1)) == anchorLast {
				return src.OffsetOfLine(p), src.OffsetOfLine(p + k), true
			}
		}
		return 0, 0, false
	}

	for p := startLine; p+k <= n; p++ {
		if lineindex.TrimLine(src.LineAt(p)) != anchorFirst {
			continue
		}
		if lineindex.TrimLine(src.LineAt(p+k-1)) == anchorLast {
			return src.OffsetOfLine(p), src.OffsetOfLine(p + k), true
		}
	}

	return 0, 0, false
}
