// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-block-parser R4 (line scanning, partial markers).
package editformat

import "strings"

// Scanner yields successive lines of a diff chunk as sub-slices of the
// input, without per-line allocation. A trailing newline terminates the
// final line; it does not start an empty one.
type Scanner struct {
	text string
	pos  int
}

// NewScanner returns a Scanner over text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Next returns the next line without its trailing newline. ok is false
// once the input is exhausted.
func (s *Scanner) Next() (line string, ok bool) {
	if s.pos >= len(s.text) {
		return "", false
	}
	if nl := strings.IndexByte(s.text[s.pos:], '\n'); nl >= 0 {
		line = s.text[s.pos : s.pos+nl]
		s.pos += nl + 1
		return line, true
	}
	line = s.text[s.pos:]
	s.pos = len(s.text)
	return line, true
}

// StripPartialMarker drops the chunk's final line when it looks like an
// in-flight marker: it starts with '<', '=', or '>' but is not exactly
// one of the three recognised markers. Mid-stream this defers the marker
// to a later, longer chunk; earlier lines starting with those bytes are
// ordinary content and are never touched.
func StripPartialMarker(chunk string) string {
	i := strings.LastIndexByte(chunk, '\n')
	last := chunk[i+1:]
	if last == "" {
		return chunk
	}
	switch last[0] {
	case '<', '=', '>':
	default:
		return chunk
	}
	switch last {
	case MarkerSearch, MarkerDivider, MarkerReplace:
		return chunk
	}
	return chunk[:i+1]
}
