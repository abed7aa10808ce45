// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the shared data types for the streamdiff engine.
// Implements: prd001-apply-interface R2, R3 (FileChangeResult, ChangeRegion);
//
//	prd003-matchers R4 (MatchStage);
//	prd001-apply-interface R5 (NoMatchError).
package types

import "fmt"

// ChangeRegion describes a contiguous span of the result text produced by
// applying one replacement. Offsets are byte offsets into the result;
// StartLine and EndLine are zero-based newline counts from the start of
// the result to the respective offsets.
type ChangeRegion struct {
	StartLine   int // Newlines before StartOffset
	EndLine     int // Newlines before EndOffset
	StartOffset int // First byte of the replacement in the result
	EndOffset   int // One past the last byte of the replacement
}

// FileChangeResult holds the reconstructed file contents together with the
// regions touched by this application, ordered by StartOffset.
type FileChangeResult struct {
	Content        string         // New file contents
	ChangedRegions []ChangeRegion // Result-side spans of the replacements
}

// MatchStage identifies which matching strategy located a search block.
type MatchStage int

const (
	StageExact       MatchStage = iota // Byte-for-byte match
	StageLineTrimmed                   // Whitespace-trimmed line match
	StageBlockAnchor                   // First/last line anchor match
	StageNone                          // No match found
)

func (s MatchStage) String() string {
	switch s {
	case StageExact:
		return "exact"
	case StageLineTrimmed:
		return "line_trimmed"
	case StageBlockAnchor:
		return "block_anchor"
	case StageNone:
		return "none"
	default:
		return "unknown"
	}
}

// NoMatchError is returned when none of the matching stages located a
// SEARCH block in the original text. It is fatal for the whole call.
type NoMatchError struct {
	SearchContent string // The search body, with its single trailing newline trimmed
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no match found for search content:\n%s", e.SearchContent)
}
