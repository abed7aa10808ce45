// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package feedback turns a failed match into a diagnostic the assistant
// layer can hand back to the model for a corrected edit block.
// Implements: prd006-feedback R1, R2;
//
//	docs/ARCHITECTURE § Failure Feedback.
package feedback

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diagnostic describes why a SEARCH block failed to match, with the
// closest region of the original for the model to re-anchor on.
type Diagnostic struct {
	SearchContent string  // The search body that failed to match
	ClosestMatch  string  // Most similar region of the original (empty if none)
	Similarity    float64 // Similarity score of that region, 0.0-1.0
	LineStart     int     // First line of the closest region (1-based)
	LineEnd       int     // Last line of the closest region (1-based)
}

// Diagnose slides a window the height of the search body over the
// original and scores each candidate by Levenshtein similarity. The
// matching stages never consult similarity; it exists only to point the
// model at where its search text went stale.
func Diagnose(original, search string) Diagnostic {
	d := Diagnostic{SearchContent: search}
	if search == "" || original == "" {
		return d
	}

	contentLines := strings.Split(original, "\n")
	searchLen := len(strings.Split(search, "\n"))
	if searchLen > len(contentLines) {
		searchLen = len(contentLines)
	}

	bestStart := -1
	for i := 0; i <= len(contentLines)-searchLen; i++ {
		candidate := strings.Join(contentLines[i:i+searchLen], "\n")
		if sim := similarity(candidate, search); sim > d.Similarity {
			d.Similarity = sim
			bestStart = i
		}
	}

	if bestStart >= 0 && d.Similarity > 0 {
		d.ClosestMatch = strings.Join(contentLines[bestStart:bestStart+searchLen], "\n")
		d.LineStart = bestStart + 1
		d.LineEnd = bestStart + searchLen
	}

	return d
}

// similarity computes the Levenshtein-based similarity ratio between two
// strings using the go-diff library. Returns a value between 0.0 and 1.0.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	distance := dmp.DiffLevenshtein(diffs)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1.0 - float64(distance)/float64(maxLen)
}
