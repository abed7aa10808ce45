// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd006-feedback R3.
package feedback

import (
	"fmt"
	"strings"
)

// Format renders a follow-up prompt from a match diagnostic: the search
// body that failed, and when available the closest region of the file
// with numbered lines so the model can emit a corrected block.
func Format(d Diagnostic, filePath string) string {
	var buf strings.Builder

	buf.WriteString("The SEARCH block below did not match ")
	buf.WriteString(filePath)
	buf.WriteString(". Re-read the file region and emit a corrected SEARCH/REPLACE block.\n\n")

	buf.WriteString("## Failed Search\n\n```\n")
	buf.WriteString(d.SearchContent)
	if !strings.HasSuffix(d.SearchContent, "\n") {
		buf.WriteByte('\n')
	}
	buf.WriteString("```\n")

	if d.ClosestMatch == "" {
		buf.WriteString("\nNo similar region was found in the file.\n")
		return buf.String()
	}

	buf.WriteString(fmt.Sprintf("\n## Closest Region (lines %d-%d, similarity %.2f)\n\n```\n",
		d.LineStart, d.LineEnd, d.Similarity))
	for i, line := range strings.Split(d.ClosestMatch, "\n") {
		buf.WriteString(fmt.Sprintf("%4d │ %s\n", d.LineStart+i, line))
	}
	buf.WriteString("```\n")

	return buf.String()
}
