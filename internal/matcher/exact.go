// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-matchers R1 (exact stage).
package matcher

// Exact locates the first byte-for-byte occurrence of search in original
// at or after cursor, using Boyer-Moore with the bad-character rule.
// An empty search matches immediately at the cursor.
func Exact(original, search string, cursor int) (start, end int, ok bool) {
	if search == "" {
		return cursor, cursor, true
	}
	idx := boyerMoore(original, search, cursor)
	if idx < 0 {
		return 0, 0, false
	}
	return idx, idx + len(search), true
}

// boyerMoore returns the offset of the first occurrence of pat in text at
// or after from, or -1. Bad-character shifts are keyed on the text byte
// aligned with the pattern's last position; the table covers all but the
// final pattern byte, so every shift is at least one.
func boyerMoore(text, pat string, from int) int {
	m := len(pat)
	if from < 0 {
		from = 0
	}
	if from+m > len(text) {
		return -1
	}

	var skip [256]int
	for i := range skip {
		skip[i] = m
	}
	for i := 0; i < m-1; i++ {
		skip[pat[i]] = m - 1 - i
	}

	pos := from
	for pos+m <= len(text) {
		j := m - 1
		for j >= 0 && text[pos+j] == pat[j] {
			j--
		}
		if j < 0 {
			return pos
		}
		pos += skip[text[pos+m-1]]
	}

	return -1
}
