// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package lineindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_OffsetsAndLines(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantLines   []string
		wantOffsets []int
	}{
		{
			name:        "trailing newline",
			text:        "alpha\nbeta\n",
			wantLines:   []string{"alpha", "beta"},
			wantOffsets: []int{0, 6, 11},
		},
		{
			name:        "no trailing newline",
			text:        "alpha\nbeta",
			wantLines:   []string{"alpha", "beta"},
			wantOffsets: []int{0, 6, 10},
		},
		{
			name:        "empty text",
			text:        "",
			wantLines:   nil,
			wantOffsets: []int{0},
		},
		{
			name:        "blank interior line",
			text:        "a\n\nb\n",
			wantLines:   []string{"a", "", "b"},
			wantOffsets: []int{0, 2, 3, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := New(tt.text)

			require.Equal(t, len(tt.wantLines), ix.LineCount())
			for i, want := range tt.wantLines {
				assert.Equal(t, want, ix.LineAt(i))
			}
			for i, want := range tt.wantOffsets {
				assert.Equal(t, want, ix.OffsetOfLine(i))
			}
		})
	}
}

func TestNew_ReconstructsText(t *testing.T) {
	text := "one\n  two\n\nthree"
	ix := New(text)

	for i := 0; i < ix.LineCount(); i++ {
		start := ix.OffsetOfLine(i)
		end := ix.OffsetOfLine(i + 1)
		segment := text[start:end]

		line := ix.LineAt(i)
		assert.True(t, segment == line || segment == line+"\n",
			"line %d: segment %q does not round-trip %q", i, segment, line)
	}
}

func TestPositionsOf(t *testing.T) {
	ix := New("x\n  x\ny\nx  \n")

	assert.Equal(t, []int{0, 1, 3}, ix.PositionsOf("x"))
	assert.Equal(t, []int{2}, ix.PositionsOf("y"))
	assert.Empty(t, ix.PositionsOf("z"))
}

func TestLineForOffset(t *testing.T) {
	ix := New("alpha\nbeta\ngamma\n")

	assert.Equal(t, 0, ix.LineForOffset(0))
	assert.Equal(t, 1, ix.LineForOffset(6))
	assert.Equal(t, 2, ix.LineForOffset(11))
	// Mid-line offsets round up to the next line start.
	assert.Equal(t, 1, ix.LineForOffset(3))
	assert.Equal(t, 3, ix.LineForOffset(17))
}

func TestPotentialStarts(t *testing.T) {
	ix := New("func a() {\n\tbody\n}\nfunc a() {\n\tother\n}\n")

	t.Run("multi-line requires last anchor", func(t *testing.T) {
		starts := ix.PotentialStarts([]string{"func a() {", "body", "}"}, 0)
		assert.Equal(t, []int{0, 3}, starts)
	})

	t.Run("minLine filters earlier candidates", func(t *testing.T) {
		starts := ix.PotentialStarts([]string{"func a() {", "body", "}"}, 1)
		assert.Equal(t, []int{3}, starts)
	})

	t.Run("last line mismatch prunes", func(t *testing.T) {
		starts := ix.PotentialStarts([]string{"func a() {", "nope"}, 0)
		assert.Empty(t, starts)
	})

	t.Run("candidate past end of text is dropped", func(t *testing.T) {
		starts := ix.PotentialStarts([]string{"func a() {", "x", "y", "z"}, 3)
		assert.Empty(t, starts)
	})

	t.Run("single line ignores last anchor", func(t *testing.T) {
		starts := ix.PotentialStarts([]string{"  func a() {  "}, 0)
		assert.Equal(t, []int{0, 3}, starts)
	})
}

func TestTrimLine(t *testing.T) {
	assert.Equal(t, "x", TrimLine("  \tx\r\n"))
	assert.Equal(t, "a b", TrimLine("\f\va b\t "))
	assert.Equal(t, "", TrimLine(" \t "))
}
