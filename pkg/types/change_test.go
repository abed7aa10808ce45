// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchStageString(t *testing.T) {
	assert.Equal(t, "exact", StageExact.String())
	assert.Equal(t, "line_trimmed", StageLineTrimmed.String())
	assert.Equal(t, "block_anchor", StageBlockAnchor.String())
	assert.Equal(t, "none", StageNone.String())
	assert.Equal(t, "unknown", MatchStage(42).String())
}

func TestNoMatchError(t *testing.T) {
	err := &NoMatchError{SearchContent: "func gone() {\n}"}

	assert.Contains(t, err.Error(), "no match found")
	assert.Contains(t, err.Error(), "func gone() {\n}")
}
