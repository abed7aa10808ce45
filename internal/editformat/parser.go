// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package editformat scans streamed SEARCH/REPLACE diff text and drives a
// line-level state machine over the three marker lines. Malformed marker
// sequences abandon the current block silently; parsing continues with
// the next well-formed block.
// Implements: prd004-block-parser R1, R2, R3.
package editformat

import "strings"

// Marker lines of the edit block wire format. Matching is exact: no case
// folding, no surrounding whitespace.
const (
	MarkerSearch  = "<<<<<<< SEARCH"
	MarkerDivider = "======="
	MarkerReplace = ">>>>>>> REPLACE"
)

// State is the parser position within a block.
type State int

const (
	StateIdle      State = iota // Outside any block
	StateInSearch               // Between SEARCH marker and divider
	StateInReplace              // Between divider and REPLACE marker
)

// EventKind classifies the effect of feeding one line to the parser.
type EventKind int

const (
	// EventNone: the line was consumed with no block-level effect
	// (pre-block noise, or a search-body line buffered internally).
	EventNone EventKind = iota
	// EventBlockOpened: a SEARCH marker started a fresh block.
	EventBlockOpened
	// EventSearchReady: the divider was reached; SearchContent is final
	// and the caller should locate it in the original.
	EventSearchReady
	// EventReplaceLine: a replacement body line; Line carries its content.
	EventReplaceLine
	// EventBlockClosed: the REPLACE marker completed the block.
	EventBlockClosed
	// EventBlockAbandoned: a malformed marker sequence discarded the
	// current block. When the offending line was a SEARCH marker, the
	// parser has already opened the next block.
	EventBlockAbandoned
)

// Event is the parser's response to one input line.
type Event struct {
	Kind EventKind
	Line string // Body line content for EventReplaceLine
}

// Parser is the block state machine. The zero value is ready to use.
type Parser struct {
	state          State
	searchSegments []string
}

// State returns the current parser state.
func (p *Parser) State() State {
	return p.state
}

// SearchContent returns the finalized search body: the buffered segments
// joined by newlines with one trailing newline, or the empty string when
// no segment was buffered.
func (p *Parser) SearchContent() string {
	if len(p.searchSegments) == 0 {
		return ""
	}
	return strings.Join(p.searchSegments, "\n") + "\n"
}

// Reset returns the parser to idle and clears all buffered content.
func (p *Parser) Reset() {
	p.state = StateIdle
	p.searchSegments = nil
}

// Feed advances the state machine by one full line of diff text (without
// its trailing newline) and reports what the line did.
func (p *Parser) Feed(line string) Event {
	switch p.state {
	case StateIdle:
		if line == MarkerSearch {
			p.open()
			return Event{Kind: EventBlockOpened}
		}
		return Event{Kind: EventNone}

	case StateInSearch:
		switch line {
		case MarkerDivider:
			p.state = StateInReplace
			return Event{Kind: EventSearchReady}
		case MarkerSearch:
			// Re-opened before the divider: discard and start over.
			p.open()
			return Event{Kind: EventBlockAbandoned}
		case MarkerReplace:
			// REPLACE without a divider is malformed.
			p.Reset()
			return Event{Kind: EventBlockAbandoned}
		default:
			p.searchSegments = append(p.searchSegments, line)
			return Event{Kind: EventNone}
		}

	default: // StateInReplace
		switch line {
		case MarkerReplace:
			p.Reset()
			return Event{Kind: EventBlockClosed}
		case MarkerSearch:
			// Re-opened mid-replacement: abandon and start the next block.
			p.open()
			return Event{Kind: EventBlockAbandoned}
		case MarkerDivider:
			// A second divider is malformed.
			p.Reset()
			return Event{Kind: EventBlockAbandoned}
		default:
			return Event{Kind: EventReplaceLine, Line: line}
		}
	}
}

func (p *Parser) open() {
	p.state = StateInSearch
	p.searchSegments = nil
}
