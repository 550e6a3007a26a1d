// Copyright (C) 2025 The jfeed Authors. All Rights Reserved.

package jfeed

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// A Handler receives events from a Stream as structure is recognized in the
// input. If a method reports an error, consumption stops and the error is
// returned to the caller of Consume; the stream then refuses further input.
//
// The machine guarantees that ObjectKey is delivered before the
// BeginString or BeginObject event that starts the corresponding value, and
// that EndObject events are balanced against BeginObject events. A handler
// that materializes a tree must hold the key from ObjectKey pending and
// attach it only when the value event arrives: the key of a member whose
// value has not started does not yet exist in the document.
type Handler interface {
	// Begin a new object: the document root, or the value of the pending key.
	BeginObject() error

	// End the most-recently-opened object.
	EndObject() error

	// Report a completed member key. The slice is only valid for the duration
	// of the call; the handler must copy it to retain it.
	ObjectKey(key []byte) error

	// Begin a string value for the pending key.
	BeginString() error

	// Report a run of content bytes of the open string value. The slice is
	// only valid for the duration of the call. A string split across chunks
	// produces one StringBytes event per chunk; a single chunk produces at
	// most one event per string.
	StringBytes(data []byte) error

	// End the open string value.
	EndString() error
}

// Stream is an incremental state machine over the string/object JSON subset.
// It consumes input in chunks of arbitrary size and delivers events to a
// Handler; correctness does not depend on where chunk boundaries fall. A
// Stream holds no token buffer apart from the key accumulator: string content
// is handed to the Handler as it is consumed.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	h      Handler
	strict bool
	state  State
	depth  int    // number of open frames, the root counted
	key    []byte // accumulator for the key being read
	err    error  // first failure, latched

	line, col int // location of the next byte, 1-based line, 0-based column
}

// NewStream constructs a new lenient Stream delivering events to h.
func NewStream(h Handler) *Stream {
	return &Stream{h: h, line: 1}
}

// SetStrict configures the stream to reject (true) or silently drop (false)
// bytes that are not valid for the current state. The default is false:
// unexpected bytes are treated as filler until an expected byte arrives.
func (s *Stream) SetStrict(ok bool) { s.strict = ok }

// State returns the current state of the machine.
func (s *Stream) State() State { return s.state }

// Depth returns the number of currently-open objects, the root included.
func (s *Stream) Depth() int { return s.depth }

// Location returns the line and column of the next byte to be consumed.
func (s *Stream) Location() LineCol { return LineCol{Line: s.line, Column: s.col} }

// Err returns the error that stopped the stream, or nil.
func (s *Stream) Err() error { return s.err }

// Consume processes data byte by byte, delivering events to the Handler as
// structure is recognized. The empty chunk is a no-op. In strict mode Consume
// returns a *SyntaxError for the first byte that is not valid in the current
// state; afterward the stream is stopped and every later call returns the
// same error. In lenient mode Consume fails only if a Handler method fails.
func (s *Stream) Consume(data []byte) error {
	if s.err != nil {
		return s.err
	}
	i := 0
	for i < len(data) {
		c := data[i]

		// Key and string interiors are literal content, whitespace and
		// delimiters included. Consume the whole run up to the next quote in
		// one step; only a closing quote falls through to dispatch.
		if s.state == InKey || s.state == InStringValue {
			run := data[i:]
			if q := bytes.IndexByte(run, '"'); q >= 0 {
				run = run[:q]
			}
			if len(run) > 0 {
				if s.state == InKey {
					s.key = append(s.key, run...)
				} else if err := s.h.StringBytes(run); err != nil {
					return s.fail(err)
				}
				s.advance(run)
				i += len(run)
				continue
			}
		} else if isSpace(c) {
			s.advanceByte(c)
			i++
			continue
		}

		if err := s.dispatch(c); err != nil {
			return s.fail(err)
		}
		s.advanceByte(c)
		i++
	}
	return nil
}

// ConsumeString processes text as Consume does.
func (s *Stream) ConsumeString(text string) error { return s.Consume([]byte(text)) }

// dispatch applies the transition for a single non-content, non-space byte.
func (s *Stream) dispatch(c byte) error {
	switch s.state {
	case Start:
		if c == '{' {
			s.depth++
			s.state = ExpectKeyOrEnd
			return s.h.BeginObject()
		}
		return s.reject(c)

	case ExpectKeyOrEnd:
		switch c {
		case '"':
			s.state = InKey
			s.key = s.key[:0]
			return nil
		case '}':
			return s.closeObject()
		}
		return s.reject(c)

	case InKey: // c == '"': the key is now fixed
		s.state = ExpectColon
		return s.h.ObjectKey(s.key)

	case ExpectColon:
		if c == ':' {
			s.state = ExpectValue
			return nil
		}
		return s.reject(c)

	case ExpectValue:
		switch c {
		case '"':
			s.state = InStringValue
			return s.h.BeginString()
		case '{':
			s.depth++
			s.state = ExpectKeyOrEnd
			return s.h.BeginObject()
		}
		return s.reject(c)

	case InStringValue: // c == '"': the value is now fixed
		s.state = ExpectCommaOrEnd
		return s.h.EndString()

	case ExpectCommaOrEnd:
		if s.depth == 0 {
			// The root object has closed. The remainder of the stream is not
			// part of the document: drop it, or reject it in strict mode.
			return s.reject(c)
		}
		switch c {
		case ',':
			s.state = ExpectKeyOrEnd
			return nil
		case '}':
			return s.closeObject()
		}
		return s.reject(c)
	}
	return s.reject(c)
}

func (s *Stream) closeObject() error {
	s.depth--
	s.state = ExpectCommaOrEnd
	return s.h.EndObject()
}

func (s *Stream) reject(c byte) error {
	if !s.strict {
		return nil
	}
	want := expect[s.state]
	if s.state == ExpectCommaOrEnd && s.depth == 0 {
		want = ""
	}
	return &SyntaxError{Location: s.Location(), State: s.state, Got: c, Want: want}
}

func (s *Stream) fail(err error) error {
	s.err = err
	return err
}

func (s *Stream) advanceByte(c byte) {
	if c == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
}

func (s *Stream) advance(run []byte) {
	for {
		nl := bytes.IndexByte(run, '\n')
		if nl < 0 {
			s.col += len(run)
			return
		}
		s.line++
		s.col = 0
		run = run[nl+1:]
	}
}

// ErrInvalidRoot is reported, via errors.Is, by strict-mode syntax errors for
// input that does not open with an object.
var ErrInvalidRoot = errors.New("input does not begin with an object")

// SyntaxError is the concrete type of errors reported by a strict-mode
// Stream. It records the offending byte, the machine state it arrived in, and
// the set of bytes the state accepts.
type SyntaxError struct {
	Location LineCol
	State    State
	Got      byte
	Want     string // acceptable bytes; empty after the document has closed
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	if e.State == ExpectCommaOrEnd && e.Want == "" {
		return fmt.Sprintf("at %s: unexpected %q after the document closed", e.Location, e.Got)
	}
	return fmt.Sprintf("at %s: unexpected %q in %v (want one of %s)",
		e.Location, e.Got, e.State, wantLabel(e.Want))
}

// Unwrap supports error wrapping: a failure to open the document reports
// ErrInvalidRoot.
func (e *SyntaxError) Unwrap() error {
	if e.State == Start {
		return ErrInvalidRoot
	}
	return nil
}

// wantLabel makes a human-readable summary of an expected-byte set.
func wantLabel(want string) string {
	parts := make([]string, len(want))
	for i := 0; i < len(want); i++ {
		parts[i] = fmt.Sprintf("%q", want[i])
	}
	return strings.Join(parts, " or ")
}
