// Copyright (C) 2025 The jfeed Authors. All Rights Reserved.

package jfeed_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/streamyjson/jfeed"
)

func TestStream(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   \t\r\n ", ""},

		{`{}`, "BeginObject\nEndObject"},

		{`{"a":"b"}`, `
BeginObject
ObjectKey "a"
BeginString
StringBytes "b"
EndString
EndObject`},

		{`{"a": {"b": "c"}, "d": ""}`, `
BeginObject
ObjectKey "a"
BeginObject
ObjectKey "b"
BeginString
StringBytes "c"
EndString
EndObject
ObjectKey "d"
BeginString
EndString
EndObject`},

		// Whitespace inside a key or value is content, not filler.
		{`{"a b": " x "}`, `
BeginObject
ObjectKey "a b"
BeginString
StringBytes " x "
EndString
EndObject`},

		// A truncated value produces events for what arrived.
		{`{"a": "par`, `
BeginObject
ObjectKey "a"
BeginString
StringBytes "par"`},

		// A truncated key produces no key event.
		{`{"par`, `BeginObject`},

		// Lenient mode drops filler around and between tokens.
		{`noise {noise "hi" !! : ?? "val" noise } trailing`, `
BeginObject
ObjectKey "hi"
BeginString
StringBytes "val"
EndString
EndObject`},

		// A backslash is an ordinary byte; the quote after it still closes.
		{`{"a": "x\"}`, `
BeginObject
ObjectKey "a"
BeginString
StringBytes "x\\"
EndString
EndObject`},
	}

	for _, test := range tests {
		th := new(testHandler)
		s := jfeed.NewStream(th)
		if err := s.ConsumeString(test.input); err != nil {
			t.Errorf("Consume failed: %v", err)
		}
		if diff := diffStrings(test.want, th.output()); diff != "" {
			t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestStreamChunked(t *testing.T) {
	// A string split across chunks produces one StringBytes event per chunk,
	// delivered during the Consume call that carried the bytes.
	th := new(testHandler)
	s := jfeed.NewStream(th)
	for _, chunk := range []string{`{"a": "he`, ``, `llo`, ` world"}`} {
		if err := s.ConsumeString(chunk); err != nil {
			t.Fatalf("Consume %q failed: %v", chunk, err)
		}
	}
	const want = `
BeginObject
ObjectKey "a"
BeginString
StringBytes "he"
StringBytes "llo"
StringBytes " world"
EndString
EndObject`
	if diff := diffStrings(want, th.output()); diff != "" {
		t.Errorf("Output: (-want, +got)\n%s", diff)
	}
}

func TestStreamState(t *testing.T) {
	steps := []struct {
		chunk string
		state jfeed.State
		depth int
	}{
		{``, jfeed.Start, 0},
		{`  {`, jfeed.ExpectKeyOrEnd, 1},
		{`"ke`, jfeed.InKey, 1},
		{`y"`, jfeed.ExpectColon, 1},
		{` :`, jfeed.ExpectValue, 1},
		{`{`, jfeed.ExpectKeyOrEnd, 2},
		{`"a":"x`, jfeed.InStringValue, 2},
		{`"`, jfeed.ExpectCommaOrEnd, 2},
		{`}`, jfeed.ExpectCommaOrEnd, 1},
		{`}`, jfeed.ExpectCommaOrEnd, 0},
	}

	s := jfeed.NewStream(new(testHandler))
	for _, step := range steps {
		if err := s.ConsumeString(step.chunk); err != nil {
			t.Fatalf("Consume %q failed: %v", step.chunk, err)
		}
		if got := s.State(); got != step.state {
			t.Errorf("After %q: state is %v, want %v", step.chunk, got, step.state)
		}
		if got := s.Depth(); got != step.depth {
			t.Errorf("After %q: depth is %d, want %d", step.chunk, got, step.depth)
		}
	}
}

func TestStreamStrict(t *testing.T) {
	tests := []struct {
		input string
		estr  string
	}{
		{`x`, `at 1:0: unexpected 'x' in Start (want one of '{')`},
		{`{foo: "bar"}`, `at 1:1: unexpected 'f' in ExpectKeyOrEnd (want one of '"' or '}')`},
		{`{"a" "b"}`, `at 1:5: unexpected '"' in ExpectColon (want one of ':')`},
		{"{\n \"a\": 1}", `at 2:6: unexpected '1' in ExpectValue (want one of '"' or '{')`},
		{`{"a":"b" "c"}`, `at 1:9: unexpected '"' in ExpectCommaOrEnd (want one of ',' or '}')`},
		{`{} x`, `at 1:3: unexpected 'x' after the document closed`},
		{`{},`, `at 1:2: unexpected ',' after the document closed`},
	}

	for _, test := range tests {
		s := jfeed.NewStream(new(testHandler))
		s.SetStrict(true)
		err := s.ConsumeString(test.input)
		if err == nil {
			t.Errorf("Input: %#q: Consume did not fail, want %v", test.input, test.estr)
			continue
		}
		var serr *jfeed.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Input: %#q: error has type %T, want *SyntaxError", test.input, err)
		}
		if got := err.Error(); got != test.estr {
			t.Errorf("Input: %#q: error is\n %v\nwant\n %v", test.input, got, test.estr)
		}
	}
}

func TestStreamErrInvalidRoot(t *testing.T) {
	s := jfeed.NewStream(new(testHandler))
	s.SetStrict(true)
	err := s.ConsumeString(`["not", "an", "object"]`)
	if !errors.Is(err, jfeed.ErrInvalidRoot) {
		t.Errorf("Consume error: got %v, want ErrInvalidRoot", err)
	}

	// Once the document has opened, failures are plain syntax errors.
	s = jfeed.NewStream(new(testHandler))
	s.SetStrict(true)
	err = s.ConsumeString(`{]`)
	if err == nil {
		t.Fatal("Consume did not fail")
	}
	if errors.Is(err, jfeed.ErrInvalidRoot) {
		t.Errorf("Consume error %v should not be ErrInvalidRoot", err)
	}
}

func TestStreamErrorLatch(t *testing.T) {
	s := jfeed.NewStream(new(testHandler))
	s.SetStrict(true)
	first := s.ConsumeString(`{oops`)
	if first == nil {
		t.Fatal("Consume did not fail")
	}
	for i := 0; i < 3; i++ {
		if err := s.ConsumeString(`"valid": "input"}`); err != first {
			t.Errorf("Consume after failure: got %v, want %v", err, first)
		}
	}
	if err := s.Err(); err != first {
		t.Errorf("Err: got %v, want %v", err, first)
	}
}

func TestStreamHandlerError(t *testing.T) {
	bad := errors.New("handler rejected the value")
	th := &testHandler{failOn: "BeginString", err: bad}
	s := jfeed.NewStream(th)
	if err := s.ConsumeString(`{"a": "b"}`); !errors.Is(err, bad) {
		t.Errorf("Consume: got %v, want %v", err, bad)
	}
	if err := s.ConsumeString(`more`); !errors.Is(err, bad) {
		t.Errorf("Consume after handler failure: got %v, want %v", err, bad)
	}
}

func diffStrings(want, got string) string {
	return cmp.Diff(strings.Split(strings.TrimSpace(want), "\n"),
		strings.Split(strings.TrimSpace(got), "\n"))
}

// A testHandler renders the event stream as text, one event per line. If
// failOn names an event, that event reports err instead.
type testHandler struct {
	buf    bytes.Buffer
	failOn string
	err    error
}

func (t *testHandler) pr(msg string, args ...any) error {
	if t.failOn != "" && strings.HasPrefix(msg, t.failOn) {
		return t.err
	}
	fmt.Fprintf(&t.buf, msg, args...)
	t.buf.WriteByte('\n')
	return nil
}

func (t *testHandler) output() string { return t.buf.String() }

func (t *testHandler) BeginObject() error { return t.pr("BeginObject") }
func (t *testHandler) EndObject() error   { return t.pr("EndObject") }

func (t *testHandler) ObjectKey(key []byte) error { return t.pr("ObjectKey %q", key) }

func (t *testHandler) BeginString() error { return t.pr("BeginString") }
func (t *testHandler) EndString() error   { return t.pr("EndString") }

func (t *testHandler) StringBytes(data []byte) error { return t.pr("StringBytes %q", data) }
