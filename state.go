// Copyright (C) 2025 The jfeed Authors. All Rights Reserved.

package jfeed

// A State identifies one state of the parsing machine. The set of states is
// closed; every byte of input is resolved by the transition rules of the
// current state.
type State byte

// Constants defining the valid State values.
const (
	Start            State = iota // awaiting the opening brace of the document
	ExpectKeyOrEnd                // inside an object, awaiting a key or "}"
	InKey                         // reading the bytes of a member key
	ExpectColon                   // awaiting the ":" after a completed key
	ExpectValue                   // awaiting a value: a string or a nested object
	InStringValue                 // reading the bytes of a string value
	ExpectCommaOrEnd              // after a value, awaiting "," or "}"
)

var stateStr = [...]string{
	Start:            "Start",
	ExpectKeyOrEnd:   "ExpectKeyOrEnd",
	InKey:            "InKey",
	ExpectColon:      "ExpectColon",
	ExpectValue:      "ExpectValue",
	InStringValue:    "InStringValue",
	ExpectCommaOrEnd: "ExpectCommaOrEnd",
}

func (s State) String() string {
	v := int(s)
	if v >= len(stateStr) {
		return "invalid state"
	}
	return stateStr[v]
}

// expect lists, per state, the bytes the machine acts on. An empty entry means
// every byte is content (key and string interiors). The ExpectCommaOrEnd entry
// applies only while a frame is open; after the root object has closed,
// nothing further is expected (see Stream.Consume).
var expect = [...]string{
	Start:            `{`,
	ExpectKeyOrEnd:   `"}`,
	InKey:            ``,
	ExpectColon:      `:`,
	ExpectValue:      `"{`,
	InStringValue:    ``,
	ExpectCommaOrEnd: `,}`,
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
