// Copyright (C) 2025 The jfeed Authors. All Rights Reserved.

// Package jfeed implements an incremental parser for a restricted subset of
// JSON in which values are strings and objects only. Input arrives in chunks
// of arbitrary size, and the partially-parsed document can be inspected at any
// point between chunks. The package is intended for consuming JSON embedded in
// unreliable streamed text, such as the output of a language model.
//
// # Parsing
//
// The Parser type materializes a document tree as input is consumed.
// Construct a parser with New and feed it chunks with Consume or
// ConsumeString; Get returns the document parsed so far:
//
//	p := jfeed.New()
//	p.ConsumeString(`{"name": "Ada", "bio": {"born": "Lon`)
//	doc := p.Get() // {"name": "Ada", "bio": {"born": "Lon"}}
//
// Get may be called at any time, including before any input (it reports an
// empty object) and after the input stops mid-value. String values grow byte
// by byte as they are consumed. A member key, by contrast, is withheld until
// the type of its value is known: "bio" above became visible when its opening
// brace arrived, and a key whose closing quote has not yet been seen is never
// reported.
//
// By default the parser is lenient: any byte that is not meaningful in the
// current state is discarded, which permits extracting structure from noisy
// surrounding text. Calling SetStrict(true) makes such bytes fail with a
// *SyntaxError instead.
//
// # Streaming
//
// The Stream type is the underlying state machine. It delivers events to a
// Handler as structure is recognized, without building a tree:
//
//	s := jfeed.NewStream(handler)
//	if err := s.Consume(chunk); err != nil {
//	   log.Fatalf("Consume failed: %v", err)
//	}
//
// Events are delivered synchronously during Consume, so a handler observes
// every byte of a string value in the same call that consumed it. See the
// comments on the Handler type for the meaning of each event.
//
// The supported grammar is:
//
//	<json>    ::= <object>
//	<object>  ::= '{' [ <member> { ',' <member> } ] '}'
//	<member>  ::= <string> ':' ( <string> | <object> )
//	<string>  ::= '"' { any byte except '"' } '"'
//
// There are no escape sequences: a double quotation mark always terminates a
// string, and a backslash is an ordinary byte. Whitespace is permitted between
// tokens. Keys within an object are assumed unique; the behavior for
// duplicate keys is unspecified.
package jfeed
