// Copyright (C) 2025 The jfeed Authors. All Rights Reserved.

package jfeed

import "io"

// A Parser incrementally materializes a document tree from chunked input.
// The document always exists, starting empty at construction, and is mutated
// in place as input arrives; it is never replaced. A Parser is not safe for
// concurrent use: callers invoking Consume and Get from multiple goroutines
// must provide their own locking.
type Parser struct {
	st *Stream
	b  *builder
}

// New constructs a new lenient Parser with an empty document.
func New() *Parser {
	b := &builder{root: new(Object)}
	return &Parser{st: NewStream(b), b: b}
}

// SetStrict configures the parser to fail with a *SyntaxError on bytes that
// are not valid for the current state (true), or to drop them (false, the
// default). After a strict-mode failure the parser stops: the document keeps
// the state it had at the failure point, and every later Consume call returns
// the same error.
func (p *Parser) SetStrict(ok bool) { p.st.SetStrict(ok) }

// Consume processes one chunk of input, updating the document in place.
// Chunks may be of any size, including empty, and may split the input at any
// point: the resulting document does not depend on chunk boundaries.
func (p *Parser) Consume(data []byte) error { return p.st.Consume(data) }

// ConsumeString processes text as Consume does.
func (p *Parser) ConsumeString(text string) error { return p.st.ConsumeString(text) }

// Get returns the document parsed so far. The result is the live root object,
// not a copy: it reflects later Consume calls, and the caller must not modify
// it while feeding more input. Get is read-only and may be called any number
// of times between chunks with equal results.
func (p *Parser) Get() *Object { return p.b.root }

// State returns the current state of the parsing machine.
func (p *Parser) State() State { return p.st.State() }

// Parse consumes all of r and returns the best-effort document, parsing
// leniently. The returned error is an I/O error from r or an error
// reported while consuming its contents, if any.
func Parse(r io.Reader) (*Object, error) {
	p := New()
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if cerr := p.Consume(buf[:n]); cerr != nil {
				return p.Get(), cerr
			}
		}
		if err == io.EOF {
			return p.Get(), nil
		} else if err != nil {
			return p.Get(), err
		}
	}
}

// ParseString returns the best-effort document for text, parsing leniently.
func ParseString(text string) *Object {
	p := New()
	p.ConsumeString(text)
	return p.Get()
}

// A builder implements the Handler interface to materialize the document
// tree. The frame stack holds the currently-open objects; entries are plain
// references into the tree, which the root owns. Popping a frame freezes the
// object: nothing below it on the stack can reach it again.
type builder struct {
	root  *Object
	stack []*Object
	key   string  // pending key, not yet visible in the document
	str   *String // string value currently growing, if any
}

func (b *builder) top() *Object { return b.stack[len(b.stack)-1] }

// commit makes the pending key visible, bound to v. This is the only point at
// which a key enters the document: its value's type is known from v.
func (b *builder) commit(v Value) {
	b.top().set(b.key, v)
	b.key = ""
}

func (b *builder) BeginObject() error {
	if len(b.stack) == 0 {
		// The root frame opens over the preexisting root object.
		b.stack = append(b.stack, b.root)
		return nil
	}
	obj := new(Object)
	b.commit(obj)
	b.stack = append(b.stack, obj)
	return nil
}

func (b *builder) EndObject() error {
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *builder) ObjectKey(key []byte) error {
	b.key = string(key)
	return nil
}

func (b *builder) BeginString() error {
	b.str = new(String)
	b.commit(b.str)
	return nil
}

func (b *builder) StringBytes(data []byte) error {
	b.str.grow(data)
	return nil
}

func (b *builder) EndString() error {
	b.str = nil
	return nil
}
