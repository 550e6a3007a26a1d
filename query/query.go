// Copyright (C) 2025 The jfeed Authors. All Rights Reserved.

// Package query implements structural queries over parsed documents.
//
// A query describes a path through the members of a document tree. Evaluating
// a query against a concrete value traverses that path and returns the value
// it leads to. Queries work equally on complete and on partially-streamed
// documents: a path whose target has not arrived yet simply does not resolve.
// For example, given the document
//
//	{"message": {"role": "assistant", "content": "Hel
//
// the query
//
//	query.Path("message", "content")
//
// yields the string value "Hel", which will keep growing as the stream
// continues.
package query

import (
	"errors"
	"fmt"

	"github.com/streamyjson/jfeed"
)

// Eval evaluates the given query beginning from root, returning the resulting
// value or an error.
func Eval(root jfeed.Value, q Query) (jfeed.Value, error) {
	return q.eval(root)
}

// A Query describes a traversal of a document tree.
type Query interface {
	eval(jfeed.Value) (jfeed.Value, error)
}

// Key returns a query for the member of an object with the given key.
func Key(name string) Query { return objKey(name) }

// Path traverses a sequence of nested object keys from the root. With no keys
// the root itself is returned.
func Path(keys ...string) Query {
	if len(keys) == 1 {
		return objKey(keys[0])
	}
	pq := make(Seq, len(keys))
	for i, key := range keys {
		pq[i] = objKey(key)
	}
	return pq
}

// Seq is a sequential composition of queries, each evaluated on the result of
// the previous one.
type Seq []Query

func (q Seq) eval(v jfeed.Value) (jfeed.Value, error) {
	cur := v
	for _, sq := range q {
		next, err := sq.eval(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

type objKey string

func (o objKey) eval(v jfeed.Value) (jfeed.Value, error) {
	obj, ok := v.(*jfeed.Object)
	if !ok {
		return nil, fmt.Errorf("got %T, want object", v)
	}
	mem := obj.Find(string(o))
	if mem == nil {
		return nil, fmt.Errorf("key %q not found", o)
	}
	return mem.Value, nil
}

// Exists reports whether the given path resolves in root.
func Exists(root jfeed.Value, keys ...string) bool {
	_, err := Path(keys...).eval(root)
	return err == nil
}

// String evaluates the given path and returns the text of the string value it
// leads to. It is an error if the path does not resolve or leads to an
// object.
func String(root jfeed.Value, keys ...string) (string, error) {
	v, err := Path(keys...).eval(root)
	if err != nil {
		return "", err
	}
	s, ok := v.(*jfeed.String)
	if !ok {
		return "", errors.New("value is not a string")
	}
	return s.Text(), nil
}

// Object evaluates the given path and returns the object value it leads to.
// It is an error if the path does not resolve or leads to a string.
func Object(root jfeed.Value, keys ...string) (*jfeed.Object, error) {
	v, err := Path(keys...).eval(root)
	if err != nil {
		return nil, err
	}
	o, ok := v.(*jfeed.Object)
	if !ok {
		return nil, errors.New("value is not an object")
	}
	return o, nil
}
