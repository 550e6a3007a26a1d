// Copyright (C) 2025 The jfeed Authors. All Rights Reserved.

package jfeed

import (
	"fmt"
	"maps"
	"slices"
)

// A Value is a JSON value in the supported subset, either a *String or an
// *Object.
type Value interface {
	// Interface renders the value as a plain Go value: a string for strings,
	// a map[string]any for objects.
	Interface() any

	// JSON renders the value as JSON source text.
	JSON() string
}

// An Object is an ordered collection of key/value members. The zero value is
// an empty object ready for use.
//
// Objects returned by a Parser may still be growing; an object is final once
// its closing brace has been consumed. Keys are assumed unique.
type Object struct {
	Members []*Member
}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.Members) }

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Interface renders o as a map. Nested values are rendered recursively.
// Member order is not preserved by the map; use Members where order matters.
func (o *Object) Interface() any {
	m := make(map[string]any, len(o.Members))
	for _, mem := range o.Members {
		m[mem.Key] = mem.Value.Interface()
	}
	return m
}

func (o *Object) set(key string, v Value) {
	o.Members = append(o.Members, &Member{Key: key, Value: v})
}

// A Member is a single key/value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// A String is a string value. Its text may still be growing if the closing
// quotation mark has not yet been consumed.
type String struct {
	text []byte
}

// NewString constructs a String with the given text.
func NewString(text string) *String { return &String{text: []byte(text)} }

// Text returns the current text of s.
func (s *String) Text() string { return string(s.text) }

// Interface renders s as a plain string.
func (s *String) Interface() any { return string(s.text) }

func (s *String) grow(data []byte) { s.text = append(s.text, data...) }

// ToValue converts a plain Go value into a Value. It accepts a Value, a
// string, or a map[string]any whose values are themselves convertible, and
// panics for any other type. Map keys are ordered lexicographically in the
// result.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return NewString(t)
	case map[string]any:
		o := new(Object)
		for _, key := range slices.Sorted(maps.Keys(t)) {
			o.set(key, ToValue(t[key]))
		}
		return o
	default:
		panic(fmt.Sprintf("invalid value of type %T", v))
	}
}
