// Copyright (C) 2025 The jfeed Authors. All Rights Reserved.

package jfeed_test

import (
	"fmt"

	"github.com/streamyjson/jfeed"
)

func ExampleParser() {
	p := jfeed.New()

	p.ConsumeString(`{"name": "Ada", "bio": {"born": "Lon`)
	fmt.Println(p.Get().JSON())

	p.ConsumeString(`don"}}`)
	fmt.Println(p.Get().JSON())

	// Output:
	// {"name":"Ada","bio":{"born":"Lon"}}
	// {"name":"Ada","bio":{"born":"London"}}
}

func ExampleParseString() {
	doc := jfeed.ParseString(`Sure! Here is the JSON you asked for: {"answer": "42"`)
	fmt.Println(doc.JSON())
	// Output:
	// {"answer":"42"}
}
