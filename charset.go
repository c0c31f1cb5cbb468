// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// A Charset converts text to byte mode data.
type Charset int

const (
	// UTF16 keeps the low 8 bits of each UTF-16 code unit.  Latin-1
	// text is encoded exactly; other characters are silently
	// corrupted, and characters outside the Basic Multilingual Plane
	// become two bytes.
	UTF16 Charset = iota

	// UTF8 encodes text as its UTF-8 bytes.
	UTF8

	// Latin1 encodes text as ISO 8859-1, rejecting characters
	// outside it with a CharsetError.
	Latin1
)

var charsetNames = [...]string{"utf16", "utf8", "latin1"}

func (cs Charset) String() string {
	if 0 <= cs && int(cs) < len(charsetNames) {
		return charsetNames[cs]
	}
	return fmt.Sprintf("charset(%d)", int(cs))
}

// Charsets returns the names of the charsets accepted by ParseCharset.
func Charsets() []string { return charsetNames[:] }

// ParseCharset returns the Charset with the given name.
func ParseCharset(name string) (Charset, error) {
	for i, n := range charsetNames {
		if n == name {
			return Charset(i), nil
		}
	}
	return 0, fmt.Errorf("qr: unknown charset %q", name)
}

// CharsetError represents text not representable in a Charset.
type CharsetError struct {
	Charset Charset
	Text    string
	Err     error
}

func (e *CharsetError) Error() string {
	return fmt.Sprintf("qr: %q not encodable as %s: %v",
		e.Text, e.Charset, e.Err)
}

func (e *CharsetError) Unwrap() error { return e.Err }

// Bytes converts text to bytes.
func (cs Charset) Bytes(text string) ([]byte, error) {
	switch cs {
	case UTF16:
		u := utf16.Encode([]rune(text))
		b := make([]byte, len(u))
		for i, c := range u {
			b[i] = byte(c)
		}
		return b, nil
	case UTF8:
		return []byte(text), nil
	case Latin1:
		b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, &CharsetError{cs, text, err}
		}
		return b, nil
	}
	return nil, fmt.Errorf("qr: unknown charset %s", cs)
}
