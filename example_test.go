// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"github.com/qrpng/qrpng"
)

func ExampleGenerate() {
	b, err := qr.Generate("https://example.com/", 4)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("%q\n", b[1:4])
	// Output: "PNG"
}

func ExampleEncode() {
	c, err := qr.Encode("hello", qr.H)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(c.Version, c.Size, c.Level)
	// Output: 1 21 H
}

func ExampleEncodeCharset() {
	_, err := qr.EncodeCharset("5 €", qr.Latin1, qr.M)
	var ce *qr.CharsetError
	if errors.As(err, &ce) {
		fmt.Println("not representable in", ce.Charset)
	}
	c, err := qr.EncodeCharset("5 €", qr.UTF8, qr.M)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(c.Version)
	// Output:
	// not representable in latin1
	// 1
}

func ExampleCode_EncodePBM() {
	c, err := qr.Encode("hello", qr.L)
	if err != nil {
		log.Fatalln(err)
	}
	c.Scale = 1
	c.Border = 4
	var b bytes.Buffer
	if err := c.EncodePBM(&b); err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("%q\n", b.Bytes()[:9])
	// Output: "P4\n29 29\n"
}
