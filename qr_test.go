// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

const testURL = "https://example.com/"

func decodePNG(t *testing.T, b []byte) image.Image {
	t.Helper()
	if b == nil {
		t.Fatal("nil PNG")
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	return img
}

// checkPixels compares img with c pixel by pixel.
func checkPixels(t *testing.T, c *Code, img image.Image, light, dark color.Color) {
	t.Helper()
	d := (c.Size + 2*c.Border) * c.Scale
	if b := img.Bounds(); b != image.Rect(0, 0, d, d) {
		t.Fatalf("bounds %v, want %dx%d", b, d, d)
	}
	lr, lg, lb, la := light.RGBA()
	dr, dg, db, da := dark.RGBA()
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			wr, wg, wb, wa := lr, lg, lb, la
			if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) {
				wr, wg, wb, wa = dr, dg, db, da
			}
			r, g, b, a := img.At(x, y).RGBA()
			if r != wr || g != wg || b != wb || a != wa {
				t.Fatalf("pixel (%d,%d): %v", x, y, img.At(x, y))
			}
		}
	}
}

func TestPNG(t *testing.T) {
	for _, scale := range []int{1, 2, 3, 4, 5, 8} {
		for _, border := range []int{0, 1, 3, 4} {
			for _, rev := range []bool{false, true} {
				c, err := Encode(testURL, M)
				if err != nil {
					t.Fatal(err)
				}
				c.Scale, c.Border, c.Reverse = scale, border, rev
				light, dark := whiteColor, blackColor
				if rev {
					light, dark = dark, light
				}
				checkPixels(t, c, decodePNG(t, c.PNG()), light, dark)
			}
		}
	}
}

type chunk struct {
	name string
	data []byte
}

// readChunks splits a PNG image into chunks, checking CRCs.
func readChunks(t *testing.T, b []byte) []chunk {
	t.Helper()
	if !bytes.HasPrefix(b, []byte(pngHeader)) {
		t.Fatalf("bad signature % x", b[:min(len(b), 8)])
	}
	b = b[len(pngHeader):]
	var cc []chunk
	for len(b) > 0 {
		if len(b) < 12 {
			t.Fatalf("short chunk % x", b)
		}
		n := int(binary.BigEndian.Uint32(b))
		if len(b) < 12+n {
			t.Fatalf("chunk %q: length %d exceeds data", b[4:8], n)
		}
		want := binary.BigEndian.Uint32(b[8+n:])
		if got := crc32.ChecksumIEEE(b[4 : 8+n]); got != want {
			t.Errorf("chunk %q: crc %#08x, want %#08x", b[4:8], got, want)
		}
		cc = append(cc, chunk{string(b[4:8]), b[8 : 8+n]})
		b = b[12+n:]
	}
	return cc
}

func chunkNames(cc []chunk) string {
	var s []string
	for _, c := range cc {
		s = append(s, c.name)
	}
	return strings.Join(s, " ")
}

func TestPNGChunks(t *testing.T) {
	c, err := Encode("hello", H)
	if err != nil {
		t.Fatal(err)
	}
	cc := readChunks(t, c.PNG())
	if got := chunkNames(cc); got != "IHDR IDAT IEND" {
		t.Fatalf("chunks %s", got)
	}
	hdr := cc[0].data
	want := []byte{0, 0, 0, 216, 0, 0, 0, 216, 1, 0, 0, 0, 0}
	if !bytes.Equal(hdr, want) {
		t.Errorf("IHDR % x, want % x", hdr, want)
	}
	if len(cc[2].data) != 0 {
		t.Errorf("IEND has %d bytes", len(cc[2].data))
	}
}

func TestPNGPalette(t *testing.T) {
	light := color.RGBA{0xff, 0xee, 0x00, 0xff}
	dark := color.RGBA{0x00, 0x00, 0x80, 0xff}
	c, err := Encode(testURL, Q)
	if err != nil {
		t.Fatal(err)
	}
	c.Scale = 3
	c.Palette = &[2]color.Color{light, dark}
	b := c.PNG()
	cc := readChunks(t, b)
	if got := chunkNames(cc); got != "IHDR PLTE IDAT IEND" {
		t.Fatalf("chunks %s", got)
	}
	if ct := cc[0].data[9]; ct != 3 {
		t.Errorf("colour type %d, want 3", ct)
	}
	if want := []byte{0, 0, 0x80, 0xff, 0xee, 0}; !bytes.Equal(cc[1].data, want) {
		t.Errorf("PLTE % x, want % x", cc[1].data, want)
	}
	checkPixels(t, c, decodePNG(t, b), light, dark)

	c.Reverse = true
	checkPixels(t, c, decodePNG(t, c.PNG()), dark, light)

	c.Palette = &[2]color.Color{color.Transparent, dark}
	cc = readChunks(t, c.PNG())
	if got := chunkNames(cc); got != "IHDR PLTE tRNS IDAT IEND" {
		t.Fatalf("chunks %s", got)
	}
	if want := []byte{0xff, 0}; !bytes.Equal(cc[2].data, want) {
		t.Errorf("tRNS % x, want % x", cc[2].data, want)
	}
}

func TestPNGErrors(t *testing.T) {
	c, err := Encode("x", L)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := c.EncodePNG(nil); err != ErrArgs {
		t.Errorf("nil writer: %v", err)
	}
	bad := *c
	bad.Scale = 0
	if err := bad.EncodePNG(&b); err != ErrArgs {
		t.Errorf("scale 0: %v", err)
	}
	if bad.PNG() != nil {
		t.Error("PNG of invalid code is not nil")
	}
	if err := (&Code{}).EncodePNG(&b); err != ErrArgs {
		t.Errorf("empty code: %v", err)
	}
	bad.Scale = maxPixels
	if err := bad.EncodePNG(&b); err != ErrLargeImage {
		t.Errorf("large image: %v", err)
	}
}

func TestGenerate(t *testing.T) {
	b, err := Generate("hello", 0)
	if err != nil {
		t.Fatal(err)
	}
	img := decodePNG(t, b)
	if got := img.Bounds().Dx(); got != (21+2*DefaultBorder)*DefaultScale {
		t.Errorf("width %d", got)
	}

	b, err = Generate(strings.Repeat("a", MaxText), 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := decodePNG(t, b).Bounds().Dx(); got != 177+2*DefaultBorder {
		t.Errorf("width %d, want %d", got, 177+2*DefaultBorder)
	}

	for _, s := range []string{
		strings.Repeat("a", MaxText+1),
		strings.Repeat("\U0001f600", MaxText/2+1), // surrogate pairs
	} {
		if _, err := Generate(s, 1); !errors.Is(err, ErrCapacity) {
			t.Errorf("%d bytes: %v, want ErrCapacity", len(s), err)
		}
	}
}

func TestCharset(t *testing.T) {
	tests := []struct {
		cs   Charset
		text string
		want []byte
	}{
		{UTF16, "aé€\U0001f600", []byte{'a', 0xe9, 0xac, 0x3d, 0x00}},
		{UTF8, "aé", []byte{'a', 0xc3, 0xa9}},
		{Latin1, "aé", []byte{'a', 0xe9}},
	}
	for _, tt := range tests {
		got, err := tt.cs.Bytes(tt.text)
		if err != nil {
			t.Errorf("%s %q: %v", tt.cs, tt.text, err)
		} else if !bytes.Equal(got, tt.want) {
			t.Errorf("%s %q: % x, want % x", tt.cs, tt.text, got, tt.want)
		}
	}

	_, err := Latin1.Bytes("5€")
	var ce *CharsetError
	if !errors.As(err, &ce) || ce.Charset != Latin1 || ce.Text != "5€" {
		t.Errorf("latin1 euro: %v", err)
	}
	if _, err := Charset(7).Bytes("x"); err == nil {
		t.Error("unknown charset accepted")
	}

	for _, name := range Charsets() {
		cs, err := ParseCharset(name)
		if err != nil || cs.String() != name {
			t.Errorf("ParseCharset(%q) = %v, %v", name, cs, err)
		}
	}
	if _, err := ParseCharset("ebcdic"); err == nil {
		t.Error("ParseCharset(ebcdic) succeeded")
	}
}

func TestEncodeAll(t *testing.T) {
	texts := []string{"one", testURL, strings.Repeat("x", 300), ""}
	codes, err := EncodeAll(context.Background(), texts, UTF8, M)
	if err != nil {
		t.Fatal(err)
	}
	if len(codes) != len(texts) {
		t.Fatalf("%d codes for %d texts", len(codes), len(texts))
	}
	for i, text := range texts {
		c, err := EncodeCharset(text, UTF8, M)
		if err != nil {
			t.Fatal(err)
		}
		if codes[i].Version != c.Version || codes[i].Mask != c.Mask ||
			!bytes.Equal(codes[i].Bitmap, c.Bitmap) {
			t.Errorf("text %d: parallel and serial encodings differ", i)
		}
	}

	_, err = EncodeAll(context.Background(), []string{"ok", "€"}, Latin1, L)
	var ce *CharsetError
	if !errors.As(err, &ce) {
		t.Errorf("latin1: %v", err)
	}

	_, err = EncodeAll(context.Background(),
		[]string{strings.Repeat("x", 3000)}, UTF8, L)
	if !errors.Is(err, ErrCapacity) {
		t.Errorf("long text: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := EncodeAll(ctx, texts, UTF8, M); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: %v", err)
	}
}

func TestPBM(t *testing.T) {
	c, err := Encode("hello", H)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := c.EncodePBM(&b); err != nil {
		t.Fatal(err)
	}
	hdr := "P4\n216 216\n"
	if !strings.HasPrefix(b.String(), hdr) {
		t.Fatalf("header %q", b.String()[:len(hdr)])
	}
	data := b.Bytes()[len(hdr):]
	if len(data) != 216*27 {
		t.Fatalf("%d data bytes, want %d", len(data), 216*27)
	}
	// PBM: 1 is black.  The top left finder pattern starts at (24,24).
	if data[24*27+3] != 0xff || data[0] != 0 {
		t.Errorf("row 24 byte 3: %#02x, row 0 byte 0: %#02x",
			data[24*27+3], data[0])
	}
}

func TestSVG(t *testing.T) {
	c, err := Encode("hello", H)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := c.EncodeSVG(&b); err != nil {
		t.Fatal(err)
	}
	s := b.String()
	for _, want := range []string{"<svg", `width="216"`, "fill:#ffffff",
		"fill:#000000", "</svg>"} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG lacks %q", want)
		}
	}
	if got := svgFill(color.NRGBA{0x12, 0x34, 0x56, 0x80}); got !=
		"fill:#123456;fill-opacity:0.50" {
		t.Errorf("svgFill: %q", got)
	}
}

func TestPDF(t *testing.T) {
	c, err := Encode("hello", H)
	if err != nil {
		t.Fatal(err)
	}
	c.Scale = 2
	var b bytes.Buffer
	if err := c.EncodePDF(&b); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b.Bytes(), []byte("%PDF-")) {
		t.Errorf("PDF starts with %q", b.Bytes()[:min(b.Len(), 8)])
	}
	if err := c.EncodePDF(nil); err != ErrArgs {
		t.Errorf("nil writer: %v", err)
	}
}

func TestString(t *testing.T) {
	c, err := Encode("hello", H)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 14 {
		t.Fatalf("%d lines, want 14", len(lines))
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != 27 {
			t.Errorf("line %d: %d cells, want 27", i, n)
		}
	}
	// Quiet zone rows are light on top and bottom.
	if lines[0] != strings.Repeat("█", 27) {
		t.Errorf("line 0: %q", lines[0])
	}
	c.Reverse = true
	if l := strings.SplitN(c.String(), "\n", 2)[0]; l != strings.Repeat(" ", 27) {
		t.Errorf("reversed line 0: %q", l)
	}
}

func TestImage(t *testing.T) {
	c, err := Encode(testURL, L)
	if err != nil {
		t.Fatal(err)
	}
	c.Scale = 2
	img := c.Image()
	if img.ColorModel() != color.GrayModel {
		t.Error("color model is not gray")
	}
	checkPixels(t, c, img, whiteColor, blackColor)
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		t.Fatal(err)
	}
	checkPixels(t, c, decodePNG(t, b.Bytes()), whiteColor, blackColor)
}
