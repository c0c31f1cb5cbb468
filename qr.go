// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text as byte mode QR codes and renders them as PNG,
PBM, SVG, PDF or text.

	png, err := qr.Generate("https://example.com/", 8)

Generate uses fixed conventions: level H, UTF-16 code units truncated
to bytes, text of at most 1273 units, a quiet zone of 3 modules.  Encode, EncodeCharset and EncodeBytes give
control over the level and charset; the returned Code is rendered with
its PNG, EncodePNG, EncodePBM, EncodeSVG and EncodePDF methods.
*/
package qr // import "github.com/qrpng/qrpng"

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"unicode/utf16"

	"golang.org/x/sync/errgroup"

	"github.com/qrpng/qrpng/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string { return coding.Level(l).String() }

// Errors returned by the encoder.
var (
	ErrCapacity = coding.ErrCapacity // text too long for any version
	ErrOverflow = coding.ErrOverflow // text too long for the version
)

// Defaults used by Encode and Generate.
const (
	DefaultScale  = 8 // image pixels per module
	DefaultBorder = 3 // quiet zone modules
)

// MaxText is the longest text accepted by Generate, the byte mode
// capacity of a version 40-H code.
const MaxText = 1273

// A Code is a square pixel grid.
// It implements image.Image and direct PNG encoding.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row

	Scale   int              // number of image pixels per QR pixel
	Border  int              // quiet zone width in QR pixels
	Reverse bool             // reverse colours: white on black
	Palette *[2]color.Color // light and dark colours, or nil for white and black

	Version   coding.Version // QR version
	Level     Level          // error correction level
	Mask      int            // mask pattern
	Penalties [8]int         // penalty of each mask pattern
}

func newCode(cc *coding.Code) *Code {
	return &Code{
		Bitmap:    cc.Bitmap,
		Size:      cc.Size,
		Stride:    cc.Stride,
		Scale:     DefaultScale,
		Border:    DefaultBorder,
		Version:   cc.Version,
		Level:     Level(cc.Level),
		Mask:      cc.Mask,
		Penalties: cc.Penalties,
	}
}

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Stride >= (c.Size+7)/8 &&
		len(c.Bitmap) >= c.Stride*c.Size && c.Scale > 0 && c.Border >= 0
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// EncodeBytes returns a byte mode encoding of data at the given error
// correction level, in the smallest version that holds it.
func EncodeBytes(data []byte, level Level) (*Code, error) {
	cc, err := coding.Encode(data, coding.Level(level))
	if err != nil {
		return nil, err
	}
	return newCode(cc), nil
}

// EncodeCharset returns an encoding of text converted to bytes by cs
// at the given error correction level.
func EncodeCharset(text string, cs Charset, level Level) (*Code, error) {
	b, err := cs.Bytes(text)
	if err != nil {
		return nil, err
	}
	return EncodeBytes(b, level)
}

// Encode returns an encoding of text at the given error correction
// level.  Characters are converted with the UTF16 charset, keeping the
// low 8 bits of each UTF-16 code unit.
func Encode(text string, level Level) (*Code, error) {
	return EncodeCharset(text, UTF16, level)
}

// Generate returns a PNG image of text encoded at level H with the
// UTF16 charset, scale pixels per module and a quiet zone of 3
// modules.  If scale is not positive, DefaultScale is used.  Text
// longer than MaxText UTF-16 code units is rejected.
func Generate(text string, scale int) ([]byte, error) {
	if n := len(utf16.Encode([]rune(text))); n > MaxText {
		return nil, fmt.Errorf("%w: text too long (%d > %d)",
			ErrCapacity, n, MaxText)
	}
	c, err := Encode(text, H)
	if err != nil {
		return nil, err
	}
	if scale > 0 {
		c.Scale = scale
	}
	return c.pngBytes()
}

// EncodeAll encodes each of texts with Charset cs at the given level,
// in parallel.  It returns the first error encountered, after which
// remaining texts are not encoded.
func EncodeAll(ctx context.Context, texts []string, cs Charset,
	level Level) ([]*Code, error) {
	codes := make([]*Code, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := EncodeCharset(text, cs, level)
			if err != nil {
				return fmt.Errorf("text %d: %w", i+1, err)
			}
			codes[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return codes, nil
}

// Image returns an Image displaying the code.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	pal := c.colors()
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return pal[1]
	}
	return pal[0]
}

func (c *codeImage) ColorModel() color.Model {
	if c.Palette != nil {
		return color.RGBAModel
	}
	return color.GrayModel
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

// colors returns the light and dark colours of c.
func (c *Code) colors() [2]color.Color {
	pal := [2]color.Color{whiteColor, blackColor}
	if c.Palette != nil {
		pal = *c.Palette
	}
	if c.Reverse {
		pal[0], pal[1] = pal[1], pal[0]
	}
	return pal
}
