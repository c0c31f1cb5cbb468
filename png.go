// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image/color"
	"io"

	"github.com/klauspost/compress/zlib"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// maxPixels is the largest PNG width and height written.
const maxPixels = 1 << 20

// PNG returns a 1-bit PNG image displaying the code, with a quiet
// zone of c.Border modules and c.Scale pixels per module.
//
// PNG returns nil if the code cannot be rendered.
func (c *Code) PNG() []byte {
	b, err := c.pngBytes()
	if err != nil {
		return nil
	}
	return b
}

func (c *Code) pngBytes() ([]byte, error) {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// EncodePNG writes a PNG image displaying the code to w.
//
// The image has bit depth 1, with 1 for light pixels (0 if c.Reverse
// is set).  Without c.Palette it is grayscale; with c.Palette it is
// indexed, index 1 being the light colour, with transparency if
// either colour is not opaque.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	pix := c.Scale * (c.Size + c.Border*2)
	if pix > maxPixels {
		return ErrLargeImage
	}
	pw := pngWriter{w: w}

	pw.write([]byte(pngHeader))

	// Header block
	var hdr [13]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(pix))
	binary.BigEndian.PutUint32(hdr[4:8], uint32(pix))
	hdr[8] = 1 // 1-bit
	hdr[9] = 0 // gray
	// deflate, adaptive filtering, no interlace
	pal, indexed := c.pngPalette()
	if indexed {
		hdr[9] = 3 // palette
	}
	pw.writeChunk("IHDR", hdr[:])
	if indexed {
		plte := make([]byte, 0, 6)
		trns := make([]byte, 0, 2)
		for _, p := range pal {
			plte = append(plte, p.R, p.G, p.B)
			trns = append(trns, p.A)
		}
		pw.writeChunk("PLTE", plte)
		if trns[0] != 0xff || trns[1] != 0xff {
			pw.writeChunk("tRNS", trns)
		}
	}

	// Data: light pixels are 1, each row starts with filter type 0.
	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	white := byte(0xff)
	if c.Reverse {
		white = 0
	}
	err := c.rows(white, func(row []byte) error {
		if _, err := zw.Write([]byte{0}); err != nil {
			return err
		}
		_, err := zw.Write(row)
		return err
	})
	if err == nil {
		err = zw.Close()
	}
	if err != nil {
		return err
	}
	pw.writeChunk("IDAT", idat.Bytes())

	pw.writeChunk("IEND", nil)
	return pw.err
}

const pngHeader = "\x89PNG\r\n\x1a\n"

// A pngWriter writes PNG chunks, keeping the first error.
type pngWriter struct {
	w   io.Writer
	err error
}

func (w *pngWriter) write(b []byte) {
	if w.err == nil {
		_, w.err = w.w.Write(b)
	}
}

// writeChunk writes a chunk: length, type, data and CRC-32 of type
// and data.
func (w *pngWriter) writeChunk(name string, data []byte) {
	var b [8]byte
	binary.BigEndian.PutUint32(b[:4], uint32(len(data)))
	copy(b[4:], name)
	crc := crc32.NewIEEE()
	crc.Write(b[4:8])
	crc.Write(data)
	w.write(b[:])
	w.write(data)
	w.write(binary.BigEndian.AppendUint32(b[:0], crc.Sum32()))
}

// pngPalette returns the palette for an indexed image, dark colour
// first to match grayscale polarity, or false for a grayscale image.
func (c *Code) pngPalette() ([2]color.NRGBA, bool) {
	if c.Palette == nil {
		return [2]color.NRGBA{}, false
	}
	var pal [2]color.NRGBA
	for i, col := range *c.Palette {
		pal[1-i] = color.NRGBAModel.Convert(col).(color.NRGBA)
	}
	return pal, true
}
