// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"sync"

	"github.com/qrpng/qrpng/gf256"
)

// A Code is a square pixel grid.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row

	Version   Version // QR version
	Level     Level   // error correction level
	Mask      int     // mask pattern
	Penalties [8]int  // penalty of each mask pattern
}

func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Reed-Solomon encoders by number of check bytes, created on first use.
var rsenc [31]struct {
	once sync.Once
	rs   *gf256.RSEncoder
}

func rsEncoder(check int) *gf256.RSEncoder {
	e := &rsenc[check]
	e.once.Do(func() { e.rs = gf256.NewRSEncoder(Field, check) })
	return e.rs
}

// Encoder encodes a QR code.
type Encoder struct {
	v    Version
	l    Level
	b    *Bits
	code []byte // interleaved codewords, nil until computed
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(version Version, level Level) (*Encoder, error) {
	if !version.Valid() {
		return nil, ErrVersion
	}
	if !level.Valid() {
		return nil, ErrLevel
	}
	return &Encoder{v: version, l: level, b: NewBits(version)}, nil
}

// Version returns the version of codes produced by e.
func (e *Encoder) Version() Version { return e.v }

// Level returns the error correction level of codes produced by e.
func (e *Encoder) Level() Level { return e.l }

// Write adds segments to e.
func (e *Encoder) Write(seg ...Segment) error {
	for _, s := range seg {
		if err := s.Encode(e.b, e.v); err != nil {
			return err
		}
	}
	e.code = nil
	return nil
}

func (e *Encoder) Reset() {
	e.b.Reset()
	e.code = nil
}

// Codewords returns the data and check codewords of e in placement
// order.  The result is computed once and shared by later calls until
// the next Write.
func (e *Encoder) Codewords() ([]byte, error) {
	if e.code != nil {
		return e.code, nil
	}
	nd := e.v.DataBytes(e.l)
	if e.b.Len() > nd*8 {
		return nil, fmt.Errorf("%w: cannot encode %d bits into %d-bit code",
			ErrOverflow, e.b.Len(), nd*8)
	}
	b := &Bits{b: append(make([]byte, 0, nd), e.b.b...), nbit: e.b.nbit}
	b.Pad(nd * 8)
	data := b.Bytes()

	blocks := e.v.Blocks(e.l)
	check := make([][]byte, len(blocks))
	split := make([][]byte, len(blocks))
	for i, bl := range blocks {
		split[i], data = data[:bl.Data], data[bl.Data:]
		check[i] = make([]byte, bl.Total-bl.Data)
		rsEncoder(bl.Total-bl.Data).ECC(split[i], check[i])
	}
	code := make([]byte, 0, e.v.TotalBytes())
	code = interleave(code, split)
	code = interleave(code, check)
	if len(code) != e.v.TotalBytes() {
		panic("qr: internal error")
	}
	e.code = code
	return code, nil
}

// interleave appends to dst the bytes of blocks column by column,
// skipping blocks already exhausted.
func interleave(dst []byte, blocks [][]byte) []byte {
	for i := 0; ; i++ {
		n := 0
		for _, b := range blocks {
			if i < len(b) {
				dst = append(dst, b[i])
				n++
			}
		}
		if n == 0 {
			return dst
		}
	}
}

// Build returns the module grid of e with the given mask.  If test is
// set, format and version information is left light, as used for
// scoring masks.
func (e *Encoder) Build(mask int, test bool) (*Grid, error) {
	if mask < 0 || mask > 7 {
		return nil, ErrMask
	}
	code, err := e.Codewords()
	if err != nil {
		return nil, err
	}
	g := NewGrid(e.v.Size())
	n := g.Size
	finder(g, 0, 0)
	finder(g, n-7, 0)
	finder(g, 0, n-7)
	alignment(g, e.v.Alignment())
	timing(g)
	format(g, FormatBits(e.l, mask), test)
	if e.v >= 7 {
		versionInfo(g, VersionBits(e.v), test)
	}
	mapData(g, code, mask)
	return g, nil
}

// BestMask returns the mask with the lowest penalty, the lowest
// numbered one on ties, and the penalties of all masks.
func (e *Encoder) BestMask() (int, [8]int, error) {
	var pen [8]int
	best := 0
	for mask := range pen {
		g, err := e.Build(mask, true)
		if err != nil {
			return 0, pen, err
		}
		if pen[mask] = Penalty(g); pen[mask] < pen[best] {
			best = mask
		}
	}
	return best, pen, nil
}

// Code returns a QR code containing data written to e.
func (e *Encoder) Code() (*Code, error) {
	mask, pen, err := e.BestMask()
	if err != nil {
		return nil, err
	}
	g, err := e.Build(mask, false)
	if err != nil {
		return nil, err
	}
	c := &Code{Size: g.Size, Version: e.v, Level: e.l, Mask: mask,
		Penalties: pen}
	c.Bitmap, c.Stride = g.Bitmap()
	return c, nil
}

// Encode is a wrapper around Write and Code.
func (e *Encoder) Encode(seg ...Segment) (*Code, error) {
	if err := e.Write(seg...); err != nil {
		return nil, err
	}
	return e.Code()
}

// Encode encodes payload in byte mode at level l using the smallest
// version that can hold it.
func Encode(payload []byte, l Level) (*Code, error) {
	v, err := ChooseVersion(len(payload), l)
	if err != nil {
		return nil, err
	}
	e, err := NewEncoder(v, l)
	if err != nil {
		return nil, err
	}
	return e.Encode(Segment{payload, Byte})
}

// finder draws a position detection pattern with its separator at
// upper left r, c.  Modules outside g are skipped.
func finder(g *Grid, r, c int) {
	for i := -1; i <= 7; i++ {
		for j := -1; j <= 7; j++ {
			if !g.in(r+i, c+j) {
				continue
			}
			d := 0 <= i && i <= 6 && (j == 0 || j == 6) ||
				0 <= j && j <= 6 && (i == 0 || i == 6) ||
				2 <= i && i <= 4 && 2 <= j && j <= 4
			g.set(r+i, c+j, d)
		}
	}
}

// alignment draws alignment patterns centred on all pairs of pos,
// except where the centre is already taken.
func alignment(g *Grid, pos []int) {
	for _, r := range pos {
		for _, c := range pos {
			if g.at(r, c) != Unset {
				continue
			}
			for i := -2; i <= 2; i++ {
				for j := -2; j <= 2; j++ {
					g.set(r+i, c+j, i == -2 || i == 2 ||
						j == -2 || j == 2 || i == 0 && j == 0)
				}
			}
		}
	}
}

// timing draws timing patterns in row and column 6.
func timing(g *Grid) {
	for i := 8; i < g.Size-8; i++ {
		if g.at(i, 6) == Unset {
			g.set(i, 6, i%2 == 0)
		}
		if g.at(6, i) == Unset {
			g.set(6, i, i%2 == 0)
		}
	}
}

// format draws both copies of the format information and the dark
// module.  If test is set, they are all light.
func format(g *Grid, bits uint16, test bool) {
	n := g.Size
	for i := 0; i < 15; i++ {
		d := !test && bits>>i&1 != 0
		// vertical
		switch {
		case i < 6:
			g.set(i, 8, d)
		case i < 8:
			g.set(i+1, 8, d)
		default:
			g.set(n-15+i, 8, d)
		}
		// horizontal
		switch {
		case i < 8:
			g.set(8, n-i-1, d)
		case i == 8:
			g.set(8, 7, d)
		default:
			g.set(8, 14-i, d)
		}
	}
	g.set(n-8, 8, !test)
}

// versionInfo draws both copies of the version information.
// If test is set, they are all light.
func versionInfo(g *Grid, bits uint32, test bool) {
	n := g.Size
	for i := 0; i < 18; i++ {
		d := !test && bits>>i&1 != 0
		g.set(i/3, i%3+n-8-3, d)
		g.set(i%3+n-8-3, i/3, d)
	}
}

// mapData places code into the unset modules of g in zigzag order,
// from the bottom right, two columns at a time, skipping the vertical
// timing pattern, and applies mask.  Modules past the end of code are
// light before masking.
func mapData(g *Grid, code []byte, mask int) {
	n := g.Size
	m := maskFunc[mask]
	inc := -1
	row := n - 1
	bit := 0
	for col := n - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		for {
			for c := 0; c < 2; c++ {
				if g.at(row, col-c) != Unset {
					continue
				}
				var d bool
				if i := bit >> 3; i < len(code) {
					d = code[i]>>(7&^bit)&1 != 0
				}
				g.set(row, col-c, d != m(row, col-c))
				bit++
			}
			if row += inc; row < 0 || row >= n {
				row -= inc
				inc = -inc
				break
			}
		}
	}
}
