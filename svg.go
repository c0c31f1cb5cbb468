// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	svgo "github.com/ajstarks/svgo"
)

// EncodeSVG writes an SVG image displaying the code to w, c.Scale
// user units per module.  Runs of dark modules are drawn as single
// rectangles.
func (c *Code) EncodeSVG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	pal := c.colors()
	siz, bord := c.Size, c.Border
	pix := c.Scale * (siz + 2*bord)

	svg := svgo.New(b)
	svg.Start(pix, pix)
	svg.Rect(0, 0, pix, pix, svgFill(pal[0]))
	svg.Group(svgFill(pal[1]))
	svg.Scale(float64(c.Scale))
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			for x < siz && !c.Black(x, y) {
				x++
			}
			start := x
			for x < siz && c.Black(x, y) {
				x++
			}
			if x > start {
				svg.Rect(start+bord, y+bord, x-start, 1)
			}
		}
	}
	svg.Gend()
	svg.Gend()
	svg.End()
	return b.Flush()
}

// svgFill returns a fill style for col.
func svgFill(col color.Color) string {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	s := fmt.Sprintf("fill:#%02x%02x%02x", n.R, n.G, n.B)
	if n.A != 0xff {
		s += fmt.Sprintf(";fill-opacity:%.2f", float64(n.A)/0xff)
	}
	return s
}
