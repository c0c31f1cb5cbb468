// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "strings"

// String returns the code drawn with Unicode block elements, two
// modules per character cell, quiet zone included.  Light modules are
// drawn, for terminals with light text on a dark background; if
// c.Reverse is set, dark modules are drawn instead.
func (c *Code) String() string {
	var b strings.Builder
	bord := c.Border
	end := c.Size + bord
	for y := -bord; y < end; y += 2 {
		for x := -bord; x < end; x++ {
			n := 0
			if c.Black(x, y) != c.Reverse {
				n = 2
			}
			if y+1 >= end || c.Black(x, y+1) != c.Reverse {
				n++
			}
			b.WriteString([4]string{"█", "▀", "▄", " "}[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
