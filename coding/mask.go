// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
var maskFunc = [8]func(r, c int) bool{
	func(r, c int) bool { return (r+c)%2 == 0 },
	func(r, c int) bool { return r%2 == 0 },
	func(r, c int) bool { return c%3 == 0 },
	func(r, c int) bool { return (r+c)%3 == 0 },
	func(r, c int) bool { return (r/2+c/3)%2 == 0 },
	func(r, c int) bool { return r*c%2+r*c%3 == 0 },
	func(r, c int) bool { return (r*c%2+r*c%3)%2 == 0 },
	func(r, c int) bool { return (r*c%3+(r+c)%2)%2 == 0 },
}

// Masked reports whether mask inverts the module at row r, column c.
// It panics if mask is not in the range 0 to 7.
func Masked(mask, r, c int) bool { return maskFunc[mask](r, c) }

// Penalty returns the penalty value of a QR code symbol, used for
// choosing the mask.  Unset modules count as light.
//
// Total penalty is the sum of penalties for runs and boxes
// of same-colour modules, finder patterns and colour balance.
//
//   - RunP: for maximal runs of n modules, n>=5 -> n-2
//   - BoxP: for possibly overlapping 2x2 boxes -> 3
//   - FindP: for possibly overlapping 1011101 patterns with
//     0000 on either side, within the symbol -> 40
//   - BalP: for n% of dark modules -> 10*floor(abs(n-50)/5)
func Penalty(g *Grid) int {
	const (
		MinRun    = 5  // RunP:  miniumum run length
		RunPDelta = -2 // RunP:  add to run length
		BoxPP     = 3  // BoxP:  points per box
		FindPP    = 40 // FindP: points per pattern
		BalPP     = 10 // BalP:  points per 5%

		findMask = 1<<11 - 1
		FindB    = 0b0000_1011101 // quiet zone before
		FindA    = 0b1011101_0000 // quiet zone after
	)
	siz := g.Size
	p, dark := 0, 0
	for i := 0; i < siz; i++ {
		// i is a row, then a column
		for pass := 0; pass < 2; pass++ {
			r, pat := 0, uint16(0)
			prev := false
			for j := 0; j < siz; j++ {
				var d bool
				if pass == 0 {
					d = g.at(i, j) == Dark
				} else {
					d = g.at(j, i) == Dark
				}
				if j != 0 && d != prev {
					if r >= MinRun {
						p += r + RunPDelta // RunP
					}
					r = 0
				}
				r++
				prev = d
				pat = pat<<1 & findMask
				if d {
					pat |= 1
				}
				if j >= 10 && (pat == FindA || pat == FindB) {
					p += FindPP // FindP
				}
			}
			if r >= MinRun {
				p += r + RunPDelta // RunP
			}
		}
	}
	for r := 0; r < siz; r++ {
		for c := 0; c < siz; c++ {
			d := g.at(r, c) == Dark
			if d {
				dark++
			}
			if r+1 < siz && c+1 < siz {
				if g.Dark(r, c+1) == d && g.Dark(r+1, c) == d &&
					g.Dark(r+1, c+1) == d {
					p += BoxPP // BoxP
				}
			}
		}
	}
	// BalP
	total := siz * siz
	dev := 100*dark - 50*total
	if dev < 0 {
		dev = -dev
	}
	p += dev / (5 * total) * BalPP
	return p
}
