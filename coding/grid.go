// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// A Module is the state of one cell of a Grid.
type Module byte

const (
	Unset Module = iota // not yet placed
	Light               // light module, bit 0
	Dark                // dark module, bit 1
)

func (m Module) String() string {
	return [...]string{"unset", "light", "dark"}[m]
}

// A Grid is a square matrix of modules, indexed by row and column.
type Grid struct {
	Size int
	m    []Module
}

// NewGrid returns an all Unset grid with size modules on a side.
func NewGrid(size int) *Grid {
	return &Grid{Size: size, m: make([]Module, size*size)}
}

// CoordError represents a grid coordinate out of range.
type CoordError struct {
	Row, Col, Size int
}

func (e CoordError) Error() string {
	return fmt.Sprintf("qr: module (%d, %d) outside %dx%d grid",
		e.Row, e.Col, e.Size, e.Size)
}

func (e CoordError) Unwrap() error { return ErrDomain }

func (g *Grid) in(r, c int) bool {
	return 0 <= r && r < g.Size && 0 <= c && c < g.Size
}

// At returns the module at row r, column c.
func (g *Grid) At(r, c int) (Module, error) {
	if !g.in(r, c) {
		return Unset, CoordError{r, c, g.Size}
	}
	return g.m[r*g.Size+c], nil
}

// Set sets the module at row r, column c.
func (g *Grid) Set(r, c int, dark bool) error {
	if !g.in(r, c) {
		return CoordError{r, c, g.Size}
	}
	g.set(r, c, dark)
	return nil
}

func (g *Grid) at(r, c int) Module { return g.m[r*g.Size+c] }

func (g *Grid) set(r, c int, dark bool) {
	m := Light
	if dark {
		m = Dark
	}
	g.m[r*g.Size+c] = m
}

// Dark reports whether the module at row r, column c is dark.
// Out of range modules are light.
func (g *Grid) Dark(r, c int) bool {
	return g.in(r, c) && g.at(r, c) == Dark
}

// Unset returns the number of unset modules in g.
func (g *Grid) Unset() int {
	n := 0
	for _, m := range g.m {
		if m == Unset {
			n++
		}
	}
	return n
}

// Bitmap packs g into rows of stride bytes, 1 for dark, most
// significant bit first.
func (g *Grid) Bitmap() (bitmap []byte, stride int) {
	stride = (g.Size + 7) >> 3
	bitmap = make([]byte, stride*g.Size)
	for r := 0; r < g.Size; r++ {
		row := bitmap[r*stride:]
		for c, m := range g.m[r*g.Size : (r+1)*g.Size] {
			if m == Dark {
				row[c>>3] |= 0x80 >> (c & 7)
			}
		}
	}
	return bitmap, stride
}
