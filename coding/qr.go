// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: version and
// level tables, bit stream assembly, Reed-Solomon blocks, module
// placement and mask selection.
package coding // import "github.com/qrpng/qrpng/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/qrpng/qrpng/gf256"
)

var (
	ErrLevel    = errors.New("qr: invalid level")
	ErrVersion  = errors.New("qr: invalid version")
	ErrMask     = errors.New("qr: invalid mask")
	ErrCapacity = errors.New("qr: data too long")
	ErrOverflow = errors.New("qr: bit stream overflow")

	// ErrDomain is returned for out of range coordinates and field
	// arguments.
	ErrDomain = gf256.ErrDomain
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// The larger the version, the more information the code can store.
type Version int

// Code versions.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Valid reports whether v is a QR version.
func (v Version) Valid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side of a version v code.
func (v Version) Size() int { return int(v)*4 + 17 }

// Capacity returns the number of payload bytes that can be stored in
// byte mode in a QR code with the given version and level.
func (v Version) Capacity(l Level) int { return vtab[v].capacity[l] }

// TotalBytes returns the number of data and check codewords.
func (v Version) TotalBytes() int { return vtab[v].bytes }

// DataBytes returns the number of data codewords that can be
// stored in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	vt := &vtab[v]
	lev := vt.level[l]
	return vt.bytes - lev.nblock*lev.check
}

// A Block describes a Reed-Solomon block: Data data codewords followed
// by Total-Data check codewords.
type Block struct {
	Data  int
	Total int
}

// Blocks returns the Reed-Solomon blocks of a QR code with the given
// version and level, shorter blocks first.
func (v Version) Blocks(l Level) []Block {
	vt := &vtab[v]
	lev := vt.level[l]
	nd := v.DataBytes(l)
	db := nd / lev.nblock
	normal := (db+1)*lev.nblock - nd
	blocks := make([]Block, lev.nblock)
	for i := range blocks {
		if i == normal {
			db++
		}
		blocks[i] = Block{db, db + lev.check}
	}
	return blocks
}

// Alignment returns the row and column coordinates of alignment
// pattern centres, or nil for version 1.
func (v Version) Alignment() []int {
	return append([]int(nil), vtab[v].align...)
}

// VersionBits returns the 18-bit version information of v, or 0 for
// versions below 7, which carry none.
func VersionBits(v Version) uint32 { return uint32(vtab[v].pattern) }

// VersionBCH returns the 6-bit version number v followed by its 12-bit
// BCH(18,6) code.
func VersionBCH(v Version) uint32 { return bch(uint32(v), 0x1f25, 12) }

// FormatBits returns the 15-bit format information for level l and
// mask, masked with 0x5412.
func FormatBits(l Level, mask int) uint16 { return ftab[l][mask] }

// FormatBCH returns the 5-bit format data followed by its 10-bit
// BCH(15,5) code, masked with 0x5412.
func FormatBCH(data uint16) uint16 {
	return uint16(bch(uint32(data), 0x537, 10)) ^ 0x5412
}

// bch returns data followed by the remainder of data·x**n
// divided by poly, a polynomial of degree n.
func bch(data, poly uint32, n int) uint32 {
	rem := data << n
	for i := 31 - n; i >= 0; i-- {
		if rem&(1<<n<<i) != 0 {
			rem ^= poly << i
		}
	}
	return data<<n | rem
}

// ChooseVersion returns the smallest version able to hold n payload
// bytes at level l.
func ChooseVersion(n int, l Level) (Version, error) {
	if !l.Valid() {
		return 0, ErrLevel
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		if v.Capacity(l) >= n {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %d bytes at level %s", ErrCapacity, n, l)
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if l.Valid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// Valid reports whether l is a QR error correction level.
func (l Level) Valid() bool { return L <= l && l <= H }

// Bits returns the 2-bit level code used in format information:
// L=01, M=00, Q=11, H=10.
func (l Level) Bits() int { return int(l) ^ 1 }

// ParseLevel returns the Level named by s, one of L, M, Q or H in
// either case.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "l", "L":
		return L, nil
	case "m", "M":
		return M, nil
	case "q", "Q":
		return Q, nil
	case "h", "H":
		return H, nil
	}
	return 0, ErrLevel
}

// A version describes metadata associated with a version.
type version struct {
	align    []int    // alignment pattern centres
	bytes    int      // total codewords
	pattern  int      // version information bits
	level    [4]level // blocks per level
	capacity [4]int   // byte mode payload capacity per level
}

type level struct {
	nblock int // number of blocks
	check  int // check codewords per block
}
