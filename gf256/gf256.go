// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256),
// polynomials over it and Reed-Solomon coding.
package gf256 // import "github.com/qrpng/qrpng/gf256"

import (
	"errors"
	"strconv"
)

// ErrDomain is returned for arguments outside the domain of an
// operation, such as the logarithm of zero.
var ErrDomain = errors.New("gf256: argument out of domain")

// A Field represents an instance of GF(256) defined by a specific polynomial.
// A Field is immutable once created and safe for concurrent use.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The Reed-Solomon encoding in QR codes uses
// polynomial 0x11d with generator 2.
//
// NewField panics if poly is reducible or α does not generate the
// multiplicative group of the field.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 || reducible(poly) {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	return &f
}

// nbit returns the number of significant bits in p.
func nbit(p int) uint {
	n := uint(0)
	for ; p > 0; p >>= 1 {
		n++
	}
	return n
}

// polyDiv divides the binary polynomial p by q and returns the remainder.
func polyDiv(p, q int) int {
	np, nq := nbit(p), nbit(q)
	for ; np >= nq; np-- {
		if p&(1<<(np-1)) != 0 {
			p ^= q << (np - nq)
		}
	}
	return p
}

// mul returns the product x*y mod poly, a GF(256) multiplication.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// reducible reports whether p is reducible.
func reducible(p int) bool {
	// A factor of a reducible p has at most np/2+1 bits.
	np := nbit(p)
	for q := 2; q < int(1<<(np/2+1)); q++ {
		if polyDiv(p, q) == 0 {
			return true
		}
	}
	return false
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte { return x ^ y }

// Exp returns the base-α exponential of e in the field.
// Exp accepts any e, reducing it modulo 255.
func (f *Field) Exp(e int) byte {
	if e %= 255; e < 0 {
		e += 255
	}
	return f.exp[e]
}

// Log returns the base-α logarithm of x in the field, in the range
// 0 to 254.  The logarithm of 0 is undefined and Log returns ErrDomain.
func (f *Field) Log(x byte) (int, error) {
	if x == 0 {
		return 0, ErrDomain
	}
	return int(f.log[x]), nil
}

// Inv returns the multiplicative inverse of x in the field.
// If x == 0, Inv returns 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[255-int(f.log[x])]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// Div returns x divided by y in the field.
// Division by zero returns ErrDomain.
func (f *Field) Div(x, y byte) (byte, error) {
	if y == 0 {
		return 0, ErrDomain
	}
	if x == 0 {
		return 0, nil
	}
	return f.exp[int(f.log[x])+255-int(f.log[y])], nil
}
