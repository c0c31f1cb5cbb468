// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "errors"

// ErrUncorrectable is returned by RSDecoder.Decode when a block holds
// more errors than its check bytes can correct.
var ErrUncorrectable = errors.New("gf256: too many errors")

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
// An RSEncoder is safe for concurrent use.
type RSEncoder struct {
	c   int
	gen Poly
}

// Generator returns the Reed-Solomon generator polynomial with e
// check bytes, the product of (x - α**i) for i from 0 to e-1.
func (f *Field) Generator(e int) Poly {
	g := f.NewPoly([]byte{1}, 0)
	for i := 0; i < e; i++ {
		g = g.Mul(f.NewPoly([]byte{1, f.Exp(i)}, 0))
	}
	return g
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	return &RSEncoder{c: c, gen: f.Generator(c)}
}

// Generator returns the generator polynomial of rs.
func (rs *RSEncoder) Generator() Poly { return rs.gen }

// ECC writes to check the error correcting code bytes for data: the
// remainder of data·x**c divided by the generator, right-aligned and
// zero-filled on the left.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	check = check[:rs.c]
	clear(check)
	if rs.c == 0 {
		return
	}
	rem, err := rs.gen.f.NewPoly(data, rs.c).Mod(rs.gen)
	if err != nil {
		panic("gf256: internal error: " + err.Error())
	}
	copy(check[rs.c-rem.Len():], rem.c)
}

// An RSDecoder corrects errors in Reed-Solomon blocks produced by an
// RSEncoder with the same field and number of check bytes.  It can
// correct up to c/2 erroneous bytes per block.
type RSDecoder struct {
	f *Field
	c int
}

// NewRSDecoder returns a new Reed-Solomon decoder
// over the given field and number of error correction bytes.
func NewRSDecoder(f *Field, c int) *RSDecoder {
	return &RSDecoder{f: f, c: c}
}

// Decode corrects block, data followed by check bytes, in place and
// returns the number of bytes corrected.
func (rd *RSDecoder) Decode(block []byte) (int, error) {
	f := rd.f
	r := f.NewPoly(block, 0)
	synd := make([]byte, rd.c)
	clean := true
	for i := 0; i < rd.c; i++ {
		s := r.Eval(f.Exp(i))
		synd[rd.c-1-i] = s
		clean = clean && s == 0
	}
	if clean {
		return 0, nil
	}
	sigma, omega, err := rd.euclid(f.NewPoly([]byte{1}, rd.c),
		f.NewPoly(synd, 0))
	if err != nil {
		return 0, err
	}
	loc, err := rd.locate(sigma)
	if err != nil {
		return 0, err
	}
	for i, x := range loc {
		// Forney with generator base 0.
		xinv := f.Inv(x)
		den := byte(1)
		for j, y := range loc {
			if j != i {
				den = f.Mul(den, 1^f.Mul(y, xinv))
			}
		}
		mag, _ := f.Div(omega.Eval(xinv), den)
		pos := len(block) - 1 - int(f.log[x])
		if pos < 0 {
			return 0, ErrUncorrectable
		}
		block[pos] ^= mag
	}
	return len(loc), nil
}

// euclid runs the extended Euclidean algorithm on a and the syndrome
// polynomial b, returning the error locator and evaluator.
func (rd *RSDecoder) euclid(a, b Poly) (sigma, omega Poly, err error) {
	f := rd.f
	if a.Degree() < b.Degree() {
		a, b = b, a
	}
	rLast, r := a, b
	tLast, t := f.NewPoly(nil, 0), f.NewPoly([]byte{1}, 0)
	for 2*r.Degree() >= rd.c {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = r, t
		if rLast.IsZero() {
			return Poly{}, Poly{}, ErrUncorrectable
		}
		r = rLastLast
		q := f.NewPoly(nil, 0)
		dlt := f.Inv(rLast.Coef(rLast.Degree()))
		for r.Degree() >= rLast.Degree() && !r.IsZero() {
			diff := r.Degree() - rLast.Degree()
			scale := f.Mul(r.Coef(r.Degree()), dlt)
			q = q.Add(f.NewPoly([]byte{scale}, diff))
			r = r.Add(rLast.Scale(scale, diff))
		}
		t = q.Mul(tLast).Add(tLastLast)
		if r.Degree() >= rLast.Degree() {
			return Poly{}, Poly{}, ErrUncorrectable
		}
	}
	s0 := t.Coef(0)
	if s0 == 0 {
		return Poly{}, Poly{}, ErrUncorrectable
	}
	inv := f.Inv(s0)
	return t.Scale(inv, 0), r.Scale(inv, 0), nil
}

// locate finds the error locations from the roots of sigma by Chien
// search.
func (rd *RSDecoder) locate(sigma Poly) ([]byte, error) {
	n := sigma.Degree()
	if n < 1 {
		return nil, ErrUncorrectable
	}
	if n == 1 {
		return []byte{sigma.Coef(1)}, nil
	}
	loc := make([]byte, 0, n)
	for i := 1; i < 256 && len(loc) < n; i++ {
		if sigma.Eval(byte(i)) == 0 {
			loc = append(loc, rd.f.Inv(byte(i)))
		}
	}
	if len(loc) != n {
		return nil, ErrUncorrectable
	}
	return loc, nil
}
