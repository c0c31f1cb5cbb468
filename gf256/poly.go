// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// A Poly is a polynomial over a Field.  Coefficients are stored from
// the highest power of x down, with no leading zeros; the zero
// polynomial has no coefficients.  A Poly is never modified after
// construction.
type Poly struct {
	f *Field
	c []byte
}

// NewPoly returns the polynomial with coefficients coef, most
// significant first, multiplied by x**shift.  Leading zero
// coefficients are removed.  coef is copied.
func (f *Field) NewPoly(coef []byte, shift int) Poly {
	for len(coef) > 0 && coef[0] == 0 {
		coef = coef[1:]
	}
	if len(coef) == 0 {
		return Poly{f: f}
	}
	c := make([]byte, len(coef)+max(shift, 0))
	copy(c, coef)
	return Poly{f: f, c: c}
}

// Field returns the field of p.
func (p Poly) Field() *Field { return p.f }

// Len returns the number of coefficients in p.
func (p Poly) Len() int { return len(p.c) }

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.c) == 0 }

// Coef returns the coefficient of x**i in p.
func (p Poly) Coef(i int) byte {
	if i < 0 || i >= len(p.c) {
		return 0
	}
	return p.c[len(p.c)-1-i]
}

// Coefficients returns a copy of the coefficients of p,
// most significant first.
func (p Poly) Coefficients() []byte {
	return append([]byte(nil), p.c...)
}

// strip removes leading zeros from c, which p takes ownership of.
func (p Poly) strip(c []byte) Poly {
	for len(c) > 0 && c[0] == 0 {
		c = c[1:]
	}
	if len(c) == 0 {
		c = nil
	}
	return Poly{f: p.f, c: c}
}

// Add returns p+q.  Subtraction is the same operation.
func (p Poly) Add(q Poly) Poly {
	a, b := p.c, q.c
	if len(a) < len(b) {
		a, b = b, a
	}
	c := append([]byte(nil), a...)
	off := len(a) - len(b)
	for i, v := range b {
		c[off+i] ^= v
	}
	return p.strip(c)
}

// Mul returns p*q.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{f: p.f}
	}
	f := p.f
	c := make([]byte, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		if a == 0 {
			continue
		}
		la := int(f.log[a])
		for j, b := range q.c {
			if b != 0 {
				c[i+j] ^= f.exp[la+int(f.log[b])]
			}
		}
	}
	return p.strip(c)
}

// Scale returns p multiplied by the constant k and by x**shift.
func (p Poly) Scale(k byte, shift int) Poly {
	if k == 0 || p.IsZero() {
		return Poly{f: p.f}
	}
	c := make([]byte, len(p.c)+max(shift, 0))
	for i, v := range p.c {
		c[i] = p.f.Mul(v, k)
	}
	return Poly{f: p.f, c: c}
}

// Mod returns the remainder of p divided by q.  If p is shorter than
// q, p itself is returned.  Dividing by the zero polynomial returns
// ErrDomain.
func (p Poly) Mod(q Poly) (Poly, error) {
	if q.IsZero() {
		return Poly{}, ErrDomain
	}
	if len(p.c) < len(q.c) {
		return p, nil
	}
	f := p.f
	r := append([]byte(nil), p.c...)
	lq0 := int(f.log[q.c[0]])
	for len(r) >= len(q.c) {
		// r[0] is nonzero: leading zeros are stripped below.
		ratio := int(f.log[r[0]]) - lq0 + 255
		for i, v := range q.c {
			if v != 0 {
				r[i] ^= f.exp[(int(f.log[v])+ratio)%255]
			}
		}
		for len(r) > 0 && r[0] == 0 {
			r = r[1:]
		}
	}
	return p.strip(r), nil
}

// Eval returns the value of p at x.
func (p Poly) Eval(x byte) byte {
	if x == 0 {
		return p.Coef(0)
	}
	var y byte
	for _, v := range p.c {
		y = p.f.Mul(y, x) ^ v
	}
	return y
}
