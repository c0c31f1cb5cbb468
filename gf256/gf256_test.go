// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"testing"
)

var qrField = NewField(0x11d, 2)

func TestLogExp(t *testing.T) {
	f := qrField
	for x := 1; x < 256; x++ {
		l, err := f.Log(byte(x))
		if err != nil {
			t.Fatalf("Log(%d): %v", x, err)
		}
		if l < 0 || l > 254 {
			t.Errorf("Log(%d) = %d, out of range", x, l)
		}
		if e := f.Exp(l); e != byte(x) {
			t.Errorf("Exp(Log(%d)) = %d", x, e)
		}
	}
	for e := 0; e < 255; e++ {
		l, _ := f.Log(f.Exp(e))
		if l != e {
			t.Errorf("Log(Exp(%d)) = %d", e, l)
		}
	}
	if _, err := f.Log(0); !errors.Is(err, ErrDomain) {
		t.Errorf("Log(0) error = %v, want ErrDomain", err)
	}
	if f.Exp(8) != 0x1d {
		t.Errorf("Exp(8) = %#x, want 0x1d", f.Exp(8))
	}
}

func TestExpWraps(t *testing.T) {
	f := qrField
	for _, e := range []int{0, 1, 7, 100, 254} {
		for _, k := range []int{-3, -1, 1, 2, 40} {
			if f.Exp(e+255*k) != f.Exp(e) {
				t.Errorf("Exp(%d) != Exp(%d)", e+255*k, e)
			}
		}
	}
	if f.Exp(-1) != f.Exp(254) {
		t.Errorf("Exp(-1) = %d, want %d", f.Exp(-1), f.Exp(254))
	}
}

func TestMulInv(t *testing.T) {
	f := qrField
	for x := 1; x < 256; x++ {
		if p := f.Mul(byte(x), f.Inv(byte(x))); p != 1 {
			t.Errorf("%d * Inv(%d) = %d", x, x, p)
		}
		for _, y := range []byte{1, 2, 3, 0x80, 0xff} {
			if got, want := f.Mul(byte(x), y), byte(mul(x, int(y), 0x11d)); got != want {
				t.Errorf("Mul(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
	if _, err := f.Div(1, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("Div(1, 0) error = %v, want ErrDomain", err)
	}
}

func TestNewFieldPanics(t *testing.T) {
	for _, tc := range []struct{ poly, α int }{
		{0x100, 2}, // reducible
		{0x11d, 1}, // not a generator
		{0x0ff, 2}, // too small
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewField(%#x, %d) did not panic", tc.poly, tc.α)
				}
			}()
			NewField(tc.poly, tc.α)
		}()
	}
}

func TestPolyStrip(t *testing.T) {
	f := qrField
	p := f.NewPoly([]byte{0, 0, 3, 0, 1}, 2)
	if want := []byte{3, 0, 1, 0, 0}; !bytes.Equal(p.Coefficients(), want) {
		t.Errorf("NewPoly = %v, want %v", p.Coefficients(), want)
	}
	if p.Degree() != 4 || p.Coef(4) != 3 || p.Coef(2) != 1 || p.Coef(9) != 0 {
		t.Errorf("bad Degree/Coef for %v", p.Coefficients())
	}
	if z := f.NewPoly([]byte{0, 0}, 3); !z.IsZero() || z.Len() != 0 {
		t.Errorf("zero polynomial has coefficients %v", z.Coefficients())
	}
}

func TestPolyMul(t *testing.T) {
	f := qrField
	a := f.NewPoly([]byte{1, 1}, 0)
	// (x+1)² = x²+1 in characteristic 2
	if got := a.Mul(a).Coefficients(); !bytes.Equal(got, []byte{1, 0, 1}) {
		t.Errorf("(x+1)² = %v", got)
	}
	b := f.NewPoly([]byte{5, 0, 7}, 0)
	if got := a.Mul(b).Len(); got != a.Len()+b.Len()-1 {
		t.Errorf("len(a*b) = %d", got)
	}
	if !a.Mul(f.NewPoly(nil, 0)).IsZero() {
		t.Error("a*0 is not zero")
	}
}

func randPoly(f *Field, r *rand.Rand, n int) Poly {
	c := make([]byte, n)
	for i := range c {
		c[i] = byte(r.IntN(256))
	}
	c[0] |= 1
	return f.NewPoly(c, 0)
}

func TestPolyMod(t *testing.T) {
	f := qrField
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		q := randPoly(f, r, 1+r.IntN(30))
		a := randPoly(f, r, 1+r.IntN(100))
		// deg rem < deg q
		rem := f.NewPoly(randPoly(f, r, q.Len()).Coefficients()[1:], 0)
		got, err := a.Mul(q).Add(rem).Mod(q)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got.Coefficients(), rem.Coefficients()) {
			t.Fatalf("(a*q+r) mod q = %v, want %v",
				got.Coefficients(), rem.Coefficients())
		}
	}
	short := f.NewPoly([]byte{4, 5}, 0)
	if got, _ := short.Mod(f.NewPoly([]byte{1, 2, 3}, 0)); !bytes.Equal(got.Coefficients(), []byte{4, 5}) {
		t.Errorf("short mod = %v", got.Coefficients())
	}
	if _, err := short.Mod(f.NewPoly(nil, 0)); !errors.Is(err, ErrDomain) {
		t.Errorf("mod 0 error = %v, want ErrDomain", err)
	}
}

func TestGenerator(t *testing.T) {
	f := qrField
	// Generator with 7 check bytes, as exponents of α.
	want := []int{0, 87, 229, 146, 149, 238, 102, 21}
	g := f.Generator(7)
	if g.Len() != len(want) {
		t.Fatalf("generator length %d, want %d", g.Len(), len(want))
	}
	for i, c := range g.Coefficients() {
		if l, _ := f.Log(c); l != want[i] {
			t.Errorf("coefficient %d = α**%d, want α**%d", i, l, want[i])
		}
	}
	for i := 0; i < 7; i++ {
		if v := g.Eval(f.Exp(i)); v != 0 {
			t.Errorf("g(α**%d) = %d", i, v)
		}
	}
}

func TestECC(t *testing.T) {
	// HELLO WORLD, version 1-M.
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236, 17, 236, 17}
	want := []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}
	check := make([]byte, len(want))
	NewRSEncoder(qrField, len(want)).ECC(data, check)
	if !bytes.Equal(check, want) {
		t.Errorf("ECC = %v, want %v", check, want)
	}
	// Leading zero data yields a short remainder, which is right-aligned.
	zero := make([]byte, 9)
	NewRSEncoder(qrField, 9).ECC(make([]byte, 20), zero)
	if !bytes.Equal(zero, make([]byte, 9)) {
		t.Errorf("ECC of zeros = %v", zero)
	}
}

func TestDecode(t *testing.T) {
	f := qrField
	r := rand.New(rand.NewPCG(3, 4))
	for _, c := range []int{7, 10, 22, 30} {
		enc, dec := NewRSEncoder(f, c), NewRSDecoder(f, c)
		for iter := 0; iter < 20; iter++ {
			n := 1 + r.IntN(100)
			block := make([]byte, n+c)
			for i := range block[:n] {
				block[i] = byte(r.IntN(256))
			}
			enc.ECC(block[:n], block[n:])
			orig := append([]byte(nil), block...)
			if got, err := dec.Decode(block); err != nil || got != 0 {
				t.Fatalf("clean block: %d, %v", got, err)
			}
			nerr := r.IntN(c/2 + 1)
			for _, i := range r.Perm(len(block))[:nerr] {
				block[i] ^= byte(1 + r.IntN(255))
			}
			got, err := dec.Decode(block)
			if err != nil {
				t.Fatalf("c=%d, %d errors: %v", c, nerr, err)
			}
			if got != nerr || !bytes.Equal(block, orig) {
				t.Fatalf("c=%d: corrected %d of %d errors", c, got, nerr)
			}
		}
	}
}
