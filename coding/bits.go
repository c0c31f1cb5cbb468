// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
)

// Bits is an append-only bit stream, most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, vtab[v].bytes)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Len returns the number of bits in b.
func (b *Bits) Len() int { return b.nbit }

// Bytes returns the contents of b.  It panics if b does not hold a
// whole number of bytes.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Get returns bit i of b.
func (b *Bits) Get(i int) bool {
	return b.b[i>>3]>>(7&^i)&1 != 0
}

// PutBit appends a single bit to b.
func (b *Bits) PutBit(bit bool) {
	var v uint32
	if bit {
		v = 1
	}
	b.Put(v, 1)
}

// Put appends the nbit low bits of v to b, most significant first.
// nbit must be at most 32.
func (b *Bits) Put(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// putBytes appends whole bytes to b.
func (b *Bits) putBytes(s []byte) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, s...)
		b.nbit += len(s) * 8
		return
	}
	for ; len(s) >= 4; s = s[4:] {
		b.Put(uint32(s[0])<<24|uint32(s[1])<<16|
			uint32(s[2])<<8|uint32(s[3]), 32)
	}
	for _, c := range s {
		b.Put(uint32(c), 8)
	}
}

// Pad terminates and pads b to n bits: up to 4 zero terminator bits,
// zero bits to a byte boundary, then alternating 0xec and 0x11 bytes.
// n must be a multiple of 8 no less than b.Len().
func (b *Bits) Pad(n int) {
	b.Put(0, min(4, n-b.nbit))
	b.Put(0, -b.nbit&7)
	for pad := byte(0xec); b.nbit < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
		b.nbit += 8
	}
}

// Predefined encoding modes.
const (
	Byte Mode = iota // byte mode, any data
)

// A Mode is a QR segment encoding mode.
type Mode int

func (mode Mode) String() string {
	if mode == Byte {
		return "byte"
	}
	return strconv.Itoa(int(mode))
}

// Indicator returns the 4-bit mode indicator.
func (mode Mode) Indicator() uint32 { return 4 }

// CountBits returns the length in bits of the character count field
// for mode in version v.
func CountBits(mode Mode, v Version) int {
	if v <= 9 {
		return 8
	}
	return 16
}

// A Segment describes a QR code segment.
type Segment struct {
	Data []byte // data to encode
	Mode Mode   // encoding mode
}

// ModeError represents an invalid Mode number.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("qr: invalid mode %s", Mode(e))
}

// EncodedLength returns the encoded length in bits of seg in version
// v, including the header.
func (seg Segment) EncodedLength(v Version) int {
	return 4 + CountBits(seg.Mode, v) + 8*len(seg.Data)
}

// Encode writes seg encoded for version v to b.
func (seg Segment) Encode(b *Bits, v Version) error {
	if seg.Mode != Byte {
		return ModeError(seg.Mode)
	}
	cb := CountBits(seg.Mode, v)
	if len(seg.Data) >= 1<<cb {
		return fmt.Errorf("%w: %d bytes exceed %d-bit count",
			ErrOverflow, len(seg.Data), cb)
	}
	b.Put(seg.Mode.Indicator(), 4)
	b.Put(uint32(len(seg.Data)), cb)
	b.putBytes(seg.Data)
	return nil
}
