package glint

import "math/big"

// This file implements natural-number arithmetic over trimmed Bits values,
// per the bit-arithmetic contract: operands and results carry no leading
// zero bits except where nat-width explicitly re-pads a result. Arithmetic
// itself is delegated to math/big, which is the natural fit for arbitrary-
// precision integers; no repo in the corpus ships its own bignum package,
// and hand-rolling schoolbook add/sub/mul/divmod would just re-derive what
// math/big already provides correctly and efficiently.

// bigFromBits interprets b as an unsigned big-endian integer.
func bigFromBits(b Bits) *big.Int {
	n := new(big.Int)
	if b.Len == 0 {
		return n
	}
	n.SetBytes(b.Data)
	// Data packs the Len bits MSB-first, so when Len is not a multiple of 8
	// the last byte ends in zero padding bits; shift them out.
	if extra := len(b.Data)*8 - b.Len; extra > 0 {
		n.Rsh(n, uint(extra))
	}
	return n
}

// bitsFromBig renders n (which must be non-negative) as a trimmed Bits: the
// shortest bit sequence with no leading zero bit, except that zero itself is
// the empty bitstring.
func bitsFromBig(n *big.Int) Bits {
	if n.Sign() == 0 {
		return Bits{}
	}
	bitLen := n.BitLen()
	byteLen := (bitLen + 7) / 8
	buf := make([]byte, byteLen)
	n.FillBytes(buf)
	// FillBytes right-aligns n in a whole number of bytes, leaving zero bits
	// at the front of Data[0]. Bits packs MSB-first with any unused bits at
	// the end of the last byte, so shift left by the padding to move the
	// first significant bit to the MSB of Data[0]; bigFromBits undoes this
	// with a right shift.
	shift := uint(byteLen*8 - bitLen)
	if shift > 0 {
		v := new(big.Int).SetBytes(buf)
		v.Lsh(v, shift)
		v.FillBytes(buf)
	}
	return Bits{Len: bitLen, Data: buf}
}

// NatAdd returns a+b.
func NatAdd(a, b Bits) Bits {
	return bitsFromBig(new(big.Int).Add(bigFromBits(a), bigFromBits(b)))
}

// NatSub returns a-b. It fails (ok=false) if a<b.
func NatSub(a, b Bits) (Bits, bool) {
	x, y := bigFromBits(a), bigFromBits(b)
	if x.Cmp(y) < 0 {
		return Bits{}, false
	}
	return bitsFromBig(new(big.Int).Sub(x, y)), true
}

// NatMul returns a*b.
func NatMul(a, b Bits) Bits {
	return bitsFromBig(new(big.Int).Mul(bigFromBits(a), bigFromBits(b)))
}

// NatDiv returns the quotient and remainder of a/b such that a = q*b + r and
// 0 <= r < b. It fails (ok=false) if b is zero.
func NatDiv(a, b Bits) (q, r Bits, ok bool) {
	y := bigFromBits(b)
	if y.Sign() == 0 {
		return Bits{}, Bits{}, false
	}
	x := bigFromBits(a)
	qq, rr := new(big.Int), new(big.Int)
	qq.QuoRem(x, y, rr)
	return bitsFromBig(qq), bitsFromBig(rr), true
}

// NatWidth re-pads a with leading zero bits to at least w bits. If a is
// already at least w bits wide, it is returned unchanged.
func NatWidth(w int, a Bits) Bits {
	if a.Len >= w {
		return a
	}
	byteLen := (w + 7) / 8
	buf := make([]byte, byteLen)
	v := bigFromBits(a)
	shift := uint(byteLen*8 - w)
	if shift > 0 {
		v = new(big.Int).Lsh(v, shift)
	}
	v.FillBytes(buf)
	return Bits{Len: w, Data: buf}
}
