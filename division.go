// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math/bits"

const base = uint64(1) << 32

// absDivMod computes the quotient and remainder magnitudes q, r such that
// q*b + r = a and 0 <= r < b. Precondition: bMag is non-zero.
//
// The single-limb divisor is handled by the cheaper absDivideByLimb path.
// Multi-limb division uses Knuth's Algorithm D (TAOCP Vol 2, 4.3.1): the
// divisor is normalized so its top limb has its high bit set, a trial
// quotient digit is estimated from the top two remaining dividend limbs
// and corrected at most twice, then the estimate is applied by a
// multiply-and-subtract over the divisor's limbs with a final add-back
// if the subtraction went negative.
func absDivMod(aMag, bMag []uint32) (q, r []uint32) {
	aMag = trimLimbs(aMag)
	bMag = trimLimbs(bMag)

	if cmpLimbs(aMag, bMag) < 0 {
		return nil, cloneLimbs(aMag)
	}

	if len(bMag) == 1 {
		qq, rem := absDivideByLimb(cloneLimbs(aMag), bMag[0])
		if rem == 0 {
			return qq, nil
		}
		return qq, []uint32{rem}
	}

	n := len(bMag)
	m := len(aMag) - n

	shift := uint(bits.LeadingZeros32(bMag[n-1]))

	v := shiftLeftBits(bMag, shift)
	if len(v) < n {
		padded := make([]uint32, n)
		copy(padded, v)
		v = padded
	}

	uShifted := shiftLeftBits(aMag, shift)
	u := make([]uint32, m+n+1)
	copy(u, uShifted)

	qDigits := make([]uint32, m+1)

	for j := m; j >= 0; j-- {
		top := uint64(u[j+n])*base + uint64(u[j+n-1])
		vTop := uint64(v[n-1])

		qhat := top / vTop
		rhat := top % vTop

		if qhat >= base {
			qhat = base - 1
			rhat = top - qhat*vTop
		}

		for rhat < base && qhat*uint64(v[n-2]) > rhat*base+uint64(u[j+n-2]) {
			qhat--
			rhat += vTop
		}

		var borrow, carryMul uint64
		for i := 0; i < n; i++ {
			p := qhat*uint64(v[i]) + carryMul
			carryMul = p >> 32
			sub := int64(u[j+i]) - int64(uint32(p)) - int64(borrow)
			if sub < 0 {
				sub += int64(base)
				borrow = 1
			} else {
				borrow = 0
			}
			u[j+i] = uint32(sub)
		}

		top2 := int64(u[j+n]) - int64(carryMul) - int64(borrow)
		if top2 < 0 {
			qhat--
			var carry uint64
			for i := 0; i < n; i++ {
				s := uint64(u[j+i]) + uint64(v[i]) + carry
				u[j+i] = uint32(s)
				carry = s >> 32
			}
			top2 += int64(carry) + int64(base)
		}

		u[j+n] = uint32(top2)
		qDigits[j] = uint32(qhat)
	}

	remShifted := trimLimbs(u[:n])
	rem, _ := shiftRightMagnitude(remShifted, shift)
	return trimLimbs(qDigits), rem
}
