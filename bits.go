// Copyright 2025 The Cockroach Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ecsmem

import "fmt"

const (
	fnvOffsetBasis uint32 = 0x811C9DC5
	fnvPrime       uint32 = 16777619
)

// mixKey applies a 32-bit FNV-style avalanche to a key before it is
// reduced to a slot index. The transform is a bijection on the 32-bit
// domain: fnvPrime is odd so the multiplication is invertible mod 2^32,
// and the xor with the offset basis is its own inverse. Sequential keys
// produce non-sequential slots, which keeps probe chains short when
// callers use densely packed entity ids.
func mixKey(k int32) int32 {
	return int32((fnvOffsetBasis ^ uint32(k)) * fnvPrime)
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// roundUpToPowerOfTwo returns the smallest power of two >= n. n must be
// in [1, 1<<30].
func roundUpToPowerOfTwo(n int) int {
	if invariants {
		if n < 1 || n > maxCapacity {
			panic(fmt.Sprintf("roundUpToPowerOfTwo: %d out of [1, %d]", n, maxCapacity))
		}
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return n + 1
}

// nextPowerOfTwo returns the smallest power of two > n. n must be in
// [0, 1<<30).
func nextPowerOfTwo(n int) int {
	return roundUpToPowerOfTwo(n + 1)
}

// moduloPowerOfTwoMinusOne reduces a mixed key into [0, mask+1), where
// mask is a power of two minus one. The absolute value keeps mixed keys
// with the sign bit set inside the table. Negating minInt32 yields
// minInt32 again; its low 30 bits are zero, so the result still lands in
// range.
func moduloPowerOfTwoMinusOne(v, mask int32) int32 {
	if v < 0 {
		v = -v
	}
	return v & mask
}
