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

import (
	"fmt"
	"unsafe"
)

// Tier identifies one of the three equivalent implementation paths for
// bitset operations and the eight-wide key probe. The tiers agree
// bit-for-bit on every input; they differ only in how many lanes a single
// step covers.
type Tier uint8

const (
	// TierScalar uses 64-bit loop iterations. Always available.
	TierScalar Tier = iota
	// TierHalf uses two independent 128-bit vector halves (SSE2).
	TierHalf
	// TierWide uses single 256-bit vector operations (AVX2).
	TierWide
)

func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierHalf:
		return "half"
	case TierWide:
		return "wide"
	}
	return fmt.Sprintf("Tier(%d)", uint8(t))
}

// Dispatch tables. UseTier points every entry at the active tier's
// implementation; operations call through these without re-checking CPU
// capability.
var (
	bitsetOr     func(dst, src *Bitset256)
	bitsetAndNot func(dst, src *Bitset256)
	bitsetInvert func(dst *Bitset256)
	bitsetClear  func(dst *Bitset256)
	bitsetEquals func(a, b *Bitset256) bool
	bitsetHasAll func(a, b *Bitset256) bool
	bitsetHasAny func(a, b *Bitset256) bool

	// matchKeys8 compares the eight consecutive keys starting at keys
	// against key and returns a 32-bit mask with one nibble per lane:
	// 0xF where the lane matches, 0x0 where it does not.
	matchKeys8 func(keys *int32, key int32) uint32
)

var activeTier Tier

// ActiveTier returns the tier operations currently route through.
func ActiveTier() Tier {
	return activeTier
}

// HasTier reports whether tier t is usable on this CPU. TierScalar is
// always usable.
func HasTier(t Tier) bool {
	return hasTier(t)
}

// UseTier routes all bitset and probe operations through tier t,
// returning ErrUnsupported if the CPU lacks it. Callers that care should
// query HasTier up front; a well-constructed call never fails because
// TierScalar is always present.
//
// UseTier swaps package-level dispatch state. Call it at startup or from
// tests, never concurrently with map or bitset operations.
func UseTier(t Tier) error {
	if !hasTier(t) {
		return fmt.Errorf("%w: %s", ErrUnsupported, t)
	}
	installTier(t)
	activeTier = t
	return nil
}

func installScalarTier() {
	bitsetOr = bitsetOrScalar
	bitsetAndNot = bitsetAndNotScalar
	bitsetInvert = bitsetInvertScalar
	bitsetClear = bitsetClearScalar
	bitsetEquals = bitsetEqualsScalar
	bitsetHasAll = bitsetHasAllScalar
	bitsetHasAny = bitsetHasAnyScalar
	matchKeys8 = matchKeys8Scalar
}

func init() {
	if err := UseTier(bestTier()); err != nil {
		panic(err)
	}
}

// matchKeys8Scalar preserves the vector probe's semantics exactly: same
// nibble layout, same lowest-lane-first resolution by the caller.
func matchKeys8Scalar(keys *int32, key int32) uint32 {
	w := (*[probeWidth]int32)(unsafe.Pointer(keys))
	var mask uint32
	for i := 0; i < probeWidth; i++ {
		if w[i] == key {
			mask |= 0xF << (uint(i) * 4)
		}
	}
	return mask
}
