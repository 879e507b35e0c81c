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

//go:build amd64 && !nosimd

package ecsmem

import "golang.org/x/sys/cpu"

// The wide tier needs AVX2. SSE2 is part of the amd64 baseline, so the
// half tier is unconditionally available here; build with the nosimd tag
// to force the scalar tier everywhere.

func bestTier() Tier {
	if cpu.X86.HasAVX2 {
		return TierWide
	}
	return TierHalf
}

func hasTier(t Tier) bool {
	switch t {
	case TierScalar, TierHalf:
		return true
	case TierWide:
		return cpu.X86.HasAVX2
	}
	return false
}

func installTier(t Tier) {
	switch t {
	case TierWide:
		bitsetOr = bitsetOrAVX2
		bitsetAndNot = bitsetAndNotAVX2
		bitsetInvert = bitsetInvertAVX2
		bitsetClear = bitsetClearAVX2
		bitsetEquals = bitsetEqualsAVX2
		bitsetHasAll = bitsetHasAllAVX2
		bitsetHasAny = bitsetHasAnyAVX2
		matchKeys8 = matchKeys8AVX2
	case TierHalf:
		bitsetOr = bitsetOrSSE2
		bitsetAndNot = bitsetAndNotSSE2
		bitsetInvert = bitsetInvertSSE2
		bitsetClear = bitsetClearSSE2
		bitsetEquals = bitsetEqualsSSE2
		bitsetHasAll = bitsetHasAllSSE2
		bitsetHasAny = bitsetHasAnySSE2
		matchKeys8 = matchKeys8SSE2
	default:
		installScalarTier()
	}
}

//go:noescape
func bitsetOrAVX2(dst, src *Bitset256)

//go:noescape
func bitsetAndNotAVX2(dst, src *Bitset256)

//go:noescape
func bitsetInvertAVX2(dst *Bitset256)

//go:noescape
func bitsetClearAVX2(dst *Bitset256)

//go:noescape
func bitsetEqualsAVX2(a, b *Bitset256) bool

//go:noescape
func bitsetHasAllAVX2(a, b *Bitset256) bool

//go:noescape
func bitsetHasAnyAVX2(a, b *Bitset256) bool

//go:noescape
func matchKeys8AVX2(keys *int32, key int32) uint32

//go:noescape
func bitsetOrSSE2(dst, src *Bitset256)

//go:noescape
func bitsetAndNotSSE2(dst, src *Bitset256)

//go:noescape
func bitsetInvertSSE2(dst *Bitset256)

//go:noescape
func bitsetClearSSE2(dst *Bitset256)

//go:noescape
func bitsetEqualsSSE2(a, b *Bitset256) bool

//go:noescape
func bitsetHasAllSSE2(a, b *Bitset256) bool

//go:noescape
func bitsetHasAnySSE2(a, b *Bitset256) bool

//go:noescape
func matchKeys8SSE2(keys *int32, key int32) uint32
