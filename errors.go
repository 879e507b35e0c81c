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

import "errors"

// All errors returned by this package are caller-contract violations, not
// recoverable runtime conditions. Nothing is retried internally.
var (
	// ErrCapacityRange is returned when a map is constructed with an
	// initial capacity outside [2, 1<<30].
	ErrCapacityRange = errors.New("ecsmem: initial capacity out of range")

	// ErrLoadFactorRange is returned when a map is constructed with a load
	// factor outside (0, 1).
	ErrLoadFactorRange = errors.New("ecsmem: load factor out of range")

	// ErrReservedKey is returned when inserting KeyFree or KeyEnd.
	ErrReservedKey = errors.New("ecsmem: key value is reserved")

	// ErrInvalidSlot is returned by Remove when the token does not refer
	// to an occupied slot.
	ErrInvalidSlot = errors.New("ecsmem: token does not refer to an occupied slot")

	// ErrKeyNotFound is returned by ValueFor when the key is absent.
	ErrKeyNotFound = errors.New("ecsmem: key not found")

	// ErrUnsupported is returned by UseTier when the CPU lacks the
	// requested instruction tier. TierScalar is always available.
	ErrUnsupported = errors.New("ecsmem: instruction tier not supported on this CPU")
)
