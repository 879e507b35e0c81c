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

// Option provides an interface to do work on Map while it is being
// created.
type Option[V any] interface {
	apply(m *Map[V])
}

type loadFactorOption[V any] struct {
	f float64
}

func (op loadFactorOption[V]) apply(m *Map[V]) {
	m.loadFactor = op.f
}

// WithLoadFactor is an option to set the fraction of capacity after which
// the map doubles on the next insert. Must be in (0, 1); validated by
// Init.
func WithLoadFactor[V any](f float64) Option[V] {
	return loadFactorOption[V]{f}
}

type mixerOption[V any] struct {
	mix func(int32) int32
}

func (op mixerOption[V]) apply(m *Map[V]) {
	m.mixer = op.mix
}

// WithMixer is an option to replace the key mixing function. mix must be
// a bijection on the 32-bit domain. The map compares full keys, so a
// deterministic mixer that is not a bijection still gives correct
// results, only with more collisions and longer probe chains.
func WithMixer[V any](mix func(int32) int32) Option[V] {
	return mixerOption[V]{mix}
}

// Allocator specifies an interface for allocating and releasing the
// backing storage of a Map. The default allocator utilizes Go's builtin
// make() and allows the GC to reclaim memory.
//
// If the allocator is manually managing memory then Map.Close must be
// called in order to ensure FreeKeys and FreeValues are called.
type Allocator[V any] interface {
	// AllocKeys should return a slice equivalent to make([]int32, n).
	AllocKeys(n int) []int32

	// AllocValues should return a slice equivalent to make([]V, n).
	AllocValues(n int) []V

	// FreeKeys can optionally release the memory associated with the
	// supplied slice that is guaranteed to have been allocated by
	// AllocKeys.
	FreeKeys(v []int32)

	// FreeValues can optionally release the memory associated with the
	// supplied slice that is guaranteed to have been allocated by
	// AllocValues.
	FreeValues(v []V)
}

type defaultAllocator[V any] struct{}

func (defaultAllocator[V]) AllocKeys(n int) []int32 {
	return make([]int32, n)
}

func (defaultAllocator[V]) AllocValues(n int) []V {
	return make([]V, n)
}

func (defaultAllocator[V]) FreeKeys(v []int32) {
}

func (defaultAllocator[V]) FreeValues(v []V) {
}

type allocatorOption[V any] struct {
	allocator Allocator[V]
}

func (op allocatorOption[V]) apply(m *Map[V]) {
	m.allocator = op.allocator
}

// WithAllocator is an option to specify the Allocator to use for a Map.
func WithAllocator[V any](allocator Allocator[V]) Option[V] {
	return allocatorOption[V]{allocator}
}
