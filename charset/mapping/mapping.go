/*
 * bcdconv - Bidirectional character tables.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package mapping

import (
	"cmp"
	"maps"
	"slices"
)

// Mapping holds a forward and a reverse table. Decode is expected to
// undo Encode but nothing enforces it; that is what the round-trip
// checks look for.
type Mapping[K cmp.Ordered, V comparable] struct {
	Encode map[K]V
	Decode map[V]K
}

// Create an empty mapping.
func New[K cmp.Ordered, V comparable]() *Mapping[K, V] {
	return &Mapping[K, V]{
		Encode: make(map[K]V),
		Decode: make(map[V]K),
	}
}

// Record k <-> v, replacing any earlier entry for either side.
func (m *Mapping[K, V]) Set(k K, v V) {
	m.Encode[k] = v
	m.Decode[v] = k
}

// Number of forward entries.
func (m *Mapping[K, V]) Len() int {
	return len(m.Encode)
}

// Keys of the forward table in ascending order.
func (m *Mapping[K, V]) Keys() []K {
	return slices.Sorted(maps.Keys(m.Encode))
}

// Build a mapping from an index table, table[i] being the character for
// index i. When a character appears twice the higher index wins Decode.
func FromTable(table []rune) *Mapping[byte, rune] {
	m := New[byte, rune]()
	for i, r := range table {
		if i > 0xff {
			break
		}
		m.Set(byte(i), r)
	}
	return m
}

// Derive returns a new mapping built from source with the entries of aux
// laid over it. Entries are applied in ascending key order. Neither
// argument is modified.
func Derive[K cmp.Ordered, V comparable](source *Mapping[K, V], aux map[K]V) *Mapping[K, V] {
	m := New[K, V]()
	maps.Copy(m.Encode, source.Encode)
	maps.Copy(m.Decode, source.Decode)

	for _, k := range slices.Sorted(maps.Keys(aux)) {
		old, ok := m.Encode[k]
		if ok {
			if back, ok := m.Decode[old]; ok && back == k {
				delete(m.Decode, old)
			}
		}
		m.Set(k, aux[k])
	}
	return m
}

// Invert swaps the two tables.
func Invert[K, V cmp.Ordered](m *Mapping[K, V]) *Mapping[V, K] {
	inv := New[V, K]()
	maps.Copy(inv.Encode, m.Decode)
	maps.Copy(inv.Decode, m.Encode)
	return inv
}
