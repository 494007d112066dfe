// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "slices"

// A Table maps colours to the number of pixels having them.  Counts are
// always positive; absent colours have no entry.
type Table struct {
	m     map[Key]uint64
	total uint64
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{m: make(map[Key]uint64)}
}

// Add adds n occurrences of k.  Adding 0 is a no-op.
func (t *Table) Add(k Key, n uint64) {
	if n == 0 {
		return
	}
	if t.m == nil {
		t.m = make(map[Key]uint64)
	}
	t.m[k] += n
	t.total += n
}

// Count returns the number of occurrences of k.
func (t *Table) Count(k Key) uint64 { return t.m[k] }

// Len returns the number of distinct colours.
func (t *Table) Len() int { return len(t.m) }

// Total returns the number of pixels counted.
func (t *Table) Total() uint64 { return t.total }

// Keys returns the colours in ascending order.
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.m))
	for k := range t.m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, Key.Compare)
	return keys
}

// Analyze counts the colours of every pixel of src.  An image with zero
// width or height yields an empty Table.
func Analyze(src Source) (*Table, error) {
	w, h := src.Size()
	if w < 0 || h < 0 {
		return nil, SizeError{w, h}
	}
	t := NewTable()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t.Add(Quantize(src.Channels(x, y)), 1)
		}
	}
	return t, nil
}
