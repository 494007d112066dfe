// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"io"
	"slices"
	"strings"

	"github.com/unixdj/huffpal/palette"
)

// A Code is a bit string of '0' and '1' characters, first bit first.
type Code string

// Len returns the number of bits in c.
func (c Code) Len() int { return len(c) }

// Codes maps colours to their codes.
type Codes map[palette.Key]Code

// Codes returns the code of every colour in t.  The code of a leaf is
// its path from the root, '0' for left and '1' for right.  The sole
// colour of a single leaf tree gets the code "0".
func (t *Tree) Codes() Codes {
	c := make(Codes, t.Leaves())
	t.walk(func(i int, path []byte) bool {
		if n := t.nodes[i]; n.Leaf() {
			if len(path) == 0 {
				c[n.Color] = "0"
			} else {
				c[n.Color] = Code(path)
			}
		}
		return true
	})
	return c
}

// Keys returns the colours of c in ascending order.
func (c Codes) Keys() []palette.Key {
	keys := make([]palette.Key, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, palette.Key.Compare)
	return keys
}

// MaxLen returns the length of the longest code.
func (c Codes) MaxLen() int {
	var n int
	for _, v := range c {
		n = max(n, len(v))
	}
	return n
}

// PrefixFree reports whether no code in c is a prefix of another.
func (c Codes) PrefixFree() bool {
	s := make([]string, 0, len(c))
	for _, v := range c {
		s = append(s, string(v))
	}
	// After sorting, a code is followed by every code it prefixes.
	slices.Sort(s)
	for i := 1; i < len(s); i++ {
		if strings.HasPrefix(s[i], s[i-1]) {
			return false
		}
	}
	return true
}

// Lookup returns the colour whose code is c.  Lookup returns ErrBadCode
// if c does not lead from the root to a leaf.
func (t *Tree) Lookup(c Code) (palette.Key, error) {
	n := t.nodes[t.root]
	if n.Leaf() {
		if c != "0" {
			return palette.Key{}, ErrBadCode
		}
		return n.Color, nil
	}
	for i := 0; i < len(c); i++ {
		if n.Leaf() {
			return palette.Key{}, ErrBadCode
		}
		switch c[i] {
		case '0':
			n = t.nodes[n.Left]
		case '1':
			n = t.nodes[n.Right]
		default:
			return palette.Key{}, ErrBadCode
		}
	}
	if !n.Leaf() {
		return palette.Key{}, ErrBadCode
	}
	return n.Color, nil
}

// Next reads one code from r and returns its colour.  Next returns
// io.EOF if r is exhausted before the first bit, io.ErrUnexpectedEOF
// if in the middle of a code.
func (t *Tree) Next(r *Reader) (palette.Key, error) {
	n := t.nodes[t.root]
	bit, err := r.ReadBit()
	if err != nil {
		return palette.Key{}, err
	}
	if n.Leaf() {
		if bit != 0 {
			return palette.Key{}, ErrBadCode
		}
		return n.Color, nil
	}
	for {
		if bit == 0 {
			n = t.nodes[n.Left]
		} else {
			n = t.nodes[n.Right]
		}
		if n.Leaf() {
			return n.Color, nil
		}
		if bit, err = r.ReadBit(); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return palette.Key{}, err
		}
	}
}
