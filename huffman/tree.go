// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package huffman builds Huffman trees and prefix codes for palettes.

The tree is built greedily: leaves for all colours are put in a min
priority queue, and until one node is left, the two nodes with lowest
frequency are removed and merged under a new internal node, the first
removed becoming the left child.  Nodes with equal frequency leave the
queue in creation order.  Leaves are created in ascending colour order
before any internal node, internal nodes in the order of merging.  This
makes the tree, and thus the code lengths, a function of the frequency
table alone.

Nodes are kept in an array and refer to their children by index.  All
traversals use an explicit stack, as a palette of 2**24 colours may
produce deep trees.
*/
package huffman

import (
	"bufio"
	"container/heap"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/unixdj/huffpal/palette"
)

var (
	// ErrEmptyTable is returned by Build for a table with no colours.
	// It matches palette.ErrInvalidInput.
	ErrEmptyTable = fmt.Errorf("%w: empty frequency table",
		palette.ErrInvalidInput)

	// ErrBadCode reports a code that is not a string of '0' and '1'
	// or does not lead to a leaf.
	ErrBadCode = errors.New("huffpal: invalid code")
)

// A Node is a leaf or an internal node of a Tree.
type Node struct {
	Color palette.Key // colour of a leaf
	Freq  uint64      // frequency, or sum of children's frequencies
	Left  int         // index of left child, -1 for leaves
	Right int         // index of right child, -1 for leaves
}

// Leaf reports whether n is a leaf.
func (n Node) Leaf() bool { return n.Left < 0 }

// A Tree is an immutable Huffman tree.
type Tree struct {
	nodes []Node
	root  int
}

// queue is a min heap of node indices ordered by (freq, index).
type queue struct {
	t   *Tree
	idx []int
}

func (q *queue) Len() int { return len(q.idx) }

func (q *queue) Less(i, j int) bool {
	a, b := q.idx[i], q.idx[j]
	if fa, fb := q.t.nodes[a].Freq, q.t.nodes[b].Freq; fa != fb {
		return fa < fb
	}
	return a < b
}

func (q *queue) Swap(i, j int) { q.idx[i], q.idx[j] = q.idx[j], q.idx[i] }

func (q *queue) Push(x any) { q.idx = append(q.idx, x.(int)) }

func (q *queue) Pop() any {
	n := len(q.idx) - 1
	x := q.idx[n]
	q.idx = q.idx[:n]
	return x
}

// Build returns the Huffman tree for the colours in f.  Build returns
// ErrEmptyTable if f has no colours.  A single colour yields a tree
// consisting of one leaf.
func Build(f *palette.Table) (*Tree, error) {
	keys := f.Keys()
	if len(keys) == 0 {
		return nil, ErrEmptyTable
	}
	t := &Tree{nodes: make([]Node, len(keys), 2*len(keys)-1)}
	q := &queue{t: t, idx: make([]int, len(keys))}
	for i, k := range keys {
		t.nodes[i] = Node{Color: k, Freq: f.Count(k), Left: -1, Right: -1}
		q.idx[i] = i
	}
	heap.Init(q)
	for q.Len() > 1 {
		l := heap.Pop(q).(int)
		r := heap.Pop(q).(int)
		t.nodes = append(t.nodes, Node{
			Freq:  t.nodes[l].Freq + t.nodes[r].Freq,
			Left:  l,
			Right: r,
		})
		heap.Push(q, len(t.nodes)-1)
	}
	t.root = heap.Pop(q).(int)
	return t, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() int { return t.root }

// Node returns the node at index i.
func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Leaves returns the number of leaves, equal to the number of colours.
func (t *Tree) Leaves() int { return (len(t.nodes) + 1) / 2 }

// Freq returns the frequency of the root, the number of pixels.
func (t *Tree) Freq() uint64 { return t.nodes[t.root].Freq }

// Depth returns the depth of the deepest leaf.  The depth of a single
// leaf tree is 0.
func (t *Tree) Depth() int {
	var d int
	t.walk(func(_ int, path []byte) bool {
		d = max(d, len(path))
		return true
	})
	return d
}

// walk calls fn for each node in preorder, left before right, with
// the path from the root as '0' and '1' bytes.  path is only valid
// during the call.  If fn returns false, the node's children are
// skipped.
func (t *Tree) walk(fn func(i int, path []byte) bool) {
	type item struct {
		i     int  // node index
		depth int  // path length
		bit   byte // last path bit
	}
	stack := []item{{i: t.root}}
	var path []byte
	for len(stack) != 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// path[:depth-1] still holds the parent's path, as nodes
		// visited since the parent are all deeper.
		if it.depth != 0 {
			path = append(path[:it.depth-1], it.bit)
		}
		if !fn(it.i, path) {
			continue
		}
		if n := t.nodes[it.i]; !n.Leaf() {
			// Push right first so left is visited first.
			stack = append(stack, item{n.Right, it.depth + 1, '1'},
				item{n.Left, it.depth + 1, '0'})
		}
	}
}

// Format writes the tree to w as indented text, one node per line.
// Each line holds the node's path bits (or "*" for the root), the
// colour of a leaf and the node's frequency.
func (t *Tree) Format(w io.Writer) error {
	b := bufio.NewWriter(w)
	t.walk(func(i int, path []byte) bool {
		n := t.nodes[i]
		b.WriteString(strings.Repeat("  ", len(path)))
		if len(path) == 0 {
			b.WriteByte('*')
		} else {
			b.Write(path)
		}
		if n.Leaf() {
			fmt.Fprintf(b, " %v %d\n", n.Color, n.Freq)
		} else {
			fmt.Fprintf(b, " %d\n", n.Freq)
		}
		return true
	})
	return b.Flush()
}
