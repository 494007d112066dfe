// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffpal

import (
	"github.com/unixdj/huffpal/huffman"
	"github.com/unixdj/huffpal/palette"
)

// BitsPerPixel is the uncompressed size of a pixel: three 8-bit
// channels, alpha excluded.
const BitsPerPixel = 24

// Stats describes the size of an image coded with a Huffman code.
type Stats struct {
	Pixels         uint64 // number of pixels
	OriginalBits   uint64 // Pixels * BitsPerPixel
	CompressedBits uint64 // sum of code lengths over all pixels
}

// ComputeStats returns the statistics for pixels counted in f coded
// with c.  Every colour in f must have a code in c, otherwise
// ComputeStats panics with a MissingCodeError.
func ComputeStats(f *palette.Table, c huffman.Codes) Stats {
	var s Stats
	for _, k := range f.Keys() {
		code, ok := c[k]
		if !ok {
			panic(MissingCodeError(k))
		}
		n := f.Count(k)
		s.Pixels += n
		s.CompressedBits += n * uint64(code.Len())
	}
	s.OriginalBits = s.Pixels * BitsPerPixel
	return s
}

// Ratio returns the fraction of OriginalBits saved by the code,
// 1 - CompressedBits/OriginalBits.  Ratio returns ErrUndefinedRatio
// if there are no pixels.
func (s Stats) Ratio() (float64, error) {
	if s.OriginalBits == 0 {
		return 0, ErrUndefinedRatio
	}
	return 1 - float64(s.CompressedBits)/float64(s.OriginalBits), nil
}

// SavedBits returns OriginalBits - CompressedBits.  A Huffman code
// never exceeds 24 bits per pixel on average, so the difference is
// never negative.
func (s Stats) SavedBits() uint64 { return s.OriginalBits - s.CompressedBits }

// MeanCodeLen returns the mean code length per pixel.  It returns 0
// if there are no pixels.
func (s Stats) MeanCodeLen() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.CompressedBits) / float64(s.Pixels)
}
