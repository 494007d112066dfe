// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffpal

import (
	"io"

	"github.com/unixdj/huffpal/huffman"
	"github.com/unixdj/huffpal/palette"
)

// Encode writes the code of each pixel of src to w, row by row, most
// significant bit first, and pads the last byte with zero bits.  It
// returns the number of bits written excluding padding, which for the
// image r was computed from equals r.Stats().CompressedBits.  A pixel
// whose colour has no code yields a MissingCodeError.
func (r *Result) Encode(w io.Writer, src palette.Source) (uint64, error) {
	width, height := src.Size()
	if width < 0 || height < 0 {
		return 0, palette.SizeError{Width: width, Height: height}
	}
	bw := huffman.NewWriter(w)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			k := palette.Quantize(src.Channels(x, y))
			c, ok := r.Codes[k]
			if !ok {
				return bw.Bits(), MissingCodeError(k)
			}
			if err := bw.WriteCode(c); err != nil {
				return bw.Bits(), err
			}
		}
	}
	return bw.Bits(), bw.Flush()
}

// Decode reads a width x height image written by Encode.  The result
// holds the quantized opaque colours.
func (r *Result) Decode(rd io.Reader, width, height int) (*palette.RGBA, error) {
	if width < 0 || height < 0 {
		return nil, palette.SizeError{Width: width, Height: height}
	}
	img := palette.NewRGBA(width, height)
	br := huffman.NewReader(rd)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			k, err := r.Tree.Next(br)
			if err != nil {
				if err == io.EOF {
					err = io.ErrUnexpectedEOF
				}
				return nil, err
			}
			img.SetKey(x, y, k)
		}
	}
	return img, nil
}
