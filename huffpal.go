// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package huffpal computes Huffman codes for the palettes of images.

Compress counts the colours of an image, builds a Huffman tree from the
counts and derives a prefix code for each colour.  The Result reports
the size the image would take if every pixel were stored as its code,
compared to 24 bits per pixel, and can write and read such a stream.
*/
package huffpal // import "github.com/unixdj/huffpal"

import (
	"errors"
	"fmt"
	"image"

	"github.com/unixdj/huffpal/huffman"
	"github.com/unixdj/huffpal/palette"
)

var (
	// ErrInvalidInput is matched by errors for images that have no
	// pixels or negative dimensions.
	ErrInvalidInput = palette.ErrInvalidInput

	// ErrUndefinedRatio is returned by Stats.Ratio for an image with
	// no pixels.
	ErrUndefinedRatio = errors.New("huffpal: ratio undefined for empty image")
)

// MissingCodeError reports a colour having no code.
type MissingCodeError palette.Key

func (e MissingCodeError) Error() string {
	return fmt.Sprintf("huffpal: no code for colour %v", palette.Key(e))
}

// A Result is the outcome of compressing an image.  It must not be
// modified.
type Result struct {
	Freq  *palette.Table // colour frequencies
	Tree  *huffman.Tree  // Huffman tree
	Codes huffman.Codes  // codes
}

// Compress analyzes src and builds its Huffman code.  An image with no
// pixels yields an error matching ErrInvalidInput.
func Compress(src palette.Source) (*Result, error) {
	f, err := palette.Analyze(src)
	if err != nil {
		return nil, err
	}
	return FromTable(f)
}

// CompressImage is like Compress for an image.Image.
func CompressImage(img image.Image) (*Result, error) {
	return Compress(palette.ImageSource(img))
}

// FromTable builds a Result from a frequency table.  f must not be
// modified afterwards.
func FromTable(f *palette.Table) (*Result, error) {
	t, err := huffman.Build(f)
	if err != nil {
		return nil, err
	}
	return &Result{Freq: f, Tree: t, Codes: t.Codes()}, nil
}

// Stats returns the statistics of r.
func (r *Result) Stats() Stats { return ComputeStats(r.Freq, r.Codes) }
