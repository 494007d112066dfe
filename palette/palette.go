// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package palette extracts the colour palette of an image.

Pixels are quantized to 24-bit RGB keys, alpha is discarded, and the
occurrences of each key are counted in a frequency Table.
*/
package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput is matched by errors reporting input that cannot be
// analyzed or coded.
var ErrInvalidInput = errors.New("huffpal: invalid input")

// SizeError reports negative image dimensions.
type SizeError struct {
	Width, Height int
}

func (e SizeError) Error() string {
	return fmt.Sprintf("huffpal: invalid image size %dx%d",
		e.Width, e.Height)
}

func (e SizeError) Unwrap() error { return ErrInvalidInput }

// A Key is a quantized colour.  Two pixels share a Key iff their
// quantized red, green and blue channels are equal.
type Key struct {
	R, G, B uint8
}

// Quantize returns the Key for a pixel with normalized channels.
// Channels are scaled by 255 and truncated toward zero, so 1.0 maps to
// 255 and 0.999999 to 254.  Values outside [0, 1] are clamped, NaN
// maps to 0.  Alpha is ignored.
func Quantize(r, g, b, a float64) Key {
	return Key{channel(r), channel(g), channel(b)}
}

func channel(v float64) uint8 {
	switch {
	case v >= 1:
		return 255
	case v > 0:
		return uint8(v * 255)
	}
	return 0 // also NaN
}

// RGB returns the key as a 24-bit integer 0xRRGGBB.
func (k Key) RGB() uint32 {
	return uint32(k.R)<<16 | uint32(k.G)<<8 | uint32(k.B)
}

// Compare returns -1, 0 or 1 if k sorts before, equal to or after l.
// Keys are ordered by red, then green, then blue.
func (k Key) Compare(l Key) int {
	a, b := k.RGB(), l.RGB()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// String returns k as "#RRGGBB".
func (k Key) String() string {
	return fmt.Sprintf("#%02X%02X%02X", k.R, k.G, k.B)
}

// ParseKey parses a colour in the form "#RRGGBB" or "RRGGBB".
func ParseKey(s string) (Key, error) {
	t := strings.TrimPrefix(s, "#")
	if len(t) != 6 {
		return Key{}, fmt.Errorf("%q: bad colour spec", s)
	}
	n, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return Key{}, fmt.Errorf("%q: bad colour spec", s)
	}
	return Key{uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
}
