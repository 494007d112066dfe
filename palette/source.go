// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image"
	"image/color"
)

// A Source is a decoded image.  Channels must be defined for
// 0 <= x < width, 0 <= y < height and return normalized values in
// [0, 1].
type Source interface {
	Size() (width, height int)
	Channels(x, y int) (r, g, b, a float64)
}

// ImageSource returns a Source reading img.  Coordinates are relative
// to img.Bounds().Min.  Channels are non-premultiplied.
func ImageSource(img image.Image) Source {
	return imageSource{img, img.Bounds()}
}

type imageSource struct {
	img image.Image
	r   image.Rectangle
}

func (s imageSource) Size() (int, int) { return s.r.Dx(), s.r.Dy() }

func (s imageSource) Channels(x, y int) (r, g, b, a float64) {
	// Non-premultiplied colours are read directly, as converting them
	// loses precision in translucent pixels and colour in transparent
	// ones.  16-bit colours keep 16 bits; all others are converted to
	// 8 bits the way an 8-bit decoder does, v>>8.
	var c color.NRGBA64
	switch cc := s.img.At(s.r.Min.X+x, s.r.Min.Y+y).(type) {
	case color.NRGBA:
		return nrgba(cc)
	case color.NRGBA64:
		c = cc
	case color.RGBA64, color.Gray16:
		c = color.NRGBA64Model.Convert(cc).(color.NRGBA64)
	default:
		return nrgba(color.NRGBAModel.Convert(cc).(color.NRGBA))
	}
	return float64(c.R) / 0xffff, float64(c.G) / 0xffff,
		float64(c.B) / 0xffff, float64(c.A) / 0xffff
}

func nrgba(c color.NRGBA) (r, g, b, a float64) {
	return float64(c.R) / 0xff, float64(c.G) / 0xff,
		float64(c.B) / 0xff, float64(c.A) / 0xff
}

// RGBA is an in-memory image of 8-bit pixels stored row by row.
// It implements Source.
type RGBA struct {
	Pix    []color.NRGBA
	Width  int
	Height int
}

// NewRGBA returns a width x height image of transparent black pixels.
func NewRGBA(width, height int) *RGBA {
	return &RGBA{
		Pix:    make([]color.NRGBA, width*height),
		Width:  width,
		Height: height,
	}
}

func (p *RGBA) Size() (int, int) { return p.Width, p.Height }

func (p *RGBA) Channels(x, y int) (r, g, b, a float64) {
	return nrgba(p.Pix[y*p.Width+x])
}

// SetKey sets the pixel at (x, y) to the opaque colour k.
func (p *RGBA) SetKey(x, y int, k Key) {
	p.Pix[y*p.Width+x] = color.NRGBA{k.R, k.G, k.B, 0xff}
}
