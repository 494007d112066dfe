// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffpal_test

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/unixdj/huffpal"
)

func ExampleCompressImage() {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	colours := []color.NRGBA{
		{0xff, 0, 0, 0xff}, {0xff, 0, 0, 0xff}, {0xff, 0, 0, 0xff}, {0xff, 0, 0, 0xff},
		{0, 0, 0xff, 0xff}, {0, 0, 0xff, 0xff}, {0, 0xff, 0, 0xff}, {0, 0, 0, 0},
	}
	for i, c := range colours {
		img.SetNRGBA(i%4, i/4, c)
	}

	r, err := huffpal.CompressImage(img)
	if err != nil {
		log.Fatalln(err)
	}
	for _, k := range r.Codes.Keys() {
		fmt.Printf("%v %d %s\n", k, r.Freq.Count(k), r.Codes[k])
	}
	s := r.Stats()
	ratio, _ := s.Ratio()
	fmt.Printf("%d -> %d bits, ratio %.4f\n",
		s.OriginalBits, s.CompressedBits, ratio)
	// Output:
	// #000000 1 110
	// #0000FF 2 10
	// #00FF00 1 111
	// #FF0000 4 0
	// 192 -> 14 bits, ratio 0.9271
}

func ExampleCompressImage_empty() {
	_, err := huffpal.CompressImage(image.NewNRGBA(image.Rectangle{}))
	fmt.Println(err)
	fmt.Println(errors.Is(err, huffpal.ErrInvalidInput))
	// Output:
	// huffpal: invalid input: empty frequency table
	// true
}
