// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette_test

import (
	"fmt"
	"image/color"
	"log"

	"github.com/unixdj/huffpal/palette"
)

func ExampleAnalyze() {
	img := palette.NewRGBA(3, 2)
	for i := range img.Pix {
		img.Pix[i] = color.NRGBA{0xff, 0x80, 0, 0xff}
	}
	// Differs from the others only in alpha.
	img.Pix[0*img.Width+1] = color.NRGBA{0xff, 0x80, 0, 0x40}
	img.Pix[1*img.Width+2] = color.NRGBA{0x20, 0x40, 0x60, 0xff}

	f, err := palette.Analyze(img)
	if err != nil {
		log.Fatalln(err)
	}
	for _, k := range f.Keys() {
		fmt.Println(k, f.Count(k))
	}
	fmt.Println("total", f.Total())
	// Output:
	// #204060 1
	// #FF8000 5
	// total 6
}

func ExampleQuantize() {
	fmt.Println(palette.Quantize(1, 0.999999, 0.5, 0))
	// Output:
	// #FFFE7F
}
