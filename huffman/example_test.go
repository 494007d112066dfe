// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman_test

import (
	"fmt"
	"log"
	"os"

	"github.com/unixdj/huffpal/huffman"
	"github.com/unixdj/huffpal/palette"
)

func ExampleBuild() {
	f := palette.NewTable()
	f.Add(palette.Key{R: 0xff}, 5)
	f.Add(palette.Key{G: 0xff}, 2)
	f.Add(palette.Key{B: 0xff}, 1)
	f.Add(palette.Key{R: 0xff, G: 0xff, B: 0xff}, 1)

	t, err := huffman.Build(f)
	if err != nil {
		log.Fatalln(err)
	}
	if err := t.Format(os.Stdout); err != nil {
		log.Fatalln(err)
	}
	codes := t.Codes()
	for _, k := range codes.Keys() {
		fmt.Println(k, codes[k])
	}
	// Output:
	// * 9
	//   0 4
	//     00 #00FF00 2
	//     01 2
	//       010 #0000FF 1
	//       011 #FFFFFF 1
	//   1 #FF0000 5
	// #0000FF 010
	// #00FF00 00
	// #FF0000 1
	// #FFFFFF 011
}
