// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"bufio"
	"encoding/binary"
	"io"
)

// A Writer packs codes into bytes, most significant bit first.
type Writer struct {
	w    *bufio.Writer
	tmp  [8]byte
	bit  uint64 // pending bits, right aligned
	nbit byte   // number of pending bits
	n    uint64 // bits written
	err  error
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) writeBit(b uint64) {
	w.bit = w.bit<<1 | b
	if w.nbit++; w.nbit == 64 {
		binary.BigEndian.PutUint64(w.tmp[:], w.bit)
		if _, err := w.w.Write(w.tmp[:]); err != nil && w.err == nil {
			w.err = err
		}
		w.bit, w.nbit = 0, 0
	}
}

// WriteCode appends c to the stream.  WriteCode returns ErrBadCode if c
// is empty or holds characters other than '0' and '1'.
func (w *Writer) WriteCode(c Code) error {
	if len(c) == 0 {
		return ErrBadCode
	}
	for i := 0; i < len(c); i++ {
		if c[i] != '0' && c[i] != '1' {
			return ErrBadCode
		}
	}
	for i := 0; i < len(c); i++ {
		w.writeBit(uint64(c[i] - '0'))
	}
	w.n += uint64(len(c))
	return w.err
}

// Bits returns the number of bits written, excluding padding.
func (w *Writer) Bits() uint64 { return w.n }

// Flush pads the pending bits with zeroes to a byte boundary and
// writes them to the underlying writer.
func (w *Writer) Flush() error {
	if n := w.nbit; n > 0 {
		pad := (8 - n&7) & 7
		nb := int(n+pad) / 8
		binary.BigEndian.PutUint64(w.tmp[:], w.bit<<pad)
		if _, err := w.w.Write(w.tmp[8-nb:]); err != nil && w.err == nil {
			w.err = err
		}
		w.bit, w.nbit = 0, 0
	}
	if err := w.w.Flush(); err != nil && w.err == nil {
		w.err = err
	}
	return w.err
}

// A Reader reads bits written by a Writer.
type Reader struct {
	r    io.ByteReader
	b    byte
	nbit byte
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br}
}

// ReadBit returns the next bit, 0 or 1.
func (r *Reader) ReadBit() (byte, error) {
	if r.nbit == 0 {
		b, err := r.r.ReadByte()
		if err != nil {
			return 0, err
		}
		r.b, r.nbit = b, 8
	}
	r.nbit--
	return r.b >> r.nbit & 1, nil
}
