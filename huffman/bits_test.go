// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/unixdj/huffpal/palette"
)

func TestWriter(t *testing.T) {
	for _, tc := range []struct {
		codes []Code
		want  []byte
	}{
		{nil, nil},
		{[]Code{"1"}, []byte{0x80}},
		{[]Code{"1", "01", "1111111111"}, []byte{0xbf, 0xf8}},
		{[]Code{"00000000", "11111111"}, []byte{0x00, 0xff}},
		{[]Code{Code(strings.Repeat("1", 70))},
			[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfc}},
		{[]Code{Code(strings.Repeat("01", 32))},
			bytes.Repeat([]byte{0x55}, 8)},
	} {
		var b bytes.Buffer
		w := NewWriter(&b)
		var n uint64
		for _, c := range tc.codes {
			require.NoError(t, w.WriteCode(c))
			n += uint64(len(c))
		}
		require.NoError(t, w.Flush())
		require.Equal(t, n, w.Bits())
		require.Equal(t, tc.want, b.Bytes(), "codes %q", tc.codes)
	}
}

func TestWriterBadCode(t *testing.T) {
	w := NewWriter(io.Discard)
	require.ErrorIs(t, w.WriteCode(""), ErrBadCode)
	require.ErrorIs(t, w.WriteCode("012"), ErrBadCode)
	require.Equal(t, uint64(0), w.Bits())
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriterError(t *testing.T) {
	w := NewWriter(failWriter{})
	require.NoError(t, w.WriteCode("101"))
	require.ErrorIs(t, w.Flush(), errWrite)
}

func TestReader(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xa5}))
	var bits []byte
	for {
		b, err := r.ReadBit()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		bits = append(bits, b)
	}
	require.Equal(t, []byte{1, 0, 1, 0, 0, 1, 0, 1}, bits)
}

func TestNext(t *testing.T) {
	tr, err := Build(table(map[palette.Key]uint64{red: 1, green: 1, blue: 1}))
	require.NoError(t, err)
	// red "0", blue "10", green "11": 0 11 10 0 + padding
	r := NewReader(bytes.NewReader([]byte{0x70}))
	for _, want := range []palette.Key{red, green, blue, red} {
		k, err := tr.Next(r)
		require.NoError(t, err)
		require.Equal(t, want, k)
	}
	// Padding zeroes decode as red; the stream length is known
	// to the caller.
	_, err = tr.Next(r)
	require.NoError(t, err)

	r = NewReader(bytes.NewReader(nil))
	_, err = tr.Next(r)
	require.Equal(t, io.EOF, err)

	// "1" at the end of the stream is an incomplete code.
	r = NewReader(bytes.NewReader([]byte{0x01}))
	for i := 0; i < 7; i++ {
		k, err := tr.Next(r)
		require.NoError(t, err)
		require.Equal(t, red, k)
	}
	_, err = tr.Next(r)
	require.Equal(t, io.ErrUnexpectedEOF, err)

	single, err := Build(table(map[palette.Key]uint64{gray: 2}))
	require.NoError(t, err)
	r = NewReader(bytes.NewReader([]byte{0x40}))
	k, err := single.Next(r)
	require.NoError(t, err)
	require.Equal(t, gray, k)
	_, err = single.Next(r)
	require.ErrorIs(t, err, ErrBadCode)
}

func TestWriteNext(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := genTable(t, 40)
		tr, err := Build(f)
		if err != nil {
			t.Fatal(err)
		}
		keys := f.Keys()
		c := tr.Codes()
		idx := rapid.SliceOf(rapid.IntRange(0, len(keys)-1)).Draw(t, "pixels")
		var b bytes.Buffer
		w := NewWriter(&b)
		var n uint64
		for _, i := range idx {
			if err := w.WriteCode(c[keys[i]]); err != nil {
				t.Fatal(err)
			}
			n += uint64(c[keys[i]].Len())
		}
		if err := w.Flush(); err != nil {
			t.Fatal(err)
		}
		if w.Bits() != n || uint64(b.Len()) != (n+7)/8 {
			t.Fatalf("wrote %d bits in %d bytes, want %d", w.Bits(), b.Len(), n)
		}
		r := NewReader(&b)
		for j, i := range idx {
			k, err := tr.Next(r)
			if err != nil {
				t.Fatalf("code %d: %v", j, err)
			}
			if k != keys[i] {
				t.Fatalf("code %d: got %v, want %v", j, k, keys[i])
			}
		}
	})
}
