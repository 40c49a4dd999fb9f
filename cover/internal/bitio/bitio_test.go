// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

package bitio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterPacksMSBFirst(t *testing.T) {
	w := NewWriter(4)
	w.WriteCode(0b101<<61, 0, 3)
	require.Equal(t, 3, w.BitLen())
	require.Equal(t, []byte{0b1010_0000}, w.Bytes())

	w.WriteCode(0xFF<<56, 0, 8)
	require.Equal(t, 11, w.BitLen())
	require.Equal(t, []byte{0b1011_1111, 0b1110_0000}, w.Bytes())
}

func TestWriterLongCode(t *testing.T) {
	w := NewWriter(16)
	w.WriteCode(^uint64(0), 0b111111<<58, 70)
	require.Equal(t, 70, w.BitLen())
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0b1111_1100}
	require.Equal(t, want, w.Bytes())
}

func TestWriterCrossesWordBoundary(t *testing.T) {
	w := NewWriter(16)
	w.WriteCode(0b1<<63, 0, 1)
	w.WriteCode(^uint64(0), 0, 64)
	require.Equal(t, 65, w.BitLen())
	got := w.Bytes()
	require.Len(t, got, 9)
	assert.Equal(t, byte(0xFF), got[0])
	for _, b := range got[1:8] {
		assert.Equal(t, byte(0xFF), b)
	}
	assert.Equal(t, byte(0b1000_0000), got[8])
}

func TestWriterReset(t *testing.T) {
	w := NewWriter(4)
	w.WriteCode(0xAB<<56, 0, 8)
	w.Reset()
	require.Equal(t, 0, w.BitLen())
	require.Empty(t, w.Bytes())
	w.WriteCode(0b11<<62, 0, 2)
	require.Equal(t, []byte{0b1100_0000}, w.Bytes())
}

func TestReaderWalksBits(t *testing.T) {
	r := NewReader([]byte{0xA5})
	want := []byte{1, 0, 1, 0, 0, 1, 0, 1}
	for i, wantBit := range want {
		bit, ok := r.ReadBit()
		require.True(t, ok, "bit %d", i)
		assert.Equal(t, wantBit, bit, "bit %d", i)
	}
	require.Equal(t, 8, r.Offset())
	_, ok := r.ReadBit()
	require.False(t, ok)
}

func TestReaderEmpty(t *testing.T) {
	r := NewReader(nil)
	_, ok := r.ReadBit()
	require.False(t, ok)
	require.Equal(t, 0, r.Offset())
}

func TestRoundTrip(t *testing.T) {
	codes := []struct {
		hi, lo uint64
		n      int
	}{
		{0b1<<63, 0, 1},
		{0b0110<<60, 0, 4},
		{^uint64(0), ^uint64(0), 128},
		{0, 0, 7},
		{0b1010101<<57, 0, 7},
	}
	w := NewWriter(64)
	total := 0
	for _, c := range codes {
		w.WriteCode(c.hi, c.lo, c.n)
		total += c.n
	}
	require.Equal(t, total, w.BitLen())

	r := NewReader(w.Bytes())
	for ci, c := range codes {
		for i := 0; i < c.n; i++ {
			var want byte
			if i < 64 {
				want = byte(c.hi >> uint(63-i) & 1)
			} else {
				want = byte(c.lo >> uint(127-i) & 1)
			}
			bit, ok := r.ReadBit()
			require.True(t, ok, "code %d bit %d", ci, i)
			require.Equal(t, want, bit, "code %d bit %d", ci, i)
		}
	}
}
