// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// solidBlack8x8 is a minimal 8x8 grayscale baseline JPEG: one DQT of all
// ones, a DC table with a single 1-bit code for symbol 0x00 (DC size 0), an AC
// table with a single code for EOB, and one block's worth of entropy data
// encoding DC=0 followed immediately by EOB.
var solidBlack8x8 = buildSolidBlack8x8()

func buildSolidBlack8x8() []byte {
	b := []byte{0xFF, 0xD8} // SOI
	b = append(b, trivialDQT()...)

	b = append(b, 0xFF, 0xC0, 0x00, 0x0B, // SOF0
		0x08,       // precision
		0x00, 0x08, // height
		0x00, 0x08, // width
		0x01,             // numComponents
		0x01, 0x11, 0x00, // component 1: id=1, h=v=1, quant table 0
	)

	b = append(b, trivialDHT()...)

	b = append(b, 0xFF, 0xDA, 0x00, 0x08, // SOS
		0x01,       // numComponentsInScan
		0x01, 0x00, // component 1: DC table 0, AC table 0
		0x00, 0x3F, 0x00, // Ss=0, Se=63, Ah/Al=0
	)

	// DC code "0" (1 bit) then AC EOB code "0" (1 bit), padded with 1s.
	b = append(b, 0x3F, 0xFF, 0xD9) // entropy byte, EOI
	return b
}

func TestDecodeSolidBlack8x8(t *testing.T) {
	img, err := Decode(solidBlack8x8)
	require.NoError(t, err)
	require.Equal(t, 8, img.Width)
	require.Equal(t, 8, img.Height)
	require.Len(t, img.RGB, 8*8*3)
	for _, v := range img.RGB {
		require.Equal(t, byte(128), v)
	}
}

// solidGray1x1 is a minimal 1x1, 3-component baseline JPEG: every block's
// DC is 0 and every block is EOB immediately.
var solidGray1x1 = buildSolidGray1x1()

func buildSolidGray1x1() []byte {
	b := []byte{0xFF, 0xD8} // SOI

	dqt := []byte{0xFF, 0xDB, 0x00, 0x43, 0x00}
	for i := 0; i < blockSize; i++ {
		dqt = append(dqt, 0x01)
	}
	b = append(b, dqt...)

	b = append(b, 0xFF, 0xC0, 0x00, 0x11, // SOF0, length 2+6+3*3=17
		0x08,       // precision
		0x00, 0x01, // height
		0x00, 0x01, // width
		0x03,             // numComponents
		0x01, 0x11, 0x00, // Y: id=1, h=v=1, quant 0
		0x02, 0x11, 0x00, // Cb: id=2, h=v=1, quant 0
		0x03, 0x11, 0x00, // Cr: id=3, h=v=1, quant 0
	)

	dhtDC := []byte{0xFF, 0xC4, 0x00, 0x14, 0x00}
	dhtDC = append(dhtDC, 0x01)
	dhtDC = append(dhtDC, make([]byte, 15)...)
	dhtDC = append(dhtDC, 0x00)
	b = append(b, dhtDC...)

	dhtAC := []byte{0xFF, 0xC4, 0x00, 0x14, 0x10}
	dhtAC = append(dhtAC, 0x01)
	dhtAC = append(dhtAC, make([]byte, 15)...)
	dhtAC = append(dhtAC, 0x00)
	b = append(b, dhtAC...)

	b = append(b, 0xFF, 0xDA, 0x00, 0x0C, // SOS, length 6+2*3=12
		0x03,
		0x01, 0x00,
		0x02, 0x00,
		0x03, 0x00,
		0x00, 0x3F, 0x00,
	)

	// Three blocks, each DC="0" then AC EOB="0": 6 bits total, padded with
	// ones to a full byte.
	b = append(b, 0x03, 0xFF, 0xD9)
	return b
}

func TestDecodeSolidGray1x1(t *testing.T) {
	img, err := Decode(solidGray1x1)
	require.NoError(t, err)
	require.Equal(t, 1, img.Width)
	require.Equal(t, 1, img.Height)
	require.Equal(t, []byte{128, 128, 128}, img.RGB)
}

// trivialDQT, trivialDHT are the same minimal all-ones quant table and
// single-code (DC size 0 / AC EOB) Huffman tables used throughout this
// file, factored out for the subsampling and restart-interval fixtures.
func trivialDQT() []byte {
	dqt := []byte{0xFF, 0xDB, 0x00, 0x43, 0x00}
	for i := 0; i < blockSize; i++ {
		dqt = append(dqt, 0x01)
	}
	return dqt
}

func trivialDHT() []byte {
	dhtDC := []byte{0xFF, 0xC4, 0x00, 0x14, 0x00}
	dhtDC = append(dhtDC, 0x01)
	dhtDC = append(dhtDC, make([]byte, 15)...)
	dhtDC = append(dhtDC, 0x00)

	dhtAC := []byte{0xFF, 0xC4, 0x00, 0x14, 0x10}
	dhtAC = append(dhtAC, 0x01)
	dhtAC = append(dhtAC, make([]byte, 15)...)
	dhtAC = append(dhtAC, 0x00)

	return append(dhtDC, dhtAC...)
}

// subsampled9x9 is a 9x9, 3-component baseline JPEG with luma sampling
// (2,2) and chroma sampling (1,1): block grid is 2x2 luma, 1x1 chroma,
// per spec.md's odd-dimension-with-subsampling scenario. Every block
// decodes to DC=0 with an immediate EOB.
var subsampled9x9 = buildSubsampled9x9()

func buildSubsampled9x9() []byte {
	b := []byte{0xFF, 0xD8} // SOI
	b = append(b, trivialDQT()...)

	b = append(b, 0xFF, 0xC0, 0x00, 0x11, // SOF0, length 2+6+3*3=17
		0x08,       // precision
		0x00, 0x09, // height
		0x00, 0x09, // width
		0x03,             // numComponents
		0x01, 0x22, 0x00, // Y: id=1, h=v=2, quant 0
		0x02, 0x11, 0x00, // Cb: id=2, h=v=1, quant 0
		0x03, 0x11, 0x00, // Cr: id=3, h=v=1, quant 0
	)

	b = append(b, trivialDHT()...)

	b = append(b, 0xFF, 0xDA, 0x00, 0x0C, // SOS, length 6+2*3=12
		0x03,
		0x01, 0x00,
		0x02, 0x00,
		0x03, 0x00,
		0x00, 0x3F, 0x00,
	)

	// One MCU: 4 luma blocks + 1 Cb block + 1 Cr block, each DC="0" then
	// AC EOB="0" (2 bits): 12 bits total, padded with 1s to 2 bytes.
	b = append(b, 0x00, 0x0F, 0xFF, 0xD9)
	return b
}

func TestDecodeOddDimensionChromaSubsampling(t *testing.T) {
	img, err := Decode(subsampled9x9)
	require.NoError(t, err)
	require.Equal(t, 9, img.Width)
	require.Equal(t, 9, img.Height)
	require.Len(t, img.RGB, 9*9*3)
	for _, v := range img.RGB {
		require.Equal(t, byte(128), v)
	}
}

// buildRestart16x16 builds a 16x16 grayscale baseline JPEG (2x2 blocks),
// optionally with a DRI segment declaring restartInterval and the
// corresponding entropy data byte-aligned between blocks the way real
// RSTn markers would force once unstuffed.
func buildRestart16x16(withRestart bool) []byte {
	b := []byte{0xFF, 0xD8} // SOI
	b = append(b, trivialDQT()...)

	b = append(b, 0xFF, 0xC0, 0x00, 0x0B, // SOF0
		0x08,
		0x00, 0x10, // height 16
		0x00, 0x10, // width 16
		0x01,
		0x01, 0x11, 0x00,
	)

	if withRestart {
		b = append(b, 0xFF, 0xDD, 0x00, 0x04, 0x00, 0x01) // DRI, interval=1
	}

	b = append(b, trivialDHT()...)

	b = append(b, 0xFF, 0xDA, 0x00, 0x08,
		0x01,
		0x01, 0x00,
		0x00, 0x3F, 0x00,
	)

	// 4 blocks (2x2), each DC="0" then AC EOB="0".
	if withRestart {
		// restartInterval=1 forces a byte-align before every block, so
		// each block's 2 content bits occupy their own padded byte.
		b = append(b, 0x3F, 0x3F, 0x3F, 0x3F)
	} else {
		// No restarts: all 4 blocks' bits are packed contiguously (8
		// bits total, no padding needed).
		b = append(b, 0x00)
	}
	b = append(b, 0xFF, 0xD9)
	return b
}

func TestDecodeRestartIntervalMatchesNoRestart(t *testing.T) {
	withRestart, err := Decode(buildRestart16x16(true))
	require.NoError(t, err)
	withoutRestart, err := Decode(buildRestart16x16(false))
	require.NoError(t, err)

	require.Equal(t, withoutRestart.Width, withRestart.Width)
	require.Equal(t, withoutRestart.Height, withRestart.Height)
	require.Equal(t, withoutRestart.RGB, withRestart.RGB)

	for _, v := range withRestart.RGB {
		require.Equal(t, byte(128), v)
	}
}

func TestDecodeMalformedDCSizeTwelve(t *testing.T) {
	b := append([]byte{}, solidBlack8x8...)

	// The DC symbol byte is the last byte of the first DHT segment (DC
	// table): marker(2) + length(2) + info(1) + counts(16) + symbol(1).
	// Replacing it with 12 (0x0C) makes the DC size exceed the 11-bit
	// maximum once decoded.
	dcSymbolOffset := -1
	for i := 0; i+4 < len(b); i++ {
		if b[i] == 0xFF && b[i+1] == 0xC4 && b[i+4] == 0x00 {
			dcSymbolOffset = i + 5 + 16
			break
		}
	}
	require.NotEqual(t, -1, dcSymbolOffset)
	b[dcSymbolOffset] = 0x0C

	_, err := Decode(b)
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, KindInvalidEntropy, de.Kind)
}
