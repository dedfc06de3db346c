// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

// blockSize is the number of coefficients in an 8x8 DCT block.
const blockSize = 64

// unzig maps from the zig-zag ordering DQT/DHT payloads and entropy-coded
// coefficients use to natural row-major order. It is a permutation of
// [0..63]: unzig[i] is the natural-order index of the i'th zig-zag position.
var unzig = [blockSize]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// maxTables is the number of quantization and Huffman table slots a frame
// may populate (table IDs 0..3).
const maxTables = 4

// block holds one 8x8 unit of coefficients for a single channel, in natural
// (not zig-zag) order once decoded.
type block [blockSize]int32

// quantTable is an 8x8 table of dequantization divisors in natural order,
// populated by a DQT segment.
type quantTable struct {
	table     [blockSize]uint16
	populated bool
}

// huffTable is a canonical Huffman table as specified by a DHT segment: 17
// cumulative offsets into a flat, length-sorted symbol list, plus the
// derived codes parallel to that list.
type huffTable struct {
	// offsets[i] is the index of the first symbol with code length i+1 bits
	// (offsets[0] is always 0; offsets[16] is the total symbol count).
	offsets   [17]int
	symbols   [162]byte
	codes     [162]uint16
	populated bool
}

// generateCodes derives canonical Huffman codes from a table's symbol
// counts, per spec.md §4.2: codes of the same length are consecutive
// integers, assigned in the symbol table's storage order, and the code
// space doubles (shifts left) between length classes.
func (h *huffTable) generateCodes() {
	code := uint16(0)
	for i := 0; i < 16; i++ {
		for j := h.offsets[i]; j < h.offsets[i+1]; j++ {
			h.codes[j] = code
			code++
		}
		code <<= 1
	}
}
