// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

// componentGrid is the flat block storage for one color component: one
// block per (blockY, blockX), indexed row*header.BlockWidthReal+col.
// Every component's grid is sized BlockWidthReal x BlockHeightReal even
// though chroma components only populate the one slot per MCU their (1,1)
// sampling factor covers; the remaining slots are never read, mirroring the
// teacher's shared MCU array layout (spec.md §3, §4.1-4.2).
type componentGrid []block

// decodeSymbol performs the canonical Huffman lookup of spec.md §4.2: bits
// are read one at a time, and after each bit the accumulated code is
// compared against every code of that length; a match yields the paired
// symbol.
func decodeSymbol(br *bitReader, ht *huffTable) (byte, bool) {
	code := 0
	for length := 0; length < 16; length++ {
		bit := br.readBit()
		if bit < 0 {
			return 0, false
		}
		code = (code << 1) | bit
		for j := ht.offsets[length]; j < ht.offsets[length+1]; j++ {
			if int(ht.codes[j]) == code {
				return ht.symbols[j], true
			}
		}
	}
	return 0, false
}

// receiveExtend reads size bits and sign-extends them per the DC/AC
// magnitude convention of spec.md §4.2: values in the lower half of the
// size-bit range represent negatives.
func receiveExtend(br *bitReader, size byte) (int32, bool) {
	if size == 0 {
		return 0, true
	}
	v := br.readBits(uint(size))
	if v < 0 {
		return 0, false
	}
	if v < 1<<(size-1) {
		return int32(v) - (1<<size - 1), true
	}
	return int32(v), true
}

// decodeBlock decodes one 8x8 block's 64 coefficients (DC then AC) for a
// single component, updating that component's DC predictor in place.
func decodeBlock(br *bitReader, dcTable, acTable *huffTable, prevDC *int32) (block, error) {
	var b block

	sizeSym, ok := decodeSymbol(br, dcTable)
	if !ok {
		return b, errInvalidEntropy("DC Huffman code has no match in 16 bits")
	}
	if sizeSym > 11 {
		return b, errInvalidEntropy("DC coefficient length %d exceeds 11", sizeSym)
	}
	diff, ok := receiveExtend(br, sizeSym)
	if !ok {
		return b, errInvalidEntropy("bit reader underflow decoding DC value")
	}
	*prevDC += diff
	b[0] = *prevDC

	k := 1
	for k < blockSize {
		sym, ok := decodeSymbol(br, acTable)
		if !ok {
			return b, errInvalidEntropy("AC Huffman code has no match in 16 bits")
		}
		if sym == 0x00 { // EOB: remaining coefficients are zero.
			break
		}

		numZeroes := int(sym >> 4)
		size := sym & 0x0F
		if sym == 0xF0 { // ZRL: run of 16 zeroes.
			numZeroes = 16
		}
		if k+numZeroes >= blockSize {
			return b, errInvalidEntropy("zero run-length overflows block (k=%d, run=%d)", k, numZeroes)
		}
		k += numZeroes

		if size > 10 {
			return b, errInvalidEntropy("AC coefficient length %d exceeds 10", size)
		}
		if size != 0 {
			coeff, ok := receiveExtend(br, size)
			if !ok {
				return b, errInvalidEntropy("bit reader underflow decoding AC value")
			}
			b[unzig[k]] = coeff
			k++
		}
	}
	return b, nil
}

// decodeEntropyData walks every MCU in frame order, decoding one block per
// (component, sub-block) slot per spec.md §4.2, and resynchronizing DC
// predictors and byte alignment at restart-interval boundaries.
func decodeEntropyData(h *FrameHeader) ([3]componentGrid, error) {
	var grids [3]componentGrid
	for i := 0; i < h.NumComponents; i++ {
		grids[i] = make(componentGrid, h.BlockWidthReal*h.BlockHeightReal)
	}

	br := newBitReader(h.entropyData)
	var prevDC [3]int32

	restartInterval := h.RestartInterval * h.MaxH * h.MaxV

	for y := 0; y < h.BlockHeight; y += h.MaxV {
		for x := 0; x < h.BlockWidth; x += h.MaxH {
			if restartInterval != 0 && (y*h.BlockWidthReal+x)%restartInterval == 0 {
				prevDC = [3]int32{}
				br.align()
			}

			for i := 0; i < h.NumComponents; i++ {
				comp := h.Components[i]
				dcTable := &h.HuffDC[comp.HuffDCID]
				acTable := &h.HuffAC[comp.HuffACID]
				for v := 0; v < comp.V; v++ {
					for hh := 0; hh < comp.H; hh++ {
						b, err := decodeBlock(br, dcTable, acTable, &prevDC[i])
						if err != nil {
							return grids, err
						}
						grids[i][(y+v)*h.BlockWidthReal+(x+hh)] = b
					}
				}
			}
		}
	}
	return grids, nil
}
