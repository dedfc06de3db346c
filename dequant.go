// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

// dequantizeBlock multiplies a decoded block position-by-position by its
// component's quantization table, in natural (un-zigzagged) order, per
// spec.md §4.3.
func dequantizeBlock(b *block, q *quantTable) {
	for i := 0; i < blockSize; i++ {
		b[i] *= int32(q.table[i])
	}
}

// dequantize applies dequantizeBlock to every populated block of every
// component.
func dequantize(h *FrameHeader, grids [3]componentGrid) {
	for i := 0; i < h.NumComponents; i++ {
		q := &h.QuantTables[h.Components[i].QuantTableID]
		for y := 0; y < h.BlockHeight; y += h.MaxV {
			for x := 0; x < h.BlockWidth; x += h.MaxH {
				comp := h.Components[i]
				for v := 0; v < comp.V; v++ {
					for hh := 0; hh < comp.H; hh++ {
						idx := (y+v)*h.BlockWidthReal + (x + hh)
						dequantizeBlock(&grids[i][idx], q)
					}
				}
			}
		}
	}
}
