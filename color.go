// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

// clampByte performs the +128 level shift and [0,255] saturation common to
// every output channel, per spec.md §4.5.
func clampByte(v int32) byte {
	v += 128
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// colorConvert upsamples chroma (nearest-neighbor, driven by the luma
// sampling factors) and converts YCbCr to RGB, or replicates a single Y
// channel into R=G=B for grayscale frames, producing the final packed RGB
// raster described in spec.md §4.5 and §6.
func colorConvert(h *FrameHeader, grids [3]componentGrid) *Image {
	img := newImage(h.Width, h.Height)

	if h.NumComponents == 1 {
		convertGray(h, grids[0], img)
		return img
	}
	convertYCbCr(h, grids, img)
	return img
}

func convertGray(h *FrameHeader, y componentGrid, img *Image) {
	for by := 0; by < h.BlockHeight; by++ {
		for bx := 0; bx < h.BlockWidth; bx++ {
			blk := &y[by*h.BlockWidthReal+bx]
			for py := 0; py < 8; py++ {
				row := by*8 + py
				if row >= h.Height {
					continue
				}
				for px := 0; px < 8; px++ {
					col := bx*8 + px
					if col >= h.Width {
						continue
					}
					v := clampByte(blk[py*8+px])
					img.setRGB(col, row, v, v, v)
				}
			}
		}
	}
}

func convertYCbCr(h *FrameHeader, grids [3]componentGrid, img *Image) {
	for y := 0; y < h.BlockHeight; y += h.MaxV {
		for x := 0; x < h.BlockWidth; x += h.MaxH {
			cbcrIdx := y*h.BlockWidthReal + x
			cb := &grids[1][cbcrIdx]
			cr := &grids[2][cbcrIdx]

			for v := 0; v < h.MaxV; v++ {
				for hh := 0; hh < h.MaxH; hh++ {
					lumaIdx := (y+v)*h.BlockWidthReal + (x + hh)
					yBlk := &grids[0][lumaIdx]

					for py := 0; py < 8; py++ {
						row := (y+v)*8 + py
						if row >= h.Height {
							continue
						}
						cbcrRow := py/h.MaxV + 4*v
						for px := 0; px < 8; px++ {
							col := (x+hh)*8 + px
							if col >= h.Width {
								continue
							}
							cbcrCol := px/h.MaxH + 4*hh
							cbcrPixel := cbcrRow*8 + cbcrCol

							yy := float32(yBlk[py*8+px])
							cbv := float32(cb[cbcrPixel])
							crv := float32(cr[cbcrPixel])

							r := int32(yy + 1.402*crv)
							g := int32(yy - 0.344*cbv - 0.714*crv)
							b := int32(yy + 1.772*cbv)

							img.setRGB(col, row, clampByte(r), clampByte(g), clampByte(b))
						}
					}
				}
			}
		}
	}
}
