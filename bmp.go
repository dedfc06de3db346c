// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

import (
	"encoding/binary"
	"io"
)

// bmpPaddingSize keeps the original reference tool's row-padding formula,
// (width % 4), instead of the usual (4 - (width*3)%4) % 4. The two give the
// same value for every width, because width*3 ≡ -width (mod 4), so each row
// is still padded to a multiple of 4 bytes and the output is a standard BMP.
func bmpPaddingSize(width int) int {
	return width % 4
}

// WriteBMP writes img as a 24-bit, bottom-up, B-G-R row-order BMP: a 14-byte
// file header followed by a 12-byte BITMAPCOREHEADER (the "v2" DIB header).
func WriteBMP(w io.Writer, img *Image) error {
	paddingSize := bmpPaddingSize(img.Width)
	size := 14 + 12 + img.Height*img.Width*3 + paddingSize*img.Height

	var header [26]byte
	header[0], header[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(header[2:6], uint32(size))
	binary.LittleEndian.PutUint32(header[6:10], 0)
	binary.LittleEndian.PutUint32(header[10:14], 0x1A)
	binary.LittleEndian.PutUint32(header[14:18], 12)
	binary.LittleEndian.PutUint16(header[18:20], uint16(img.Width))
	binary.LittleEndian.PutUint16(header[20:22], uint16(img.Height))
	binary.LittleEndian.PutUint16(header[22:24], 1)
	binary.LittleEndian.PutUint16(header[24:26], 24)

	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	pad := make([]byte, paddingSize)
	row := make([]byte, img.Width*3)
	for y := img.Height - 1; y >= 0; y-- {
		for x := 0; x < img.Width; x++ {
			i := (y*img.Width + x) * 3
			row[x*3+0] = img.RGB[i+2] // B
			row[x*3+1] = img.RGB[i+1] // G
			row[x*3+2] = img.RGB[i+0] // R
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
		if paddingSize > 0 {
			if _, err := w.Write(pad); err != nil {
				return err
			}
		}
	}
	return nil
}
