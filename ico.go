package main

import (
	"encoding/binary"
	"fmt"
	"image"
	"os"
)

// ICO container layout sizes. All multi-byte fields are little-endian.
const (
	icoHeaderSize = 6  // ICONDIR
	icoEntrySize  = 16 // ICONDIRENTRY
	dibHeaderSize = 40 // BITMAPINFOHEADER
	bitsPerPixel  = 32
)

// encodeICO serializes img as a single-image ICO with an uncompressed
// 32-bit BGRA DIB payload. No AND mask follows the pixel data; the alpha
// channel carries transparency.
func encodeICO(img image.Image) []byte {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	pixelSize := w * h * 4
	dataSize := dibHeaderSize + pixelSize
	dataOffset := icoHeaderSize + icoEntrySize

	buf := make([]byte, dataOffset+dataSize)

	// ICONDIR
	binary.LittleEndian.PutUint16(buf[0:], 0) // reserved
	binary.LittleEndian.PutUint16(buf[2:], 1) // type: ICO
	binary.LittleEndian.PutUint16(buf[4:], 1) // count: 1 image

	// ICONDIRENTRY. A zero width/height byte means 256.
	bw, bh := byte(w), byte(h)
	if w >= 256 {
		bw = 0
	}
	if h >= 256 {
		bh = 0
	}
	off := icoHeaderSize
	buf[off+0] = bw
	buf[off+1] = bh
	buf[off+2] = 0                                                  // color count (0 for truecolor)
	buf[off+3] = 0                                                  // reserved
	binary.LittleEndian.PutUint16(buf[off+4:], 1)                   // planes
	binary.LittleEndian.PutUint16(buf[off+6:], bitsPerPixel)        // bits per pixel
	binary.LittleEndian.PutUint32(buf[off+8:], uint32(dataSize))    // data size
	binary.LittleEndian.PutUint32(buf[off+12:], uint32(dataOffset)) // data offset

	// BITMAPINFOHEADER. The stored height is doubled: the format reserves
	// room for an AND mask plane above the color plane even when no mask
	// bits follow.
	off = dataOffset
	binary.LittleEndian.PutUint32(buf[off+0:], dibHeaderSize)
	binary.LittleEndian.PutUint32(buf[off+4:], uint32(w))
	binary.LittleEndian.PutUint32(buf[off+8:], uint32(h*2))
	binary.LittleEndian.PutUint16(buf[off+12:], 1) // planes
	binary.LittleEndian.PutUint16(buf[off+14:], bitsPerPixel)
	binary.LittleEndian.PutUint32(buf[off+16:], 0) // compression: BI_RGB
	binary.LittleEndian.PutUint32(buf[off+20:], uint32(pixelSize))
	binary.LittleEndian.PutUint32(buf[off+24:], 0) // x pixels per meter
	binary.LittleEndian.PutUint32(buf[off+28:], 0) // y pixels per meter
	binary.LittleEndian.PutUint32(buf[off+32:], 0) // colors used
	binary.LittleEndian.PutUint32(buf[off+36:], 0) // important colors

	// Pixel data: 4 bytes per pixel in BGRA order, DIB rows stored bottom-up.
	off = dataOffset + dibHeaderSize
	for y := bounds.Max.Y - 1; y >= bounds.Min.Y; y-- {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			buf[off+0] = byte(b >> 8)
			buf[off+1] = byte(g >> 8)
			buf[off+2] = byte(r >> 8)
			buf[off+3] = byte(a >> 8)
			off += 4
		}
	}

	return buf
}

// buildIconBytes renders the fixed icon and encodes it as a complete ICO
// file image. Pure and deterministic.
func buildIconBytes() []byte {
	return encodeICO(renderIcon())
}

// writeIconFile writes data to path, creating or truncating the file.
// The parent directory must already exist. An interrupted write can leave
// a truncated file behind; there is no cleanup or retry.
func writeIconFile(data []byte, path string) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
