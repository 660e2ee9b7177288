package dds

import (
	"encoding/binary"
	"fmt"
)

// Header field offsets within the 124-byte record (after the magic tag).
// Everything is little-endian uint32; the layout is fixed by the format
// and decoded field by field rather than by overlaying a struct, so the
// result is independent of host endianness and padding.
const (
	offSize              = 0
	offFlags             = 4
	offHeight            = 8
	offWidth             = 12
	offPitchOrLinearSize = 16
	offDepth             = 20
	offMipMapCount       = 24
	offReserved1         = 28 // 11 uint32s
	offPixelFormat       = 72 // 32-byte PixelFormat sub-record
	offCaps              = 104
	offCaps2             = 108
	offCaps3             = 112
	offCaps4             = 116
	offReserved2         = 120
)

func decodeHeader(b []byte) (Header, bool) {
	if len(b) < HeaderSize {
		return Header{}, false
	}
	le := binary.LittleEndian

	var h Header
	h.Size = le.Uint32(b[offSize:])
	h.Flags = le.Uint32(b[offFlags:])
	h.Height = le.Uint32(b[offHeight:])
	h.Width = le.Uint32(b[offWidth:])
	h.PitchOrLinearSize = le.Uint32(b[offPitchOrLinearSize:])
	h.Depth = le.Uint32(b[offDepth:])
	h.MipMapCount = le.Uint32(b[offMipMapCount:])
	for i := range h.Reserved1 {
		h.Reserved1[i] = le.Uint32(b[offReserved1+i*4:])
	}

	pf := b[offPixelFormat:]
	h.PixelFormat.Size = le.Uint32(pf[0:])
	h.PixelFormat.Flags = le.Uint32(pf[4:])
	copy(h.PixelFormat.FourCC[:], pf[8:12])
	h.PixelFormat.RGBBitCount = le.Uint32(pf[12:])
	h.PixelFormat.RBitMask = le.Uint32(pf[16:])
	h.PixelFormat.GBitMask = le.Uint32(pf[20:])
	h.PixelFormat.BBitMask = le.Uint32(pf[24:])
	h.PixelFormat.ABitMask = le.Uint32(pf[28:])

	h.Caps = le.Uint32(b[offCaps:])
	h.Caps2 = le.Uint32(b[offCaps2:])
	h.Caps3 = le.Uint32(b[offCaps3:])
	h.Caps4 = le.Uint32(b[offCaps4:])
	h.Reserved2 = le.Uint32(b[offReserved2:])
	return h, true
}

func encodeHeader(dst []byte, h Header) bool {
	if len(dst) < HeaderSize {
		return false
	}
	le := binary.LittleEndian

	le.PutUint32(dst[offSize:], h.Size)
	le.PutUint32(dst[offFlags:], h.Flags)
	le.PutUint32(dst[offHeight:], h.Height)
	le.PutUint32(dst[offWidth:], h.Width)
	le.PutUint32(dst[offPitchOrLinearSize:], h.PitchOrLinearSize)
	le.PutUint32(dst[offDepth:], h.Depth)
	le.PutUint32(dst[offMipMapCount:], h.MipMapCount)
	for i, v := range h.Reserved1 {
		le.PutUint32(dst[offReserved1+i*4:], v)
	}

	pf := dst[offPixelFormat:]
	le.PutUint32(pf[0:], h.PixelFormat.Size)
	le.PutUint32(pf[4:], h.PixelFormat.Flags)
	copy(pf[8:12], h.PixelFormat.FourCC[:])
	le.PutUint32(pf[12:], h.PixelFormat.RGBBitCount)
	le.PutUint32(pf[16:], h.PixelFormat.RBitMask)
	le.PutUint32(pf[20:], h.PixelFormat.GBitMask)
	le.PutUint32(pf[24:], h.PixelFormat.BBitMask)
	le.PutUint32(pf[28:], h.PixelFormat.ABitMask)

	le.PutUint32(dst[offCaps:], h.Caps)
	le.PutUint32(dst[offCaps2:], h.Caps2)
	le.PutUint32(dst[offCaps3:], h.Caps3)
	le.PutUint32(dst[offCaps4:], h.Caps4)
	le.PutUint32(dst[offReserved2:], h.Reserved2)
	return true
}

// ParseHeader decodes the fixed header region at the start of a DDS file.
//
// It checks structure only: the buffer must hold the full 128-byte header
// region and start with the magic tag. Semantic field checks live in
// Header.Validate so callers can report per-field errors for headers that
// decode fine but carry bad values.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderRegionSize {
		return Header{}, fmt.Errorf("%w: %d bytes, header region needs %d", ErrNotDDS, len(data), HeaderRegionSize)
	}
	if string(data[:4]) != Magic {
		return Header{}, fmt.Errorf("%w: wrong magic tag", ErrNotDDS)
	}
	h, ok := decodeHeader(data[4:HeaderRegionSize])
	if !ok {
		return Header{}, fmt.Errorf("%w: truncated header", ErrNotDDS)
	}
	return h, nil
}
