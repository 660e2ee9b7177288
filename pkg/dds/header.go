package dds

import (
	"fmt"
	"strings"
)

// Validate checks the structural field invariants every DDS header must
// satisfy regardless of how the file is used. Cube-map constraints such as
// squareness are usage checks and belong to the assembler.
func (h *Header) Validate() error {
	if h.Size != HeaderSize {
		return fmt.Errorf("%w: header size %d (want %d)", ErrInvalidHeader, h.Size, HeaderSize)
	}
	if h.PixelFormat.Size != PixelFormatSize {
		return fmt.Errorf("%w: pixel format size %d (want %d)", ErrInvalidHeader, h.PixelFormat.Size, PixelFormatSize)
	}
	if h.Width == 0 {
		return fmt.Errorf("%w: zero width", ErrInvalidHeader)
	}
	if h.Height == 0 {
		return fmt.Errorf("%w: zero height", ErrInvalidHeader)
	}
	return nil
}

// CompleteCubemap reports whether the header is flagged as holding all six
// cube faces.
func (h *Header) CompleteCubemap() bool {
	return h.Caps2&Caps2CubemapComplete != 0
}

// SetCompleteCubemap flags the header as a complete cube map. Idempotent.
func (h *Header) SetCompleteCubemap() {
	h.Caps2 |= Caps2CubemapComplete
}

// FourCCString returns the pixel format tag as printable ASCII, with
// trailing NULs stripped (uncompressed formats leave the tag zeroed).
func (p *PixelFormat) FourCCString() string {
	return strings.TrimRight(string(p.FourCC[:]), "\x00")
}

// ExpectedMipCount computes how many mip levels a complete chain would
// have for the given dimensions: the larger dimension halved down to 1,
// counting the 1x1 level. A header declaring fewer levels is not an error;
// texture tools ship partial chains intentionally.
func ExpectedMipCount(width, height uint32) uint32 {
	n := uint32(1)
	for d := max(width, height); d > 1; d /= 2 {
		n++
	}
	return n
}
