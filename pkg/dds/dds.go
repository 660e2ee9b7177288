// Package dds implements the pieces of the DDS (DirectDraw Surface)
// container format needed to assemble cube maps: fixed-layout header
// decode/encode, header validation, and the six-face assembly routine.
//
// Pixel payloads are treated as opaque bytes and copied through verbatim;
// the package never decodes, recompresses, or resamples image data.
package dds

// DDS on-disk constants. These must never change.
const (
	// Magic is the four-byte ASCII tag leading every DDS file.
	Magic = "DDS "

	// HeaderSize is the required value of the Header.Size field.
	HeaderSize = 124

	// PixelFormatSize is the required value of the PixelFormat.Size field.
	PixelFormatSize = 32

	// HeaderRegionSize covers the magic tag plus the header record:
	// everything before the pixel payload.
	HeaderRegionSize = 4 + HeaderSize

	// Caps2CubemapComplete is the Caps2 bit pattern marking a container
	// that holds all six cube faces.
	Caps2CubemapComplete uint32 = 0xFE00

	// FaceCount is the number of faces in a complete cube map.
	FaceCount = 6
)

// PixelFormat is the DDS_PIXELFORMAT sub-record embedded in every header.
type PixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      [4]byte
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// Header is the DDS_HEADER record that follows the magic tag.
//
// Reserved fields are opaque to this package: they are decoded and
// re-encoded verbatim so a passthrough never alters them.
type Header struct {
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       PixelFormat
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}
