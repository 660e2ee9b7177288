package dds

import (
	"errors"
	"fmt"
	"os"

	xxhash "github.com/cespare/xxhash/v2"
)

// FaceNames lists the six cube directions in input order.
var FaceNames = [FaceCount]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

// Logger is the subset of logging the assembler reports through.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}

type AssembleOptions struct {
	// FacePaths are the six face files in +X, -X, +Y, -Y, +Z, -Z order.
	// The order is trusted as given; nothing is inferred from file names
	// or pixel content.
	FacePaths []string

	// OutputPath is the combined .dds file to create.
	OutputPath string

	// Logger receives per-face progress lines and mip-chain warnings.
	// Optional.
	Logger Logger
}

// Assemble validates six DDS face files and concatenates their payloads
// into one container flagged as a complete cube map.
//
// Faces are processed strictly in input order: face 0 supplies the output
// header (with the cube-map bit set), and every later face is cross-checked
// against it. Any failure aborts the run; a partially written output file
// is left on disk for the caller to deal with.
func Assemble(opts AssembleOptions) error {
	if len(opts.FacePaths) != FaceCount {
		return fmt.Errorf("dds: assemble: need %d face paths, have %d", FaceCount, len(opts.FacePaths))
	}
	if opts.OutputPath == "" {
		return errors.New("dds: assemble: OutputPath required")
	}
	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}

	var out *os.File
	defer func() {
		if out != nil {
			_ = out.Close()
		}
	}()

	var headers [FaceCount]Header
	for i, path := range opts.FacePaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("dds: read face %d (%s): %w", i, path, err)
		}

		h, err := ParseHeader(data)
		if err != nil {
			return fmt.Errorf("dds: face %d (%s): %w", i, path, err)
		}
		if err := h.Validate(); err != nil {
			return fmt.Errorf("dds: face %d (%s): %w", i, path, err)
		}
		headers[i] = h

		payload := data[HeaderRegionSize:]
		log.Info("face",
			"index", i,
			"side", FaceNames[i],
			"path", path,
			"size", fmt.Sprintf("%dx%d", h.Width, h.Height),
			"fourcc", h.PixelFormat.FourCCString(),
			"mips", h.MipMapCount,
			"payload", len(payload),
			"xxh64", fmt.Sprintf("%016x", xxhash.Sum64(payload)),
		)

		if want := ExpectedMipCount(h.Width, h.Height); want != h.MipMapCount {
			log.Warn("incomplete mipmap level set",
				"face", i, "declared", h.MipMapCount, "expected", want)
		}

		if h.Width != h.Height {
			return fmt.Errorf("%w: face %d (%s): %dx%d is not square",
				ErrNotCubemapCompatible, i, path, h.Width, h.Height)
		}

		if i == 0 {
			// Face 0 is the template for the whole cube map.
			tmpl := h
			tmpl.SetCompleteCubemap()

			out, err = os.Create(opts.OutputPath)
			if err != nil {
				return fmt.Errorf("dds: create output %s: %w", opts.OutputPath, err)
			}
			var region [HeaderRegionSize]byte
			copy(region[:4], Magic)
			if !encodeHeader(region[4:], tmpl) {
				return errors.New("dds: encode header failed")
			}
			if err := writeFull(out, region[:]); err != nil {
				return fmt.Errorf("dds: write output %s: %w", opts.OutputPath, err)
			}
		} else {
			first := &headers[0]
			switch {
			case h.Width != first.Width:
				return fmt.Errorf("%w: face %d (%s): width %d (face 0 has %d)",
					ErrInconsistentFaces, i, path, h.Width, first.Width)
			case h.Height != first.Height:
				return fmt.Errorf("%w: face %d (%s): height %d (face 0 has %d)",
					ErrInconsistentFaces, i, path, h.Height, first.Height)
			case h.PixelFormat.FourCC != first.PixelFormat.FourCC:
				return fmt.Errorf("%w: face %d (%s): fourcc %q (face 0 has %q)",
					ErrInconsistentFaces, i, path, h.PixelFormat.FourCCString(), first.PixelFormat.FourCCString())
			}
		}

		if err := writeFull(out, payload); err != nil {
			return fmt.Errorf("dds: write output %s: %w", opts.OutputPath, err)
		}
	}

	if err := out.Sync(); err != nil {
		return fmt.Errorf("dds: flush output %s: %w", opts.OutputPath, err)
	}
	err := out.Close()
	out = nil
	if err != nil {
		return fmt.Errorf("dds: close output %s: %w", opts.OutputPath, err)
	}
	return nil
}

func writeFull(f *os.File, p []byte) error {
	for len(p) > 0 {
		n, err := f.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}
