package dds

import (
	"errors"
	"strings"
	"testing"
)

func validTestHeader() Header {
	h := Header{
		Size:        HeaderSize,
		Height:      256,
		Width:       256,
		MipMapCount: 9,
	}
	h.PixelFormat.Size = PixelFormatSize
	copy(h.PixelFormat.FourCC[:], "DXT1")
	return h
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Header)
		wantErr bool
		field   string
	}{
		{"valid", func(h *Header) {}, false, ""},
		{"wrong header size", func(h *Header) { h.Size = 100 }, true, "header size"},
		{"wrong pixel format size", func(h *Header) { h.PixelFormat.Size = 24 }, true, "pixel format size"},
		{"zero width", func(h *Header) { h.Width = 0 }, true, "width"},
		{"zero height", func(h *Header) { h.Height = 0 }, true, "height"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := validTestHeader()
			tc.mutate(&h)

			err := h.Validate()
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("expected valid header, got: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidHeader) {
				t.Fatalf("expected ErrInvalidHeader, got: %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("error should name %q, got: %v", tc.field, err)
			}
		})
	}
}

func TestValidateDoesNotRequireSquare(t *testing.T) {
	t.Parallel()

	h := validTestHeader()
	h.Width = 256
	h.Height = 128
	if err := h.Validate(); err != nil {
		t.Fatalf("squareness is a cubemap check, not a header check: %v", err)
	}
}

func TestExpectedMipCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width, height uint32
		want          uint32
	}{
		{256, 256, 9},
		{1, 1, 1},
		{2, 2, 2},
		{256, 128, 9},
		{128, 256, 9},
		{12, 12, 4}, // non-power-of-two: 12 -> 6 -> 3 -> 1
		{1024, 1, 11},
	}
	for _, tc := range tests {
		if got := ExpectedMipCount(tc.width, tc.height); got != tc.want {
			t.Errorf("ExpectedMipCount(%d, %d): got %d want %d", tc.width, tc.height, got, tc.want)
		}
	}
}

func TestCubemapFlag(t *testing.T) {
	t.Parallel()

	h := validTestHeader()
	if h.CompleteCubemap() {
		t.Fatal("fresh header should not be flagged as a cubemap")
	}

	h.SetCompleteCubemap()
	if !h.CompleteCubemap() {
		t.Fatal("flag not set")
	}
	if h.Caps2&Caps2CubemapComplete != Caps2CubemapComplete {
		t.Fatalf("caps2 missing bits: %08x", h.Caps2)
	}

	before := h.Caps2
	h.SetCompleteCubemap()
	if h.Caps2 != before {
		t.Fatalf("SetCompleteCubemap is not idempotent: %08x -> %08x", before, h.Caps2)
	}
}

func TestFourCCString(t *testing.T) {
	t.Parallel()

	pf := PixelFormat{FourCC: [4]byte{'D', 'X', 'T', '1'}}
	if got := pf.FourCCString(); got != "DXT1" {
		t.Fatalf("got %q want DXT1", got)
	}
	pf = PixelFormat{}
	if got := pf.FourCCString(); got != "" {
		t.Fatalf("zeroed fourcc should print empty, got %q", got)
	}
}
