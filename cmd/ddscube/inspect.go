package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	xxhash "github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/texforge/ddscube/pkg/dds"
)

type headerReport struct {
	Path              string `json:"path"`
	Width             uint32 `json:"width"`
	Height            uint32 `json:"height"`
	Depth             uint32 `json:"depth"`
	FourCC            string `json:"fourcc"`
	RGBBitCount       uint32 `json:"rgb_bit_count"`
	MipMapCount       uint32 `json:"mipmap_count"`
	ExpectedMipCount  uint32 `json:"expected_mipmap_count"`
	PitchOrLinearSize uint32 `json:"pitch_or_linear_size"`
	Caps              uint32 `json:"caps"`
	Caps2             uint32 `json:"caps2"`
	CompleteCubemap   bool   `json:"complete_cubemap"`
	PayloadSize       int    `json:"payload_size"`
	PayloadXXH64      string `json:"payload_xxh64"`
}

func inspectCmd() *cli.Command {
	var jsonOut bool

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print the header of a DDS file",
		ArgsUsage: "FILE.dds",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit the header as JSON",
				Destination: &jsonOut,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("inspect: need exactly one DDS path")
			}
			path := cmd.Args().First()

			f, err := dds.Open(path)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", path, err)
			}
			defer func() { _ = f.Close() }()

			h := f.Header
			payload := f.Payload()
			rep := headerReport{
				Path:              path,
				Width:             h.Width,
				Height:            h.Height,
				Depth:             h.Depth,
				FourCC:            h.PixelFormat.FourCCString(),
				RGBBitCount:       h.PixelFormat.RGBBitCount,
				MipMapCount:       h.MipMapCount,
				ExpectedMipCount:  dds.ExpectedMipCount(h.Width, h.Height),
				PitchOrLinearSize: h.PitchOrLinearSize,
				Caps:              h.Caps,
				Caps2:             h.Caps2,
				CompleteCubemap:   h.CompleteCubemap(),
				PayloadSize:       len(payload),
				PayloadXXH64:      fmt.Sprintf("%016x", xxhash.Sum64(payload)),
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}

			fmt.Printf("file:       %s\n", rep.Path)
			fmt.Printf("size:       %dx%d", rep.Width, rep.Height)
			if rep.Depth > 1 {
				fmt.Printf("x%d", rep.Depth)
			}
			fmt.Println()
			if rep.FourCC != "" {
				fmt.Printf("fourcc:     %s\n", rep.FourCC)
			} else {
				fmt.Printf("rgb bits:   %d\n", rep.RGBBitCount)
			}
			fmt.Printf("mips:       %d (complete chain: %d)\n", rep.MipMapCount, rep.ExpectedMipCount)
			fmt.Printf("caps2:      0x%08X\n", rep.Caps2)
			fmt.Printf("cubemap:    %v\n", rep.CompleteCubemap)
			fmt.Printf("payload:    %d bytes (xxh64 %s)\n", rep.PayloadSize, rep.PayloadXXH64)
			_ = ctx
			return nil
		},
	}
}
