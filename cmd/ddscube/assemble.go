package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/texforge/ddscube/pkg/dds"
)

func assembleCmd() *cli.Command {
	return &cli.Command{
		Name:      "assemble",
		Usage:     "Validate six DDS face images and pack them into one cubemap",
		ArgsUsage: "PX.dds NX.dds PY.dds NY.dds PZ.dds NZ.dds",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o", "out"},
				Usage:       "Output .dds path",
				Required:    true,
				Destination: &outputPath,
			},
		}, loggingFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			faces := cmd.Args().Slice()
			if len(faces) != dds.FaceCount {
				return fmt.Errorf("need exactly %d face paths in +X -X +Y -Y +Z -Z order, have %d", dds.FaceCount, len(faces))
			}

			log := buildLogger(cmd, LoadConfig())
			if err := dds.Assemble(dds.AssembleOptions{
				FacePaths:  faces,
				OutputPath: outputPath,
				Logger:     log,
			}); err != nil {
				return err
			}
			log.Info("cubemap written", "path", outputPath)
			_ = ctx
			return nil
		},
	}
}
