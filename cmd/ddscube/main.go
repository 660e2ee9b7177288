// cmd/ddscube/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/texforge/ddscube/internal/version"
)

func main() {
	app := &cli.Command{
		Name:    "ddscube",
		Usage:   "Generate a DDS cubemap image from a set of DDS cube side images",
		Version: version.String(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			assembleCmd(),
			inspectCmd(),
			versionCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
