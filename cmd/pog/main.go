// Command pog converts images to and from the POG format and describes POG files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const defaultCompression = "lzma"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := newApp(os.Stdout, os.Stderr)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pog:", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	r := &runner{out: stdout, log: zap.NewNop()}

	app := &cli.App{
		Name:      "pog",
		Usage:     "POG image conversion utility",
		Version:   "1.0.0",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				EnvVars: []string{"POG_VERBOSE"},
				Usage:   "increase verbosity",
			},
		},
		Before: func(c *cli.Context) error {
			r.log = newLogger(stderr, c.Bool("verbose"))
			return nil
		},
		After: func(c *cli.Context) error {
			_ = r.log.Sync()
			return nil
		},
		// errors are reported by main so the app stays usable from tests
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Convert PNG, JPEG, GIF or POG images to POG",
				ArgsUsage: "FILE...",
				Flags:     []cli.Flag{compressionFlag(), outputFlag()},
				Action:    r.encode,
			},
			{
				Name:      "decode",
				Usage:     "Convert a POG image to PNG",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{compressionFlag(), outputFlag(), legacyFlag()},
				Action:    r.decode,
			},
			{
				Name:      "info",
				Usage:     "Validate POG files and print their layout",
				ArgsUsage: "FILE...",
				Flags:     []cli.Flag{compressionFlag(), legacyFlag()},
				Action:    r.info,
			},
		},
	}

	return app
}

func compressionFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "compression",
		Aliases: []string{"c"},
		EnvVars: []string{"POG_COMPRESSION"},
		Value:   defaultCompression,
		Usage:   "payload compression: none, lzma, zstd, s2 or lz4",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write to `FILE` instead of next to the input",
	}
}

func legacyFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "legacy",
		Usage: "accept headerless buffers written by early tools",
	}
}
