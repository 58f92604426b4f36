// nbtdump prints the contents of binary tree files.
//
// Each file is decompressed (detected automatically unless --compression is
// given), decoded with header detection, and rendered either as an indented
// text listing or as YAML with one explicit tag per value. With --output the
// decoded tree is written back, which is handy for checking that a file
// survives a round trip unchanged.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	substrate "github.com/Yellow-Dog-Man/Substrate"
	"github.com/Yellow-Dog-Man/Substrate/format"
	"github.com/Yellow-Dog-Man/Substrate/nbt"
	"github.com/Yellow-Dog-Man/Substrate/tag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	format       string
	littleEndian bool
	compression  string
	colorMode    string
	output       string
	maxDepth     int
	verbose      bool
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg config

	flagSet := pflag.NewFlagSet("nbtdump", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&cfg.format, "format", "f", "text", "output format: text or yaml")
	flagSet.BoolVar(&cfg.littleEndian, "little-endian", false, "decode headerless payloads as little-endian")
	flagSet.StringVarP(&cfg.compression, "compression", "c", "auto", "outer compression: auto, none, gzip, zlib, zstd, s2 or lz4")
	flagSet.StringVar(&cfg.colorMode, "color", "auto", "colorize text output: auto, always or never")
	flagSet.StringVarP(&cfg.output, "output", "o", "", "write the decoded tree back to this path (single input only)")
	flagSet.IntVar(&cfg.maxDepth, "max-depth", 0, "maximum nesting depth (default 512)")
	flagSet.BoolVarP(&cfg.verbose, "verbose", "v", false, "log decoding details to stderr")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	paths := flagSet.Args()
	if len(paths) == 0 {
		return errors.New("no input files")
	}
	if cfg.output != "" && len(paths) != 1 {
		return errors.New("--output needs exactly one input file")
	}

	fileOpts, err := cfg.fileOptions()
	if err != nil {
		return err
	}
	render, err := cfg.renderer(stdout)
	if err != nil {
		return err
	}

	for _, path := range paths {
		tree, comp, err := substrate.ReadFile(path, fileOpts...)
		if err != nil {
			return err
		}
		logger.Debug("decoded tree",
			"path", path,
			"compression", comp.String(),
			"header", tree.HeaderType().String(),
			"endianness", tree.Endianness().String(),
			"version", tree.Version(),
		)

		if len(paths) > 1 {
			fmt.Fprintf(stdout, "# %s\n", path)
		}
		if err := render(tree); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if cfg.output != "" {
			if err := substrate.WriteFile(cfg.output, tree, substrate.WithCompression(comp)); err != nil {
				return err
			}
			logger.Info("wrote tree", "path", cfg.output, "compression", comp.String())
		}
	}

	return nil
}

var compressionNames = map[string]format.CompressionType{
	"none": format.CompressionNone,
	"gzip": format.CompressionGzip,
	"zlib": format.CompressionZlib,
	"zstd": format.CompressionZstd,
	"s2":   format.CompressionS2,
	"lz4":  format.CompressionLZ4,
}

func (c config) fileOptions() ([]substrate.FileOption, error) {
	var readOpts []nbt.ReadOption
	if c.littleEndian {
		readOpts = append(readOpts, nbt.WithLittleEndian())
	}
	if c.maxDepth != 0 {
		readOpts = append(readOpts, nbt.WithMaxDepth(c.maxDepth))
	}
	opts := []substrate.FileOption{substrate.WithReadOptions(readOpts...)}

	name := strings.ToLower(c.compression)
	if name == "auto" {
		return opts, nil
	}
	comp, ok := compressionNames[name]
	if !ok {
		return nil, fmt.Errorf("unknown compression %q", c.compression)
	}

	return append(opts, substrate.WithCompression(comp)), nil
}

func (c config) renderer(w io.Writer) (func(*nbt.Tree) error, error) {
	switch c.format {
	case "text":
		colored, err := useColor(c.colorMode, w)
		if err != nil {
			return nil, err
		}
		styler := newStyler(colored)
		return func(tree *nbt.Tree) error {
			return tag.DumpStyled(w, tree.Name(), tree.Root(), styler)
		}, nil
	case "yaml":
		return func(tree *nbt.Tree) error {
			return writeYAML(w, tree)
		}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", c.format)
	}
}

func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("unknown color mode %q", mode)
	}
}
