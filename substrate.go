// Package substrate reads and writes named binary trees: a compact,
// strongly-typed, schema-less format for persisting hierarchical state.
//
// # Core Features
//
//   - Fourteen tag kinds, including long and short arrays
//   - Ordered compounds, so decoded trees re-encode byte for byte
//   - Big- and little-endian payloads
//   - Automatic detection of headerless, level-header and entity-header layouts
//   - Optional outer compression (gzip, zlib, zstd, S2, LZ4) for files
//
// # Basic Usage
//
// Reading, editing and writing back a tree:
//
//	tree, err := substrate.ReadTree(r)
//	if err != nil {
//	    return err
//	}
//	tree.Root().Set("Difficulty", tag.Byte(2))
//	_, err = tree.WriteTo(w)
//
// Building a tree from scratch:
//
//	root := tag.NewCompound()
//	root.Set("Name", tag.String("world"))
//	data, err := substrate.Encode(substrate.WrapTree(root, ""))
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The value model lives
// in package tag, the tree container and header handling in package nbt, and
// the recursive value codec in package encoding.
package substrate

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Yellow-Dog-Man/Substrate/compress"
	"github.com/Yellow-Dog-Man/Substrate/errs"
	"github.com/Yellow-Dog-Man/Substrate/format"
	"github.com/Yellow-Dog-Man/Substrate/internal/options"
	"github.com/Yellow-Dog-Man/Substrate/nbt"
	"github.com/Yellow-Dog-Man/Substrate/tag"
)

// Tree is a named root compound plus the metadata needed to write it back
// the way it was read.
type Tree = nbt.Tree

// NewTree creates an empty tree with no header and a big-endian payload.
func NewTree() *nbt.Tree {
	return nbt.NewTree()
}

// WrapTree adopts root as the root of a new tree without copying it.
func WrapTree(root *tag.Compound, name string) *nbt.Tree {
	return nbt.WrapTree(root, name)
}

// ReadTree decodes a tree from r, detecting its header layout.
//
// A nil tree with errs.ErrCorruptHeader means a header was found but does
// not match the stream.
func ReadTree(r io.Reader, opts ...nbt.ReadOption) (*nbt.Tree, error) {
	return nbt.ReadTree(r, opts...)
}

// Decode decodes a tree from an in-memory byte slice.
func Decode(data []byte, opts ...nbt.ReadOption) (*nbt.Tree, error) {
	return nbt.ReadTree(bytes.NewReader(data), opts...)
}

// Encode encodes a tree into a new byte slice using its cached metadata.
func Encode(tree *nbt.Tree, opts ...nbt.WriteOption) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := tree.Write(&buf, opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// FileConfig holds the settings of ReadFile and WriteFile.
type FileConfig struct {
	compression    format.CompressionType
	setCompression bool
	readOpts       []nbt.ReadOption
	writeOpts      []nbt.WriteOption
}

// FileOption represents a functional option for configuring file helpers.
type FileOption = options.Option[*FileConfig]

// WithCompression selects the outer compression. On read it disables
// detection; on write the default is no compression.
func WithCompression(comp format.CompressionType) FileOption {
	return options.New(func(c *FileConfig) error {
		if _, err := compress.CreateCodec(comp, "tree file"); err != nil {
			return err
		}
		c.compression = comp
		c.setCompression = true

		return nil
	})
}

// WithReadOptions forwards options to the tree decoder.
func WithReadOptions(opts ...nbt.ReadOption) FileOption {
	return options.NoError(func(c *FileConfig) {
		c.readOpts = append(c.readOpts, opts...)
	})
}

// WithWriteOptions forwards options to the tree encoder.
func WithWriteOptions(opts ...nbt.WriteOption) FileOption {
	return options.NoError(func(c *FileConfig) {
		c.writeOpts = append(c.writeOpts, opts...)
	})
}

// ReadFile reads a tree file, removing any outer compression first.
//
// Returns:
//   - *nbt.Tree: the decoded tree
//   - format.CompressionType: the compression that was removed, so the file
//     can be written back the same way
//   - error: file, decompression or decode errors
func ReadFile(path string, opts ...FileOption) (*nbt.Tree, format.CompressionType, error) {
	cfg := &FileConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, 0, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	comp := cfg.compression
	if !cfg.setCompression {
		comp = detectCompression(data)
	}
	codec, err := compress.GetCodec(comp)
	if err != nil {
		return nil, 0, err
	}
	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, comp, fmt.Errorf("%s: %w", path, err)
	}

	tree, err := nbt.ReadTree(bytes.NewReader(raw), cfg.readOpts...)
	if err != nil {
		return nil, comp, fmt.Errorf("%s: %w", path, err)
	}

	return tree, comp, nil
}

// detectCompression checks for an uncompressed tree before looking at magic
// bytes, since a level header's version field may mimic a compressor's magic.
func detectCompression(data []byte) format.CompressionType {
	if _, ok := nbt.Sniff(data); ok {
		return format.CompressionNone
	}

	return compress.Detect(data)
}

// WriteFile encodes tree, applies the configured compression and writes the
// result to path with mode 0o644.
func WriteFile(path string, tree *nbt.Tree, opts ...FileOption) error {
	if tree == nil {
		return fmt.Errorf("%w: no tree to write", errs.ErrNilTag)
	}

	cfg := &FileConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	raw, err := Encode(tree, cfg.writeOpts...)
	if err != nil {
		return err
	}
	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return err
	}
	data, err := codec.Compress(raw)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644) //nolint:gosec
}
