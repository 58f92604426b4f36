package nbt

import (
	"fmt"

	"github.com/Yellow-Dog-Man/Substrate/encoding"
	"github.com/Yellow-Dog-Man/Substrate/errs"
	"github.com/Yellow-Dog-Man/Substrate/format"
	"github.com/Yellow-Dog-Man/Substrate/internal/options"
)

// ReadConfig holds the settings of a single read.
type ReadConfig struct {
	endianness format.EndianType
	maxDepth   int
}

func newReadConfig() *ReadConfig {
	return &ReadConfig{
		endianness: format.BigEndian,
		maxDepth:   encoding.DefaultMaxDepth,
	}
}

// ReadOption represents a functional option for configuring a read.
type ReadOption = options.Option[*ReadConfig]

// WithBigEndian decodes headerless streams as big-endian. It is the default.
func WithBigEndian() ReadOption {
	return options.NoError(func(c *ReadConfig) {
		c.endianness = format.BigEndian
	})
}

// WithLittleEndian decodes headerless streams as little-endian.
func WithLittleEndian() ReadOption {
	return options.NoError(func(c *ReadConfig) {
		c.endianness = format.LittleEndian
	})
}

// WithEndianness sets the byte order used for headerless streams.
// Headered streams are always little-endian.
func WithEndianness(e format.EndianType) ReadOption {
	return options.New(func(c *ReadConfig) error {
		if !e.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidEndianness, e)
		}
		c.endianness = e

		return nil
	})
}

// WithMaxDepth limits how deeply compounds and lists may nest.
func WithMaxDepth(n int) ReadOption {
	return options.New(func(c *ReadConfig) error {
		if n <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", n)
		}
		c.maxDepth = n

		return nil
	})
}

// WriteConfig holds the settings of a single write. Unset fields fall back
// to the tree's cached metadata.
type WriteConfig struct {
	endianness    format.EndianType
	setEndianness bool
	header        format.HeaderType
	version       uint32
	setHeader     bool
	maxDepth      int
}

// WriteOption represents a functional option for configuring a write.
type WriteOption = options.Option[*WriteConfig]

// WithWriteEndianness overrides the payload byte order for one write.
func WithWriteEndianness(e format.EndianType) WriteOption {
	return options.New(func(c *WriteConfig) error {
		if !e.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidEndianness, e)
		}
		c.endianness = e
		c.setEndianness = true

		return nil
	})
}

// WithHeader overrides the header layout and version for one write.
func WithHeader(h format.HeaderType, version uint32) WriteOption {
	return options.New(func(c *WriteConfig) error {
		if !h.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidHeaderType, h)
		}
		c.header = h
		c.version = version
		c.setHeader = true

		return nil
	})
}

// WithWriteMaxDepth limits how deeply compounds and lists may nest on write.
// The default matches the reader's, so written trees always read back.
func WithWriteMaxDepth(n int) WriteOption {
	return options.New(func(c *WriteConfig) error {
		if n <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", n)
		}
		c.maxDepth = n

		return nil
	})
}
