package nbt

import (
	"github.com/Yellow-Dog-Man/Substrate/endian"
	"github.com/Yellow-Dog-Man/Substrate/format"
	"github.com/Yellow-Dog-Man/Substrate/internal/hash"
	"github.com/Yellow-Dog-Man/Substrate/tag"
)

// Metadata describes how a tree was last read. The writer trusts it, not the
// payload, when deciding how to wrap its output.
type Metadata struct {
	Header     format.HeaderType
	Endianness format.EndianType
	Version    uint32
}

// Tree is a root compound plus the header metadata of its last read.
type Tree struct {
	root *tag.Compound
	name string
	meta Metadata
}

// NewTree creates a tree with an empty root, no header and big-endian payload.
func NewTree() *Tree {
	return &Tree{
		root: tag.NewCompound(),
		meta: Metadata{Header: format.HeaderNone, Endianness: format.BigEndian},
	}
}

// WrapTree adopts root without copying it.
func WrapTree(root *tag.Compound, name string) *Tree {
	t := NewTree()
	if root != nil {
		t.root = root
	}
	t.name = name

	return t
}

// Root returns the root compound.
func (t *Tree) Root() *tag.Compound {
	return t.root
}

// SetRoot replaces the root compound. A nil root is replaced by an empty one.
func (t *Tree) SetRoot(root *tag.Compound) {
	if root == nil {
		root = tag.NewCompound()
	}
	t.root = root
}

// Name returns the root name.
func (t *Tree) Name() string {
	return t.name
}

// SetName sets the root name.
func (t *Tree) SetName(name string) {
	t.name = name
}

// Metadata returns the cached header metadata.
func (t *Tree) Metadata() Metadata {
	return t.meta
}

// SetMetadata replaces the cached header metadata.
func (t *Tree) SetMetadata(m Metadata) {
	t.meta = m
}

// HeaderType returns the cached header layout.
func (t *Tree) HeaderType() format.HeaderType {
	return t.meta.Header
}

// Endianness returns the cached payload byte order.
func (t *Tree) Endianness() format.EndianType {
	return t.meta.Endianness
}

// Version returns the cached header version.
func (t *Tree) Version() uint32 {
	return t.meta.Version
}

// Copy returns a new tree holding a deep clone of the root.
//
// Name and header metadata are not copied; a clone is a fresh logical tree.
// Use SetName and SetMetadata to reproduce the source layout exactly.
func (t *Tree) Copy() *Tree {
	c := NewTree()
	c.root = t.root.CloneCompound()

	return c
}

// Fingerprint returns the xxHash64 of the encoded payload (root discriminant,
// name and root value) in the cached byte order. Header bytes are excluded,
// so rewrapping a tree does not change its fingerprint.
func (t *Tree) Fingerprint() (uint64, error) {
	enc, err := t.encodePayload(endian.GetEngine(t.meta.Endianness), 0)
	if err != nil {
		return 0, err
	}
	defer enc.Finish()

	return hash.Sum(enc.Bytes()), nil
}
