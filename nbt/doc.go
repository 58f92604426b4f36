// Package nbt reads and writes complete named binary trees.
//
// A Tree bundles a root compound with the header metadata recovered from the
// last read: header layout, payload byte order and version. Writing a tree
// reuses that metadata, so a read-modify-write cycle reproduces the source
// layout without the caller tracking it:
//
//	tree, err := nbt.ReadTree(r)
//	if err != nil {
//	    return err
//	}
//	tree.Root().Set("LastPlayed", tag.Long(time.Now().UnixMilli()))
//	_, err = tree.WriteTo(w)
//
// # Format detection
//
// Three layouts share one entry point. A stream whose first byte is the
// compound discriminant has no header and is decoded with the caller's byte
// order (big-endian by default). Otherwise the stream starts with either an
// entity header ("ENT\0", version, length) or a level header (version,
// length). Both force a little-endian payload, and both must declare a
// payload length equal to the number of bytes that follow the header.
//
// A header that disagrees with the stream, or that is followed by anything
// other than a compound, yields no tree: ReadTree returns a nil *Tree with
// errs.ErrCorruptHeader. Truncated payloads, negative lengths and unknown
// list element types are stream faults and surface as errs.ErrEndOfStream,
// errs.ErrNegativeLength and errs.ErrUnknownTagType.
//
// A Tree is not safe for concurrent use.
package nbt
