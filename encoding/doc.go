// Package encoding implements the recursive value codec of the tree format.
//
// TagDecoder reads tag payloads from an io.Reader; TagEncoder appends them to
// a pooled buffer. Both are parameterized by an endian.EndianEngine that
// governs every multi-byte field: numbers, array elements, and the length
// prefixes of strings, arrays and lists. Discriminants and byte payloads are
// written raw.
//
// Wire layouts:
//
//	byte         1 byte
//	short/int/long   2/4/8 bytes, two's-complement
//	float/double 4/8 bytes, IEEE-754
//	string       int16 length (>= 0) + UTF-8 bytes
//	byte array   int32 length (>= 0) + raw bytes
//	int/long/short array  int32 length (>= 0) + fixed-width elements
//	list         element discriminant + int32 count (>= 0) + elements
//	compound     (discriminant, name, value)* + 0x00
//
// Headers and format detection are handled one level up, in package nbt.
package encoding
