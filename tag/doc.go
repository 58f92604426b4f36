// Package tag defines the value model of a named binary tree.
//
// A tree is built from Tag values. Every Tag reports its TagType, which is
// also the one-byte discriminant written on the wire. The model is a closed
// set of variants:
//
//	End         stateless terminator, never stored as a value
//	Byte        uint8
//	Short       int16
//	Int         int32
//	Long        int64
//	Float       float32
//	Double      float64
//	ByteArray   []byte
//	String      UTF-8 text
//	List        *List, homogeneous sequence with a declared element type
//	Compound    *Compound, ordered name to Tag mapping
//	IntArray    []int32
//	LongArray   []int64
//	ShortArray  []int16
//
// Dispatch over the variants is a type switch:
//
//	switch v := t.(type) {
//	case tag.Int:
//	    fmt.Println(int32(v))
//	case *tag.Compound:
//	    for name, child := range v.All() { ... }
//	}
//
// Trees are strictly owned: a parent exclusively owns its children, and
// Clone returns a deep copy that shares no mutable state with the source.
// None of the types in this package are safe for concurrent mutation.
package tag
