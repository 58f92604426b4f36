package tag

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Styler decorates a fragment of dump output. kind is the tag type the
// fragment belongs to; the default styler returns s unchanged.
type Styler func(kind TagType, s string) string

// Dump writes an indented, human-readable rendering of t to w.
//
// Output looks like:
//
//	Level (Compound) [2]
//	  Name (String) = "world"
//	  Spawn (IntArray) [3] = [0 64 0]
func Dump(w io.Writer, name string, t Tag) error {
	return DumpStyled(w, name, t, nil)
}

// DumpStyled is Dump with a styler applied to type labels.
func DumpStyled(w io.Writer, name string, t Tag, style Styler) error {
	if style == nil {
		style = func(_ TagType, s string) string { return s }
	}
	d := &dumper{w: w, style: style}
	d.write(0, name, t)

	return d.err
}

type dumper struct {
	w     io.Writer
	style Styler
	err   error
}

func (d *dumper) printf(depth int, format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, strings.Repeat("  ", depth)+format+"\n", args...)
}

func (d *dumper) write(depth int, name string, t Tag) {
	if t == nil {
		d.printf(depth, "%s (nil)", name)
		return
	}
	label := d.style(t.Type(), "("+t.Type().String()+")")

	switch v := t.(type) {
	case *Compound:
		d.printf(depth, "%s %s [%d]", name, label, v.Len())
		for childName, child := range v.All() {
			d.write(depth+1, childName, child)
		}
	case *List:
		label = d.style(t.Type(), "(List<"+v.ElemType().String()+">)")
		d.printf(depth, "%s %s [%d]", name, label, v.Len())
		for i, child := range v.All() {
			d.write(depth+1, "["+strconv.Itoa(i)+"]", child)
		}
	case ByteArray:
		d.printf(depth, "%s %s [%d] = % x", name, label, len(v), []byte(v))
	case IntArray:
		d.printf(depth, "%s %s [%d] = %v", name, label, len(v), []int32(v))
	case LongArray:
		d.printf(depth, "%s %s [%d] = %v", name, label, len(v), []int64(v))
	case ShortArray:
		d.printf(depth, "%s %s [%d] = %v", name, label, len(v), []int16(v))
	case String:
		d.printf(depth, "%s %s = %q", name, label, string(v))
	default:
		d.printf(depth, "%s %s = %s", name, label, FormatScalar(t))
	}
}

// FormatScalar renders a scalar tag as text. Composite and array tags
// render as their type name.
func FormatScalar(t Tag) string {
	switch v := t.(type) {
	case Byte:
		return strconv.FormatUint(uint64(v), 10)
	case Short:
		return strconv.FormatInt(int64(v), 10)
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case Long:
		return strconv.FormatInt(int64(v), 10)
	case Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case Double:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case String:
		return string(v)
	case End:
		return "end"
	default:
		return t.Type().String()
	}
}
