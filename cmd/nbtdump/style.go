package main

import (
	"github.com/fatih/color"

	"github.com/Yellow-Dog-Man/Substrate/tag"
)

// newStyler colors type labels by family. Without color it returns nil,
// which leaves labels untouched.
func newStyler(enabled bool) tag.Styler {
	if !enabled {
		return nil
	}

	composite := color.New(color.FgBlue, color.Bold)
	number := color.RGB(128, 216, 236)
	text := color.New(color.FgGreen)
	array := color.New(color.FgMagenta)
	for _, c := range []*color.Color{composite, number, text, array} {
		c.EnableColor()
	}

	return func(kind tag.TagType, s string) string {
		switch kind {
		case tag.TypeCompound, tag.TypeList:
			return composite.Sprint(s)
		case tag.TypeString:
			return text.Sprint(s)
		case tag.TypeByteArray, tag.TypeIntArray, tag.TypeLongArray, tag.TypeShortArray:
			return array.Sprint(s)
		default:
			return number.Sprint(s)
		}
	}
}
