package tag

import (
	"fmt"
	"iter"
	"slices"

	"github.com/Yellow-Dog-Man/Substrate/errs"
)

// List is an ordered, homogeneous sequence of tags.
//
// Every element shares the list's element type, which is recorded even when
// the list is empty.
type List struct {
	elemType TagType
	items    []Tag
}

// NewList creates a list with the given element type and initial items.
//
// Returns:
//   - *List: the new list
//   - error: ErrUnknownTagType for an invalid element type, ErrListTypeMismatch
//     or ErrEndValue if an item cannot be stored
func NewList(elemType TagType, items ...Tag) (*List, error) {
	if !elemType.IsValid() {
		return nil, fmt.Errorf("%w: list element type %d", errs.ErrUnknownTagType, uint8(elemType))
	}

	l := &List{
		elemType: elemType,
		items:    make([]Tag, 0, len(items)),
	}
	if err := l.Append(items...); err != nil {
		return nil, err
	}

	return l, nil
}

// EmptyList creates an empty list with the given element type.
//
// The element type is not checked here. Appending to a list with an invalid
// element type fails, and encoding one fails with ErrUnknownTagType. Use
// NewList to validate up front.
func EmptyList(elemType TagType) *List {
	return &List{elemType: elemType}
}

// Type returns TypeList.
func (l *List) Type() TagType { return TypeList }

func (l *List) isTag() {}

// ElemType returns the declared element type.
func (l *List) ElemType() TagType {
	return l.elemType
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.items)
}

func (l *List) check(t Tag) error {
	if t == nil {
		return errs.ErrNilTag
	}
	if t.Type() == TypeEnd {
		return errs.ErrEndValue
	}
	if t.Type() != l.elemType {
		return fmt.Errorf("%w: list of %s cannot hold %s", errs.ErrListTypeMismatch, l.elemType, t.Type())
	}

	return nil
}

// Append adds items to the end of the list. No item is added if any of
// them fails the element type check.
func (l *List) Append(items ...Tag) error {
	for _, t := range items {
		if err := l.check(t); err != nil {
			return err
		}
	}
	l.items = append(l.items, items...)

	return nil
}

// Get returns the element at index i.
func (l *List) Get(i int) (Tag, bool) {
	if i < 0 || i >= len(l.items) {
		return nil, false
	}

	return l.items[i], true
}

// Set replaces the element at index i.
func (l *List) Set(i int, t Tag) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("%w: %d (len %d)", errs.ErrIndexOutOfRange, i, len(l.items))
	}
	if err := l.check(t); err != nil {
		return err
	}
	l.items[i] = t

	return nil
}

// Remove deletes the element at index i, shifting later elements down.
func (l *List) Remove(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("%w: %d (len %d)", errs.ErrIndexOutOfRange, i, len(l.items))
	}
	l.items = slices.Delete(l.items, i, i+1)

	return nil
}

// Clear removes every element and keeps the element type.
func (l *List) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// All iterates the elements in order.
func (l *List) All() iter.Seq2[int, Tag] {
	return func(yield func(int, Tag) bool) {
		for i, t := range l.items {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Items returns a shallow copy of the element slice.
func (l *List) Items() []Tag {
	return slices.Clone(l.items)
}

// Clone returns a deep copy of the list.
func (l *List) Clone() Tag {
	dst := &List{
		elemType: l.elemType,
		items:    make([]Tag, len(l.items)),
	}
	for i, t := range l.items {
		dst.items[i] = t.Clone()
	}

	return dst
}
