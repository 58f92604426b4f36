package tag

import (
	"iter"
	"slices"
)

type member struct {
	name string
	tag  Tag
}

// Compound maps unique names to tags.
//
// Iteration follows insertion order. Replacing an existing name keeps its
// position, so a compound that was decoded and re-encoded writes its members
// in the order they were read.
type Compound struct {
	members []member
	index   map[string]int
}

// NewCompound creates an empty compound.
func NewCompound() *Compound {
	return &Compound{index: make(map[string]int)}
}

// Type returns TypeCompound.
func (c *Compound) Type() TagType { return TypeCompound }

func (c *Compound) isTag() {}

// Len returns the number of members.
func (c *Compound) Len() int {
	return len(c.members)
}

// Set stores t under name, replacing any previous value in place.
//
// Set does not validate t so that calls can be chained. A nil or End value
// is stored as given and rejected when the compound is encoded, with
// ErrNilTag or ErrEndValue.
func (c *Compound) Set(name string, t Tag) *Compound {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[name]; ok {
		c.members[i].tag = t

		return c
	}
	c.index[name] = len(c.members)
	c.members = append(c.members, member{name: name, tag: t})

	return c
}

// Get returns the tag stored under name.
func (c *Compound) Get(name string) (Tag, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}

	return c.members[i].tag, true
}

// Has reports whether name is present.
func (c *Compound) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Delete removes name and reports whether it was present.
func (c *Compound) Delete(name string) bool {
	i, ok := c.index[name]
	if !ok {
		return false
	}
	c.members = slices.Delete(c.members, i, i+1)
	delete(c.index, name)
	for j := i; j < len(c.members); j++ {
		c.index[c.members[j].name] = j
	}

	return true
}

// Keys returns the member names in iteration order.
func (c *Compound) Keys() []string {
	keys := make([]string, len(c.members))
	for i, m := range c.members {
		keys[i] = m.name
	}

	return keys
}

// All iterates the members in insertion order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for _, m := range c.members {
			if !yield(m.name, m.tag) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the compound.
func (c *Compound) Clone() Tag {
	return c.CloneCompound()
}

// CloneCompound is Clone without the interface conversion.
func (c *Compound) CloneCompound() *Compound {
	dst := &Compound{
		members: make([]member, len(c.members)),
		index:   make(map[string]int, len(c.members)),
	}
	for i, m := range c.members {
		var t Tag
		if m.tag != nil {
			t = m.tag.Clone()
		}
		dst.members[i] = member{name: m.name, tag: t}
		dst.index[m.name] = i
	}

	return dst
}

// Lookup returns the member stored under name if it has type T.
//
// Example:
//
//	if hp, ok := tag.Lookup[tag.Short](entity, "Health"); ok { ... }
func Lookup[T Tag](c *Compound, name string) (T, bool) {
	var zero T
	t, ok := c.Get(name)
	if !ok {
		return zero, false
	}
	v, ok := t.(T)

	return v, ok
}

// GetString returns the String member under name.
func (c *Compound) GetString(name string) (string, bool) {
	v, ok := Lookup[String](c, name)
	return string(v), ok
}

// GetInt returns the Int member under name.
func (c *Compound) GetInt(name string) (int32, bool) {
	v, ok := Lookup[Int](c, name)
	return int32(v), ok
}

// GetLong returns the Long member under name.
func (c *Compound) GetLong(name string) (int64, bool) {
	v, ok := Lookup[Long](c, name)
	return int64(v), ok
}

// GetCompound returns the Compound member under name.
func (c *Compound) GetCompound(name string) (*Compound, bool) {
	return Lookup[*Compound](c, name)
}

// GetList returns the List member under name.
func (c *Compound) GetList(name string) (*List, bool) {
	return Lookup[*List](c, name)
}
