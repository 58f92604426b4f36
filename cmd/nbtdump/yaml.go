package main

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Yellow-Dog-Man/Substrate/nbt"
	"github.com/Yellow-Dog-Man/Substrate/tag"
)

// writeYAML renders the tree as a YAML document. Compound order is kept and
// every value carries a local tag naming its type, e.g. `!Int 5`.
func writeYAML(w io.Writer, tree *nbt.Tree) error {
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalarNode("", tree.Name()),
			yamlNode(tree.Root()),
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

func scalarNode(tagName, value string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: value}
	if tagName != "" {
		n.Tag = "!" + tagName
	} else {
		n.Tag = "!!str"
	}

	return n
}

func yamlNode(t tag.Tag) *yaml.Node {
	switch v := t.(type) {
	case *tag.Compound:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!" + v.Type().String()}
		for name, child := range v.All() {
			n.Content = append(n.Content, scalarNode("", name), yamlNode(child))
		}
		return n
	case *tag.List:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: fmt.Sprintf("!List(%s)", v.ElemType())}
		for _, child := range v.All() {
			n.Content = append(n.Content, yamlNode(child))
		}
		return n
	case tag.ByteArray:
		return flowSequence(v.Type(), len(v), func(i int) string { return strconv.FormatUint(uint64(v[i]), 10) })
	case tag.IntArray:
		return flowSequence(v.Type(), len(v), func(i int) string { return strconv.FormatInt(int64(v[i]), 10) })
	case tag.LongArray:
		return flowSequence(v.Type(), len(v), func(i int) string { return strconv.FormatInt(v[i], 10) })
	case tag.ShortArray:
		return flowSequence(v.Type(), len(v), func(i int) string { return strconv.FormatInt(int64(v[i]), 10) })
	default:
		n := scalarNode(t.Type().String(), tag.FormatScalar(t))
		if t.Type() == tag.TypeString {
			n.Style = yaml.DoubleQuotedStyle
		}
		return n
	}
}

func flowSequence(kind tag.TagType, n int, item func(int) string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!" + kind.String(), Style: yaml.FlowStyle}
	for i := range n {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: item(i)})
	}

	return seq
}
