package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	substrate "github.com/Yellow-Dog-Man/Substrate"
	"github.com/Yellow-Dog-Man/Substrate/format"
	"github.com/Yellow-Dog-Man/Substrate/nbt"
	"github.com/Yellow-Dog-Man/Substrate/tag"
)

func writeSample(t *testing.T, dir string, opts ...substrate.FileOption) string {
	t.Helper()

	pos, err := tag.NewList(tag.TypeDouble, tag.Double(1.5), tag.Double(-2))
	require.NoError(t, err)

	root := tag.NewCompound()
	root.Set("Name", tag.String("world"))
	root.Set("Pos", pos)
	root.Set("Spawn", tag.IntArray{0, 64, 0})

	tree := substrate.WrapTree(root, "Data")
	tree.SetMetadata(nbt.Metadata{Header: format.HeaderLevel, Endianness: format.LittleEndian, Version: 9})

	path := filepath.Join(dir, "level.dat")
	require.NoError(t, substrate.WriteFile(path, tree, opts...))

	return path
}

func TestRun_Text(t *testing.T) {
	path := writeSample(t, t.TempDir(), substrate.WithCompression(format.CompressionGzip))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--color", "never", path}, &stdout, &stderr))

	want := strings.Join([]string{
		"Data (Compound) [3]",
		`  Name (String) = "world"`,
		"  Pos (List<Double>) [2]",
		"    [0] (Double) = 1.5",
		"    [1] (Double) = -2",
		"  Spawn (IntArray) [3] = [0 64 0]",
		"",
	}, "\n")
	require.Equal(t, want, stdout.String())
	require.Empty(t, stderr.String())
}

func TestRun_ColorAlways(t *testing.T) {
	path := writeSample(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--color", "always", path}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "\x1b[")
}

func TestRun_YAML(t *testing.T) {
	path := writeSample(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--format", "yaml", path}, &stdout, &stderr))

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &doc))
	require.Len(t, doc.Content, 1)

	top := doc.Content[0]
	require.Equal(t, yaml.MappingNode, top.Kind)
	require.Equal(t, "Data", top.Content[0].Value)

	root := top.Content[1]
	require.Equal(t, "!Compound", root.Tag)
	require.Len(t, root.Content, 6)
	require.Equal(t, "Name", root.Content[0].Value)
	require.Equal(t, "!String", root.Content[1].Tag)
	require.Equal(t, "world", root.Content[1].Value)
	require.Equal(t, "Pos", root.Content[2].Value)
	require.Equal(t, "!List(Double)", root.Content[3].Tag)
	require.Len(t, root.Content[3].Content, 2)
	require.Equal(t, "Spawn", root.Content[4].Value)
	require.Equal(t, "!IntArray", root.Content[5].Tag)
	require.Len(t, root.Content[5].Content, 3)
}

func TestRun_VerboseAndOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, substrate.WithCompression(format.CompressionZstd))
	out := filepath.Join(dir, "copy.dat")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-v", "-o", out, path}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "decoded tree")
	require.Contains(t, stderr.String(), "compression=Zstd")
	require.Contains(t, stderr.String(), "header=LevelHeader")

	original, err := os.ReadFile(path)
	require.NoError(t, err)
	rewritten, err := os.ReadFile(out)
	require.NoError(t, err)

	a, _, err := substrate.ReadFile(path)
	require.NoError(t, err)
	b, comp, err := substrate.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, comp)
	require.True(t, tag.Equal(a.Root(), b.Root()))
	require.NotEmpty(t, original)
	require.NotEmpty(t, rewritten)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir)

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "no input", args: nil, msg: "no input files"},
		{name: "bad format", args: []string{"--format", "json", path}, msg: `unknown format "json"`},
		{name: "bad compression", args: []string{"-c", "brotli", path}, msg: `unknown compression "brotli"`},
		{name: "bad color", args: []string{"--color", "sometimes", path}, msg: `unknown color mode "sometimes"`},
		{name: "output with many inputs", args: []string{"-o", "x", path, path}, msg: "exactly one input"},
		{name: "missing file", args: []string{filepath.Join(dir, "missing.dat")}, msg: "missing.dat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer

	on, err := useColor("auto", &buf)
	require.NoError(t, err)
	require.False(t, on)

	on, err = useColor("always", &buf)
	require.NoError(t, err)
	require.True(t, on)
}
