package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justDeeevin/juicy-main/entry"
)

const (
	validSource = `//go:build ignore

package main

import "fmt"

//juicy:main
func main(args []string, env map[string]string) {
	fmt.Println(args, env)
}
`
	receiverSource = `package main

type server struct{}

//juicy:main
func (s *server) main(port int) {}
`
	parsedSource = `package main

type CLI struct{ Name string }

func main(cli CLI) {}
`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestInputs(t *testing.T) {
	t.Setenv(goFileEnv, "")

	_, err := inputs(nil)
	require.ErrorIs(t, err, ErrNoInput)

	files, err := inputs([]string{"a.go", "b.go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "b.go"}, files)

	t.Setenv(goFileEnv, "tool.go")

	files, err = inputs(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"tool.go"}, files)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "main_juicy.go", outputPath("main.go"))
	assert.Equal(t, filepath.Join("cmd", "tool", "gen_juicy.go"),
		outputPath(filepath.Join("cmd", "tool", "gen.go")))
}

func TestReadSource(t *testing.T) {
	src, err := readSource(stdinSource, strings.NewReader("package main\n"))
	require.NoError(t, err)
	assert.Equal(t, stdinName, src.name)
	assert.Equal(t, "package main\n", string(src.data))

	_, err = readSource(filepath.Join(t.TempDir(), "missing.go"), nil)
	require.ErrorIs(t, err, ErrReadSource)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigFrom(t *testing.T) {
	cfg := configFrom(context.Background())
	assert.Equal(t, entry.DefaultTag, cfg.Tag)
	assert.Equal(t, "juicymain", cfg.Generator)
	assert.False(t, cfg.Parser)

	ctx := WithConfig(context.Background(), entry.Config{
		Options: entry.Options{Parser: true},
		Tag:     "juicy",
	})

	cfg = configFrom(ctx)
	assert.True(t, cfg.Parser)
	assert.Equal(t, "juicy", cfg.Tag)
	assert.Equal(t, "juicymain", cfg.Generator)
}

func TestParser(t *testing.T) {
	assert.True(t, ParserKong.Enabled())
	assert.False(t, ParserNone.Enabled())
	assert.False(t, Parser("").Enabled())
}

func TestProcess(t *testing.T) {
	ctx := context.Background()
	cfg := configFrom(ctx)

	t.Run("accepted", func(t *testing.T) {
		var stderr bytes.Buffer

		out, ok, err := process(ctx, cfg, source{"ok.go", []byte(validSource)}, &stderr)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotNil(t, out.Decl)
		assert.Empty(t, stderr.String())
	})

	t.Run("rejected", func(t *testing.T) {
		var stderr bytes.Buffer

		out, ok, err := process(ctx, cfg, source{"srv.go", []byte(receiverSource)}, &stderr)
		require.NoError(t, err)
		assert.False(t, ok)
		require.NotNil(t, out)
		assert.Contains(t, string(out.Source), "receiver is not accepted")
		assert.Contains(t, stderr.String(), "srv.go:6:6:")
	})

	t.Run("fatal", func(t *testing.T) {
		_, ok, err := process(ctx, cfg, source{"none.go", []byte("package main\n")}, &bytes.Buffer{})
		require.ErrorIs(t, err, entry.ErrNoEntryPoint)
		assert.False(t, ok)
	})
}

func TestGen(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "tool.go", validSource)

	require.NoError(t, (&Gen{Files: []string{input}}).Run(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, "tool_juicy.go"))
	require.NoError(t, err)

	got := string(data)
	assert.True(t, strings.HasPrefix(got, "// Code generated by juicymain from tool.go. DO NOT EDIT."))
	assert.NotContains(t, got, "//go:build")
	assert.Contains(t, got, "main(args, env)")
	assert.Contains(t, got, `"github.com/justDeeevin/juicy-main/juicy"`)
}

func TestGen_Output(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "tool.go", validSource)
	target := filepath.Join(dir, "out.go")

	require.NoError(t, (&Gen{Output: target, Files: []string{input}}).Run(context.Background()))
	assert.FileExists(t, target)
	assert.NoFileExists(t, filepath.Join(dir, "tool_juicy.go"))
}

func TestGen_OutputConflicts(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.go", validSource)
	b := writeFile(t, dir, "b.go", validSource)

	err := (&Gen{Output: "x.go", Files: []string{a, b}}).Run(context.Background())
	require.ErrorIs(t, err, ErrOutputConflict)

	err = (&Gen{Output: a, Files: []string{a}}).Run(context.Background())
	require.ErrorIs(t, err, ErrOutputConflict)

	data, err := os.ReadFile(a)
	require.NoError(t, err)
	assert.Equal(t, validSource, string(data))
}

func TestGen_RejectedWritesPlaceholder(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "srv.go", receiverSource)

	err := (&Gen{Files: []string{input}}).Run(context.Background())
	require.ErrorIs(t, err, ErrFailed)
	assert.Contains(t, err.Error(), "1 of 1 files")

	data, err := os.ReadFile(filepath.Join(dir, "srv_juicy.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `var _ struct{} = /*line srv.go:6:5*/ "juicymain: receiver is not accepted"`)
}

func TestGen_PlaceholderNamesInputFromOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "srv.go", receiverSource)
	target := filepath.Join(dir, "out", "srv_gen.go")

	require.NoError(t, os.Mkdir(filepath.Dir(target), 0o755))

	err := (&Gen{Output: target, Files: []string{input}}).Run(context.Background())
	require.ErrorIs(t, err, ErrFailed)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/*line "+filepath.Join("..", "srv.go")+":6:5*/")
}

func TestGen_Target(t *testing.T) {
	assert.Equal(t, "tool_juicy.go", (&Gen{}).target("tool.go"))
	assert.Equal(t, stdinSource, (&Gen{}).target(stdinSource))
	assert.Equal(t, "out.go", (&Gen{Output: "out.go"}).target(stdinSource))
}

func TestGen_Parser(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "cli.go", parsedSource)

	err := (&Gen{Files: []string{input}}).Run(context.Background())
	require.ErrorIs(t, err, ErrFailed)

	ctx := WithConfig(context.Background(), entry.Config{Options: entry.Options{Parser: true}})
	require.NoError(t, (&Gen{Files: []string{input}}).Run(ctx))

	data, err := os.ReadFile(filepath.Join(dir, "cli_juicy.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "kong.Parse(&args)")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.go", validSource)
	bad := writeFile(t, dir, "bad.go", receiverSource)

	require.NoError(t, (&Check{Files: []string{good}}).Run(context.Background()))

	err := (&Check{Files: []string{good, bad}}).Run(context.Background())
	require.ErrorIs(t, err, ErrFailed)
	assert.Contains(t, err.Error(), "1 of 2 files")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDescribe_Marshal(t *testing.T) {
	reports := []Report{{
		File: "tool.go",
		Summary: entry.Summary{
			Env: "mapping", EnvType: "map[string]string",
			Args: "slice", ArgsType: "[]string",
			Order: "args-first", Result: "none",
		},
	}}

	t.Run("json", func(t *testing.T) {
		data, err := (&Describe{Format: "json", Indent: 2}).marshal(context.Background(), reports)
		require.NoError(t, err)

		var got []map[string]string
		require.NoError(t, json.Unmarshal(data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "tool.go", got[0]["file"])
		assert.Equal(t, "args-first", got[0]["order"])
		assert.Equal(t, "[]string", got[0]["args_type"])
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := (&Describe{Format: "yaml", Indent: 2}).marshal(context.Background(), reports)
		require.NoError(t, err)

		var got []map[string]string
		require.NoError(t, yaml.Unmarshal(data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "mapping", got[0]["env"])
		assert.Equal(t, "map[string]string", got[0]["env_type"])
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := (&Describe{Format: "toml"}).marshal(context.Background(), reports)
		require.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func TestDescribe_OmitsAbsentParams(t *testing.T) {
	data, err := (&Describe{Format: "json"}).marshal(context.Background(),
		[]Report{{File: "bare.go", Summary: entry.Summary{Order: "none", Result: "none"}}})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "env")
	assert.NotContains(t, string(data), "args")
}

func TestError(t *testing.T) {
	err := ErrWriteOutput.Wrapf("disk %s", "full")

	assert.Equal(t, "write output: disk full", err.Error())
	assert.ErrorIs(t, err, ErrWriteOutput)
	assert.NotErrorIs(t, err, ErrReadSource)
	assert.Equal(t, "write output", ErrWriteOutput.Error())
}
