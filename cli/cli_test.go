package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justDeeevin/juicy-main/cli/cmd"
	"github.com/justDeeevin/juicy-main/log"
)

const envArgsSource = `//go:build ignore

package main

import "fmt"

//juicy:main
func main(env map[string]string, args []string) {
	fmt.Println(env["HOME"], args)
}
`

const parsedSource = `//go:build ignore

package main

import "fmt"

type CLI struct {
	Name string ` + "`required:\"\"`" + `
}

//juicy:main
func main(args CLI) {
	fmt.Println(args.Name)
}
`

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "juicymain-cli")
	if err != nil {
		panic(err)
	}

	// Keep user configuration out of the tests.
	os.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	os.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	os.Unsetenv("GOFILE")

	log.Config(log.WithDefaults(nil))

	code := m.Run()

	os.RemoveAll(dir)
	os.Exit(code)
}

// exited is the panic value of the exit function used in tests.
type exited int

// workspace changes to a new directory holding the given files.
func workspace(t *testing.T, files map[string]string) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
}

func invoke(t *testing.T, args ...string) (stdout, stderr string, code int, err error) {
	t.Helper()

	var out, errOut bytes.Buffer

	code = -1

	func() {
		defer func() {
			if r := recover(); r != nil {
				c, ok := r.(exited)
				if !ok {
					panic(r)
				}

				code = int(c)
			}
		}()

		err = run(context.Background(), func(c int) { panic(exited(c)) },
			&out, &errOut, args...)
	}()

	return out.String(), errOut.String(), code, err
}

func TestRun_Gen(t *testing.T) {
	workspace(t, map[string]string{"main.go": envArgsSource})

	_, stderr, _, err := invoke(t, "gen", "main.go")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile("main_juicy.go")
	require.NoError(t, err)

	got := string(data)
	assert.Contains(t, got, "// Code generated by juicymain from main.go. DO NOT EDIT.")
	assert.Contains(t, got, "env := juicy.EnvMap()")
	assert.Contains(t, got, "args := juicy.ArgList()")
	assert.Contains(t, got, `"github.com/justDeeevin/juicy-main/juicy"`)
	assert.NotContains(t, got, "//go:build ignore")
	assert.NotContains(t, got, "//juicy:main")
}

func TestRun_GenStdout(t *testing.T) {
	workspace(t, map[string]string{"main.go": envArgsSource})

	stdout, _, _, err := invoke(t, "gen", "-o", "-", "main.go")
	require.NoError(t, err)
	assert.Contains(t, stdout, "main(env, args)")

	_, err = os.Stat("main_juicy.go")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_GenGoFile(t *testing.T) {
	workspace(t, map[string]string{"main.go": envArgsSource})
	t.Setenv("GOFILE", "main.go")

	_, _, _, err := invoke(t, "gen")
	require.NoError(t, err)

	assert.FileExists(t, "main_juicy.go")
}

func TestRun_Describe(t *testing.T) {
	workspace(t, map[string]string{"main.go": envArgsSource})

	stdout, _, _, err := invoke(t, "describe", "-f", "json", "main.go")
	require.NoError(t, err)

	var reports []map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, 1)

	assert.Equal(t, map[string]string{
		"file":      "main.go",
		"env":       "mapping",
		"env_type":  "map[string]string",
		"args":      "slice",
		"args_type": "[]string",
		"order":     "env-first",
		"result":    "none",
	}, reports[0])
}

func TestRun_CheckRejected(t *testing.T) {
	workspace(t, map[string]string{"main.go": parsedSource})

	_, stderr, _, err := invoke(t, "check", "main.go")
	require.ErrorIs(t, err, cmd.ErrFailed)
	assert.Contains(t, err.Error(), "1 of 1 files")
	assert.Contains(t, stderr, "main.go:12:16: error: command-line parsing with kong is not enabled")
}

func TestRun_ParserFromFlag(t *testing.T) {
	workspace(t, map[string]string{"main.go": parsedSource})

	_, _, _, err := invoke(t, "--parser=kong", "check", "main.go")
	require.NoError(t, err)
}

func TestRun_ParserFromEnv(t *testing.T) {
	workspace(t, map[string]string{"main.go": parsedSource})
	t.Setenv("JUICYMAIN_PARSER", "kong")

	_, _, _, err := invoke(t, "check", "main.go")
	require.NoError(t, err)
}

func TestRun_ParserFromLocalConfig(t *testing.T) {
	workspace(t, map[string]string{
		"main.go":         parsedSource,
		".juicymain.yaml": "parser: kong\n",
	})

	_, _, _, err := invoke(t, "check", "main.go")
	require.NoError(t, err)
}

func TestRun_UnknownConfigKey(t *testing.T) {
	workspace(t, map[string]string{
		"main.go":         envArgsSource,
		".juicymain.yaml": "parsr: kong\n",
	})

	_, _, _, err := invoke(t, "check", "main.go")
	require.ErrorIs(t, err, ErrConfig)
}

func TestRun_Version(t *testing.T) {
	workspace(t, nil)

	stdout, _, code, _ := invoke(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "juicymain ")
}

func TestRun_NoInput(t *testing.T) {
	workspace(t, nil)

	_, _, _, err := invoke(t, "check")
	require.ErrorIs(t, err, cmd.ErrNoInput)
}
