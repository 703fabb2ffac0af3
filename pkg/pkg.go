// Package pkg holds identity and filesystem locations shared by the
// juicymain command.
//
//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of juicymain embedded at build time.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It names the tool in generated file headers,
	// the configuration directory and the environment variable prefix.
	Name = "juicymain"
	// Description is a short summary of the command used in help output.
	Description = "Generate a zero-parameter main from an entry point " +
		"that declares its environment and arguments"
)

// EnvPrefix prefixes the environment variables that set flags, such as
// JUICYMAIN_PARSER for --parser.
const EnvPrefix = "JUICYMAIN"
