// Package cmd implements the juicymain subcommands.
//
//   - gen rewrites each input into <name>_juicy.go, or the -o target.
//   - check validates entry points and writes nothing.
//   - describe prints the classification of each entry point as YAML or JSON.
//
// Every command reads the files named on the command line, or the file
// named by $GOFILE when run from a go:generate directive. Rejected entry
// points are printed to stderr with the offending span underlined, and the
// command fails after processing every file.
package cmd

var (
	// CacheIdentifier is the kong variable holding the cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable holding the configuration file
	// path.
	ConfigIdentifier = "config"
)
