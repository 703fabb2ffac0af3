package juicy

import (
	"fmt"
	"iter"
	"os"
	"strings"
)

// Vars is a lazy sequence of environment variables as key/value pairs.
type Vars = iter.Seq2[string, string]

// Args is a lazy sequence of command-line arguments, program name first.
type Args = iter.Seq[string]

// Vec is an owned sequence of values.
type Vec[T any] []T

// HashMap is a key-unique mapping.
type HashMap[K comparable, V any] map[K]V

// exit terminates the process. Replaced in tests.
var exit = os.Exit

// EnvPairs returns the process environment as key/value pairs in the order
// reported by [os.Environ]. Entries without a '=' are skipped.
func EnvPairs() [][2]string {
	environ := os.Environ()
	pairs := make([][2]string, 0, len(environ))

	for key, value := range EnvIter() {
		pairs = append(pairs, [2]string{key, value})
	}

	return pairs
}

// EnvMap returns the process environment as a map. When a key repeats, the
// last value wins.
func EnvMap() map[string]string {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for key, value := range EnvIter() {
		env[key] = value
	}

	return env
}

// EnvIter returns an iterator over the process environment. The environment
// is read when iteration starts, not when EnvIter is called.
func EnvIter() Vars {
	return func(yield func(string, string) bool) {
		for _, entry := range os.Environ() {
			key, value, ok := strings.Cut(entry, "=")
			if !ok {
				continue
			}

			if !yield(key, value) {
				return
			}
		}
	}
}

// ArgList returns a copy of the command-line arguments, program name first.
func ArgList() []string {
	return append([]string(nil), os.Args...)
}

// ArgIter returns an iterator over the command-line arguments, program name
// first.
func ArgIter() Args {
	return func(yield func(string) bool) {
		for _, arg := range os.Args {
			if !yield(arg) {
				return
			}
		}
	}
}

// Exit reports err on stderr and exits with status 1 if err is non-nil.
// It returns normally otherwise.
func Exit(err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exit(1)
}
