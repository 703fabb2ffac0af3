// Package cli contains the command line interface for juicymain.
//
// # Usage
//
//	juicymain [flags] gen [-o PATH] [file ...]
//	juicymain [flags] check [file ...]
//	juicymain [flags] describe [-f yaml|json] [file ...]
//
// Without file arguments the commands read the file named by $GOFILE. Input
// files are usually excluded from the build with //go:build ignore and named
// by a directive in another file of the package:
//
//	//go:generate go run github.com/justDeeevin/juicy-main gen main_src.go
//
// # Configuration
//
// Every long flag can be set in a YAML file, read from
// $XDG_CONFIG_HOME/juicymain/config.yaml and ./.juicymain.yaml, or from
// config.json in the same directory, or from an environment variable named
// JUICYMAIN_<FLAG>:
//
//	parser: kong
//	log:
//	  level: debug
//
// Command-line flags take precedence. Unknown keys are an error.
//
// # Logging Options
//
//   - --log-level: trace, debug, info, warn (default) or error
//   - --log-format: text (default) or json
//   - --log-time-layout: named time layout, custom layout or "none"
//   - --[no-]log-caller: include caller information
//   - --[no-]log-pretty: style text output on terminals
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
// The profiling flags are:
//
//   - --pprof-mode: allocs, block, clock, cpu, goroutine, heap, mem, mutex,
//     thread or trace
//   - --pprof-dir: profile output directory
package cli
