// Package profile provides optional runtime profiling of juicymain itself,
// backed by [github.com/pkg/profile].
//
// Profiling is compiled in only with the pprof build tag:
//
//	go build -tags pprof ./...
//
// Without the tag, [Modes] is empty and [Config.Start] returns a no-op.
//
//	cfg := profile.Make(
//		profile.WithMode("cpu"),
//		profile.WithPath(dir),
//		profile.WithQuiet(true),
//	)
//	defer cfg.Start().Stop()
package profile
