//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"
)

// Modes returns the sorted names of the supported profiling modes.
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(mode))
	},
)

var mode = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// Option adds settings to a control.
type Option func(control) control

type control struct {
	opts []func(*profile.Profile)
}

func apply(c control, opts ...Option) control {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

func start(m, path string, quiet bool) interface{ Stop() } {
	c := apply(control{}, withMode(m))
	if len(c.opts) == 0 {
		return ignore{}
	}

	// NoShutdownHook leaves signal handling to the command's context.
	c = apply(c, withPath(path), withQuiet(quiet), withOption(profile.NoShutdownHook))

	return profile.Start(c.opts...)
}

func withMode(m string) Option {
	return func(c control) control {
		if fn, ok := mode[m]; ok {
			c.opts = append(c.opts, fn)
		}

		return c
	}
}

func withPath(p string) Option {
	return func(c control) control {
		if p != "" {
			c.opts = append(c.opts, profile.ProfilePath(p))
		}

		return c
	}
}

func withQuiet(v bool) Option {
	return func(c control) control {
		if v {
			c.opts = append(c.opts, profile.Quiet)
		}

		return c
	}
}

func withOption(fn func(*profile.Profile)) Option {
	return func(c control) control {
		c.opts = append(c.opts, fn)

		return c
	}
}
