// Command juicymain rewrites a Go entry point that declares its environment
// and arguments as parameters into a standard zero-parameter main.
//
// Typical use is a go:generate directive in the package of the input file:
//
//	//go:generate go run github.com/justDeeevin/juicy-main gen main_src.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/justDeeevin/juicy-main/cli"
	"github.com/justDeeevin/juicy-main/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)

	stop()

	if err != nil {
		log.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
