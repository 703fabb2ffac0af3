//go:build ignore

package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type env struct {
	Verbose bool `short:"v"`
}

//juicy:main
func main(vars map[string]string, opts env) {
	if opts.Verbose {
		fmt.Println(len(vars))
	}
}
