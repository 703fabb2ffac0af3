//go:build ignore

package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Name string `help:"Who to greet." required:""`
}

//juicy:main
func main(args CLI) {
	fmt.Printf("Hello, %s!\n", args.Name)
}
