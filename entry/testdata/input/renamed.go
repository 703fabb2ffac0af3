//go:build ignore

package main

import "os"

func main() {}

//juicy:main
func run(args []string) {
	os.Exit(len(args))
}
