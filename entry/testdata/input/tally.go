//go:build ignore

// Command tally counts its arguments.
package main

import (
	"errors"
	"fmt"

	"github.com/justDeeevin/juicy-main/juicy"
)

//juicy:main
func main(args juicy.Args, env juicy.Vec[[2]string]) error {
	n := 0
	for range args {
		n++
	}
	if n < 2 {
		return errors.New("no arguments")
	}
	// Report both counts.
	fmt.Println(n-1, len(env))
	return nil
}
