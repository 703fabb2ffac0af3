//go:build ignore

// Command shadow prints package state next to its inputs.
package main

import (
	"fmt"

	"github.com/justDeeevin/juicy-main/juicy"
)

var args = "package-level"

func env() string { return "package-level" }

//juicy:main
func main(a []string, e juicy.Vars) {
	n := 0
	for range e {
		n++
	}

	fmt.Println("args =", args, "env =", env(), len(a), n)
}
