//go:build ignore

package main

import (
	"fmt"

	"github.com/justDeeevin/juicy-main/juicy"
)

//juicy:main
func main(args []string, env map[string]string) {
	fmt.Println(args[0], env["HOME"])
}
