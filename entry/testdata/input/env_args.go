//go:build ignore

package main

import (
	"fmt"

	"github.com/justDeeevin/juicy-main/juicy"
)

//juicy:main
func main(env map[string]string, args []string) {
	fmt.Println(env["HOME"], args[0])
}
