//go:build ignore

package main

//juicy:main
func main() {
	println("hi")
}
