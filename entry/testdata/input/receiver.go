//go:build ignore

package main

type server struct{}

//juicy:main
func (s *server) main(port int) {
	_ = port
}
