// Package juicy is the runtime side of juicymain.
//
// Code generated by juicymain imports this package to collect the process
// environment and command-line arguments into whichever shape the original
// entry point declared. The types [Vars], [Args], [Vec] and [HashMap] are
// also the names the generator recognizes, so a program can spell its
// parameters with them directly:
//
//	//juicy:main
//	func main(env juicy.HashMap[string, string], args juicy.Args) {
//		for arg := range args {
//			fmt.Println(arg, env["HOME"])
//		}
//	}
//
// Recognition is by name only. Any locally declared type called Vars, Args,
// Vec or HashMap is treated the same as the ones declared here.
package juicy
