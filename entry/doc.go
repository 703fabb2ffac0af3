// Package entry rewrites an entry point that declares its inputs as
// parameters into a standard Go main.
//
// # Input
//
// The function marked with the //juicy:main directive, or else the top-level
// function named main, may declare up to two parameters: one for the process
// environment and one for the command-line arguments. Which is which is
// inferred from the syntax of each parameter type alone.
//
// Environment parameters:
//
//	[][2]string                 EnvSlice
//	Vec[[2]string]              EnvOwned
//	Vars                        EnvIterator
//	HashMap[string, string]     EnvMapping
//	map[string]string           EnvMapping
//
// Argument parameters:
//
//	[]string                    ArgsSlice
//	Vec[string]                 ArgsOwned
//	Args                        ArgsIterator
//	any other named type        ArgsParsed (requires Options.Parser)
//
// Only the final identifier of a type name is compared, so string must be
// spelled string and a local type named Vars is taken for juicy.Vars. Type
// aliases are not seen through.
//
// The entry point may return nothing or a single error.
//
// # Output
//
//	//juicy:main
//	func main(env map[string]string, args []string) {
//		fmt.Println(env["USER"], args[1:])
//	}
//
// becomes
//
//	func main() {
//		env := juicy.EnvMap()
//		args := juicy.ArgList()
//
//		main := func(env map[string]string, args []string) {
//			fmt.Println(env["USER"], args[1:])
//		}
//
//		main(env, args)
//	}
//
// The environment is always initialized before the arguments; the call
// passes them in the order they were declared.
//
// # Diagnostics
//
// Invalid entry points produce a [*Diagnostic] at the offending syntax. The
// rewritten file then holds a placeholder main that fails to type check with
// the same message at the same position, so the build reports it where the
// user wrote it.
package entry
