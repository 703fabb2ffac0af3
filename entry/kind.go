package entry

//go:generate go tool stringer --linecomment --type EnvKind,ArgsKind,Order,Result --output kind_string.go

// EnvKind is the recognized shape of an environment parameter.
type EnvKind int

const (
	EnvSlice    EnvKind = iota // slice
	EnvOwned                   // owned
	EnvIterator                // iterator
	EnvMapping                 // mapping
)

// ArgsKind is the recognized shape of an arguments parameter.
type ArgsKind int

const (
	ArgsSlice    ArgsKind = iota // slice
	ArgsOwned                    // owned
	ArgsIterator                 // iterator
	ArgsParsed                   // parsed
)

// Order is the position of the environment value relative to the arguments
// value in the call to the original entry point.
type Order int

const (
	OrderNone      Order = iota // none
	OrderEnvFirst               // env-first
	OrderArgsFirst              // args-first
)

// Result is the recognized result list of an entry point.
type Result int

const (
	ResultNone  Result = iota // none
	ResultError               // error
)
