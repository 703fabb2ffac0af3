package entry

import (
	"go/ast"
	"go/types"
)

// Options controls which parameter shapes are legal.
type Options struct {
	// Parser enables [ArgsParsed] parameters, which the generated code
	// fills in with kong.Parse.
	Parser bool
}

// EnvParam is a recognized environment parameter.
type EnvParam struct {
	Kind EnvKind
	// Type is the declared type expression.
	Type ast.Expr
	// Index is the zero-based position among all declared parameters.
	Index int
}

// ArgsParam is a recognized arguments parameter.
type ArgsParam struct {
	Kind  ArgsKind
	Type  ast.Expr
	Index int
}

// Declaration is a validated entry point. It is built by [Parse] and not
// modified afterwards.
type Declaration struct {
	// Func is the original declaration, used verbatim for the nested body.
	Func *ast.FuncDecl

	Env    *EnvParam
	Args   *ArgsParam
	Result Result
}

// Parse validates fn as an entry point and classifies its parameters.
//
// Failures are returned as a [*Diagnostic] located at the offending syntax.
// Parse performs no I/O.
func Parse(fn *ast.FuncDecl, opts Options) (*Declaration, error) {
	if fn.Name.Name != "main" {
		return nil, newDiagnostic(fn.Name, ErrInvalidEntryPointName,
			"expected main")
	}

	if fn.Type.TypeParams != nil && len(fn.Type.TypeParams.List) > 0 {
		return nil, newDiagnostic(fn.Type.TypeParams, ErrTypeParams,
			"type parameters are not accepted")
	}

	if fn.Recv != nil {
		return nil, newDiagnostic(fn.Recv, ErrSelfNotAccepted,
			"receiver is not accepted")
	}

	if fn.Body == nil {
		return nil, newDiagnostic(fn, ErrMissingBody,
			"expected a function body")
	}

	decl := &Declaration{Func: fn}

	index := 0

	for _, field := range fn.Type.Params.List {
		// An unnamed parameter is one parameter; "a, b T" is two.
		for range max(len(field.Names), 1) {
			err := decl.add(field.Type, index, opts)
			if err != nil {
				return nil, err
			}

			index++
		}
	}

	result, err := parseResult(fn.Type.Results)
	if err != nil {
		return nil, err
	}

	decl.Result = result

	return decl, nil
}

// add classifies one parameter. The environment shapes take priority over
// the arguments shapes.
func (d *Declaration) add(typ ast.Expr, index int, opts Options) error {
	if kind, ok := MatchEnv(typ); ok {
		if d.Env != nil {
			return newDiagnostic(typ, ErrDuplicateCategory,
				"only one env input is allowed")
		}

		d.Env = &EnvParam{Kind: kind, Type: typ, Index: index}

		return nil
	}

	if kind, ok := MatchArgs(typ); ok {
		if kind == ArgsParsed && !opts.Parser {
			return newDiagnostic(typ, ErrExternalParserDisabled,
				"command-line parsing with kong is not enabled").
				withHint(suggest(typ))
		}

		if d.Args != nil {
			return newDiagnostic(typ, ErrDuplicateCategory,
				"only one args input is allowed")
		}

		d.Args = &ArgsParam{Kind: kind, Type: typ, Index: index}

		return nil
	}

	return newDiagnostic(typ, ErrUnrecognizedParameterType, expectedOneOf).
		withHint(suggest(typ))
}

// parseResult accepts no results or a single error.
func parseResult(results *ast.FieldList) (Result, error) {
	if results == nil || len(results.List) == 0 {
		return ResultNone, nil
	}

	if len(results.List) == 1 && len(results.List[0].Names) <= 1 {
		if id, ok := ast.Unparen(results.List[0].Type).(*ast.Ident); ok &&
			id.Name == "error" {
			return ResultError, nil
		}
	}

	return ResultNone, newDiagnostic(results, ErrInvalidResult,
		"expected no results or a single error")
}

// Order returns the calling order of the synthesized values.
func (d *Declaration) Order() Order {
	return resolveOrder(d.Env, d.Args)
}

// resolveOrder derives the order from the source positions of the
// recognized parameters.
func resolveOrder(env *EnvParam, args *ArgsParam) Order {
	switch {
	case env == nil && args == nil:
		return OrderNone

	case args == nil:
		return OrderEnvFirst

	case env == nil:
		return OrderArgsFirst

	case env.Index < args.Index:
		return OrderEnvFirst

	default:
		return OrderArgsFirst
	}
}

// Summary is a flat description of a Declaration for reports.
type Summary struct {
	Env      string `json:"env,omitempty"       yaml:"env,omitempty"`
	EnvType  string `json:"env_type,omitempty"  yaml:"env_type,omitempty"`
	Args     string `json:"args,omitempty"      yaml:"args,omitempty"`
	ArgsType string `json:"args_type,omitempty" yaml:"args_type,omitempty"`
	Order    string `json:"order"               yaml:"order"`
	Result   string `json:"result"              yaml:"result"`
}

// Summary describes d.
func (d *Declaration) Summary() Summary {
	s := Summary{
		Order:  d.Order().String(),
		Result: d.Result.String(),
	}

	if d.Env != nil {
		s.Env = d.Env.Kind.String()
		s.EnvType = types.ExprString(d.Env.Type)
	}

	if d.Args != nil {
		s.Args = d.Args.Kind.String()
		s.ArgsType = types.ExprString(d.Args.Type)
	}

	return s
}
