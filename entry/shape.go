package entry

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sahilm/fuzzy"
)

// Type names the matchers recognize. Only the final identifier of a type
// name is compared, so a local type named Vars matches exactly like
// juicy.Vars.
const (
	nameString  = "string"
	nameVec     = "Vec"
	nameHashMap = "HashMap"
	nameVars    = "Vars"
	nameArgs    = "Args"
)

// expectedOneOf lists the accepted parameter shapes in diagnostics.
const expectedOneOf = "invalid input: expected one of " +
	"[][2]string, Vec[[2]string], Vars, HashMap[string, string] or " +
	"map[string]string for the environment, " +
	"[]string, Vec[string], Args or a command-line struct for the arguments"

// MatchEnv classifies typ as an environment parameter shape. It reports
// false, never an error, when typ has none of the shapes.
func MatchEnv(typ ast.Expr) (EnvKind, bool) {
	switch t := ast.Unparen(typ).(type) {
	case *ast.ArrayType:
		if t.Len == nil && isPair(t.Elt) {
			return EnvSlice, true
		}

	case *ast.MapType:
		if isString(t.Key) && isString(t.Value) {
			return EnvMapping, true
		}

	case *ast.Ident, *ast.SelectorExpr:
		if name, _ := typeName(t); name == nameVars {
			return EnvIterator, true
		}

	case *ast.IndexExpr, *ast.IndexListExpr:
		name, args, _ := instance(t)

		switch {
		case name == nameVec && len(args) == 1 && isPair(args[0]):
			return EnvOwned, true

		case name == nameHashMap && len(args) == 2 &&
			isString(args[0]) && isString(args[1]):
			return EnvMapping, true
		}
	}

	return 0, false
}

// MatchArgs classifies typ as an arguments parameter shape. Any named type
// that is not predeclared and has no other arguments shape is [ArgsParsed].
func MatchArgs(typ ast.Expr) (ArgsKind, bool) {
	switch t := ast.Unparen(typ).(type) {
	case *ast.ArrayType:
		if t.Len == nil && isString(t.Elt) {
			return ArgsSlice, true
		}

	case *ast.Ident:
		if t.Name == nameArgs {
			return ArgsIterator, true
		}

		if !isPredeclared(t.Name) {
			return ArgsParsed, true
		}

	case *ast.SelectorExpr:
		if t.Sel.Name == nameArgs {
			return ArgsIterator, true
		}

		return ArgsParsed, true

	case *ast.IndexExpr, *ast.IndexListExpr:
		name, args, ok := instance(t)
		if !ok {
			break
		}

		if name == nameVec && len(args) == 1 && isString(args[0]) {
			return ArgsOwned, true
		}

		return ArgsParsed, true
	}

	return 0, false
}

// typeName returns the final identifier of a possibly qualified type name.
func typeName(expr ast.Expr) (string, bool) {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name, true

	case *ast.SelectorExpr:
		return t.Sel.Name, true
	}

	return "", false
}

// instance splits an instantiated generic type into the final identifier of
// its name and its type arguments.
func instance(expr ast.Expr) (string, []ast.Expr, bool) {
	var (
		base ast.Expr
		args []ast.Expr
	)

	switch t := expr.(type) {
	case *ast.IndexExpr:
		base, args = t.X, []ast.Expr{t.Index}

	case *ast.IndexListExpr:
		base, args = t.X, t.Indices

	default:
		return "", nil, false
	}

	name, ok := typeName(base)

	return name, args, ok
}

// isString reports whether expr is spelled string, ignoring any qualifier.
func isString(expr ast.Expr) bool {
	name, ok := typeName(ast.Unparen(expr))

	return ok && name == nameString
}

// isPair reports whether expr is the array type [2]string.
func isPair(expr ast.Expr) bool {
	arr, ok := ast.Unparen(expr).(*ast.ArrayType)
	if !ok || arr.Len == nil {
		return false
	}

	lit, ok := arr.Len.(*ast.BasicLit)

	return ok && lit.Kind == token.INT && lit.Value == "2" && isString(arr.Elt)
}

// isPredeclared reports whether name is one of the universe scope types.
func isPredeclared(name string) bool {
	_, ok := types.Universe.Lookup(name).(*types.TypeName)

	return ok
}

// suggest returns a hint naming the recognized type closest to the name at
// the core of typ, if there is one.
func suggest(typ ast.Expr) string {
	core := typ

	for {
		switch t := core.(type) {
		case *ast.ParenExpr:
			core = t.X

			continue

		case *ast.StarExpr:
			core = t.X

			continue

		case *ast.Ellipsis:
			core = t.Elt

			continue
		}

		break
	}

	name, ok := typeName(core)
	if !ok {
		name, _, ok = instance(core)
	}

	if !ok || name == "" {
		return ""
	}

	matches := fuzzy.Find(name, []string{nameVars, nameArgs, nameVec, nameHashMap})
	if len(matches) == 0 {
		return ""
	}

	return "did you mean " + matches[0].Str + "?"
}
