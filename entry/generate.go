package entry

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"io"
	"strconv"
	"strings"
)

// Import paths of the packages generated code calls into.
const (
	JuicyPath = "github.com/justDeeevin/juicy-main/juicy"
	KongPath  = "github.com/alecthomas/kong"
)

// Identifiers bound to the synthesized values.
const (
	envIdent  = "env"
	argsIdent = "args"
)

// Qualifiers are the local package names generated code uses for the juicy
// runtime and kong. An empty name means the package is dot-imported.
type Qualifiers struct {
	Juicy string
	Kong  string
}

// DefaultQualifiers are the package names used when the file does not
// already import the packages.
var DefaultQualifiers = Qualifiers{Juicy: "juicy", Kong: "kong"}

func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}

	return pkg + "." + name
}

// Generate writes the replacement entry point: the original function bound
// to a local named main, the initialization of each synthesized value, and
// the call to it.
//
// The function literal comes first so the locals env and args are not in
// scope inside the original body.
//
// src must be the source d.Func was parsed from, positioned by fset. The
// original parameter list, results and body are copied from it verbatim.
func (d *Declaration) Generate(
	w io.Writer,
	fset *token.FileSet,
	src []byte,
	q Qualifiers,
) error {
	closure, err := d.closure(fset, src)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	buf.WriteString("func main() {\n")
	fmt.Fprintf(&buf, "\tmain := func%s\n\n", closure)

	init := d.init(q)
	for _, stmt := range init {
		fmt.Fprintf(&buf, "\t%s\n", stmt)
	}

	if len(init) > 0 {
		buf.WriteString("\n")
	}

	fmt.Fprintf(&buf, "\t%s\n", d.call(q))
	buf.WriteString("}\n")

	_, err = w.Write(buf.Bytes())

	return err
}

// init returns the statements initializing the synthesized values. The
// environment comes first unless the arguments type names env, which the
// environment local would shadow.
func (d *Declaration) init(q Qualifiers) []string {
	var env, args []string

	if d.Env != nil {
		env = d.Env.init(q)
	}

	if d.Args != nil {
		args = d.Args.init(q)

		if refersTo(d.Args.Type, envIdent) {
			return append(args, env...)
		}
	}

	return append(env, args...)
}

// refersTo reports whether expr uses name as an unqualified identifier.
func refersTo(expr ast.Expr, name string) bool {
	found := false

	ast.Inspect(expr, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			found = found || refersTo(n.X, name)

			return false

		case *ast.Ident:
			found = found || n.Name == name
		}

		return !found
	})

	return found
}

// closure returns the source text from the opening parenthesis of the
// parameter list through the closing brace of the body.
func (d *Declaration) closure(fset *token.FileSet, src []byte) (string, error) {
	file := fset.File(d.Func.Pos())
	if file == nil {
		return "", ErrFormatSource.Wrap(
			fmt.Errorf("declaration of %s has no position", d.Func.Name.Name))
	}

	start := file.Offset(d.Func.Type.Params.Opening)
	end := file.Offset(d.Func.Body.Rbrace) + 1

	if start < 0 || end > len(src) || start >= end {
		return "", ErrFormatSource.Wrap(
			fmt.Errorf("declaration span [%d,%d) outside source", start, end))
	}

	return string(src[start:end]), nil
}

// call returns the call of the nested entry point with the synthesized
// identifiers in declaration order.
func (d *Declaration) call(q Qualifiers) string {
	var params []string

	switch d.Order() {
	case OrderNone:

	case OrderEnvFirst:
		params = append(params, envIdent)
		if d.Args != nil {
			params = append(params, argsIdent)
		}

	case OrderArgsFirst:
		params = append(params, argsIdent)
		if d.Env != nil {
			params = append(params, envIdent)
		}
	}

	call := "main(" + strings.Join(params, ", ") + ")"

	if d.Result == ResultError {
		call = qualify(q.Juicy, "Exit") + "(" + call + ")"
	}

	return call
}

func (p *EnvParam) init(q Qualifiers) []string {
	var src string

	switch p.Kind {
	case EnvSlice, EnvOwned:
		src = qualify(q.Juicy, "EnvPairs") + "()"

	case EnvIterator:
		src = qualify(q.Juicy, "EnvIter") + "()"

	case EnvMapping:
		src = qualify(q.Juicy, "EnvMap") + "()"

	default:
		panic("internal error: unknown env kind " + strconv.Itoa(int(p.Kind)))
	}

	return []string{envIdent + " := " + convert(p.Type, src)}
}

func (p *ArgsParam) init(q Qualifiers) []string {
	var src string

	switch p.Kind {
	case ArgsSlice, ArgsOwned:
		src = qualify(q.Juicy, "ArgList") + "()"

	case ArgsIterator:
		src = qualify(q.Juicy, "ArgIter") + "()"

	case ArgsParsed:
		return []string{
			"var " + argsIdent + " " + types.ExprString(p.Type),
			qualify(q.Kong, "Parse") + "(&" + argsIdent + ")",
		}

	default:
		panic("internal error: unknown args kind " + strconv.Itoa(int(p.Kind)))
	}

	return []string{argsIdent + " := " + convert(p.Type, src)}
}

// convert returns src converted to the declared type when that type is named,
// and src as is when the declared type is a slice or map literal the runtime
// already returns.
func convert(typ ast.Expr, src string) string {
	switch ast.Unparen(typ).(type) {
	case *ast.ArrayType, *ast.MapType:
		return src
	}

	return types.ExprString(typ) + "(" + src + ")"
}
