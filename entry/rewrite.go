package entry

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/format"
	"go/parser"
	"go/token"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

// Directive marks the function to rewrite.
const Directive = "//juicy:main"

// DefaultTag is the build constraint expected on input files.
const DefaultTag = "ignore"

// DefaultGenerator names the tool in generated file headers.
const DefaultGenerator = "juicymain"

// Config controls a file rewrite.
type Config struct {
	Options

	// Tag is a build constraint removed from the output when the input's
	// //go:build line consists of exactly this expression.
	Tag string
	// Generator names the tool in the "Code generated" header and in
	// placeholder diagnostics.
	Generator string
	// OutputDir is the directory the output is written to. Placeholder line
	// directives name the input relative to it. Empty means the output sits
	// next to the input.
	OutputDir string
}

func (c Config) generator() string {
	if c.Generator == "" {
		return DefaultGenerator
	}

	return c.Generator
}

// lineFile returns the name under which a file in OutputDir refers to the
// input filename. The go command resolves relative names in line
// directives against the directory of the file containing them.
func (c Config) lineFile(filename string) string {
	base := filepath.Base(filename)

	if c.OutputDir == "" {
		return base
	}

	from, err := filepath.Abs(c.OutputDir)
	if err != nil {
		return base
	}

	to, err := filepath.Abs(filename)
	if err != nil {
		return base
	}

	rel, err := filepath.Rel(from, to)
	if err != nil {
		return base
	}

	return rel
}

// Output is a rewritten file.
type Output struct {
	// Source is the formatted file. It is set on success and when the entry
	// point failed validation, in which case it holds a placeholder.
	Source []byte
	// Decl is the validated entry point, nil on failure.
	Decl *Declaration
}

// Rewrite locates the entry point in the Go source src and replaces it with
// a zero-parameter main that synthesizes its inputs.
//
// The function marked with [Directive] is the entry point; without a
// directive, the top-level function named main is. When that function fails
// validation, Rewrite returns the [*Diagnostic] along with an Output whose
// main is a placeholder that fails to compile with the same message at the
// same position. Errors that leave no function to replace, such as a
// syntax error in src, return a nil Output.
func Rewrite(filename string, src []byte, cfg Config) (*Output, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src,
		parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, ErrParseSource.Wrap(err)
	}

	fn, directive, err := findEntryPoint(file)
	if err != nil {
		var diag *Diagnostic
		if errors.As(err, &diag) {
			diag.Position = fset.Position(diag.Pos)
		}

		return nil, err
	}

	q, missing := qualifiers(file)

	var (
		body  bytes.Buffer
		diag  *Diagnostic
		decl  *Declaration
		fault error
	)

	decl, fault = Parse(fn, cfg.Options)
	if fault != nil {
		if !errors.As(fault, &diag) {
			return nil, fault
		}

		diag.Position = fset.Position(diag.Pos)

		name := "main"
		if otherMain(file, fn) {
			name = "_"
		}

		err = diag.placeholder(&body, name, cfg.lineFile(filename), cfg.generator())
	} else {
		err = decl.Generate(&body, fset, src, q)
	}

	if err != nil {
		return nil, err
	}

	tokFile := fset.File(file.Pos())
	edits := []edit{{
		start: tokFile.Offset(fn.Pos()),
		end:   tokFile.Offset(fn.End()),
		text:  body.String(),
	}}

	if directive != nil {
		edits = append(edits, deleteLine(tokFile, src, directive))
	}

	for _, c := range buildConstraints(file, cfg.Tag) {
		edits = append(edits, deleteLine(tokFile, src, c))
	}

	header := fmt.Sprintf("// Code generated by %s from %s. DO NOT EDIT.\n\n",
		cfg.generator(), filepath.Base(filename))

	out, err := finish(filename, header+string(apply(src, edits)), decl, missing)
	if err != nil {
		return nil, err
	}

	if diag != nil {
		return &Output{Source: out}, diag
	}

	return &Output{Source: out, Decl: decl}, nil
}

// findEntryPoint returns the function marked with the directive, or the
// top-level main function when none is marked, and the directive comment.
func findEntryPoint(file *ast.File) (*ast.FuncDecl, *ast.Comment, error) {
	var (
		marked    *ast.FuncDecl
		directive *ast.Comment
		fallback  *ast.FuncDecl
	)

	for _, d := range file.Decls {
		fn, ok := d.(*ast.FuncDecl)
		if !ok {
			continue
		}

		if c := directiveOf(fn); c != nil {
			if marked != nil {
				return nil, nil, newDiagnostic(c, ErrMultipleEntryPoints,
					"only one "+Directive+" function is allowed")
			}

			marked, directive = fn, c
		}

		if fallback == nil && fn.Recv == nil && fn.Name.Name == "main" {
			fallback = fn
		}
	}

	switch {
	case marked != nil:
		return marked, directive, nil

	case fallback != nil:
		return fallback, nil, nil

	default:
		return nil, nil, ErrNoEntryPoint
	}
}

// otherMain reports whether file declares a top-level main besides fn.
func otherMain(file *ast.File, fn *ast.FuncDecl) bool {
	for _, d := range file.Decls {
		other, ok := d.(*ast.FuncDecl)
		if ok && other != fn && other.Recv == nil && other.Name.Name == "main" {
			return true
		}
	}

	return false
}

func directiveOf(fn *ast.FuncDecl) *ast.Comment {
	if fn.Doc == nil {
		return nil
	}

	for _, c := range fn.Doc.List {
		rest, ok := strings.CutPrefix(c.Text, Directive)
		if ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t') {
			return c
		}
	}

	return nil
}

// buildConstraints returns the //go:build and // +build lines ahead of the
// package clause whose expression is exactly tag.
func buildConstraints(file *ast.File, tag string) []*ast.Comment {
	if tag == "" {
		return nil
	}

	var found []*ast.Comment

	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			break
		}

		for _, c := range group.List {
			if !constraint.IsGoBuild(c.Text) && !constraint.IsPlusBuild(c.Text) {
				continue
			}

			expr, err := constraint.Parse(c.Text)
			if err == nil && expr.String() == tag {
				found = append(found, c)
			}
		}
	}

	return found
}

// qualifiers returns the local names of the runtime packages in file, and
// the import paths the file does not import yet.
func qualifiers(file *ast.File) (Qualifiers, []string) {
	q := DefaultQualifiers

	var missing []string

	for _, p := range []struct {
		path string
		name *string
	}{
		{JuicyPath, &q.Juicy},
		{KongPath, &q.Kong},
	} {
		name, ok := importName(file, p.path)
		if !ok {
			missing = append(missing, p.path)

			continue
		}

		*p.name = name
	}

	return q, missing
}

// importName returns the name under which file can refer to path.
func importName(file *ast.File, path string) (string, bool) {
	for _, spec := range file.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil || p != path {
			continue
		}

		switch {
		case spec.Name == nil:
			return filepath.Base(path), true

		case spec.Name.Name == "_":
			continue

		case spec.Name.Name == ".":
			return "", true

		default:
			return spec.Name.Name, true
		}
	}

	return "", false
}

// finish parses the spliced source, fixes its imports and formats it.
//
// On success the missing runtime imports the generated code uses are added.
// For a placeholder, imports that only the removed function used are
// blanked so the diagnostic is the only error the build reports.
func finish(
	filename, src string,
	decl *Declaration,
	missing []string,
) ([]byte, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, ErrFormatSource.Wrap(err)
	}

	if decl != nil {
		for _, path := range missing {
			if decl.uses(path) {
				astutil.AddImport(fset, file, path)
			}
		}
	} else {
		for _, spec := range file.Imports {
			p, err := strconv.Unquote(spec.Path.Value)
			if err != nil || spec.Name != nil &&
				(spec.Name.Name == "_" || spec.Name.Name == ".") {
				continue
			}

			if !astutil.UsesImport(file, p) {
				spec.Name = ast.NewIdent("_")
			}
		}
	}

	var buf bytes.Buffer

	err = format.Node(&buf, fset, file)
	if err != nil {
		return nil, ErrFormatSource.Wrap(err)
	}

	return buf.Bytes(), nil
}

// uses reports whether the generated code for d refers to the package at path.
func (d *Declaration) uses(path string) bool {
	switch path {
	case JuicyPath:
		return d.Env != nil || d.Result == ResultError ||
			d.Args != nil && d.Args.Kind != ArgsParsed

	case KongPath:
		return d.Args != nil && d.Args.Kind == ArgsParsed
	}

	return false
}

// placeholder writes a function named name that parses but fails type
// checking, reporting the diagnostic at its original position in file.
//
// The printer separates a block comment from the following token with a
// space, and a line directive positions the character right after it, so
// the directive names the column before the diagnostic's.
func (d *Diagnostic) placeholder(w *bytes.Buffer, name, file, generator string) error {
	pos := file + ":" + strconv.Itoa(d.Position.Line)
	if d.Position.Column > 1 {
		pos += ":" + strconv.Itoa(d.Position.Column-1)
	}

	_, err := fmt.Fprintf(w,
		"func %s() {\n\tvar _ struct{} = /*line %s*/ %s\n}\n",
		name, pos, strconv.Quote(generator+": "+d.Message()),
	)

	return err
}

// edit replaces src[start:end] with text.
type edit struct {
	start, end int
	text       string
}

// deleteLine removes the comment c along with the line break that ends it.
func deleteLine(file *token.File, src []byte, c *ast.Comment) edit {
	start, end := file.Offset(c.Pos()), file.Offset(c.End())
	if end < len(src) && src[end] == '\n' {
		end++
	}

	return edit{start: start, end: end}
}

// apply performs non-overlapping edits on a copy of src.
func apply(src []byte, edits []edit) []byte {
	slices.SortFunc(edits, func(a, b edit) int { return b.start - a.start })

	out := slices.Clone(src)
	for _, e := range edits {
		out = slices.Concat(out[:e.start], []byte(e.text), out[e.end:])
	}

	return out
}
