package entry

import (
	"errors"
	"go/ast"
	"go/token"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
//
// Errors found in the entry point itself are reported as a [*Diagnostic]
// wrapping one of these, so errors.Is works on either.
var (
	ErrInvalidEntryPointName     = NewError("invalid entry point name")
	ErrSelfNotAccepted           = NewError("receiver not accepted")
	ErrDuplicateCategory         = NewError("duplicate input category")
	ErrUnrecognizedParameterType = NewError("unrecognized parameter type")
	ErrExternalParserDisabled    = NewError("external parser disabled")
	ErrTypeParams                = NewError("type parameters not accepted")
	ErrInvalidResult             = NewError("invalid result")
	ErrMissingBody               = NewError("missing function body")
	ErrNoEntryPoint              = NewError("no entry point found")
	ErrMultipleEntryPoints       = NewError("multiple entry points")
	ErrParseSource               = NewError("failed to parse source")
	ErrFormatSource              = NewError("failed to format generated source")
)

// Error is an error with optional structured logging attributes.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface. The message is "<msg>: <cause>",
// or whichever of the two is set.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same message, so errors
// derived from a sentinel with Wrap or With still match it.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.msg != "" && t.msg == e.msg
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e wrapping err.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	merged := make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	merged = append(merged, e.attrs...)
	merged = append(merged, attrs...)

	return &Error{msg: e.msg, err: e.err, attrs: merged}
}

// Diagnostic is an error located at a span of the entry point's syntax.
type Diagnostic struct {
	// Err is the sentinel describing the class of failure.
	Err *Error
	// Msg is the user-facing message.
	Msg string
	// Hint is an optional suggestion appended to Msg.
	Hint string

	Pos, End token.Pos
	// Position is the resolved start of the span. It is set by [Rewrite].
	Position token.Position
}

func newDiagnostic(node ast.Node, err *Error, msg string) *Diagnostic {
	return &Diagnostic{
		Err: err,
		Msg: msg,
		Pos: node.Pos(),
		End: node.End(),
	}
}

func (d *Diagnostic) withHint(hint string) *Diagnostic {
	d.Hint = hint

	return d
}

// Message returns the message with its hint, without position.
func (d *Diagnostic) Message() string {
	if d.Hint == "" {
		return d.Msg
	}

	return d.Msg + " (" + d.Hint + ")"
}

// Error implements the error interface in the "file:line:col: message" form
// when the position is known.
func (d *Diagnostic) Error() string {
	if d.Position.IsValid() {
		return d.Position.String() + ": " + d.Message()
	}

	return d.Message()
}

// Unwrap returns the sentinel.
func (d *Diagnostic) Unwrap() error { return d.Err }

// LogValue implements slog.LogValuer.
func (d *Diagnostic) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("error", d.Message()),
		slog.String("kind", d.Err.msg),
	}

	if d.Position.IsValid() {
		attrs = append(attrs,
			slog.String("file", d.Position.Filename),
			slog.Int("line", d.Position.Line),
			slog.Int("column", d.Position.Column),
		)
	}

	return slog.GroupValue(append(attrs, d.Err.attrs...)...)
}
