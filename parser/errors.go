package parser

import (
	"fmt"
	"strings"

	"github.com/bobascript/boba/token"
	"github.com/hashicorp/go-multierror"
)

// ParserError is an error that occurred during parsing.
type ParserError interface {
	error

	// Type of the error, e.g. "syntax error".
	Type() string

	// Message containing a human friendly description of the fault.
	Message() string

	// Cause of the error, if it wraps a lower level error.
	Cause() error

	// File in which the error occurred, if known.
	File() string

	// StartPosition of the faulty source code.
	StartPosition() token.Position

	// EndPosition of the faulty source code.
	EndPosition() token.Position

	// SourceCode of the line containing the fault.
	SourceCode() string
}

// ErrorOpts configures a new parser error.
type ErrorOpts struct {
	ErrType       string
	Message       string
	Cause         error
	File          string
	StartPosition token.Position
	EndPosition   token.Position
	SourceCode    string
}

type baseParserError struct {
	errType       string
	message       string
	cause         error
	file          string
	startPosition token.Position
	endPosition   token.Position
	sourceCode    string
}

func (e *baseParserError) Type() string                  { return e.errType }
func (e *baseParserError) Message() string               { return e.message }
func (e *baseParserError) Cause() error                  { return e.cause }
func (e *baseParserError) File() string                  { return e.file }
func (e *baseParserError) StartPosition() token.Position { return e.startPosition }
func (e *baseParserError) EndPosition() token.Position   { return e.endPosition }
func (e *baseParserError) SourceCode() string            { return e.sourceCode }
func (e *baseParserError) Unwrap() error                 { return e.cause }

func (e *baseParserError) Error() string {
	var out strings.Builder
	out.WriteString(e.message)
	if e.file != "" || e.sourceCode != "" {
		out.WriteString(fmt.Sprintf(" (line %d, column %d)",
			e.startPosition.LineNumber(), e.startPosition.ColumnNumber()))
	}
	return out.String()
}

// SyntaxError is a ParserError describing invalid syntax.
type SyntaxError struct {
	*baseParserError
}

// NewSyntaxError returns a new SyntaxError with the given options.
func NewSyntaxError(opts ErrorOpts) *SyntaxError {
	message := opts.Message
	if message == "" && opts.Cause != nil {
		message = opts.Cause.Error()
	}
	errType := opts.ErrType
	if errType == "" {
		errType = "syntax error"
	}
	return &SyntaxError{&baseParserError{
		errType:       errType,
		message:       message,
		cause:         opts.Cause,
		file:          opts.File,
		startPosition: opts.StartPosition,
		endPosition:   opts.EndPosition,
		sourceCode:    opts.SourceCode,
	}}
}

// Errors aggregates the parser errors found in one parse. It implements
// error, and Unwrap returns the individual errors so errors.Is and
// errors.As see through it.
type Errors struct {
	errs []ParserError
}

// NewErrors returns an Errors wrapping the given parser errors.
func NewErrors(errs []ParserError) *Errors {
	return &Errors{errs: errs}
}

func (e *Errors) Error() string {
	if len(e.errs) == 0 {
		return "no errors"
	}
	if len(e.errs) == 1 {
		return e.errs[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)",
		e.errs[0].Error(), len(e.errs)-1)
}

// Errors returns the individual parser errors, in source order.
func (e *Errors) Errors() []ParserError {
	return e.errs
}

// Count returns the number of errors.
func (e *Errors) Count() int {
	return len(e.errs)
}

// First returns the first error.
func (e *Errors) First() ParserError {
	if len(e.errs) == 0 {
		return nil
	}
	return e.errs[0]
}

// Unwrap supports errors.Is and errors.As for the wrapped errors.
func (e *Errors) Unwrap() []error {
	errs := make([]error, len(e.errs))
	for i, err := range e.errs {
		errs[i] = err
	}
	return errs
}

// Group returns the errors combined into a single multierror value, for
// callers that want a flat list with the standard multierror formatting.
func (e *Errors) Group() error {
	var result *multierror.Error
	for _, err := range e.errs {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// tokenDescription returns a human friendly description of a token for
// use in error messages.
func tokenDescription(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.STRING:
		return fmt.Sprintf("string %q", tok.Literal)
	case token.NUMBER:
		return fmt.Sprintf("number %q", tok.Literal)
	case token.IDENT:
		return fmt.Sprintf("identifier %q", tok.Literal)
	default:
		return fmt.Sprintf("%q", tok.Literal)
	}
}

// tokenTypeDescription returns a human friendly description of a token
// type for use in "expected X" error messages.
func tokenTypeDescription(typ token.Type) string {
	switch typ {
	case token.EOF:
		return "end of input"
	case token.IDENT:
		return "an identifier"
	case token.NUMBER:
		return "a number"
	case token.STRING:
		return "a string"
	default:
		return fmt.Sprintf("%q", string(typ))
	}
}
