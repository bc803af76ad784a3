// Package problem provides severity-tagged diagnostic values and a small
// result wrapper used for non-exceptional error reporting.
//
// A Problem carries a severity (Info, Warning, Error), a message, and an
// optional underlying error. Consumers such as the walk package aggregate
// problems during traversal instead of failing on the first diagnostic.
package problem

import (
	"fmt"
	"strings"
)

// Severity classifies a Problem.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Problem is a severity-tagged diagnostic value.
type Problem struct {
	Severity Severity
	Message  string
	Err      error
}

func New(sev Severity, msg string) Problem {
	return Problem{Severity: sev, Message: msg}
}

func Infof(format string, args ...any) Problem {
	return Problem{Severity: Info, Message: fmt.Sprintf(format, args...)}
}

func Warnf(format string, args ...any) Problem {
	return Problem{Severity: Warning, Message: fmt.Sprintf(format, args...)}
}

func Errorf(format string, args ...any) Problem {
	return Problem{Severity: Error, Message: fmt.Sprintf(format, args...)}
}

// FromErr wraps an error as an Error-severity problem.
func FromErr(err error) Problem {
	return Problem{Severity: Error, Message: err.Error(), Err: err}
}

func (p Problem) String() string {
	if p.Message == "" && p.Err != nil {
		return fmt.Sprintf("%s: %v", p.Severity, p.Err)
	}
	return fmt.Sprintf("%s: %s", p.Severity, p.Message)
}

func (p Problem) Unwrap() error {
	return p.Err
}

// Result pairs a computed value with the problems found while computing
// it. A result with Error-severity problems carries no usable value.
type Result[T any] struct {
	value    T
	ok       bool
	problems []Problem
}

// Ok returns a result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Empty returns a valueless result carrying ps.
func Empty[T any](ps ...Problem) Result[T] {
	return Result[T]{problems: ps}
}

// WithProblems returns a copy of r with ps appended.
func (r Result[T]) WithProblems(ps ...Problem) Result[T] {
	r.problems = append(r.problems[:len(r.problems):len(r.problems)], ps...)
	return r
}

// Get returns the value and whether one is present. A result whose
// problems include an Error severity has no value.
func (r Result[T]) Get() (T, bool) {
	if !r.ok || HasError(r.problems) {
		var zero T
		return zero, false
	}
	return r.value, true
}

func (r Result[T]) Problems() []Problem {
	return r.problems
}

func (r Result[T]) HasError() bool {
	return HasError(r.problems)
}

// HasError reports whether any problem in ps has Error severity.
func HasError(ps []Problem) bool {
	for _, p := range ps {
		if p.Severity == Error {
			return true
		}
	}
	return false
}

// Join renders problems one per line, most useful in error messages.
func Join(ps []Problem) string {
	ss := make([]string, len(ps))
	for i, p := range ps {
		ss[i] = p.String()
	}
	return strings.Join(ss, "\n")
}
