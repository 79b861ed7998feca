package timer

import (
	"reflect"
	"runtime"
	"strings"
	"time"
)

// wrapper holds what every call of a wrapped function needs.
type wrapper struct {
	cfg   *config
	label string
}

// newWrapper resolves the report label once, at wrap time. Without
// WithLabel the wrapped function's own name is used.
func newWrapper(fn any, opts []Option) *wrapper {
	cfg := newConfig(opts)
	label := cfg.label
	if label == "" {
		label = FuncName(fn)
	}
	return &wrapper{cfg: cfg, label: label}
}

// begin starts the clock; the returned func prints the report.
func (w *wrapper) begin() func() {
	start := time.Now()
	return func() {
		report(w.cfg, w.label, time.Since(start))
	}
}

// WrapFunc times every call of fn.
func WrapFunc(fn func(), opts ...Option) func() {
	w := newWrapper(fn, opts)
	return func() {
		defer w.begin()()
		fn()
	}
}

// Wrap times every call of fn and returns its result unchanged.
func Wrap[R any](fn func() R, opts ...Option) func() R {
	w := newWrapper(fn, opts)
	return func() R {
		defer w.begin()()
		return fn()
	}
}

// Wrap1 is Wrap for a one-argument function.
func Wrap1[A, R any](fn func(A) R, opts ...Option) func(A) R {
	w := newWrapper(fn, opts)
	return func(a A) R {
		defer w.begin()()
		return fn(a)
	}
}

// Wrap2 is Wrap for a two-argument function.
func Wrap2[A, B, R any](fn func(A, B) R, opts ...Option) func(A, B) R {
	w := newWrapper(fn, opts)
	return func(a A, b B) R {
		defer w.begin()()
		return fn(a, b)
	}
}

// WrapErr is Wrap for a function that can fail. The error is returned
// unchanged after the report is printed.
func WrapErr[R any](fn func() (R, error), opts ...Option) func() (R, error) {
	w := newWrapper(fn, opts)
	return func() (R, error) {
		defer w.begin()()
		return fn()
	}
}

// WrapErr1 is WrapErr for a one-argument function.
func WrapErr1[A, R any](fn func(A) (R, error), opts ...Option) func(A) (R, error) {
	w := newWrapper(fn, opts)
	return func(a A) (R, error) {
		defer w.begin()()
		return fn(a)
	}
}

// Labeled returns a decorator that applies Wrap with the given label, for
// code that configures the timer before the function is known:
//
//	timed := timer.Labeled[int]("X")(compute)
//
// Labeled1 and LabeledErr are the same for one-argument and error-returning
// functions; other shapes take WithLabel on the matching Wrap function.
func Labeled[R any](label string, opts ...Option) func(func() R) func() R {
	opts = withLabel(opts, label)
	return func(fn func() R) func() R {
		return Wrap(fn, opts...)
	}
}

// Labeled1 is Labeled for a one-argument function.
func Labeled1[A, R any](label string, opts ...Option) func(func(A) R) func(A) R {
	opts = withLabel(opts, label)
	return func(fn func(A) R) func(A) R {
		return Wrap1(fn, opts...)
	}
}

// LabeledErr is Labeled for a function returning a result and an error.
func LabeledErr[R any](label string, opts ...Option) func(func() (R, error)) func() (R, error) {
	opts = withLabel(opts, label)
	return func(fn func() (R, error)) func() (R, error) {
		return WrapErr(fn, opts...)
	}
}

// withLabel appends WithLabel without writing into the caller's backing array.
func withLabel(opts []Option, label string) []Option {
	return append(opts[:len(opts):len(opts)], WithLabel(label))
}

// FuncName returns the unqualified name of the function fn, such as
// "loadDataset" or "(*Client).Fetch". It returns "" when fn is not a func.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}

	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
