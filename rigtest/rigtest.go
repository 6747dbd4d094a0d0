// Copyright (c) 2024 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package rigtest provides small helpers for using rig in tests: contexts
// that log through the test and fail the test instead of panicking.
package rigtest

import (
	"strings"

	"go.uber.org/rig"
	"go.uber.org/rig/rigevent"
)

// TB is the subset of testing.TB that rigtest needs. Using an interface
// rather than *testing.T keeps the helpers testable themselves.
type TB interface {
	Logf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	FailNow()
}

// New builds a rig.Context for tests. Events are logged through tb, and a
// panic while building the context fails the test instead of crashing it.
func New(tb TB, opts ...rig.Option) *rig.Context {
	// The default logger goes first so a caller-supplied rig.WithLogger
	// still wins.
	opts = append([]rig.Option{
		rig.WithLogger(&rigevent.ConsoleLogger{W: tbWriter{tb}}),
	}, opts...)

	var cx *rig.Context
	func() {
		defer func() {
			if r := recover(); r != nil {
				tb.Errorf("building context panicked: %v", r)
				tb.FailNow()
			}
		}()
		cx = rig.New(opts...)
	}()
	return cx
}

// RequireResolve resolves T from cx, failing the test instead of
// panicking when the resolution cannot be satisfied.
func RequireResolve[T any](tb TB, cx *rig.Context) T {
	return RequireResolveNamed[T](tb, cx, "")
}

// RequireResolveNamed is RequireResolve under an explicit name.
func RequireResolveNamed[T any](tb TB, cx *rig.Context, name string) T {
	var instance T
	func() {
		defer func() {
			if r := recover(); r != nil {
				tb.Errorf("resolving panicked: %v", r)
				tb.FailNow()
			}
		}()
		instance = rig.ResolveNamed[T](cx, name)
	}()
	return instance
}

// RequireClose closes cx, failing the test if any cached instance reports
// a close error.
func RequireClose(tb TB, cx *rig.Context) {
	if err := cx.Close(); err != nil {
		tb.Errorf("closing context: %v", err)
		tb.FailNow()
	}
}

// tbWriter adapts a TB to io.Writer for the console event logger.
type tbWriter struct {
	tb TB
}

func (w tbWriter) Write(p []byte) (int, error) {
	w.tb.Logf("%s", strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
