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

// Package rigreflect provides reflection helpers shared by the rig packages.
package rigreflect

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// FuncName returns a formatted name for the given function value, suitable
// for diagnostics. Anonymous functions keep the funcN suffix assigned by the
// compiler so that two closures from the same file remain distinguishable.
func FuncName(fn interface{}) string {
	fnV := reflect.ValueOf(fn)
	if !fnV.IsValid() || fnV.Kind() != reflect.Func || fnV.IsNil() {
		return "n/a"
	}

	name := runtime.FuncForPC(fnV.Pointer()).Name()
	return fmt.Sprintf("%s()", sanitize(name))
}

func sanitize(name string) string {
	// Strip the -fm suffix added to method values.
	name = strings.TrimSuffix(name, "-fm")
	return name
}
