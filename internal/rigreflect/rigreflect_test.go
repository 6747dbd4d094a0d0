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

package rigreflect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func namedConstructor() int { return 0 }

type receiver struct{}

func (receiver) method() {}

func TestFuncName(t *testing.T) {
	t.Parallel()

	t.Run("named function", func(t *testing.T) {
		t.Parallel()

		name := FuncName(namedConstructor)
		assert.Contains(t, name, "rigreflect.namedConstructor()")
	})

	t.Run("anonymous function keeps its suffix", func(t *testing.T) {
		t.Parallel()

		name := FuncName(func() {})
		assert.Contains(t, name, "rigreflect.TestFuncName")
		assert.True(t, strings.HasSuffix(name, "()"))
	})

	t.Run("method value drops the fm suffix", func(t *testing.T) {
		t.Parallel()

		name := FuncName(receiver{}.method)
		assert.NotContains(t, name, "-fm")
		assert.Contains(t, name, "method")
	})

	t.Run("not a function", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "n/a", FuncName(42))
		assert.Equal(t, "n/a", FuncName(nil))
		var fn func()
		assert.Equal(t, "n/a", FuncName(fn))
	})
}
