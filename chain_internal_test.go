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

package rig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencyChain(t *testing.T) {
	t.Parallel()

	t.Run("push and pop", func(t *testing.T) {
		t.Parallel()

		var c dependencyChain
		c.push(KeyOf[int](""))
		c.push(KeyOf[string](""))
		c.pop()
		c.push(KeyOf[string](""))
		assert.Len(t, c.stack, 2)
	})

	t.Run("same type under different names is not a cycle", func(t *testing.T) {
		t.Parallel()

		var c dependencyChain
		c.push(KeyOf[int]("a"))
		assert.NotPanics(t, func() { c.push(KeyOf[int]("b")) })
	})

	t.Run("repeated key panics with the chain", func(t *testing.T) {
		t.Parallel()

		var c dependencyChain
		c.push(KeyOf[int](""))
		c.push(KeyOf[string](""))

		defer func() {
			r := recover()
			require.NotNil(t, r)
			msg := r.(string)
			assert.Contains(t, msg, "circular dependency detected for int")
			assert.Equal(t, 2, strings.Count(msg, " --> "),
				"the repeated key is marked at both ends of the cycle")
			assert.Contains(t, msg, `string[name=""]`)
		}()
		c.push(KeyOf[int](""))
	})
}
