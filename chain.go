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
	"fmt"
	"strings"
)

// dependencyChain tracks the keys currently being constructed. A key that
// is pushed while already present indicates a constructor cycle.
type dependencyChain struct {
	stack []Key
}

// push records key as under construction, panicking with a readable
// rendering of the cycle if the key is already on the stack.
func (c *dependencyChain) push(key Key) {
	for _, k := range c.stack {
		if k == key {
			panic(c.cycleError(key))
		}
	}
	c.stack = append(c.stack, key)
}

// pop removes the most recently pushed key. Callers pair it with push via
// defer so the stack unwinds even when a constructor panics.
func (c *dependencyChain) pop() {
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *dependencyChain) cycleError(key Key) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("circular dependency detected for %s, dependency chain: [\n", key))
	for _, k := range c.stack {
		if k == key {
			sb.WriteString(fmt.Sprintf(" --> %s\n", k))
			continue
		}
		sb.WriteString(fmt.Sprintf("     %s\n", k))
	}
	sb.WriteString(fmt.Sprintf(" --> %s\n]", key))
	return sb.String()
}
