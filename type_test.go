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

package rig_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/rig"
)

func TestTypeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rig.TypeOf[*config](), rig.TypeOf[*config]())
	assert.NotEqual(t, rig.TypeOf[*config](), rig.TypeOf[config]())
	assert.NotEqual(t, rig.TypeOf[*config](), rig.TypeOf[*database]())

	// Interface types denote the interface itself, not an implementation.
	assert.Equal(t, "io.Reader", rig.TypeOf[io.Reader]().Name())
	assert.Equal(t, "string", rig.TypeOf[string]().Name())

	var zero rig.Type
	assert.True(t, zero.IsZero())
	assert.False(t, rig.TypeOf[int]().IsZero())
}

func TestKeyOf(t *testing.T) {
	t.Parallel()

	key := rig.KeyOf[*config]("primary")
	assert.Equal(t, "primary", key.Name)
	assert.Equal(t, rig.TypeOf[*config](), key.Type)

	assert.Equal(t, rig.KeyOf[*config]("primary"), key)
	assert.NotEqual(t, rig.KeyOf[*config](""), key)

	assert.Contains(t, key.String(), `name="primary"`)
	assert.Contains(t, key.String(), "config")
}
