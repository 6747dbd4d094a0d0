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
	"reflect"
)

// Type identifies a concrete Go type as used at a resolution site. Two Types
// are equal iff they denote the same concrete type. Type is comparable and
// may be used as a map key.
type Type struct {
	rtype reflect.Type
}

// TypeOf returns the Type for T.
func TypeOf[T any]() Type {
	return Type{rtype: reflect.TypeOf((*T)(nil)).Elem()}
}

// Reflect returns the underlying reflect.Type.
func (t Type) Reflect() reflect.Type { return t.rtype }

// Name returns the human-readable name of the type.
func (t Type) Name() string {
	if t.rtype == nil {
		return "<nil>"
	}
	return t.rtype.String()
}

func (t Type) String() string { return t.Name() }

// IsZero reports whether t is the zero Type, denoting no type at all.
func (t Type) IsZero() bool { return t.rtype == nil }

// less orders Types by name. Names are unique per concrete type within a
// single binary, so this gives a total order.
func (t Type) less(other Type) bool { return t.Name() < other.Name() }

// A Key uniquely identifies a provider slot: the type you want, and which
// named variant of it.
type Key struct {
	// Name of the provider. The default name is "".
	Name string
	// Type of the instance the provider produces.
	Type Type
}

// KeyOf returns the Key for T under the given name.
func KeyOf[T any](name string) Key {
	return Key{Name: name, Type: TypeOf[T]()}
}

func (k Key) String() string {
	return fmt.Sprintf("%s[name=%q]", k.Type.Name(), k.Name)
}

// less orders Keys lexicographically on (type, name).
func (k Key) less(other Key) bool {
	if k.Type != other.Type {
		return k.Type.less(other.Type)
	}
	return k.Name < other.Name
}
