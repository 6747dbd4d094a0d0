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

import "fmt"

// Scope controls whether and how a provider's result is cached.
type Scope int

const (
	// ScopeSingleton runs the constructor at most once per context. The
	// result is cached and a copy is handed out on every resolution.
	ScopeSingleton Scope = iota

	// ScopeTransient runs the constructor on every resolution. Ownership
	// of the result transfers to the caller; nothing is cached.
	ScopeTransient

	// ScopeSingleOwner runs the constructor at most once per context.
	// Resolution never yields an owned value; the cached instance is only
	// reachable through GetSingle and friends.
	ScopeSingleOwner
)

// String returns the human-readable name of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeSingleton:
		return "Singleton"
	case ScopeTransient:
		return "Transient"
	case ScopeSingleOwner:
		return "SingleOwner"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// Color reports whether a provider's constructor must run in an asynchronous
// resolution path. A sync constructor can run in both paths; an async
// constructor can only run in an async one.
type Color int

const (
	// ColorSync marks constructors that may run in a synchronous
	// resolution path.
	ColorSync Color = iota

	// ColorAsync marks constructors that require an asynchronous
	// resolution path and a context.Context.
	ColorAsync
)

// String returns the human-readable name of the color.
func (c Color) String() string {
	switch c {
	case ColorSync:
		return "Sync"
	case ColorAsync:
		return "Async"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// Definition is the immutable metadata of a provider.
type Definition struct {
	// Key is the unique key of the provider.
	Key Key

	// Origin is the type a bound provider was derived from. It is the
	// zero Type unless the provider was produced by a Bind transform, in
	// which case it records the base provider's type.
	Origin Type

	// Scope of the provider.
	Scope Scope

	// Color of the provider's constructor.
	Color Color
}

func newDefinition[T any](name string, scope Scope, color Color) Definition {
	return Definition{
		Key:   KeyOf[T](name),
		Scope: scope,
		Color: color,
	}
}

// bind returns a new Definition retargeted at ty, keeping the key name,
// scope and color, and recording the previous key type as the origin.
func (d Definition) bind(ty Type) Definition {
	return Definition{
		Key:    Key{Name: d.Key.Name, Type: ty},
		Origin: d.Key.Type,
		Scope:  d.Scope,
		Color:  d.Color,
	}
}

func (d Definition) String() string {
	if d.Origin.IsZero() {
		return fmt.Sprintf("%v scope=%v color=%v", d.Key, d.Scope, d.Color)
	}
	return fmt.Sprintf("%v scope=%v color=%v origin=%v", d.Key, d.Scope, d.Color, d.Origin)
}
