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

package rigevent

// Event defines an event emitted by rig.
type Event interface {
	event() // Only rig can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Provided) event()       {}
func (*Overridden) event()     {}
func (*Skipped) event()        {}
func (*Supplied) event()       {}
func (*ModuleLoaded) event()   {}
func (*ModuleUnloaded) event() {}
func (*EagerCreating) event()  {}
func (*Resolved) event()       {}

// Provided is emitted when a provider is inserted into the registry under a
// key that was not occupied before.
type Provided struct {
	// Name is the key name the provider was registered under.
	Name string
	// TypeName is the name of the type the provider produces.
	TypeName string
	// Scope is the provider's scope, one of "Singleton", "Transient" or
	// "SingleOwner".
	Scope string
	// Color is "Sync" or "Async".
	Color string
	// ConstructorName is the formatted name of the constructor function.
	ConstructorName string
}

// Overridden is emitted when a provider replaces a previously registered
// provider with the same key.
type Overridden struct {
	Name     string
	TypeName string
}

// Skipped is emitted when a provider's condition evaluates to false and the
// provider is not registered.
type Skipped struct {
	Name     string
	TypeName string
}

// Supplied is emitted when a pre-built instance is seeded into the context,
// bypassing the provider machinery.
type Supplied struct {
	Name     string
	TypeName string
}

// ModuleLoaded is emitted once per flattened module during LoadModules.
type ModuleLoaded struct {
	// Module is the module's name.
	Module string
	// ProviderCount is the number of providers registered from the
	// module, binding fan-out included and condition-skipped providers
	// excluded.
	ProviderCount int
}

// ModuleUnloaded is emitted once per flattened module during UnloadModules.
type ModuleUnloaded struct {
	Module        string
	ProviderCount int
}

// EagerCreating is emitted before a queued eager-create function runs.
type EagerCreating struct {
	Name     string
	TypeName string
}

// Resolved is emitted after a provider's constructor has produced an
// instance. Cache hits on the single registry do not emit this event.
type Resolved struct {
	Name     string
	TypeName string
	Scope    string
}
