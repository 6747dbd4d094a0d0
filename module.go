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

// A Module is a named group of providers and submodules. Modules form a
// tree; loading a module loads its own providers and, transitively, those
// of its submodules.
//
//	var DBModule = rig.NewModule("db",
//		rig.WithProviders(
//			rig.Singleton(NewPool),
//			rig.Transient(NewTx),
//		),
//	)
type Module struct {
	name        string
	eagerCreate bool
	submodules  []*Module
	providers   []*DynProvider
}

// A ModuleOption configures a Module during NewModule.
type ModuleOption interface {
	applyModule(*Module)
}

type moduleOptionFunc func(*Module)

func (f moduleOptionFunc) applyModule(m *Module) { f(m) }

// NewModule builds a named module from the given options.
func NewModule(name string, opts ...ModuleOption) *Module {
	m := &Module{name: name}
	for _, opt := range opts {
		opt.applyModule(m)
	}
	return m
}

// WithProviders adds providers to the module. Builders are finalized at
// this point.
func WithProviders(providers ...AnyProvider) ModuleOption {
	return moduleOptionFunc(func(m *Module) {
		for _, p := range providers {
			m.providers = append(m.providers, p.Dyn())
		}
	})
}

// WithSubmodules adds child modules.
func WithSubmodules(submodules ...*Module) ModuleOption {
	return moduleOptionFunc(func(m *Module) {
		m.submodules = append(m.submodules, submodules...)
	})
}

// ModuleEagerCreate marks every provider of the module (submodules
// excluded) as eagerly created, regardless of the per-provider flag.
func ModuleEagerCreate(eagerCreate bool) ModuleOption {
	return moduleOptionFunc(func(m *Module) {
		m.eagerCreate = eagerCreate
	})
}

// Name returns the module's name.
func (m *Module) Name() string { return m.name }

// EagerCreate reports whether the module eagerly creates its providers.
func (m *Module) EagerCreate() bool { return m.eagerCreate }

// Submodules returns the module's direct children.
func (m *Module) Submodules() []*Module { return m.submodules }

// Providers returns the module's own providers, submodules excluded.
func (m *Module) Providers() []*DynProvider { return m.providers }

// flatten walks a graph of items without recursion, emitting each item
// before its children and preserving declaration order among siblings. An
// item reachable more than once, including through a cycle, is emitted
// only the first time. The input slices are not mutated.
func flatten[T any](items []*T, children func(*T) []*T) []*T {
	var out []*T
	seen := make(map[*T]bool, len(items))
	stack := make([]*T, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		stack = append(stack, items[i])
	}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)

		sub := children(item)
		for i := len(sub) - 1; i >= 0; i-- {
			stack = append(stack, sub[i])
		}
	}
	return out
}
