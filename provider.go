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

import "context"

// A Condition is a predicate over the context, evaluated when a provider is
// about to be registered. If it reports false, registration is skipped.
type Condition func(*Context) bool

// eagerCreateFunc creates an instance for a key without returning it. The
// sync form is nil for async-colored providers.
type eagerCreateFunc struct {
	s func(cx *Context, name string)
	a func(ctx context.Context, cx *Context, name string)
}

func syncEagerCreateFunc[T any]() eagerCreateFunc {
	return eagerCreateFunc{
		s: func(cx *Context, name string) { eagerCreate[T](cx, name) },
	}
}

func asyncEagerCreateFunc[T any]() eagerCreateFunc {
	return eagerCreateFunc{
		a: func(ctx context.Context, cx *Context, name string) { eagerCreateAsync[T](ctx, cx, name) },
	}
}

// Provider is the recipe for producing instances of type T under one name:
// a constructor plus the metadata describing how its results are owned.
//
// Use the Singleton, Transient and SingleOwner builders (or their Async
// variants) to create one.
type Provider[T any] struct {
	definition  Definition
	eagerCreate bool
	condition   Condition

	// Exactly one of ctor and ctorAsync is set, matching definition.Color.
	ctor      func(*Context) T
	ctorAsync func(context.Context, *Context) T

	// cloneInstance is non-nil iff the scope is ScopeSingleton. It is what
	// the single registry uses to hand out owned copies while retaining
	// the cached value.
	cloneInstance func(T) T

	eagerCreateFunction eagerCreateFunc
	constructorName     string

	// standalone marks supply-backed providers, whose instance is seeded
	// together with the provider and cannot be reconstructed once evicted.
	standalone bool

	bindingProviders   []*DynProvider
	bindingDefinitions []Definition
}

// Definition returns the definition of the provider.
func (p *Provider[T]) Definition() Definition { return p.definition }

// EagerCreate returns whether the provider requests eager creation.
func (p *Provider[T]) EagerCreate() bool { return p.eagerCreate }

// Condition returns the provider's registration condition, or nil.
func (p *Provider[T]) Condition() Condition { return p.condition }

// BindingDefinitions returns the definitions of the providers derived from
// this one via Bind, in declaration order.
func (p *Provider[T]) BindingDefinitions() []Definition { return p.bindingDefinitions }

// Dyn returns the type-erased form of the provider.
func (p *Provider[T]) Dyn() *DynProvider {
	return &DynProvider{
		definition:          p.definition,
		eagerCreate:         p.eagerCreate,
		condition:           p.condition,
		eagerCreateFunction: p.eagerCreateFunction,
		constructorName:     p.constructorName,
		standalone:          p.standalone,
		bindingProviders:    p.bindingProviders,
		bindingDefinitions:  p.bindingDefinitions,
		origin:              p,
	}
}

// DynProvider is a Provider that erased its generic type so that
// heterogeneous providers can live in one registry.
type DynProvider struct {
	definition          Definition
	eagerCreate         bool
	condition           Condition
	eagerCreateFunction eagerCreateFunc
	constructorName     string
	standalone          bool
	bindingProviders    []*DynProvider
	bindingDefinitions  []Definition
	origin              interface{} // *Provider[T]
}

// Definition returns the definition of the provider.
func (dp *DynProvider) Definition() Definition { return dp.definition }

// Key returns the provider's key.
func (dp *DynProvider) Key() Key { return dp.definition.Key }

// EagerCreate returns whether the provider requests eager creation.
func (dp *DynProvider) EagerCreate() bool { return dp.eagerCreate }

// Condition returns the provider's registration condition, or nil.
func (dp *DynProvider) Condition() Condition { return dp.condition }

// ConstructorName returns the formatted name of the constructor function,
// for diagnostics.
func (dp *DynProvider) ConstructorName() string { return dp.constructorName }

// BindingDefinitions returns the definitions of the providers derived from
// this one via Bind, in declaration order.
func (dp *DynProvider) BindingDefinitions() []Definition { return dp.bindingDefinitions }

// Dyn returns the provider itself, satisfying AnyProvider.
func (dp *DynProvider) Dyn() *DynProvider { return dp }

func (dp *DynProvider) bindings() []*DynProvider { return dp.bindingProviders }

// AsProvider returns the origin Provider if it produces instances of type T.
func AsProvider[T any](dp *DynProvider) (*Provider[T], bool) {
	p, ok := dp.origin.(*Provider[T])
	return p, ok
}

// AnyProvider is any value that can yield a type-erased provider: a
// *DynProvider, a finalized *Provider[T], or a provider builder.
type AnyProvider interface {
	Dyn() *DynProvider
}

// neverConstruct returns a provider whose constructor must never run. It
// backs standalone instances seeded with Supply and friends, whose single is
// inserted together with the provider, so resolution always hits the single
// registry first.
func neverConstruct[T any](name string, scope Scope) *Provider[T] {
	var clone func(T) T
	if scope == ScopeSingleton {
		clone = func(t T) T { return t }
	}
	return &Provider[T]{
		definition: newDefinition[T](name, scope, ColorSync),
		ctor: func(*Context) T {
			panic("rig: standalone instance provider must never construct; this is a bug in rig")
		},
		cloneInstance:       clone,
		eagerCreateFunction: syncEagerCreateFunc[T](),
		constructorName:     "n/a",
		standalone:          true,
	}
}
