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
	"context"

	"go.uber.org/rig/internal/rigreflect"
)

// A ProviderBuilder configures a provider before it is finalized. The
// builder is created by one of the six factory functions and finalized by
// Provider or Dyn; registering it through WithProviders finalizes it
// implicitly.
type ProviderBuilder[T any] struct {
	scope       Scope
	color       Color
	name        string
	eagerCreate bool
	condition   Condition
	ctor        func(*Context) T
	ctorAsync   func(context.Context, *Context) T
	ctorName    string
	bindings    []Binding[T]
}

// Singleton returns a builder for a provider whose constructor runs at most
// once per context; every resolution hands out a copy of the cached result.
func Singleton[T any](constructor func(*Context) T) *ProviderBuilder[T] {
	return newBuilder[T](ScopeSingleton, constructor)
}

// Transient returns a builder for a provider whose constructor runs on every
// resolution.
func Transient[T any](constructor func(*Context) T) *ProviderBuilder[T] {
	return newBuilder[T](ScopeTransient, constructor)
}

// SingleOwner returns a builder for a provider whose constructor runs at
// most once per context and whose result is never handed out as an owned
// value; retrieve it with GetSingle.
func SingleOwner[T any](constructor func(*Context) T) *ProviderBuilder[T] {
	return newBuilder[T](ScopeSingleOwner, constructor)
}

// SingletonAsync is the async-colored variant of Singleton. The constructor
// may only run in an asynchronous resolution path.
func SingletonAsync[T any](constructor func(context.Context, *Context) T) *ProviderBuilder[T] {
	return newAsyncBuilder[T](ScopeSingleton, constructor)
}

// TransientAsync is the async-colored variant of Transient.
func TransientAsync[T any](constructor func(context.Context, *Context) T) *ProviderBuilder[T] {
	return newAsyncBuilder[T](ScopeTransient, constructor)
}

// SingleOwnerAsync is the async-colored variant of SingleOwner.
func SingleOwnerAsync[T any](constructor func(context.Context, *Context) T) *ProviderBuilder[T] {
	return newAsyncBuilder[T](ScopeSingleOwner, constructor)
}

func newBuilder[T any](scope Scope, ctor func(*Context) T) *ProviderBuilder[T] {
	return &ProviderBuilder[T]{
		scope:    scope,
		color:    ColorSync,
		ctor:     ctor,
		ctorName: rigreflect.FuncName(ctor),
	}
}

func newAsyncBuilder[T any](scope Scope, ctor func(context.Context, *Context) T) *ProviderBuilder[T] {
	return &ProviderBuilder[T]{
		scope:     scope,
		color:     ColorAsync,
		ctorAsync: ctor,
		ctorName:  rigreflect.FuncName(ctor),
	}
}

// Name sets the name of the provider. The default name is "".
func (b *ProviderBuilder[T]) Name(name string) *ProviderBuilder[T] {
	b.name = name
	return b
}

// EagerCreate sets whether the provider's instance is created at context
// build time rather than lazily on first request.
func (b *ProviderBuilder[T]) EagerCreate(eagerCreate bool) *ProviderBuilder[T] {
	b.eagerCreate = eagerCreate
	return b
}

// Condition sets a predicate evaluated against the context when the
// provider is about to be registered. If it reports false, the provider and
// all of its bound providers are silently skipped.
func (b *ProviderBuilder[T]) Condition(condition Condition) *ProviderBuilder[T] {
	b.condition = condition
	return b
}

// Bind appends bindings that derive additional providers from this one,
// typically to expose the concrete type under an interface. Each binding
// registers one extra provider sharing this provider's name, scope,
// eager-create flag and condition, keyed by the binding's output type.
//
// Create bindings with As:
//
//	rig.Singleton(NewFile).Bind(rig.As(func(f *File) io.Reader { return f }))
//
// Bind may be called multiple times; all bindings accumulate.
func (b *ProviderBuilder[T]) Bind(bindings ...Binding[T]) *ProviderBuilder[T] {
	b.bindings = append(b.bindings, bindings...)
	return b
}

// Provider finalizes the builder. This is the point where the accumulated
// bindings run against the finalized base definition, producing the sibling
// providers stored alongside the base one.
func (b *ProviderBuilder[T]) Provider() *Provider[T] {
	var clone func(T) T
	if b.scope == ScopeSingleton {
		clone = func(t T) T { return t }
	}

	eagerFn := syncEagerCreateFunc[T]()
	if b.color == ColorAsync {
		eagerFn = asyncEagerCreateFunc[T]()
	}

	p := &Provider[T]{
		definition:          newDefinition[T](b.name, b.scope, b.color),
		eagerCreate:         b.eagerCreate,
		condition:           b.condition,
		ctor:                b.ctor,
		ctorAsync:           b.ctorAsync,
		cloneInstance:       clone,
		eagerCreateFunction: eagerFn,
		constructorName:     b.ctorName,
	}

	if len(b.bindings) == 0 {
		return p
	}

	definitions := make([]Definition, 0, len(b.bindings))
	providers := make([]*DynProvider, 0, len(b.bindings))
	for _, bind := range b.bindings {
		dp := bind(p.definition, b.eagerCreate, b.condition)
		definitions = append(definitions, dp.definition)
		providers = append(providers, dp)
	}
	p.bindingDefinitions = definitions
	p.bindingProviders = providers

	return p
}

// Dyn finalizes the builder into its type-erased form.
func (b *ProviderBuilder[T]) Dyn() *DynProvider { return b.Provider().Dyn() }

// A Binding derives a type-erased provider from a finalized base
// definition. Use As to create one.
type Binding[T any] func(base Definition, eagerCreate bool, condition Condition) *DynProvider

// As returns a Binding that exposes a provider of T under the additional
// type U by applying transform to the base provider's output. The derived
// provider's constructor resolves T by the shared name, then transforms it.
func As[T, U any](transform func(T) U) Binding[T] {
	return func(base Definition, eagerCreate bool, condition Condition) *DynProvider {
		name := base.Key.Name

		var clone func(U) U
		if base.Scope == ScopeSingleton {
			clone = func(u U) U { return u }
		}

		p := &Provider[U]{
			definition:      base.bind(TypeOf[U]()),
			eagerCreate:     eagerCreate,
			condition:       condition,
			cloneInstance:   clone,
			constructorName: rigreflect.FuncName(transform),
		}

		if base.Color == ColorAsync {
			p.ctorAsync = func(ctx context.Context, cx *Context) U {
				return transform(ResolveNamedAsync[T](ctx, cx, name))
			}
			p.eagerCreateFunction = asyncEagerCreateFunc[U]()
		} else {
			p.ctor = func(cx *Context) U {
				return transform(ResolveNamed[T](cx, name))
			}
			p.eagerCreateFunction = syncEagerCreateFunc[U]()
		}

		return p.Dyn()
	}
}
