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
	"fmt"
	"sort"

	"go.uber.org/rig/rigevent"
)

// behaviour selects what a resolution pass is for: handing an owned value
// to the caller, eagerly creating a queued instance, or only populating the
// single registry.
type behaviour int

const (
	behaviourCreateThenReturn behaviour = iota
	behaviourEagerCreate
	behaviourJustCreateSingle
)

type resolvedKind int

const (
	// resolvedInstance carries an owned value for the caller.
	resolvedInstance resolvedKind = iota
	// resolvedNone means the pass did its work with nothing to return.
	resolvedNone
	// resolvedNotFound means no provider is registered for the key.
	resolvedNotFound
	// resolvedWrongScope means the provider's scope does not permit the
	// requested behaviour.
	resolvedWrongScope
)

type resolved[T any] struct {
	kind     resolvedKind
	instance T
}

func instanceOf[T any](instance T) resolved[T] {
	return resolved[T]{kind: resolvedInstance, instance: instance}
}

// Resolve returns an instance of T under the default name "". It panics if
// no provider matches, if the provider's constructor is async colored, or
// if the provider is single-owner scoped.
func Resolve[T any](cx *Context) T { return ResolveNamed[T](cx, "") }

// ResolveNamed is Resolve under an explicit name.
func ResolveNamed[T any](cx *Context, name string) T {
	r := innerResolve[T](cx, name, behaviourCreateThenReturn)
	switch r.kind {
	case resolvedInstance:
		return r.instance
	case resolvedWrongScope:
		panic(singleOwnerResolveMessage(KeyOf[T](name)))
	default:
		panic(noProviderMessage(KeyOf[T](name)))
	}
}

// TryResolve is Resolve reporting absence instead of panicking: it returns
// false when no provider matches or when the provider is single-owner
// scoped. An async-colored constructor still panics.
func TryResolve[T any](cx *Context) (T, bool) { return TryResolveNamed[T](cx, "") }

// TryResolveNamed is TryResolve under an explicit name.
func TryResolveNamed[T any](cx *Context, name string) (T, bool) {
	r := innerResolve[T](cx, name, behaviourCreateThenReturn)
	if r.kind != resolvedInstance {
		var zero T
		return zero, false
	}
	return r.instance, true
}

// ResolveByType resolves every provider producing T, whatever its name,
// in name order. Single-owner providers are skipped.
func ResolveByType[T any](cx *Context) []T {
	var out []T
	for _, name := range providerNames[T](cx) {
		if instance, ok := TryResolveNamed[T](cx, name); ok {
			out = append(out, instance)
		}
	}
	return out
}

// ResolveAsync is Resolve for contexts containing async-colored providers.
// Sync-colored providers resolve fine here too.
func ResolveAsync[T any](ctx context.Context, cx *Context) T {
	return ResolveNamedAsync[T](ctx, cx, "")
}

// ResolveNamedAsync is ResolveAsync under an explicit name.
func ResolveNamedAsync[T any](ctx context.Context, cx *Context, name string) T {
	r := innerResolveAsync[T](ctx, cx, name, behaviourCreateThenReturn)
	switch r.kind {
	case resolvedInstance:
		return r.instance
	case resolvedWrongScope:
		panic(singleOwnerResolveMessage(KeyOf[T](name)))
	default:
		panic(noProviderMessage(KeyOf[T](name)))
	}
}

// TryResolveAsync is TryResolve for async-colored providers.
func TryResolveAsync[T any](ctx context.Context, cx *Context) (T, bool) {
	return TryResolveNamedAsync[T](ctx, cx, "")
}

// TryResolveNamedAsync is TryResolveAsync under an explicit name.
func TryResolveNamedAsync[T any](ctx context.Context, cx *Context, name string) (T, bool) {
	r := innerResolveAsync[T](ctx, cx, name, behaviourCreateThenReturn)
	if r.kind != resolvedInstance {
		var zero T
		return zero, false
	}
	return r.instance, true
}

// ResolveByTypeAsync is ResolveByType for async-colored providers.
func ResolveByTypeAsync[T any](ctx context.Context, cx *Context) []T {
	var out []T
	for _, name := range providerNames[T](cx) {
		if instance, ok := TryResolveNamedAsync[T](ctx, cx, name); ok {
			out = append(out, instance)
		}
	}
	return out
}

// CreateSingle runs the constructor of the T provider under the default
// name and caches the result, without handing anything out. It panics if no
// provider matches or if the provider is transient scoped, since a
// transient result would have nowhere to live. Creating an already cached
// single is a no-op.
func CreateSingle[T any](cx *Context) { CreateSingleNamed[T](cx, "") }

// CreateSingleNamed is CreateSingle under an explicit name.
func CreateSingleNamed[T any](cx *Context, name string) {
	r := innerResolve[T](cx, name, behaviourJustCreateSingle)
	switch r.kind {
	case resolvedNotFound:
		panic(noProviderMessage(KeyOf[T](name)))
	case resolvedWrongScope:
		panic(transientSingleMessage(KeyOf[T](name)))
	}
}

// TryCreateSingle is CreateSingle reporting whether a cached instance now
// exists instead of panicking.
func TryCreateSingle[T any](cx *Context) bool { return TryCreateSingleNamed[T](cx, "") }

// TryCreateSingleNamed is TryCreateSingle under an explicit name.
func TryCreateSingleNamed[T any](cx *Context, name string) bool {
	r := innerResolve[T](cx, name, behaviourJustCreateSingle)
	return r.kind == resolvedNone
}

// CreateSinglesByType creates the cached instance of every singleton and
// single-owner provider producing T, whatever its name.
func CreateSinglesByType[T any](cx *Context) {
	for _, name := range providerNames[T](cx) {
		TryCreateSingleNamed[T](cx, name)
	}
}

// CreateSingleAsync is CreateSingle for async-colored providers.
func CreateSingleAsync[T any](ctx context.Context, cx *Context) {
	CreateSingleNamedAsync[T](ctx, cx, "")
}

// CreateSingleNamedAsync is CreateSingleAsync under an explicit name.
func CreateSingleNamedAsync[T any](ctx context.Context, cx *Context, name string) {
	r := innerResolveAsync[T](ctx, cx, name, behaviourJustCreateSingle)
	switch r.kind {
	case resolvedNotFound:
		panic(noProviderMessage(KeyOf[T](name)))
	case resolvedWrongScope:
		panic(transientSingleMessage(KeyOf[T](name)))
	}
}

// TryCreateSingleAsync is TryCreateSingle for async-colored providers.
func TryCreateSingleAsync[T any](ctx context.Context, cx *Context) bool {
	return TryCreateSingleNamedAsync[T](ctx, cx, "")
}

// TryCreateSingleNamedAsync is TryCreateSingleAsync under an explicit name.
func TryCreateSingleNamedAsync[T any](ctx context.Context, cx *Context, name string) bool {
	r := innerResolveAsync[T](ctx, cx, name, behaviourJustCreateSingle)
	return r.kind == resolvedNone
}

// CreateSinglesByTypeAsync is CreateSinglesByType for async-colored
// providers.
func CreateSinglesByTypeAsync[T any](ctx context.Context, cx *Context) {
	for _, name := range providerNames[T](cx) {
		TryCreateSingleNamedAsync[T](ctx, cx, name)
	}
}

// ContainsProvider reports whether a provider of T is registered under the
// default name.
func ContainsProvider[T any](cx *Context) bool { return ContainsProviderNamed[T](cx, "") }

// ContainsProviderNamed is ContainsProvider under an explicit name.
func ContainsProviderNamed[T any](cx *Context, name string) bool {
	_, ok := cx.providers.get(KeyOf[T](name))
	return ok
}

// GetProvider returns the provider of T under the default name, or nil.
func GetProvider[T any](cx *Context) *Provider[T] { return GetProviderNamed[T](cx, "") }

// GetProviderNamed is GetProvider under an explicit name.
func GetProviderNamed[T any](cx *Context, name string) *Provider[T] {
	dp, ok := cx.providers.get(KeyOf[T](name))
	if !ok {
		return nil
	}
	p, ok := AsProvider[T](dp)
	if !ok {
		panic(registryBugMessage(KeyOf[T](name)))
	}
	return p
}

// GetProvidersByType returns every provider producing T, in name order.
func GetProvidersByType[T any](cx *Context) []*Provider[T] {
	var out []*Provider[T]
	for _, name := range providerNames[T](cx) {
		if p := GetProviderNamed[T](cx, name); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// ContainsSingle reports whether a cached instance of T exists under the
// default name.
func ContainsSingle[T any](cx *Context) bool { return ContainsSingleNamed[T](cx, "") }

// ContainsSingleNamed is ContainsSingle under an explicit name.
func ContainsSingleNamed[T any](cx *Context, name string) bool {
	_, ok := cx.singles.get(KeyOf[T](name))
	return ok
}

// GetSingle returns the cached instance of T under the default name,
// without transferring ownership. It panics if no cached instance exists;
// create one first with CreateSingle, eager creation, or a resolution.
func GetSingle[T any](cx *Context) T { return GetSingleNamed[T](cx, "") }

// GetSingleNamed is GetSingle under an explicit name.
func GetSingleNamed[T any](cx *Context, name string) T {
	instance, ok := TryGetSingleNamed[T](cx, name)
	if !ok {
		panic(noSingleMessage(KeyOf[T](name)))
	}
	return instance
}

// TryGetSingle is GetSingle reporting absence instead of panicking.
func TryGetSingle[T any](cx *Context) (T, bool) { return TryGetSingleNamed[T](cx, "") }

// TryGetSingleNamed is TryGetSingle under an explicit name.
func TryGetSingleNamed[T any](cx *Context, name string) (T, bool) {
	ds, ok := cx.singles.get(KeyOf[T](name))
	if !ok {
		var zero T
		return zero, false
	}
	s, ok := AsSingle[T](ds)
	if !ok {
		panic(registryBugMessage(KeyOf[T](name)))
	}
	return s.Get(), true
}

// GetSinglesByType returns every cached instance of T, whatever its name,
// in name order, without transferring ownership.
func GetSinglesByType[T any](cx *Context) []T {
	ty := TypeOf[T]()
	var names []string
	for _, key := range cx.singles.keys() {
		if key.Type == ty {
			names = append(names, key.Name)
		}
	}
	sort.Strings(names)

	out := make([]T, 0, len(names))
	for _, name := range names {
		if instance, ok := TryGetSingleNamed[T](cx, name); ok {
			out = append(out, instance)
		}
	}
	return out
}

// providerNames returns the names of every registered provider producing
// T, sorted for deterministic iteration.
func providerNames[T any](cx *Context) []string {
	ty := TypeOf[T]()
	var names []string
	for _, key := range cx.providers.keys() {
		if key.Type == ty {
			names = append(names, key.Name)
		}
	}
	sort.Strings(names)
	return names
}

// eagerCreate backs the queued eager-creation task of a sync provider. A
// key whose provider has since been unloaded is skipped.
func eagerCreate[T any](cx *Context, name string) {
	innerResolve[T](cx, name, behaviourEagerCreate)
}

func eagerCreateAsync[T any](ctx context.Context, cx *Context, name string) {
	innerResolveAsync[T](ctx, cx, name, behaviourEagerCreate)
}

func innerResolve[T any](cx *Context, name string, b behaviour) resolved[T] {
	p, r := beforeResolve[T](cx, name, b)
	if p == nil {
		return r
	}
	if p.ctor == nil {
		panic(asyncConstructorMessage(p.definition.Key))
	}
	instance := constructInstance(cx, p.definition.Key, func() T { return p.ctor(cx) })
	return afterResolve(cx, p, instance, b)
}

func innerResolveAsync[T any](ctx context.Context, cx *Context, name string, b behaviour) resolved[T] {
	p, r := beforeResolve[T](cx, name, b)
	if p == nil {
		return r
	}
	var instance T
	if p.ctorAsync != nil {
		instance = constructInstance(cx, p.definition.Key, func() T { return p.ctorAsync(ctx, cx) })
	} else {
		instance = constructInstance(cx, p.definition.Key, func() T { return p.ctor(cx) })
	}
	return afterResolve(cx, p, instance, b)
}

// beforeResolve looks the provider up and settles every case that does not
// require running a constructor. It returns a nil provider together with
// the settled result, or the provider whose constructor must now run.
func beforeResolve[T any](cx *Context, name string, b behaviour) (*Provider[T], resolved[T]) {
	key := KeyOf[T](name)

	dp, ok := cx.providers.get(key)
	if !ok {
		return nil, resolved[T]{kind: resolvedNotFound}
	}
	p, ok := AsProvider[T](dp)
	if !ok {
		panic(registryBugMessage(key))
	}
	scope := p.definition.Scope

	if ds, ok := cx.singles.get(key); ok {
		if b != behaviourCreateThenReturn {
			return nil, resolved[T]{kind: resolvedNone}
		}
		if scope == ScopeSingleOwner {
			return nil, resolved[T]{kind: resolvedWrongScope}
		}
		s, ok := AsSingle[T](ds)
		if !ok {
			panic(registryBugMessage(key))
		}
		instance, _ := s.GetOwned()
		return nil, instanceOf(instance)
	}

	switch {
	case b == behaviourCreateThenReturn && scope == ScopeSingleOwner:
		return nil, resolved[T]{kind: resolvedWrongScope}
	case b == behaviourJustCreateSingle && scope == ScopeTransient:
		return nil, resolved[T]{kind: resolvedWrongScope}
	}

	return p, resolved[T]{}
}

// constructInstance runs a constructor with the key on the dependency
// chain, so nested resolutions of the same key surface as a cycle. The pop
// is deferred so a panicking constructor still unwinds the chain.
func constructInstance[T any](cx *Context, key Key, ctor func() T) T {
	cx.chain.push(key)
	defer cx.chain.pop()
	return ctor()
}

// afterResolve files the fresh instance according to the provider's scope
// and decides what the caller gets.
func afterResolve[T any](cx *Context, p *Provider[T], instance T, b behaviour) resolved[T] {
	key := p.definition.Key
	scope := p.definition.Scope

	if scope == ScopeSingleton || scope == ScopeSingleOwner {
		cx.singles.insert(key, dynSingleOf(newSingle(instance, p.cloneInstance)))
	}
	cx.log.LogEvent(&rigevent.Resolved{
		Name:     key.Name,
		TypeName: key.Type.Name(),
		Scope:    scope.String(),
	})

	if b != behaviourCreateThenReturn {
		return resolved[T]{kind: resolvedNone}
	}
	return instanceOf(instance)
}

func noProviderMessage(key Key) string {
	return fmt.Sprintf(
		"no provider found for %s, register one with WithProviders or seed an instance with Supply",
		key,
	)
}

func asyncConstructorMessage(key Key) string {
	return fmt.Sprintf(
		"the constructor of %s is async and cannot run in a synchronous resolution path, use the Async variant (ResolveAsync, CreateSingleAsync, NewAsync, ...) instead",
		key,
	)
}

func singleOwnerResolveMessage(key Key) string {
	return fmt.Sprintf(
		"%s is scoped SingleOwner, the context keeps sole ownership of its instance, use GetSingle or CreateSingle instead of Resolve",
		key,
	)
}

func transientSingleMessage(key Key) string {
	return fmt.Sprintf(
		"%s is scoped Transient and never caches an instance, use Resolve instead of CreateSingle",
		key,
	)
}

func noSingleMessage(key Key) string {
	return fmt.Sprintf(
		"no cached instance found for %s, create one first with CreateSingle or eager creation",
		key,
	)
}

func registryBugMessage(key Key) string {
	return fmt.Sprintf(
		"registry entry for %s does not match its key type; this is a bug in rig",
		key,
	)
}
