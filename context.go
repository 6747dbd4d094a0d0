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
	"io"
	"sort"

	"go.uber.org/multierr"
	"go.uber.org/rig/rigevent"
)

// Context is the dependency container. It holds registered providers,
// caches constructed singleton and single-owner instances, and runs
// constructors on demand.
//
// A Context is not safe for concurrent use.
type Context struct {
	allowOverride              bool
	allowOnlySingleEagerCreate bool
	eagerCreate                bool
	log                        rigevent.Logger

	providers *providerRegistry
	singles   *singleRegistry

	loadedModules []string
	eagerQueue    []eagerTask
	chain         dependencyChain
}

// eagerTask is a pending eager creation, queued at registration time and
// drained by CreateEagerInstances. The provider is looked up again by key
// when the task runs, so a task whose provider has been unloaded is a
// no-op and an overridden key runs the winning provider.
type eagerTask struct {
	key Key
	fn  eagerCreateFunc
}

// An Option configures a Context during New or NewAsync.
type Option interface {
	apply(*contextOptions)
}

type optionFunc func(*contextOptions)

func (f optionFunc) apply(o *contextOptions) { f(o) }

type contextOptions struct {
	allowOverride              bool
	allowOnlySingleEagerCreate bool
	eagerCreate                bool
	log                        rigevent.Logger
	modules                    []*Module
	supplies                   []func(*Context)
}

// WithModules loads the given module trees into the context as it is
// built.
func WithModules(modules ...*Module) Option {
	return optionFunc(func(o *contextOptions) {
		o.modules = append(o.modules, modules...)
	})
}

// AllowOverride sets whether a later registration under an existing key
// replaces the earlier one. The default is true; when false, a duplicate
// key panics.
func AllowOverride(allow bool) Option {
	return optionFunc(func(o *contextOptions) {
		o.allowOverride = allow
	})
}

// AllowOnlySingleEagerCreate sets whether eager creation is restricted to
// singleton and single-owner providers. The default is true; transient
// providers asking for eager creation are then quietly not queued, since
// the constructed value would be dropped on the floor.
func AllowOnlySingleEagerCreate(allow bool) Option {
	return optionFunc(func(o *contextOptions) {
		o.allowOnlySingleEagerCreate = allow
	})
}

// EagerCreate sets whether every provider loaded into the context is
// eagerly created, regardless of per-module and per-provider flags.
func EagerCreate(eagerCreate bool) Option {
	return optionFunc(func(o *contextOptions) {
		o.eagerCreate = eagerCreate
	})
}

// WithLogger sets the event logger the context reports registrations and
// resolutions to. The default logger discards all events.
func WithLogger(log rigevent.Logger) Option {
	return optionFunc(func(o *contextOptions) {
		o.log = log
	})
}

// Supply seeds the context with a pre-built unnamed instance, registered
// as a singleton. No constructor is involved; resolution always finds the
// cached value.
func Supply[T any](instance T) Option {
	return supplyOption("", instance, ScopeSingleton)
}

// SupplyNamed is Supply under an explicit name.
func SupplyNamed[T any](name string, instance T) Option {
	return supplyOption(name, instance, ScopeSingleton)
}

// SupplyOwner seeds the context with a pre-built unnamed instance that the
// context keeps sole ownership of, registered as a single owner. Retrieve
// it with GetSingle.
func SupplyOwner[T any](instance T) Option {
	return supplyOption("", instance, ScopeSingleOwner)
}

// SupplyOwnerNamed is SupplyOwner under an explicit name.
func SupplyOwnerNamed[T any](name string, instance T) Option {
	return supplyOption(name, instance, ScopeSingleOwner)
}

func supplyOption[T any](name string, instance T, scope Scope) Option {
	return optionFunc(func(o *contextOptions) {
		o.supplies = append(o.supplies, func(cx *Context) {
			p := neverConstruct[T](name, scope)
			cx.providers.insert(p.Dyn())
			cx.singles.insert(p.definition.Key, dynSingleOf(newSingle(instance, p.cloneInstance)))
			cx.log.LogEvent(&rigevent.Supplied{
				Name:     name,
				TypeName: p.definition.Key.Type.Name(),
			})
		})
	})
}

// New builds a Context: applies the options, seeds supplied instances,
// loads the option modules, then drains the eager-creation queue. It
// panics if any queued provider is async colored; use NewAsync for those.
func New(opts ...Option) *Context {
	cx := newContext(opts...)
	cx.CreateEagerInstances()
	return cx
}

// NewAsync is New for contexts containing async-colored providers. The
// ctx argument is passed through to async constructors run during eager
// creation.
func NewAsync(ctx context.Context, opts ...Option) *Context {
	cx := newContext(opts...)
	cx.CreateEagerInstancesAsync(ctx)
	return cx
}

func newContext(opts ...Option) *Context {
	o := &contextOptions{
		allowOverride:              true,
		allowOnlySingleEagerCreate: true,
		log:                        rigevent.NopLogger,
	}
	for _, opt := range opts {
		opt.apply(o)
	}

	cx := &Context{
		allowOverride:              o.allowOverride,
		allowOnlySingleEagerCreate: o.allowOnlySingleEagerCreate,
		eagerCreate:                o.eagerCreate,
		log:                        o.log,
		providers:                  newProviderRegistry(o.allowOverride, o.log),
		singles:                    newSingleRegistry(),
	}
	for _, seed := range o.supplies {
		seed(cx)
	}
	cx.LoadModules(o.modules...)
	return cx
}

// LoadModules registers the providers of the given module trees. Each
// module is flattened parent first, submodules in declaration order, and
// within a module the providers register in declaration order with every
// provider immediately followed by its bound providers. A module reachable
// more than once within a single call loads only once. Later registrations
// win conflicting keys when the context allows overrides.
func (cx *Context) LoadModules(modules ...*Module) {
	for _, m := range flatten(modules, (*Module).Submodules) {
		cx.loadModule(m)
	}
}

func (cx *Context) loadModule(m *Module) {
	count := 0
	for _, dp := range flatten(m.Providers(), (*DynProvider).bindings) {
		if cx.loadProvider(dp, m.EagerCreate()) {
			count++
		}
	}
	cx.loadedModules = append(cx.loadedModules, m.Name())
	cx.log.LogEvent(&rigevent.ModuleLoaded{
		Module:        m.Name(),
		ProviderCount: count,
	})
}

// loadProvider registers one type-erased provider, reporting whether it
// was registered rather than skipped by its condition.
func (cx *Context) loadProvider(dp *DynProvider, moduleEagerCreate bool) bool {
	key := dp.Key()
	if cond := dp.Condition(); cond != nil && !cond(cx) {
		cx.log.LogEvent(&rigevent.Skipped{
			Name:     key.Name,
			TypeName: key.Type.Name(),
		})
		return false
	}
	cx.providers.insert(dp)

	need := cx.eagerCreate || moduleEagerCreate || dp.EagerCreate()
	scope := dp.Definition().Scope
	allowed := !cx.allowOnlySingleEagerCreate ||
		scope == ScopeSingleton ||
		scope == ScopeSingleOwner
	if need && allowed {
		cx.eagerQueue = append(cx.eagerQueue, eagerTask{key: key, fn: dp.eagerCreateFunction})
	}
	return true
}

// UnloadModules removes the providers of the given module trees from the
// context, along with any cached instances they produced. Unloading a
// module that is not loaded is a no-op per key.
func (cx *Context) UnloadModules(modules ...*Module) {
	for _, m := range flatten(modules, (*Module).Submodules) {
		removed := 0
		for _, dp := range flatten(m.Providers(), (*DynProvider).bindings) {
			key := dp.Key()
			if _, ok := cx.providers.get(key); ok {
				removed++
			}
			cx.providers.remove(key)
			cx.singles.remove(key)
		}
		cx.removeLoadedModule(m.Name())
		cx.log.LogEvent(&rigevent.ModuleUnloaded{
			Module:        m.Name(),
			ProviderCount: removed,
		})
	}
}

func (cx *Context) removeLoadedModule(name string) {
	for i := len(cx.loadedModules) - 1; i >= 0; i-- {
		if cx.loadedModules[i] == name {
			cx.loadedModules = append(cx.loadedModules[:i], cx.loadedModules[i+1:]...)
			return
		}
	}
}

// CreateEagerInstances drains the eager-creation queue in registration
// order. New and NewAsync call it automatically; call it again after a
// later LoadModules to eagerly create that batch too.
//
// It panics if a queued provider is async colored.
func (cx *Context) CreateEagerInstances() {
	for len(cx.eagerQueue) > 0 {
		task := cx.eagerQueue[0]
		cx.eagerQueue = cx.eagerQueue[1:]
		cx.log.LogEvent(&rigevent.EagerCreating{
			Name:     task.key.Name,
			TypeName: task.key.Type.Name(),
		})
		if task.fn.s == nil {
			panic(asyncConstructorMessage(task.key))
		}
		task.fn.s(cx, task.key.Name)
	}
}

// CreateEagerInstancesAsync drains the eager-creation queue in
// registration order, running async constructors with ctx.
func (cx *Context) CreateEagerInstancesAsync(ctx context.Context) {
	for len(cx.eagerQueue) > 0 {
		task := cx.eagerQueue[0]
		cx.eagerQueue = cx.eagerQueue[1:]
		cx.log.LogEvent(&rigevent.EagerCreating{
			Name:     task.key.Name,
			TypeName: task.key.Type.Name(),
		})
		if task.fn.a != nil {
			task.fn.a(ctx, cx, task.key.Name)
		} else {
			task.fn.s(cx, task.key.Name)
		}
	}
}

// Close tears the context down: cached instances implementing io.Closer
// are closed newest first, every cached instance is evicted, and the
// close errors are combined into one. Close is idempotent.
//
// The context stays usable: singleton and single-owner providers
// reconstruct on the next request. Supplied instances cannot be
// reconstructed, so Close deregisters their providers entirely and a
// later resolution reports no provider.
func (cx *Context) Close() error {
	var err error
	for _, key := range cx.singles.reverseOrder() {
		ds, ok := cx.singles.get(key)
		if !ok {
			continue
		}
		if closer, ok := ds.value.(io.Closer); ok {
			err = multierr.Append(err, closer.Close())
		}
		cx.singles.remove(key)

		if dp, ok := cx.providers.get(key); ok && dp.standalone {
			cx.providers.remove(key)
		}
	}
	return err
}

// AllowsOverride reports whether later registrations replace earlier ones
// under the same key.
func (cx *Context) AllowsOverride() bool { return cx.allowOverride }

// AllowsOnlySingleEagerCreate reports whether eager creation is restricted
// to singleton and single-owner providers.
func (cx *Context) AllowsOnlySingleEagerCreate() bool { return cx.allowOnlySingleEagerCreate }

// ProvidersLen returns the number of registered providers.
func (cx *Context) ProvidersLen() int { return cx.providers.len() }

// SinglesLen returns the number of cached instances.
func (cx *Context) SinglesLen() int { return cx.singles.len() }

// ProviderKeys returns the keys of all registered providers, sorted.
func (cx *Context) ProviderKeys() []Key {
	keys := cx.providers.keys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}

// SingleKeys returns the keys of all cached instances, sorted.
func (cx *Context) SingleKeys() []Key {
	keys := cx.singles.keys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}

// LoadedModules returns the names of the loaded modules in load order,
// submodules flattened in.
func (cx *Context) LoadedModules() []string {
	out := make([]string, len(cx.loadedModules))
	copy(out, cx.loadedModules)
	return out
}
