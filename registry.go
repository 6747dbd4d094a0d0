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

	"go.uber.org/rig/rigevent"
)

// providerRegistry holds the type-erased providers of a context, keyed by
// (name, type).
type providerRegistry struct {
	providers     map[Key]*DynProvider
	allowOverride bool
	log           rigevent.Logger
}

func newProviderRegistry(allowOverride bool, log rigevent.Logger) *providerRegistry {
	return &providerRegistry{
		providers:     make(map[Key]*DynProvider),
		allowOverride: allowOverride,
		log:           log,
	}
}

// insert registers dp under its key. When the key is already taken the
// later registration wins if the registry allows overrides; otherwise
// insert panics.
func (r *providerRegistry) insert(dp *DynProvider) {
	key := dp.Key()
	if _, ok := r.providers[key]; ok {
		if !r.allowOverride {
			panic(fmt.Sprintf(
				"already existing a provider with the key %s, cannot override it because the context does not allow overrides",
				key,
			))
		}
		r.log.LogEvent(&rigevent.Overridden{
			Name:     key.Name,
			TypeName: key.Type.Name(),
		})
	} else {
		r.log.LogEvent(&rigevent.Provided{
			Name:            key.Name,
			TypeName:        key.Type.Name(),
			Scope:           dp.Definition().Scope.String(),
			Color:           dp.Definition().Color.String(),
			ConstructorName: dp.ConstructorName(),
		})
	}
	r.providers[key] = dp
}

func (r *providerRegistry) get(key Key) (*DynProvider, bool) {
	dp, ok := r.providers[key]
	return dp, ok
}

func (r *providerRegistry) remove(key Key) {
	delete(r.providers, key)
}

func (r *providerRegistry) len() int { return len(r.providers) }

func (r *providerRegistry) keys() []Key {
	keys := make([]Key, 0, len(r.providers))
	for key := range r.providers {
		keys = append(keys, key)
	}
	return keys
}

// singleRegistry holds constructed singleton and single-owner instances.
// Insertion order is retained so teardown can run in reverse.
type singleRegistry struct {
	singles map[Key]*DynSingle
	order   []Key
}

func newSingleRegistry() *singleRegistry {
	return &singleRegistry{singles: make(map[Key]*DynSingle)}
}

func (r *singleRegistry) insert(key Key, ds *DynSingle) {
	if _, ok := r.singles[key]; !ok {
		r.order = append(r.order, key)
	}
	r.singles[key] = ds
}

func (r *singleRegistry) get(key Key) (*DynSingle, bool) {
	ds, ok := r.singles[key]
	return ds, ok
}

func (r *singleRegistry) remove(key Key) {
	if _, ok := r.singles[key]; !ok {
		return
	}
	delete(r.singles, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *singleRegistry) len() int { return len(r.singles) }

func (r *singleRegistry) keys() []Key {
	keys := make([]Key, 0, len(r.singles))
	for key := range r.singles {
		keys = append(keys, key)
	}
	return keys
}

// reverseOrder returns the insertion order newest first, for teardown.
func (r *singleRegistry) reverseOrder() []Key {
	keys := make([]Key, len(r.order))
	for i, k := range r.order {
		keys[len(keys)-1-i] = k
	}
	return keys
}
