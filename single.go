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

// Single holds a cached Singleton or SingleOwner instance.
type Single[T any] struct {
	instance T
	clone    func(T) T
}

func newSingle[T any](instance T, clone func(T) T) *Single[T] {
	return &Single[T]{instance: instance, clone: clone}
}

// GetOwned returns a copy of the instance. It reports false for SingleOwner
// instances, which never yield owned values.
func (s *Single[T]) GetOwned() (T, bool) {
	if s.clone == nil {
		var zero T
		return zero, false
	}
	return s.clone(s.instance), true
}

// Get returns the cached instance itself.
func (s *Single[T]) Get() T { return s.instance }

// DynSingle is a Single that erased its type so that heterogeneous instances
// can live in one registry.
type DynSingle struct {
	origin interface{} // *Single[T]

	// value holds the instance itself, so teardown can look for io.Closer
	// without knowing T.
	value interface{}
}

func dynSingleOf[T any](s *Single[T]) *DynSingle {
	return &DynSingle{origin: s, value: s.instance}
}

// AsSingle returns the origin Single if it holds an instance of type T.
func AsSingle[T any](ds *DynSingle) (*Single[T], bool) {
	s, ok := ds.origin.(*Single[T])
	return s, ok
}
