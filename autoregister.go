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

import "sync"

// The auto-register list is process wide, appended to from package init
// functions across the program.
var autoRegistered = struct {
	sync.Mutex
	providers []*DynProvider
}{}

// Register adds a provider to the process-wide auto-register list. Call it
// from an init function next to the constructor:
//
//	func init() {
//		rig.Register(rig.Singleton(NewStore))
//	}
//
// The accumulated providers become a module through AutoRegisterModule.
func Register(provider AnyProvider) {
	dp := provider.Dyn()
	autoRegistered.Lock()
	defer autoRegistered.Unlock()
	autoRegistered.providers = append(autoRegistered.providers, dp)
}

// AutoRegisterModule returns a module named "auto-register" holding every
// provider passed to Register so far, in registration order. Load it like
// any other module:
//
//	cx := rig.New(rig.WithModules(rig.AutoRegisterModule()))
func AutoRegisterModule() *Module {
	autoRegistered.Lock()
	defer autoRegistered.Unlock()

	providers := make([]*DynProvider, len(autoRegistered.providers))
	copy(providers, autoRegistered.providers)
	return &Module{name: "auto-register", providers: providers}
}

// ResetRegistered clears the process-wide auto-register list. Intended for
// tests that mutate the list.
func ResetRegistered() {
	autoRegistered.Lock()
	defer autoRegistered.Unlock()
	autoRegistered.providers = nil
}
