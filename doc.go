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

// Package rig is a lightweight dependency container for Go.
//
// Providers describe how to construct a value of one type under one name,
// and which of three scopes governs the result: Singleton (constructed
// once, copies handed out), Transient (constructed per request), or
// SingleOwner (constructed once, never handed out). Providers are grouped
// into Modules, Modules are loaded into a Context, and values are pulled
// out with the generic Resolve family:
//
//	cx := rig.New(rig.WithModules(rig.NewModule("app",
//		rig.WithProviders(
//			rig.Singleton(NewConfig),
//			rig.Transient(NewRequestID),
//		),
//	)))
//	defer cx.Close()
//
//	cfg := rig.Resolve[*Config](cx)
//
// Constructors take the Context and resolve their own dependencies from
// it; cycles among constructors are detected and reported with the full
// dependency chain. Constructors that must not block a synchronous path
// get an async variant (SingletonAsync and friends) and are resolved with
// ResolveAsync, carrying a context.Context.
//
// Events describing registrations and resolutions can be observed through
// the rigevent package, for example with rigevent.ZapLogger.
package rig // import "go.uber.org/rig"
