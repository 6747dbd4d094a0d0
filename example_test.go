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

package rig_test

import (
	"fmt"

	"go.uber.org/rig"
)

type Settings struct {
	Greeting string
}

type Greeter struct {
	settings *Settings
}

func (g *Greeter) Greet(who string) string {
	return fmt.Sprintf("%s, %s!", g.settings.Greeting, who)
}

func NewSettings(*rig.Context) *Settings {
	return &Settings{Greeting: "hello"}
}

func NewGreeter(cx *rig.Context) *Greeter {
	return &Greeter{settings: rig.Resolve[*Settings](cx)}
}

func Example() {
	cx := rig.New(rig.WithModules(rig.NewModule("greeting",
		rig.WithProviders(
			rig.Singleton(NewSettings),
			rig.Singleton(NewGreeter),
		),
	)))
	defer cx.Close()

	g := rig.Resolve[*Greeter](cx)
	fmt.Println(g.Greet("world"))
	// Output: hello, world!
}

func ExampleSupply() {
	cx := rig.New(rig.Supply(&Settings{Greeting: "hi"}))
	defer cx.Close()

	fmt.Println(rig.Resolve[*Settings](cx).Greeting)
	// Output: hi
}

func ExampleResolveByType() {
	cx := rig.New(rig.WithModules(rig.NewModule("greeting",
		rig.WithProviders(
			rig.Singleton(func(*rig.Context) *Settings { return &Settings{Greeting: "hello"} }),
			rig.Singleton(func(*rig.Context) *Settings { return &Settings{Greeting: "hola"} }).Name("es"),
		),
	)))
	defer cx.Close()

	for _, s := range rig.ResolveByType[*Settings](cx) {
		fmt.Println(s.Greeting)
	}
	// Output:
	// hello
	// hola
}

func ExampleProviderBuilder_Bind() {
	type Greeting interface {
		Greet(string) string
	}

	cx := rig.New(rig.WithModules(rig.NewModule("greeting",
		rig.WithProviders(
			rig.Singleton(NewSettings),
			rig.Singleton(NewGreeter).Bind(rig.As(func(g *Greeter) Greeting { return g })),
		),
	)))
	defer cx.Close()

	fmt.Println(rig.Resolve[Greeting](cx).Greet("interface"))
	// Output: hello, interface!
}
