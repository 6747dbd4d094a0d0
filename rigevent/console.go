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

package rigevent

import (
	"fmt"
	"io"
)

// ConsoleLogger is a rig event logger that writes human-readable messages to
// the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[Rig] "+msg+"\n", args...)
}

// LogEvent logs the given event to the underlying writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Provided:
		l.logf("PROVIDE\t%v[%v]\t%v/%v <= %v", e.TypeName, e.Name, e.Scope, e.Color, e.ConstructorName)
	case *Overridden:
		l.logf("OVERRIDE\t%v[%v]", e.TypeName, e.Name)
	case *Skipped:
		l.logf("SKIP\t%v[%v] condition not met", e.TypeName, e.Name)
	case *Supplied:
		l.logf("SUPPLY\t%v[%v]", e.TypeName, e.Name)
	case *ModuleLoaded:
		l.logf("LOAD\t%v (%d providers)", e.Module, e.ProviderCount)
	case *ModuleUnloaded:
		l.logf("UNLOAD\t%v (%d providers)", e.Module, e.ProviderCount)
	case *EagerCreating:
		l.logf("EAGER\t%v[%v]", e.TypeName, e.Name)
	case *Resolved:
		l.logf("RESOLVE\t%v[%v]\t%v", e.TypeName, e.Name, e.Scope)
	}
}
