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

import "go.uber.org/zap"

// ZapLogger is a rig event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the underlying Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Provided:
		l.Logger.Debug("provided",
			zap.String("name", e.Name),
			zap.String("type", e.TypeName),
			zap.String("scope", e.Scope),
			zap.String("color", e.Color),
			zap.String("constructor", e.ConstructorName),
		)
	case *Overridden:
		l.Logger.Warn("provider overridden",
			zap.String("name", e.Name),
			zap.String("type", e.TypeName),
		)
	case *Skipped:
		l.Logger.Debug("condition not met, provider skipped",
			zap.String("name", e.Name),
			zap.String("type", e.TypeName),
		)
	case *Supplied:
		l.Logger.Debug("supplied",
			zap.String("name", e.Name),
			zap.String("type", e.TypeName),
		)
	case *ModuleLoaded:
		l.Logger.Info("module loaded",
			zap.String("module", e.Module),
			zap.Int("providers", e.ProviderCount),
		)
	case *ModuleUnloaded:
		l.Logger.Info("module unloaded",
			zap.String("module", e.Module),
			zap.Int("providers", e.ProviderCount),
		)
	case *EagerCreating:
		l.Logger.Debug("eagerly creating",
			zap.String("name", e.Name),
			zap.String("type", e.TypeName),
		)
	case *Resolved:
		l.Logger.Debug("resolved",
			zap.String("name", e.Name),
			zap.String("type", e.TypeName),
			zap.String("scope", e.Scope),
		)
	}
}
