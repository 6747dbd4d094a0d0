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

package rigevent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/rig/rigevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		give        rigevent.Event
		wantMessage string
		wantLevel   zapcore.Level
		wantFields  map[string]interface{}
	}{
		{
			name: "Provided",
			give: &rigevent.Provided{
				Name:            "primary",
				TypeName:        "*db.Pool",
				Scope:           "Singleton",
				Color:           "Sync",
				ConstructorName: "db.NewPool()",
			},
			wantMessage: "provided",
			wantLevel:   zap.DebugLevel,
			wantFields: map[string]interface{}{
				"name":        "primary",
				"type":        "*db.Pool",
				"scope":       "Singleton",
				"color":       "Sync",
				"constructor": "db.NewPool()",
			},
		},
		{
			name:        "Overridden",
			give:        &rigevent.Overridden{Name: "primary", TypeName: "*db.Pool"},
			wantMessage: "provider overridden",
			wantLevel:   zap.WarnLevel,
			wantFields: map[string]interface{}{
				"name": "primary",
				"type": "*db.Pool",
			},
		},
		{
			name:        "Skipped",
			give:        &rigevent.Skipped{Name: "", TypeName: "*db.Pool"},
			wantMessage: "condition not met, provider skipped",
			wantLevel:   zap.DebugLevel,
			wantFields: map[string]interface{}{
				"name": "",
				"type": "*db.Pool",
			},
		},
		{
			name:        "ModuleLoaded",
			give:        &rigevent.ModuleLoaded{Module: "db", ProviderCount: 3},
			wantMessage: "module loaded",
			wantLevel:   zap.InfoLevel,
			wantFields: map[string]interface{}{
				"module":    "db",
				"providers": int64(3),
			},
		},
		{
			name:        "Resolved",
			give:        &rigevent.Resolved{Name: "", TypeName: "*db.Pool", Scope: "Singleton"},
			wantMessage: "resolved",
			wantLevel:   zap.DebugLevel,
			wantFields: map[string]interface{}{
				"name":  "",
				"type":  "*db.Pool",
				"scope": "Singleton",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			core, observed := observer.New(zap.DebugLevel)
			(&rigevent.ZapLogger{Logger: zap.New(core)}).LogEvent(tt.give)

			entries := observed.TakeAll()
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, tt.wantMessage, entry.Message)
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.wantFields, entry.ContextMap())
		})
	}
}
