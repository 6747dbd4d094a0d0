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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/rig/rigevent"
)

func TestConsoleLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give rigevent.Event
		want string
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
			want: "[Rig] PROVIDE\t*db.Pool[primary]\tSingleton/Sync <= db.NewPool()\n",
		},
		{
			name: "Overridden",
			give: &rigevent.Overridden{Name: "primary", TypeName: "*db.Pool"},
			want: "[Rig] OVERRIDE\t*db.Pool[primary]\n",
		},
		{
			name: "Skipped",
			give: &rigevent.Skipped{Name: "", TypeName: "*db.Pool"},
			want: "[Rig] SKIP\t*db.Pool[] condition not met\n",
		},
		{
			name: "Supplied",
			give: &rigevent.Supplied{Name: "", TypeName: "*app.Config"},
			want: "[Rig] SUPPLY\t*app.Config[]\n",
		},
		{
			name: "ModuleLoaded",
			give: &rigevent.ModuleLoaded{Module: "db", ProviderCount: 3},
			want: "[Rig] LOAD\tdb (3 providers)\n",
		},
		{
			name: "ModuleUnloaded",
			give: &rigevent.ModuleUnloaded{Module: "db", ProviderCount: 3},
			want: "[Rig] UNLOAD\tdb (3 providers)\n",
		},
		{
			name: "EagerCreating",
			give: &rigevent.EagerCreating{Name: "", TypeName: "*db.Pool"},
			want: "[Rig] EAGER\t*db.Pool[]\n",
		},
		{
			name: "Resolved",
			give: &rigevent.Resolved{Name: "", TypeName: "*db.Pool", Scope: "Singleton"},
			want: "[Rig] RESOLVE\t*db.Pool[]\tSingleton\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			(&rigevent.ConsoleLogger{W: &buf}).LogEvent(tt.give)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		rigevent.NopLogger.LogEvent(&rigevent.Resolved{})
	})
}
