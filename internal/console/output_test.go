// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputStateSetMode(t *testing.T) {
	t.Parallel()

	o := &OutputState{}
	o.SetMode(true, false, true)

	assert.True(t, o.Verbose)
	assert.False(t, o.JSON)
	assert.True(t, o.Quiet)
}

func TestOutputState_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state OutputState
		emit  func(o *OutputState)
		want  string
	}{
		{
			name:  "progress when verbose",
			state: OutputState{Verbose: true},
			emit:  func(o *OutputState) { o.Progressf("loading %s", "index") },
			want:  "loading index\n",
		},
		{
			name:  "progress silent by default",
			state: OutputState{},
			emit:  func(o *OutputState) { o.Progressf("loading") },
		},
		{
			name:  "success",
			state: OutputState{},
			emit:  func(o *OutputState) { o.Successf("view set to %s", "rows") },
			want:  "✓ view set to rows\n",
		},
		{
			name:  "success silent in quiet mode",
			state: OutputState{Quiet: true},
			emit:  func(o *OutputState) { o.Successf("done") },
		},
		{
			name:  "warning always visible",
			state: OutputState{Quiet: true, JSON: true},
			emit:  func(o *OutputState) { o.Warningf("could not save") },
			want:  "⚠ could not save\n",
		},
		{
			name:  "error prefix added once",
			state: OutputState{},
			emit:  func(o *OutputState) { o.Errorf("%s", "✗ Template not found") },
			want:  "✗ Template not found\n",
		},
		{
			name:  "error prefix added",
			state: OutputState{},
			emit:  func(o *OutputState) { o.Errorf("boom") },
			want:  "✗ boom\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			state := testCase.state
			state.Err = &buf
			testCase.emit(&state)

			assert.Equal(t, testCase.want, buf.String())
		})
	}
}

func TestOutputState_BoldPlainInJSON(t *testing.T) {
	t.Parallel()

	o := &OutputState{JSON: true}
	assert.Equal(t, "title", o.Bold("title"))
}
