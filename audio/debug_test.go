// SPDX-License-Identifier: EPL-2.0

//go:build audbufdebug

package audio

import (
	"strings"
	"testing"
)

func TestBuffer_DebugBoundsChecks(t *testing.T) {
	t.Parallel()

	b, _ := NewSized(4, 2)

	tests := []struct {
		name string
		fn   func()
	}{
		{"At frame past end", func() { b.At(4, 0) }},
		{"SetAt frame past end", func() { b.SetAt(4, 0, 1) }},
		{"Frame past end", func() { b.Frame(4) }},
		{"Frame negative", func() { b.Frame(-1) }},
		{"Frame channel past end", func() { b.Frame(0).At(2) }},
		{"Frame Set channel past end", func() { b.Frame(3).Set(2, 1) }},
		{"Channel past end", func() { b.Channel(2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				msg, ok := r.(string)
				if !ok || !strings.HasPrefix(msg, "audio: ") {
					t.Errorf("%s: recovered %v, want an audio bounds assertion", tt.name, r)
				}
			}()
			tt.fn()
		})
	}

	if got := b.At(3, 1); got != 0 {
		t.Errorf("At(3, 1) = %v, want 0", got)
	}
}
