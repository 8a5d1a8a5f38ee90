package cmd

import (
	"testing"

	"github.com/cwbudde/nutmeg/internal/value"
)

func TestMarshalArg(t *testing.T) {
	tests := []struct {
		in   string
		want value.Value
	}{
		{"123", value.Number(123)},
		{"-4.5", value.Number(-4.5)},
		{"true", value.Bool(true)},
		{"false", value.Bool(false)},
		{"goo", value.String("goo")},
		{"True", value.String("True")}, // not exact-lowercase, falls through to string
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := marshalArg(tt.in)
			if got.Kind != tt.want.Kind || got.String() != tt.want.String() {
				t.Fatalf("marshalArg(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
