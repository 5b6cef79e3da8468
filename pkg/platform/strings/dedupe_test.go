package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "only separators", raw: " , ,", want: nil},
		{name: "single", raw: "localhost:9092", want: []string{"localhost:9092"}},
		{name: "trims and dedupes", raw: " b1:9092, b2:9092 ,b1:9092,", want: []string{"b1:9092", "b2:9092"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.raw, ","))
		})
	}
}

func TestTrimASCII(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "  Groceries \n", want: "Groceries"},
		{in: "\x00\t\v\fWork\r\x00", want: "Work"},
		{in: "\u00a0", want: "\u00a0"},
		{in: "\u3000Tea\u3000", want: "\u3000Tea\u3000"},
		{in: " a b ", want: "a b"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TrimASCII(tt.in), "TrimASCII(%q)", tt.in)
	}
}
