package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "nil", input: nil, want: []string{}},
		{name: "blanks dropped", input: []string{"", "  ", "Library"}, want: []string{"Library"}},
		{name: "first occurrence wins", input: []string{" Library", "SAC", "Library "}, want: []string{"Library", "SAC"}},
		{name: "case is significant", input: []string{"library", "Library"}, want: []string{"library", "Library"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeAndTrim(tt.input))
		})
	}
}
