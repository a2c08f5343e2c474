package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		text  string
		want  int
		valid bool
	}{
		{"45", 45, true},
		{"30m", 30, true},
		{"30M", 30, true},
		{"2h", 120, true},
		{"2H", 120, true},
		{"0", 0, true}, // синтаксически валидно, положительность проверяется отдельно
		{"abc", 0, false},
		{"1h30m", 0, false}, // составная форма не поддерживается
		{"1.5h", 0, false},
		{"-30", 0, false},
		{"30 m", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := Duration(tt.text)
		assert.Equal(t, tt.valid, ok, "Duration(%q)", tt.text)
		if tt.valid {
			assert.Equal(t, tt.want, got, "Duration(%q)", tt.text)
		}
	}
}
