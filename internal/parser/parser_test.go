package parser

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *Parser {
	p := NewParser(slog.Default())
	return p
}

func TestNewParser(t *testing.T) {
	p := newTestParser()
	require.NotNil(t, p)

	require.NotNil(t, NewParser(nil).logger)
}

func TestParseDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"two digits", "10", 10},
		{"zero", "00", 0},
		{"six digits", "121100", 121100},
		{"leading zeros", "000042", 42},
		{"empty string", "", 0},
		{"letters", "ab", 0},
		{"partial digits", "1a", 0},
		{"sign", "-1", 0},
		{"space", " 1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDigits(tt.input))
		})
	}
}

func TestDigit(t *testing.T) {
	assert.Equal(t, 0, digit('0'))
	assert.Equal(t, 9, digit('9'))
	assert.Equal(t, -1, digit('x'))
	assert.Equal(t, -1, digit(' '))
}
