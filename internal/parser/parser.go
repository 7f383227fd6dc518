package parser

import (
	"log/slog"
	"strconv"
)

// Parser decodes symbol identification codes. It holds no state beyond
// its logger and is safe for concurrent use.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a new parser with only a logger dependency
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// parseDigits parses a fixed-width numeric field. Any character that is not
// an ASCII digit makes the whole field 0; it never fails.
func parseDigits(s string) int {
	if s == "" {
		return 0
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// digit returns the value of a single field character, or -1 when it is not
// a digit.
func digit(c byte) int {
	if c < '0' || c > '9' {
		return -1
	}
	return int(c - '0')
}
