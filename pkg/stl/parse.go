package stl

import (
	"bytes"
	"fmt"
	"os"
)

// Parse detects the encoding of data and dispatches to the matching
// parser. Detection is a pure dispatch step; both parsers produce the same
// Model representation.
func Parse(data []byte) (*Model, error) {
	if DetectFormat(data) == FormatBinary {
		return ParseBinary(data)
	}
	return ParseASCII(bytes.NewReader(data))
}

// ParseFile reads the file at path into memory and parses it.
func ParseFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return Parse(data)
}
