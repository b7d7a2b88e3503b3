package stl

import (
	"encoding/binary"
)

const (
	headerSize         = 80
	countSize          = 4
	triangleRecordSize = 50 // 12 little-endian float32 + 2 attribute bytes
	minBinarySize      = headerSize + countSize
)

// DetectFormat classifies the raw bytes of an STL file as ASCII or binary.
//
// Binary STL has a fixed layout: an 80-byte header, a 4-byte little-endian
// triangle count, then exactly 50 bytes per triangle. The file is binary
// iff 84 + 50*count equals the total size exactly; everything else,
// including files shorter than 84 bytes, falls through to ASCII, where the
// stricter text grammar produces the user-facing error for garbage input.
//
// This is a heuristic: an ASCII file whose size coincidentally satisfies
// the equation for its bytes at offset 80 is misclassified as binary. Real
// binary files routinely start with "solid" in their header text, so the
// size equation wins over a "solid" prefix check.
func DetectFormat(data []byte) Format {
	if len(data) < minBinarySize {
		return FormatASCII
	}
	declared := binary.LittleEndian.Uint32(data[headerSize : headerSize+countSize])
	expected := int64(minBinarySize) + int64(declared)*triangleRecordSize
	if expected == int64(len(data)) {
		return FormatBinary
	}
	return FormatASCII
}
