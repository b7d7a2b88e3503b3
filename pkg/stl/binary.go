package stl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/archivemeta/stlmeta/pkg/geometry"
)

// ParseBinary decodes the fixed binary layout into a Model.
//
// Binary STL has no name field; the 80-byte header is scrubbed of
// non-printable bytes and the remainder is used as a best-effort solid
// name. No textual validation is possible: a malformed file whose size
// still satisfies the record equation parses into (possibly meaningless)
// triangles, which is accepted behavior rather than an error.
func ParseBinary(data []byte) (*Model, error) {
	if len(data) < minBinarySize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d-byte minimum", ErrMalformedFile, len(data), minBinarySize)
	}

	model := NewModel(scrubHeader(data[:headerSize]), FormatBinary)

	count := binary.LittleEndian.Uint32(data[headerSize:minBinarySize])
	body := data[minBinarySize:]
	if int64(len(body)) != int64(count)*triangleRecordSize {
		return nil, fmt.Errorf("%w: declared %d triangles but %d bytes remain", ErrMalformedFile, count, len(body))
	}

	reader := bytes.NewReader(body)
	for i := uint32(0); i < count; i++ {
		var record struct {
			Normal     [3]float32
			V1, V2, V3 [3]float32
			Attribute  uint16 // attribute byte count, not semantically used
		}
		if err := binary.Read(reader, binary.LittleEndian, &record); err != nil {
			return nil, fmt.Errorf("%w: failed to read triangle %d: %v", ErrMalformedFile, i, err)
		}
		model.AddTriangle(geometry.NewTriangle(
			vector3From(record.Normal),
			vector3From(record.V1),
			vector3From(record.V2),
			vector3From(record.V3),
		))
	}

	return model, nil
}

func vector3From(c [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(c[0]), float64(c[1]), float64(c[2]))
}

// scrubHeader drops non-printable bytes and trims surrounding whitespace.
func scrubHeader(header []byte) string {
	clean := make([]byte, 0, len(header))
	for _, b := range header {
		if b >= 0x20 && b < 0x7f {
			clean = append(clean, b)
		}
	}
	return strings.TrimSpace(string(clean))
}
