package metadata

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivemeta/stlmeta/pkg/geometry"
	"github.com/archivemeta/stlmeta/pkg/stl"
	"github.com/archivemeta/stlmeta/pkg/validate"
)

func unitTestTriangle() geometry.Triangle {
	return geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	)
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.stl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestChecksum(t *testing.T) {
	content := "solid cube\nendsolid cube\n"
	path := writeTempFile(t, content)

	sum, err := Checksum(path, "sha256")
	require.NoError(t, err)

	expected := sha256.Sum256([]byte(content))
	assert.Equal(t, hex.EncodeToString(expected[:]), sum)
}

func TestChecksumDefaultsToSHA256(t *testing.T) {
	path := writeTempFile(t, "content")

	explicit, err := Checksum(path, "sha256")
	require.NoError(t, err)
	implicit, err := Checksum(path, "")
	require.NoError(t, err)
	assert.Equal(t, explicit, implicit)
}

func TestChecksumUnsupportedAlgorithm(t *testing.T) {
	path := writeTempFile(t, "content")

	_, err := Checksum(path, "md6")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "md6")
}

func TestStat(t *testing.T) {
	content := "solid cube\nendsolid cube\n"
	path := writeTempFile(t, content)

	attrs, err := Stat(path, "sha256")
	require.NoError(t, err)

	assert.Equal(t, int64(len(content)), attrs.Size)
	assert.NotEmpty(t, attrs.Checksum)

	created, err := time.Parse(timeLayout, attrs.Created)
	require.NoError(t, err)
	modified, err := time.Parse(timeLayout, attrs.Modified)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), created, time.Minute)
	assert.WithinDuration(t, time.Now(), modified, time.Minute)
}

func TestTimeLayoutFractionalSeconds(t *testing.T) {
	precise := time.Date(2026, 1, 2, 3, 4, 5, 123456000, time.UTC)
	assert.Equal(t, "2026-01-02T03:04:05.123456", precise.Format(timeLayout))

	// Whole seconds render without a fractional part.
	whole := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-01-02T03:04:05", whole.Format(timeLayout))
}

func TestStatMissingFile(t *testing.T) {
	_, err := Stat(filepath.Join(t.TempDir(), "absent.stl"), "sha256")
	require.Error(t, err)
}

func TestBuildRecord(t *testing.T) {
	model := stl.NewModel("cube", stl.FormatBinary)
	model.AddTriangle(unitTestTriangle())
	report := &validate.Report{
		OrientationConsistent:     true,
		WindingCounterclockwise:   false,
		AllCoordinatesNonNegative: true,
		HasIsolatedTriangle:       true,
		HasName:                   true,
	}
	attrs := FileAttributes{
		Size:     1234,
		Checksum: "abc123",
		Created:  "2026-01-02T03:04:05",
		Modified: "2026-01-02T03:04:06",
	}

	record := BuildRecord(attrs, model, report)

	assert.Equal(t, "STL", record.FormatName)
	assert.Equal(t, int64(1234), record.Size)
	assert.Equal(t, "abc123", record.SHA256Checksum)
	assert.Equal(t, "binary", record.DetectedFormat)
	assert.Equal(t, "cube", record.SolidName)
	assert.Equal(t, 1, record.TotalTriangleCount)
	assert.False(t, record.AllVerticesOfFacetsAreOrderedCounterclockwise)
	assert.True(t, record.AllFacetNormalsAreCorrect)
	assert.True(t, record.HasIsolatedTriangle)
}

func TestRecordWriteXML(t *testing.T) {
	model := stl.NewModel("cube", stl.FormatASCII)
	model.AddTriangle(unitTestTriangle())
	model.AddTriangle(unitTestTriangle())
	report := validate.Analyze(model, validate.Options{})

	record := BuildRecord(FileAttributes{Size: 42, Checksum: "deadbeef"}, model, report)

	buf := &bytes.Buffer{}
	require.NoError(t, record.WriteXML(buf))
	output := buf.String()

	assert.True(t, strings.HasPrefix(output, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>"))
	assert.Contains(t, output, "<STLMetadataExtractor xmlns=")
	assert.Contains(t, output, "<formatName>STL</formatName>")
	assert.Contains(t, output, "<size>42</size>")
	assert.Contains(t, output, "<SHA256Checksum>deadbeef</SHA256Checksum>")
	assert.Contains(t, output, "<detectedFormat>ASCII</detectedFormat>")
	assert.Contains(t, output, "<solidName>cube</solidName>")
	assert.Contains(t, output, "<totalTriangleCount>2</totalTriangleCount>")
	assert.Contains(t, output, "<hasName>true</hasName>")
	assert.Contains(t, output, "<allVertexCoordinatesAreGreaterThanZero>true</allVertexCoordinatesAreGreaterThanZero>")
}

func TestRecordWriteXMLOmitsEmptyName(t *testing.T) {
	model := stl.NewModel("", stl.FormatASCII)
	report := validate.Analyze(model, validate.Options{})
	record := BuildRecord(FileAttributes{}, model, report)

	buf := &bytes.Buffer{}
	require.NoError(t, record.WriteXML(buf))

	assert.NotContains(t, buf.String(), "<solidName>")
	assert.Contains(t, buf.String(), "<hasName>false</hasName>")
}

func TestWriteFailureNote(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteFailureNote(buf, "line 3: expected 'outer loop' but got 'outerloop'"))

	var note map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &note))
	assert.Equal(t, "fail", note["eventOutcomeInformation"])
	assert.Contains(t, note["eventOutcomeDetailNote"], "outer loop")

	value, present := note["stdout"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestFormatDetailNote(t *testing.T) {
	note := FormatDetailNote("STL", "1.0", "errors: 0, warnings: 1")
	assert.Equal(t, `format="STL"; version="1.0"; result="errors: 0, warnings: 1"`, note)

	assert.Equal(t, `format="STL";`, FormatDetailNote("STL", "", ""))
}
