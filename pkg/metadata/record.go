package metadata

import (
	"encoding/xml"
	"io"

	"github.com/archivemeta/stlmeta/pkg/stl"
	"github.com/archivemeta/stlmeta/pkg/validate"
)

const schemaNamespace = "https://archivemeta.github.io/stlmeta/schema/1"

// Record is the final metadata payload, serialized as an XML document for
// the preservation pipeline. Boolean elements render as "true"/"false".
type Record struct {
	XMLName xml.Name `xml:"STLMetadataExtractor"`
	Xmlns   string   `xml:"xmlns,attr"`

	FormatName       string `xml:"formatName"`
	Size             int64  `xml:"size"`
	SHA256Checksum   string `xml:"SHA256Checksum"`
	CreationDate     string `xml:"creationDate"`
	ModificationDate string `xml:"modificationDate"`

	DetectedFormat     string `xml:"detectedFormat"`
	SolidName          string `xml:"solidName,omitempty"`
	TotalTriangleCount int    `xml:"totalTriangleCount"`

	AllVerticesOfFacetsAreOrderedCounterclockwise bool `xml:"allVerticesOfFacetsAreOrderedCounterclockwise"`
	AllFacetNormalsAreCorrect                     bool `xml:"allFacetNormalsAreCorrect"`
	HasIsolatedTriangle                           bool `xml:"hasIsolatedTriangle"`
	AllVertexCoordinatesAreGreaterThanZero        bool `xml:"allVertexCoordinatesAreGreaterThanZero"`
	HasName                                       bool `xml:"hasName"`
}

// BuildRecord merges the file attributes, the mesh summary, and the
// validation report into the output payload. Pure field selection; no
// additional logic lives here.
func BuildRecord(attrs FileAttributes, model *stl.Model, report *validate.Report) *Record {
	return &Record{
		Xmlns:            schemaNamespace,
		FormatName:       "STL",
		Size:             attrs.Size,
		SHA256Checksum:   attrs.Checksum,
		CreationDate:     attrs.Created,
		ModificationDate: attrs.Modified,

		DetectedFormat:     string(model.Format),
		SolidName:          model.Name,
		TotalTriangleCount: model.TriangleCount(),

		AllVerticesOfFacetsAreOrderedCounterclockwise: report.WindingCounterclockwise,
		AllFacetNormalsAreCorrect:                     report.OrientationConsistent,
		HasIsolatedTriangle:                           report.HasIsolatedTriangle,
		AllVertexCoordinatesAreGreaterThanZero:        report.AllCoordinatesNonNegative,
		HasName:                                       report.HasName,
	}
}

// WriteXML writes the record as an indented XML document.
func (r *Record) WriteXML(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "    ")
	if err := encoder.Encode(r); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
