package metadata

import (
	"encoding/json"
	"fmt"
	"io"
)

// FailureNote is the structured note written to stderr when extraction
// fails. The field names and the null stdout are part of the pipeline
// contract and must not change.
type FailureNote struct {
	EventOutcomeInformation string  `json:"eventOutcomeInformation"`
	EventOutcomeDetailNote  string  `json:"eventOutcomeDetailNote"`
	Stdout                  *string `json:"stdout"`
}

// WriteFailureNote writes a failure note with the given detail message.
func WriteFailureNote(w io.Writer, detail string) error {
	return json.NewEncoder(w).Encode(FailureNote{
		EventOutcomeInformation: "fail",
		EventOutcomeDetailNote:  detail,
	})
}

// FormatDetailNote renders an event outcome detail note in the
// `format="...";` convention used by the pipeline.
func FormatDetailNote(format, version, result string) string {
	note := fmt.Sprintf("format=%q;", format)
	if version != "" {
		note += fmt.Sprintf(" version=%q;", version)
	}
	if result != "" {
		note += fmt.Sprintf(" result=%q", result)
	}
	return note
}
