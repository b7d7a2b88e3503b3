// Package validate computes geometric well-formedness properties of a
// parsed STL model. All properties are pure functions of the model; the
// model is never mutated and a fresh Report is produced per call, so the
// package is safe to use concurrently on independent models.
package validate

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/archivemeta/stlmeta/pkg/geometry"
	"github.com/archivemeta/stlmeta/pkg/stl"
)

// Report holds the validation flags for one model. The boolean flags are
// global ANDs over all facets: a single offending facet flips the flag for
// the whole mesh. A model with zero triangles yields vacuously true
// AND-flags and HasIsolatedTriangle false.
type Report struct {
	// OrientationConsistent is true when every stored facet normal
	// approximately equals the unit normal implied by its vertex winding.
	OrientationConsistent bool

	// WindingCounterclockwise is true when no stored normal points
	// against the winding of its vertices (negative dot product with the
	// edge cross product).
	WindingCounterclockwise bool

	// AllCoordinatesNonNegative is true when every vertex component of
	// every facet is >= 0.
	AllCoordinatesNonNegative bool

	// HasIsolatedTriangle is true when at least one triangle shares
	// fewer than two vertices (by exact coordinate equality) with every
	// other triangle.
	HasIsolatedTriangle bool

	// HasName is true when the solid name is non-empty after trimming.
	HasName bool

	// Warnings lists per-facet conditions that do not fail validation,
	// such as a facet whose stored normal disagrees with its winding.
	Warnings []string
}

// Options tunes validation. The zero value selects the defaults.
type Options struct {
	// Tolerance is the per-component tolerance for normal comparison.
	// Zero selects geometry.DefaultTolerance.
	Tolerance float64

	// Logger, when non-nil, receives per-facet warnings at warning level.
	Logger *log.Logger
}

// Analyze computes the validation report for a parsed model.
func Analyze(model *stl.Model, opts Options) *Report {
	tolerance := opts.Tolerance
	if tolerance == 0 {
		tolerance = geometry.DefaultTolerance
	}

	report := &Report{
		OrientationConsistent:     true,
		WindingCounterclockwise:   true,
		AllCoordinatesNonNegative: true,
		HasName:                   strings.TrimSpace(model.Name) != "",
	}

	for i, triangle := range model.Triangles {
		cross := triangle.EdgeCross()

		if !cross.Normalize().ApproxEqual(triangle.Normal.Normalize(), tolerance) {
			report.OrientationConsistent = false
			report.warnf(opts.Logger, "facet %d is not oriented correctly", i)
		}

		// A negative dot product means the stored normal points against
		// the vertex winding. Zero is indeterminate (degenerate facet)
		// and is not counted as a flipped winding.
		if cross.Dot(triangle.Normal) < 0 {
			report.WindingCounterclockwise = false
		}

		for _, vertex := range triangle.Vertices() {
			if vertex.X < 0 || vertex.Y < 0 || vertex.Z < 0 {
				report.AllCoordinatesNonNegative = false
			}
		}
	}

	report.HasIsolatedTriangle = hasIsolatedTriangle(model.Triangles)

	return report
}

// hasIsolatedTriangle reports whether some triangle shares fewer than two
// vertices with every other triangle. Vertices are compared by exact
// coordinate tuple. A hash of vertex tuple to owning triangles keeps this
// near O(n); only triangles that share at least one vertex are ever
// compared pairwise.
func hasIsolatedTriangle(triangles []geometry.Triangle) bool {
	if len(triangles) == 0 {
		return false
	}

	owners := make(map[geometry.Vector3][]int, len(triangles)*3)
	for i, triangle := range triangles {
		for _, vertex := range distinctVertices(triangle) {
			owners[vertex] = append(owners[vertex], i)
		}
	}

	for i, triangle := range triangles {
		shared := make(map[int]int)
		connected := false
		for _, vertex := range distinctVertices(triangle) {
			for _, j := range owners[vertex] {
				if j == i {
					continue
				}
				shared[j]++
				if shared[j] >= 2 {
					connected = true
					break
				}
			}
			if connected {
				break
			}
		}
		if !connected {
			return true
		}
	}

	return false
}

// distinctVertices deduplicates a triangle's vertices so a degenerate
// facet with repeated corners does not double-count a shared vertex.
func distinctVertices(t geometry.Triangle) []geometry.Vector3 {
	distinct := make([]geometry.Vector3, 0, 3)
	for _, v := range t.Vertices() {
		seen := false
		for _, d := range distinct {
			if v == d {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, v)
		}
	}
	return distinct
}

func (r *Report) warnf(logger *log.Logger, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, message)
	if logger != nil {
		logger.Warn(message)
	}
}
