package stl

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/archivemeta/stlmeta/pkg/geometry"
)

// floatPattern accepts an optional leading minus and an optional exponent.
// The format specification only allows a minus on normals, but most
// exporters emit negative vertex coordinates too, so both token kinds use
// the same pattern.
const floatPattern = `-?\d*(\.\d+)?([Ee][+-]?\d+)?`

var (
	namedSolidRe  = regexp.MustCompile(`^solid .+$`)
	facetNormalRe = regexp.MustCompile(`^facet normal ` + floatPattern + ` ` + floatPattern + ` ` + floatPattern + `$`)
	vertexRe      = regexp.MustCompile(`^vertex ` + floatPattern + ` ` + floatPattern + ` ` + floatPattern + `$`)
)

// ParseASCII parses the text encoding into a Model.
//
// Parsing is strictly sequential with no backtracking: facets are consumed
// one by one until an endsolid line is reached, so a truncated file fails
// with a structural error instead of a wrong triangle count. The first
// grammar violation aborts the parse (SyntaxError or NameMismatchError);
// non-fatal conditions such as a nameless solid line are collected in
// Model.Warnings.
func ParseASCII(r io.Reader) (*Model, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	p := &asciiParser{lines: lines, model: NewModel("", FormatASCII)}
	if err := p.parse(); err != nil {
		return nil, &ParseFailure{Err: err, Warnings: len(p.model.Warnings)}
	}
	return p.model, nil
}

// asciiLine is a non-blank input line with its original 1-based position,
// kept so errors cite real file line numbers.
type asciiLine struct {
	num  int
	text string
}

// readLines normalizes the input: blank lines are dropped and runs of
// whitespace within a line collapse to single spaces before any matching.
func readLines(r io.Reader) ([]asciiLine, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []asciiLine
	num := 0
	for scanner.Scan() {
		num++
		text := strings.Join(strings.Fields(scanner.Text()), " ")
		if text == "" {
			continue
		}
		lines = append(lines, asciiLine{num: num, text: text})
	}
	return lines, scanner.Err()
}

type asciiParser struct {
	lines []asciiLine
	pos   int
	model *Model
}

func (p *asciiParser) peek() (asciiLine, bool) {
	if p.pos >= len(p.lines) {
		return asciiLine{}, false
	}
	return p.lines[p.pos], true
}

// errExpected builds the fail-fast syntax error for the current position.
// At end of input the error cites the line after the last one seen.
func (p *asciiParser) errExpected(expected string) error {
	if ln, ok := p.peek(); ok {
		return &SyntaxError{Line: ln.num, Expected: expected, Actual: ln.text}
	}
	line := 1
	if n := len(p.lines); n > 0 {
		line = p.lines[n-1].num + 1
	}
	return &SyntaxError{Line: line, Expected: expected, Actual: ""}
}

func (p *asciiParser) expectLiteral(text string) error {
	ln, ok := p.peek()
	if !ok || ln.text != text {
		return p.errExpected(text)
	}
	p.pos++
	return nil
}

func (p *asciiParser) expectMatch(re *regexp.Regexp, expected string) (asciiLine, error) {
	ln, ok := p.peek()
	if !ok || !re.MatchString(ln.text) {
		return asciiLine{}, p.errExpected(expected)
	}
	p.pos++
	return ln, nil
}

func (p *asciiParser) parse() error {
	if err := p.parseSolidLine(); err != nil {
		return err
	}
	for {
		ln, ok := p.peek()
		if !ok {
			return p.errExpected("endsolid")
		}
		if strings.HasPrefix(ln.text, "endsolid") {
			break
		}
		if err := p.parseFacet(); err != nil {
			return err
		}
	}
	return p.parseEndsolidLine()
}

func (p *asciiParser) parseSolidLine() error {
	ln, ok := p.peek()
	if !ok {
		return &SyntaxError{Line: 1, Expected: "solid", Actual: ""}
	}
	if !strings.HasPrefix(ln.text, "solid") {
		return &SyntaxError{Line: ln.num, Expected: "solid", Actual: ln.text}
	}
	if namedSolidRe.MatchString(ln.text) {
		p.model.Name = strings.TrimSpace(strings.TrimPrefix(ln.text, "solid"))
	} else {
		// A bare "solid" line is legal but nameless: warning, not error.
		p.model.warnf("line %d: expected 'solid <string>' but got '%s'", ln.num, ln.text)
	}
	p.pos++
	return nil
}

func (p *asciiParser) parseFacet() error {
	ln, err := p.expectMatch(facetNormalRe, "facet normal <float> <float> <float>")
	if err != nil {
		return err
	}
	normal, err := parseCoordinates(ln, 2, "facet normal <float> <float> <float>")
	if err != nil {
		return err
	}

	if err := p.expectLiteral("outer loop"); err != nil {
		return err
	}

	var vertices [3]geometry.Vector3
	for i := 0; i < 3; i++ {
		ln, err := p.expectMatch(vertexRe, "vertex <float> <float> <float>")
		if err != nil {
			return err
		}
		vertices[i], err = parseCoordinates(ln, 1, "vertex <float> <float> <float>")
		if err != nil {
			return err
		}
	}

	if err := p.expectLiteral("endloop"); err != nil {
		return err
	}
	if err := p.expectLiteral("endfacet"); err != nil {
		return err
	}

	p.model.AddTriangle(geometry.NewTriangle(normal, vertices[0], vertices[1], vertices[2]))
	return nil
}

func (p *asciiParser) parseEndsolidLine() error {
	ln, _ := p.peek()
	if p.model.Name != "" && ln.text != "endsolid "+p.model.Name {
		return &NameMismatchError{Line: ln.num, Declared: p.model.Name, Found: ln.text}
	}
	p.pos++
	// Anything after the endsolid line is ignored.
	return nil
}

// parseCoordinates converts the three fields after the keyword(s) into a
// vector. The regexp match has already constrained the shape; a token
// that still fails strconv (a lone "-") is reported as a syntax error.
func parseCoordinates(ln asciiLine, skip int, expected string) (geometry.Vector3, error) {
	fields := strings.Fields(ln.text)[skip:]
	var coords [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return geometry.Vector3{}, &SyntaxError{Line: ln.num, Expected: expected, Actual: ln.text}
		}
		coords[i] = value
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}
