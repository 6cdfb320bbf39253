// Package edgefile reads graph definitions from edge-list text and TOML
// documents. It is the input layer for the graphtrail CLI and HTTP API;
// the graph library itself imposes no format.
//
// The edge-list format is one whitespace-separated "from to" pair per
// line, with blank lines and #-comments ignored. The TOML format is:
//
//	directed = true
//	edges = [["a", "b"], ["b", "c"]]
package edgefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/graphtrail/graphtrail/pkg/graph"
)

var (
	// ErrMalformedEdge is returned by [ParseList] when a non-comment line
	// does not hold exactly two fields.
	ErrMalformedEdge = errors.New("malformed edge")

	// ErrMalformedDocument is returned by [ParseTOML] when the document
	// cannot be decoded or an edge row is not a [from, to] pair.
	ErrMalformedDocument = errors.New("malformed graph document")
)

// Format identifies a supported graph file format.
type Format string

const (
	// FormatList is plain edge-list text, one "from to" pair per line.
	FormatList Format = "list"
	// FormatTOML is a TOML document with directed and edges keys.
	FormatTOML Format = "toml"
)

// Edge is a single from→to pair read from an input document.
type Edge struct {
	From string
	To   string
}

// Document is a parsed graph definition: a directedness flag and the edge
// list in input order. Edge-list input has no way to express
// directedness, so Directed is false there until the caller overrides it.
type Document struct {
	Directed bool
	Edges    []Edge
}

// Graph builds a string-keyed graph from the document by inserting every
// edge in order.
func (d Document) Graph() *graph.Graph[string] {
	g := graph.New[string]()
	if d.Directed {
		g = graph.NewDirected[string]()
	}
	for _, e := range d.Edges {
		g.AddEdge(e.From, e.To)
	}
	return g
}

// Detect picks the format for path by extension: .toml means FormatTOML,
// anything else is treated as edge-list text.
func Detect(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatList
}

// ParseFile reads the graph definition at path, detecting the format
// from the file extension.
func ParseFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if Detect(path) == FormatTOML {
		return ParseTOML(f)
	}
	return ParseList(f)
}

// ParseList reads edge-list text from r. Blank lines and lines starting
// with # are skipped; every other line must hold exactly two
// whitespace-separated fields.
func ParseList(r io.Reader) (Document, error) {
	var doc Document

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return Document{}, fmt.Errorf("line %d: %w: want \"from to\", got %q", lineno, ErrMalformedEdge, line)
		}
		doc.Edges = append(doc.Edges, Edge{From: fields[0], To: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return Document{}, fmt.Errorf("read: %w", err)
	}

	return doc, nil
}

// tomlDocument is the wire shape of a TOML graph file.
type tomlDocument struct {
	Directed bool       `toml:"directed"`
	Edges    [][]string `toml:"edges"`
}

// ParseTOML decodes a TOML graph document from r. Every row of the edges
// array must be a two-element [from, to] pair.
func ParseTOML(r io.Reader) (Document, error) {
	var raw tomlDocument
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	doc := Document{Directed: raw.Directed}
	for i, row := range raw.Edges {
		if len(row) != 2 {
			return Document{}, fmt.Errorf("edge %d: %w: want [from, to], got %d elements", i, ErrMalformedDocument, len(row))
		}
		doc.Edges = append(doc.Edges, Edge{From: row[0], To: row[1]})
	}

	return doc, nil
}
