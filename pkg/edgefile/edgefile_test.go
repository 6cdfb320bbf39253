package edgefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantEdges int
		wantErr   error
	}{
		{
			name:      "Simple",
			input:     "a b\nb c\n",
			wantEdges: 2,
		},
		{
			name:      "CommentsAndBlanks",
			input:     "# header\n\na b\n   \n# trailing\nb c\n",
			wantEdges: 2,
		},
		{
			name:      "ExtraWhitespace",
			input:     "  a \t b  \n",
			wantEdges: 1,
		},
		{
			name:      "Empty",
			input:     "",
			wantEdges: 0,
		},
		{
			name:    "TooManyFields",
			input:   "a b c\n",
			wantErr: ErrMalformedEdge,
		},
		{
			name:    "TooFewFields",
			input:   "a b\nlonely\n",
			wantErr: ErrMalformedEdge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseList(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseList error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseList: %v", err)
			}
			if doc.Directed {
				t.Error("edge-list input marked directed")
			}
			if got := len(doc.Edges); got != tt.wantEdges {
				t.Errorf("edges = %d, want %d", got, tt.wantEdges)
			}
		})
	}
}

func TestParseListLineNumber(t *testing.T) {
	_, err := ParseList(strings.NewReader("a b\n# ok\nbroken line here\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %v does not name line 3", err)
	}
}

func TestParseTOML(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantDirected bool
		wantEdges    int
		wantErr      error
	}{
		{
			name:         "Directed",
			input:        "directed = true\nedges = [[\"a\", \"b\"], [\"b\", \"c\"]]\n",
			wantDirected: true,
			wantEdges:    2,
		},
		{
			name:      "DefaultUndirected",
			input:     "edges = [[\"a\", \"b\"]]\n",
			wantEdges: 1,
		},
		{
			name:      "NoEdges",
			input:     "directed = false\n",
			wantEdges: 0,
		},
		{
			name:    "RowTooLong",
			input:   "edges = [[\"a\", \"b\", \"c\"]]\n",
			wantErr: ErrMalformedDocument,
		},
		{
			name:    "RowTooShort",
			input:   "edges = [[\"a\"]]\n",
			wantErr: ErrMalformedDocument,
		},
		{
			name:    "NotTOML",
			input:   "{\"edges\": []}",
			wantErr: ErrMalformedDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseTOML(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseTOML error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTOML: %v", err)
			}
			if doc.Directed != tt.wantDirected {
				t.Errorf("directed = %v, want %v", doc.Directed, tt.wantDirected)
			}
			if got := len(doc.Edges); got != tt.wantEdges {
				t.Errorf("edges = %d, want %d", got, tt.wantEdges)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"graph.toml", FormatTOML},
		{"graph.TOML", FormatTOML},
		{"graph.txt", FormatList},
		{"edges", FormatList},
		{"dir.toml/edges", FormatList},
	}

	for _, tt := range tests {
		if got := Detect(tt.path); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	listPath := filepath.Join(dir, "edges.txt")
	if err := os.WriteFile(listPath, []byte("a b\nb c\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tomlPath := filepath.Join(dir, "graph.toml")
	if err := os.WriteFile(tomlPath, []byte("directed = true\nedges = [[\"a\", \"b\"]]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := ParseFile(listPath)
	if err != nil {
		t.Fatalf("ParseFile(list): %v", err)
	}
	if len(doc.Edges) != 2 || doc.Directed {
		t.Errorf("list document = %+v, want 2 undirected edges", doc)
	}

	doc, err = ParseFile(tomlPath)
	if err != nil {
		t.Fatalf("ParseFile(toml): %v", err)
	}
	if len(doc.Edges) != 1 || !doc.Directed {
		t.Errorf("toml document = %+v, want 1 directed edge", doc)
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("ParseFile on missing file returned nil error")
	}
}

func TestDocumentGraph(t *testing.T) {
	doc := Document{
		Directed: true,
		Edges:    []Edge{{From: "a", To: "b"}},
	}

	g := doc.Graph()
	if !g.IsDirected() {
		t.Error("graph not directed")
	}
	if !g.HasEdge("a", "b") {
		t.Error("edge a→b missing")
	}
	if g.HasEdge("b", "a") {
		t.Error("directed document produced reverse edge")
	}

	doc.Directed = false
	g = doc.Graph()
	if !g.HasEdge("b", "a") {
		t.Error("undirected document missing reverse edge")
	}
}
