// Package graphfile reads graph documents (node list, adjacency matrix or
// edge list, default source and destination) from YAML or JSON, validates
// them and turns them into dijkstra engines.
package graphfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/matrix"
)

// ErrInvalidDocument wraps every structural or semantic problem of a document.
var ErrInvalidDocument = errors.New("graphfile: invalid document")

var validate = validator.New()

// EdgeSpec is one named, weighted, directed edge.
type EdgeSpec struct {
	From   string  `yaml:"from" json:"from" validate:"required"`
	To     string  `yaml:"to" json:"to" validate:"required"`
	Weight float64 `yaml:"weight" json:"weight" validate:"gte=0"`
}

// Document is the on-disk and on-the-wire graph description. Exactly one of
// Matrix and Edges must be set.
type Document struct {
	Name        string      `yaml:"name,omitempty" json:"name,omitempty"`
	Nodes       []string    `yaml:"nodes" json:"nodes" validate:"required,min=1,unique,dive,required"`
	Source      string      `yaml:"source" json:"source" validate:"required"`
	Destination string      `yaml:"destination,omitempty" json:"destination,omitempty"`
	Matrix      [][]float64 `yaml:"matrix,omitempty" json:"matrix,omitempty"`
	Edges       []EdgeSpec  `yaml:"edges,omitempty" json:"edges,omitempty" validate:"dive"`
}

// Validate runs the struct tag checks followed by the semantic checks:
// matrix xor edges, square rows, known edge endpoints. Source and
// destination membership is left to the engine so that callers see
// dijkstra.ErrInvalidSource and dijkstra.ErrUnknownNode.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var errs []string
	known := make(map[string]struct{}, len(d.Nodes))
	for _, n := range d.Nodes {
		known[n] = struct{}{}
	}
	check := func(field, name string) {
		if _, ok := known[name]; !ok {
			errs = append(errs, fmt.Sprintf("%s: unknown node %q", field, name))
		}
	}

	switch {
	case d.Matrix != nil && d.Edges != nil:
		errs = append(errs, "only one of matrix/edges may be set")
	case d.Matrix == nil && d.Edges == nil:
		errs = append(errs, "one of matrix/edges must be set")
	case d.Matrix != nil:
		if len(d.Matrix) != len(d.Nodes) {
			errs = append(errs, fmt.Sprintf("matrix: %d rows for %d nodes", len(d.Matrix), len(d.Nodes)))
		}
		for i, row := range d.Matrix {
			if len(row) != len(d.Nodes) {
				errs = append(errs, fmt.Sprintf("matrix[%d]: %d columns for %d nodes", i, len(row), len(d.Nodes)))
			}
		}
	default:
		for i, e := range d.Edges {
			check(fmt.Sprintf("edges[%d].from", i), e.From)
			check(fmt.Sprintf("edges[%d].to", i), e.To)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidDocument, strings.Join(errs, "\n  - "))
	}

	return nil
}

// Weights returns the flat row-major adjacency matrix of a valid document.
func (d *Document) Weights() ([]float64, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	n := len(d.Nodes)
	if d.Matrix != nil {
		flat := make([]float64, 0, n*n)
		for _, row := range d.Matrix {
			flat = append(flat, row...)
		}
		return flat, nil
	}

	index := make(map[string]int, n)
	for i, name := range d.Nodes {
		index[name] = i
	}
	edges := make([]matrix.Edge, len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = matrix.Edge{From: index[e.From], To: index[e.To], Weight: e.Weight}
	}
	w, err := matrix.FromEdges(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return w.Data(), nil
}

// Engine builds a dijkstra engine rooted at the document's source.
func (d *Document) Engine(opts ...dijkstra.Option) (*dijkstra.Engine, error) {
	weights, err := d.Weights()
	if err != nil {
		return nil, err
	}

	return dijkstra.New(d.Nodes, weights, d.Source, opts...)
}

// Parse decodes and validates a YAML document. JSON is valid YAML, so JSON
// documents are accepted too.
func Parse(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read %s: %w", path, err)
	}

	return Parse(data)
}

// Marshal encodes d as YAML.
func Marshal(d *Document) ([]byte, error) {
	return yaml.Marshal(d)
}

// Default returns the built-in eight-node continent graph rooted at Monaire
// with Asura as destination.
func Default() *Document {
	return &Document{
		Name:        "continent",
		Nodes:       []string{"Monaire", "Poirott", "Milis", "Bouche", "Tempest", "Ranoa", "Jura", "Asura"},
		Source:      "Monaire",
		Destination: "Asura",
		Matrix: [][]float64{
			{0, 4, 13, 0, 0, 0, 0, 0},
			{0, 0, 5, 8, 0, 0, 0, 0},
			{0, 0, 0, 0, 5, 10, 0, 0},
			{0, 0, 0, 0, 3, 0, 3, 14},
			{0, 0, 0, 0, 0, 6, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 5},
			{0, 0, 0, 0, 0, 0, 0, 12},
			{0, 0, 0, 0, 0, 0, 0, 0},
		},
	}
}
