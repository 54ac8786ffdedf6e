// Package algorithm loads catalogs of named move sequences and checks
// their order against the cube engine.
package algorithm

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/pkg/types"
)

//go:embed default.yaml
var defaultCatalog []byte

// MaxOrder bounds the search in Order. No element of the cube group has a
// larger order.
const MaxOrder = 1260

var (
	ErrEmptyCatalog = errors.New("algorithm: catalog has no algorithms")
	ErrNoOrder      = errors.New("algorithm: sequence does not return within MaxOrder")
)

// Algorithm is a named move sequence with its expected order.
type Algorithm struct {
	Name  string `yaml:"name"`
	Moves string `yaml:"moves"`
	Order int    `yaml:"order"`
}

// Catalog is a list of algorithms.
type Catalog struct {
	Algorithms []Algorithm `yaml:"algorithms"`
}

// Result is the outcome of checking one algorithm.
type Result struct {
	Name     string
	Expected int
	Actual   int
	Err      error
}

// OK reports whether the measured order matches the expected one.
func (r Result) OK() bool {
	return r.Err == nil && r.Actual == r.Expected
}

// Load decodes a catalog from YAML and checks that every sequence parses.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	if len(c.Algorithms) == 0 {
		return nil, ErrEmptyCatalog
	}

	for i, a := range c.Algorithms {
		if a.Name == "" {
			return nil, fmt.Errorf("algorithm %d: missing name", i)
		}
		if _, err := notation.ParseSequence(a.Moves); err != nil {
			return nil, fmt.Errorf("algorithm %q: %w", a.Name, err)
		}
	}

	return &c, nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("algorithm: embedded catalog: %v", err))
	}
	return c
}

// Order returns how many times moves must be applied to the solved cube
// before it is solved again.
func Order(moves []types.Move) (int, error) {
	start := cube.New()
	s := start
	for n := 1; n <= MaxOrder; n++ {
		s = cube.ApplyMoves(s, moves)
		if s == start {
			return n, nil
		}
	}
	return 0, ErrNoOrder
}

// Check measures the order of a single algorithm.
func Check(a Algorithm) Result {
	res := Result{Name: a.Name, Expected: a.Order}
	moves, err := notation.ParseSequence(a.Moves)
	if err != nil {
		res.Err = err
		return res
	}
	res.Actual, res.Err = Order(moves)
	return res
}

// CheckAll checks every algorithm in the catalog, in order.
func (c *Catalog) CheckAll() []Result {
	results := make([]Result, len(c.Algorithms))
	for i, a := range c.Algorithms {
		results[i] = Check(a)
	}
	return results
}
