package ruleset

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wfc/catalog"
)

// SampleDocument is a sample grid in YAML:
//
//	tiles: [water, sandL, grass]
//	rows:
//	  - water water sandL/1
//	  - water sandL grass
//
// Each row lists cells as "name" or "name/rotation", rotation being a single digit
// 0..3. Names may contain "/" (asset paths such as Tiles/road) but not whitespace,
// and may not themselves end in "/0".."/3".
type SampleDocument struct {
	Tiles []string `yaml:"tiles" json:"tiles"`
	Rows  []string `yaml:"rows" json:"rows"`
}

// DecodeSample reads a YAML sample document.
func DecodeSample(r io.Reader) (SampleDocument, error) {
	var doc SampleDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return doc, fmt.Errorf("%w: yaml: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// LoadSample reads and converts the YAML sample document at path.
func LoadSample(path string) (*catalog.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := DecodeSample(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc.Sample()
}

// Sample converts the document into a catalog.Sample. Unknown tile names and tile
// names that could not be told apart from a rotated cell wrap catalog.ErrInvalidRuleSet.
func (d SampleDocument) Sample() (*catalog.Sample, error) {
	ids := make(map[string]int, len(d.Tiles))
	for i, n := range d.Tiles {
		if err := checkName(n); err != nil {
			return nil, err
		}
		ids[n] = i
	}
	rows := make([][]catalog.Tile, 0, len(d.Rows))
	for y, line := range d.Rows {
		var row []catalog.Tile
		for _, cell := range strings.Fields(line) {
			name, rot := splitCell(cell)
			id, ok := ids[name]
			if !ok {
				return nil, fmt.Errorf("%w: unknown tile %q on row %d", catalog.ErrInvalidRuleSet, name, y)
			}
			row = append(row, catalog.Tile{ID: id, Rotation: rot})
		}
		rows = append(rows, row)
	}
	return catalog.NewSample(rows, d.Tiles)
}

// splitCell separates a "name/rotation" cell. Only a single trailing digit 0..3
// counts as a rotation; anything else belongs to the name.
func splitCell(cell string) (string, int) {
	n := len(cell)
	if n >= 3 && cell[n-2] == '/' && cell[n-1] >= '0' && cell[n-1] <= '3' {
		return cell[:n-2], int(cell[n-1] - '0')
	}
	return cell, 0
}

// checkName rejects tile names that a row could not reproduce unambiguously.
func checkName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty tile name", catalog.ErrInvalidRuleSet)
	case strings.ContainsFunc(name, unicode.IsSpace):
		return fmt.Errorf("%w: tile name %q contains whitespace", catalog.ErrInvalidRuleSet, name)
	}
	if base, rot := splitCell(name); base != name {
		return fmt.Errorf("%w: tile name %q reads as %q rotated %d", catalog.ErrInvalidRuleSet, name, base, rot)
	}
	return nil
}
