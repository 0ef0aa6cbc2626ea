package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wfc/ruleset"
	"github.com/katalvlaran/wfc/solver"
)

// document converts the model's output to a sample document, so a result can be
// fed back as a sample. Unresolved positions are written as "?".
func document(m *solver.Model) ruleset.SampleDocument {
	cat := m.Catalog()
	doc := ruleset.SampleDocument{Tiles: cat.TileNames()}
	if len(doc.Tiles) == 0 {
		seen := 0
		for _, row := range m.Grid() {
			for _, s := range row {
				if s.Resolved && s.Tile.ID >= seen {
					seen = s.Tile.ID + 1
				}
			}
		}
		for id := 0; id < seen; id++ {
			doc.Tiles = append(doc.Tiles, cat.TileName(id))
		}
	}

	for _, row := range m.Grid() {
		cells := make([]string, len(row))
		for x, s := range row {
			switch {
			case !s.Resolved:
				cells[x] = "?"
			case s.Tile.Rotation != 0:
				cells[x] = fmt.Sprintf("%s/%d", cat.TileName(s.Tile.ID), s.Tile.Rotation)
			default:
				cells[x] = cat.TileName(s.Tile.ID)
			}
		}
		doc.Rows = append(doc.Rows, strings.Join(cells, " "))
	}
	return doc
}

func render(w io.Writer, m *solver.Model) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document(m)); err != nil {
		return err
	}
	return enc.Close()
}
