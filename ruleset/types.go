package ruleset

import "encoding/xml"

// Document is a serialized tiled rule set.
type Document struct {
	XMLName   xml.Name   `xml:"set" json:"-" yaml:"-"`
	Tiles     []Tile     `xml:"tiles>tile" json:"tiles" yaml:"tiles"`
	Neighbors []Neighbor `xml:"neighbors>neighbor" json:"neighbors,omitempty" yaml:"neighbors,omitempty"`
	Subsets   []Subset   `xml:"subsets>subset" json:"subsets,omitempty" yaml:"subsets,omitempty"`
}

// Tile declares one tile.
type Tile struct {
	Name     string  `xml:"name,attr" json:"name" yaml:"name"`
	Symmetry string  `xml:"symmetry,attr,omitempty" json:"symmetry,omitempty" yaml:"symmetry,omitempty"`
	Weight   float64 `xml:"weight,attr,omitempty" json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Neighbor allows Right to sit one step in Direction from Left.
type Neighbor struct {
	Left      string `xml:"left,attr" json:"left" yaml:"left"`
	Right     string `xml:"right,attr" json:"right" yaml:"right"`
	Direction string `xml:"direction,attr,omitempty" json:"direction,omitempty" yaml:"direction,omitempty"`
}

// Subset names a group of tiles.
type Subset struct {
	Name  string      `xml:"name,attr" json:"name" yaml:"name"`
	Tiles []SubsetRef `xml:"tile" json:"tiles" yaml:"tiles"`
}

// SubsetRef is a tile listed in a subset.
type SubsetRef struct {
	Name string `xml:"name,attr" json:"name" yaml:"name"`
}
