// Package ruleset reads and writes tiled rule documents and sample grids.
//
// A Document is the serialized form of a catalog.RuleSet. It round-trips through
// three encodings that share one shape:
//
//	<set>
//	  <tiles>
//	    <tile name="grass" symmetry="X" weight="2"/>
//	    <tile name="roadI" symmetry="I"/>
//	  </tiles>
//	  <neighbors>
//	    <neighbor left="grass" right="roadI 1"/>
//	    <neighbor left="roadI 1" right="roadI 1" direction="down"/>
//	  </neighbors>
//	  <subsets>
//	    <subset name="lawn"><tile name="grass"/></subset>
//	  </subsets>
//	</set>
//
// A tile reference is "name" or "name rotation" (rotation 0..3, default 0). A
// missing direction means right, missing symmetry means X and missing weight 1.
//
// JSON documents are validated against an embedded JSON Schema before decoding;
// YAML and XML documents are checked when converted with ToRuleSet.
//
// The direction attribute is an extension; documents written by Record never
// carry it, so their output stays readable by loaders that only know the
// horizontal form.
//
// Record derives a Document from a sample grid by listing every horizontally and
// vertically adjacent pair it contains.
package ruleset
