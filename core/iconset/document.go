package iconset

import (
	"encoding/json"
	"io"
)

// Document is the serialized form of a normalized SVG-mode icon set, written
// between normalization and package generation.
type Document struct {
	Prefix  string `json:"prefix"`
	Name    string `json:"name"`
	FontID  string `json:"font_id"`
	Version string `json:"version,omitempty"`
	Icons   *Table `json:"icons"`
}

// DocumentOf creates the serializable form of set.
func DocumentOf(set *IconSet) Document {
	return Document{
		Prefix:  set.Prefix,
		Name:    set.Name,
		FontID:  set.FontID,
		Version: set.Version,
		Icons:   set.Glyphs,
	}
}

// IconSet converts a document back to an icon set bound to a single font asset.
func (doc Document) IconSet(fontAsset string) *IconSet {
	glyphs := doc.Icons
	if glyphs == nil {
		glyphs = NewTable()
	}
	return &IconSet{
		Prefix:  doc.Prefix,
		Name:    doc.Name,
		Version: doc.Version,
		FontID:  doc.FontID,
		Glyphs:  glyphs,
		Fonts:   []FontBinding{{Family: doc.FontID, Asset: fontAsset}},
	}
}

// WriteDocument writes doc as indented JSON.
func WriteDocument(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ReadDocument decodes a document from r.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	err := json.NewDecoder(r).Decode(&doc)
	return doc, err
}
