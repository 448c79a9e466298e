/*
Package svgnorm re-serializes SVG glyph documents into a compact, canonical
form before they are handed to an SVG font builder.

Normalization first checks the markup for well-formedness, then minifies it.
Documents failing either step are rejected; callers decide whether that is fatal.
*/
package svgnorm

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

// tracer traces with key 'texicons.svg'.
func tracer() tracing.Trace {
	return tracing.Select("texicons.svg")
}

const mimeSVG = "image/svg+xml"

// Normalizer turns SVG markup into normalized SVG markup.
type Normalizer interface {
	Normalize(markup string) (string, error)
}

// NormalizerFunc adapts a function to the Normalizer interface.
type NormalizerFunc func(markup string) (string, error)

// Normalize calls f(markup).
func (f NormalizerFunc) Normalize(markup string) (string, error) {
	return f(markup)
}

// ErrNoSVG is returned for documents whose root element is not <svg>.
var ErrNoSVG = errors.New("document root is not an svg element")

// Minifier is the default Normalizer.
type Minifier struct {
	m *minify.M
}

// NewMinifier creates a Minifier with default SVG settings.
func NewMinifier() *Minifier {
	m := minify.New()
	m.Add(mimeSVG, &svg.Minifier{})
	return &Minifier{m: m}
}

// Normalize checks markup for well-formedness and returns its minified form.
func (mf *Minifier) Normalize(markup string) (string, error) {
	if err := check(markup); err != nil {
		return "", err
	}
	out, err := mf.m.String(mimeSVG, markup)
	if err != nil {
		return "", fmt.Errorf("minify svg: %w", err)
	}
	tracer().Debugf("normalized svg from %d to %d bytes", len(markup), len(out))
	return out, nil
}

// check parses markup as XML. The root element has to be <svg>.
func check(markup string) error {
	dec := xml.NewDecoder(strings.NewReader(markup))
	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("malformed svg: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if t.Name.Local != "svg" || roots > 0 {
					return ErrNoSVG
				}
				roots++
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if roots == 0 {
		return ErrNoSVG
	}
	return nil
}
