package pipeline

import (
	"fmt"
	"strings"
)

// Failure is an icon set which could not be processed.
type Failure struct {
	Prefix string
	Err    error
}

func (f Failure) String() string {
	return f.Prefix + ": " + f.Err.Error()
}

// Warning is a problem with a single glyph, which did not stop its set.
type Warning struct {
	Prefix  string
	Glyph   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%s: %s", w.Prefix, w.Glyph, w.Message)
}

// Report is the outcome of a run.
type Report struct {
	Processed []string  // prefixes of sets processed successfully
	Failed    []Failure // sets skipped because of malformed input
	Excluded  []string  // prefixes rejected by allow/disallow lists
	Warnings  []Warning
	Files     []string // files written
}

// OK is true if no set failed.
func (r *Report) OK() bool {
	return len(r.Failed) == 0
}

// Summary is a one-line description of r.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d processed, %d failed, %d excluded, %d warnings",
		len(r.Processed), len(r.Failed), len(r.Excluded), len(r.Warnings))
	return b.String()
}

func (r *Report) warn(prefix, glyph, format string, args ...interface{}) {
	w := Warning{Prefix: prefix, Glyph: glyph, Message: fmt.Sprintf(format, args...)}
	tracer().P("set", prefix).Errorf("warning: %s", w)
	r.Warnings = append(r.Warnings, w)
}
