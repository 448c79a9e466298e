package synth

import (
	"strings"
	"sync"
	"text/template"
)

var funcs = template.FuncMap{
	"tex": EscapeTeX,
}

var parsed sync.Map // template text -> *template.Template

// Render executes a template text with bindings. Templates use << and >> as
// action delimiters. Render has no side effects; equal input gives equal output.
func Render(tmpl string, bindings any) (string, error) {
	t, err := parse(tmpl)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := t.Execute(&b, bindings); err != nil {
		return "", err
	}
	return b.String(), nil
}

func parse(tmpl string) (*template.Template, error) {
	if t, ok := parsed.Load(tmpl); ok {
		return t.(*template.Template), nil
	}
	t, err := template.New("texicons").Delims("<<", ">>").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, err
	}
	parsed.Store(tmpl, t)
	return t, nil
}

var texEscapes = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// EscapeTeX escapes the characters of s which are special to TeX.
func EscapeTeX(s string) string {
	return texEscapes.Replace(s)
}

// platformLines converts \n and \r\n line endings in s to LineEnding.
func platformLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if LineEnding == "\n" {
		return s
	}
	return strings.ReplaceAll(s, "\n", LineEnding)
}
