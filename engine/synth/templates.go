package synth

// TemplatesVersion identifies the revision of the templates below. It is
// written into every style file.
const TemplatesVersion = "2"

// Templates use << and >> as delimiters, as braces are everywhere in TeX.
// They are written with \n line endings; Synthesize converts to LineEnding.

// StyleTemplate renders the style file. Bindings: styleBindings.
const StyleTemplate = `\NeedsTeXFormat{LaTeX2e}
\ProvidesPackage{<<.Package>>}[<<if .Date>><<.Date>> <<end>>TeXicons set for <<tex .Info>>]
% generated by texicons, templates v<<.Version>>
<<if .Dependency>>\RequirePackage{<<.Dependency>>}
<<end>>
<<range .Fonts>>\newfontfamily{\<<.ControlSequence>>}{<<.File>>}
<<end>>
<<range .Mappings>><<.>>
<<end>>\endinput
`

// MappingTemplate renders the macro for a single glyph. Bindings: mappingBindings.
const MappingTemplate = `\expandafter\def\csname icon@<<.Prefix>>:<<.Name>>\endcsname{\<<.Font>>\symbol{"<<.Codepoint>>}}`

// DocsTemplate renders the documentation file. Bindings: docsBindings.
const DocsTemplate = `\documentclass{article}
\usepackage{longtable}
\usepackage{<<.Package>>}
\begin{document}
\section*{<<tex .Info>>}
Icons of this set are addressed as \texttt{<<tex .Prefix>>:\textit{name}}.
\begin{longtable}{ll}
\textbf{Name} & \textbf{Icon} \\ \hline
\endhead
<<range .Rows>><<.>>
<<end>>\end{longtable}
\end{document}
`

// DocsRowTemplate renders one row of the documentation table. Bindings:
// mappingBindings.
const DocsRowTemplate = `\texttt{<<.Name>>} & \csname icon@<<.Prefix>>:<<.Name>>\endcsname \\`
