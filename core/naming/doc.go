/*
Package naming turns source glyph identifiers into names which are safe to use
as fragments of LaTeX control sequences.

Three kinds of names are produced:

* glyph names are kebab-cased ASCII ("arrow-left", "3-d-rotation"). They are
used unchanged in macro keys of the form {prefix}:{name}.

* family identifiers are lowerCamel-cased ASCII letters ("materialSymbols").
They become control sequences of font families, where digits are not allowed.
Every digit is therefore replaced by a letter before case conversion.

* the digit cipher itself, which maps 1→l, 2→a, 3→t, 4→e, 5→x, 6→i, 7→c, 8→o,
9→n and 0→s.

All functions are pure. Empty input yields empty output.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package naming
