/*
Package iconset holds the data model shared by all stages of the package
generator: raw icon-set sources, the ordered glyph table, font-family bindings,
and the merged in-memory icon set which is handed to the package synthesizer.

Glyph tables keep insertion order. Re-inserting a name replaces the glyph but
keeps the position of its first insertion, which is what macro and
documentation output will follow.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iconset
