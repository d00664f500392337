// Package xcursor reads and writes the Xcursor animated cursor file format.
//
// An Xcursor file is a little-endian chunk table:
//
//	header:  "Xcur" | header size | version | toc count
//	toc:     { type | subtype | position } * toc count
//	image:   header size (36) | type | subtype (nominal size) | version |
//	         width | height | xhot | yhot | delay (ms) | ARGB32 pixels
//
// A file usually holds several nominal sizes (24, 32, 48, ...) and, for
// animated cursors, several frames per size. DecodeSize picks the nominal
// size nearest to the requested one and returns its frames in file order.
//
// Decoded pixels are RGBA8 in R, G, B, A byte order with the premultiplied
// alpha stored in the file, ready for render.Importer.
package xcursor
