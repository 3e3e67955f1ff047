// Package source opens comic books as sequences of page images.
//
// A comic arrives as a directory of image files, a zip archive (.zip or
// .cbz), a PDF document, or a single standalone image. Open inspects the
// path and returns the matching Source implementation; all of them present
// the same page-indexed view and are safe for concurrent page access, so the
// detection pipeline can fan out across pages without caring where they come
// from.
//
// Pages in directories and archives are ordered by file name. PDF pages keep
// their document order and are rasterized through MuPDF at a configurable
// DPI.
//
// Decoding is lazy: a page is read and decoded when requested. Wrap a Source
// in a CachedSource when pages are visited repeatedly, such as when a
// detection pass is followed by panel extraction.
package source
