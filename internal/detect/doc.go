// Package detect locates the panels of a comic page image and orders them
// for reading.
//
// Two detection engines share one contract (page image + configuration +
// reading direction in, ordered panel list out):
//
//   - Grid detector: assumes panels sit in a roughly rectangular grid
//     separated by blank gutters. Gutters are found as long runs of
//     non-edge pixels after Sobel edge detection.
//   - Region detector: assumes panel content forms connected dark blobs.
//     Panels are found by Otsu binarization, dilation, and connected-component
//     labeling.
//
// The grid detector tolerates panels that touch (the gutter grid separates
// them) but expects a regular layout. The region detector tolerates irregular
// layouts but fragments or fuses panels whose content touches across gutters.
// Callers choose the engine; nothing here inspects the page to pick one.
//
// # Pipeline
//
// Both engines run the same stage sequence: grayscale conversion, an
// edge/binarization stage, a grouping stage (gutter lines or connected
// components), shared filtering and overlap merging, and shared reading-order
// assignment. All intermediate buffers are flat row-major slices allocated per
// call and discarded on return; no state survives between calls, so one
// detector instance may serve many goroutines concurrently.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner.
// Panel bounds use an inclusive left/top edge and an exclusive right/bottom
// edge, so a panel covering the whole of an 800x1200 page has bounds
// (0,0)-(800,1200).
//
// # Results
//
// Detect returns a tagged Result rather than a (panels, error) pair: the
// outcome of a detection call is one of three variants (panels found, no
// panels found, failure), and the no-panels case is data, not an error.
// The grid engine never reports the no-panels variant; an empty page falls
// back to a single synthetic panel covering the whole image. Any panic during
// pixel analysis is caught and reported as the failure variant so that a bad
// page can never take down the caller.
//
// # Determinism
//
// For a given image, configuration, and direction the output is identical
// across runs: stages iterate pixels in row-major order, merging is a single
// ordered pass, and row clustering processes panels in a stable top-to-bottom
// order. The merge pass and the row clustering are intentionally
// order-sensitive single-pass heuristics; making them order-independent would
// change observable output on real pages.
package detect
