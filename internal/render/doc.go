// Package render turns detection results into images: cropped panels for a
// panel-by-panel reader, annotated overlays for inspecting what the detector
// found, thumbnails for page pickers, and a background color estimate for
// letterboxing.
//
// Everything here takes the page image and detected panels as plain values;
// nothing reaches back into the detection pipeline.
package render
