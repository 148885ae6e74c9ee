// Package landscape computes moving-window landscape metrics over a 2-D
// raster: for every cell it evaluates a chosen indicator (edge density,
// area-weighted patch size, Shannon diversity, mean, most-common class,
// ...) aggregated over a square or circular neighbourhood centred on
// that cell, and emits one value per cell to an output sequence of the
// same extent.
//
// The package is built around a single-pass incremental sweep: rather
// than recomputing each window from scratch, the square-window engine
// maintains a running column buffer and the circular-window engine
// maintains one horizontal strip per row of the circle; on each step
// to the right both add the cells/edges that just entered the window
// and subtract those that just left. The circular engine rebuilds its
// strips from scratch at the start of every row.
//
// On-disk raster formats, tile I/O, a CLI front-end, and the thin
// indicator leaves' numerical definitions beyond their add/subtract
// contract are external collaborators and out of scope here; see
// Raster for the boundary this package consumes.
package landscape
