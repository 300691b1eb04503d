// Package core implements a dynamic, learned, ordered key→value map: a
// logarithmic-method buffer hierarchy of geometrically sized, always-sorted
// levels, merged pairwise as the bottom level overflows, with tombstone
// propagation and a multi-way merging iterator. It cooperates with the
// pkg/core/learned adapter for approximate position search above a
// configurable threshold level, and pkg/core/structure for a per-level
// negative-lookup filter; neither changes any observable query result.
package core
