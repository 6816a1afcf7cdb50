// SPDX-License-Identifier: EPL-2.0

// Package classify maps clip file names onto digraph arrows.
//
// A clip file is named <tail>-<head>[-<variant>].<ext>, where tail and
// head are node labels and the optional variant distinguishes parallel
// clips between the same pair of nodes:
//
//	start-forest.ogg
//	forest-river-2.ogg
//	river-start-birds.wav
//
// Names are matched case-insensitively. Files whose names do not follow
// the scheme, or whose extension has no registered decoder, are not
// clips and are skipped by callers.
package classify
