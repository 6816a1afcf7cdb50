// SPDX-License-Identifier: EPL-2.0

// Package stream implements the pull-driven audio dataflow engine behind
// generative soundscape playback.
//
// Every audio-producing node implements the Stream interface: a node
// reports how many samples it can deliver right now (MaxRead), accumulates
// samples into a caller buffer (ReadAdd), and performs its buffering or
// decoding work on demand (Load). Load may split off newly independent
// streams -- the unplayed remainder of a spliced track -- which the caller
// is expected to adopt into its own pool.
//
// The concrete implementations form a small closed set:
//
//   - Empty: the inert stream, permanently at end of stream.
//   - SourceStream: one decoded clip, refilled packet by packet.
//   - Track: a clip with an optional splice countdown that can peel its
//     unplayed remainder into an independent tail.
//   - Player: an unbounded sequence of Tracks played back to back.
//   - Mixer: a growable pool of streams advanced in lock-step and averaged.
//
// The engine is single-threaded and poll-driven. A driver loops: poll
// MaxRead, call Load while it is zero, then ReadAdd into a buffer sized to
// the current minimum and hand the buffer to the audio sink. All pool
// mutation happens inside Load, never concurrently with ReadAdd.
//
// Reading more than MaxRead reports is a programmer error and panics.
package stream
