// Package output is the boundary between the execution engine and the
// performance file.
//
// Statements write Events into an Output at absolute tick positions. The
// Output owns the mapping from durations to ticks (its PPQN), so the engine
// never needs to know how ticks relate to wall-clock time. Timeline is the
// in-memory implementation; WriteSMF turns a Timeline into a type 1 MIDI
// file and WriteYAML into a readable dump.
package output
