// Package compiler drives the execution engine. A Unit owns the root
// environment, applies plugins to it, and executes program trees into an
// output timeline that can then be written as a MIDI file.
package compiler
