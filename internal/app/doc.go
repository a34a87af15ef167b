// Package app wires the compiler into an application: it builds the logger,
// loads options and variables from disk, applies the bundled plugins and
// writes the compiled performance as a MIDI or YAML file. It is decoupled
// from whatever front end produces the program tree.
package app
