// Package beat models note durations.
//
// A Beat is an immutable count of quarter notes held as an exact rational
// number. Every Beat starts as one of the six named base durations and is
// then extended with dots or compressed into a tuplet; each transformation
// returns a new Beat. Converting a Beat into MIDI ticks is left to whoever
// owns the PPQN, see Beat.Ticks.
package beat
