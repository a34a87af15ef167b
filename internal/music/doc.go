// Package music contains the values a MellowD program computes with: pitches,
// chords, articulated sounds and melodies.
//
// Pitches and chords are plain values. An *Articulated sound is shared by
// pointer between the melody that contains it and whatever expression
// toggles its slur flag, so SetSlurred is visible through every holder.
// Every other transformation (octave shifts in particular) builds new
// sounds and leaves the originals alone.
package music
