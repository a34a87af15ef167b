package music

// Slurrable values can be joined to the following sound.
type Slurrable interface {
	SetSlurred(slurred bool)
}

// Concatable values can append themselves onto a growing melody.
type Concatable interface {
	AppendTo(root *Melody)
}

// Articulated is a sound with its articulation and slur flag.
type Articulated struct {
	sound        Sound
	articulation Articulation
	slurred      bool
}

func NewArticulated(sound Sound, articulation Articulation) *Articulated {
	return &Articulated{sound: sound, articulation: articulation}
}

func (a *Articulated) Sound() Sound               { return a.sound }
func (a *Articulated) Articulation() Articulation { return a.articulation }
func (a *Articulated) IsSlurred() bool            { return a.slurred }

// SetSlurred changes the slur flag in place.
func (a *Articulated) SetSlurred(slurred bool) {
	a.slurred = slurred
}

// ShiftOctave returns a new sound n octaves away. The result does not share
// state with a, so slurring one never affects the other.
func (a *Articulated) ShiftOctave(n int) *Articulated {
	return &Articulated{
		sound:        a.sound.ShiftOctave(n),
		articulation: a.articulation,
		slurred:      a.slurred,
	}
}

func (a *Articulated) AppendTo(root *Melody) {
	root.Add(a)
}

func (a *Articulated) String() string {
	s := a.sound.String()
	if a.articulation != None {
		s += "." + a.articulation.String()
	}
	if a.slurred {
		s += "_"
	}
	return s
}
